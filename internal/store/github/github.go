package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v50/github"
	"golang.org/x/oauth2"
)

type Config struct {
	Token      string `yaml:"token" mapstructure:"token"`
	Repository string `yaml:"repository" mapstructure:"repository"`
	Branch     string `yaml:"branch" mapstructure:"branch"`
}

// Enabled reports whether enough configuration is present to even try the
// remote backend.
func (cfg Config) Enabled() bool {
	return cfg.Token != "" && cfg.Repository != ""
}

// Store is a document store backed by the contents API of a GitHub
// repository. Updating an existing document requires the blob SHA obtained
// from a prior read; the SHA is the revision token that makes the update
// safe against a stale write.
type Store struct {
	client *github.Client
	owner  string
	repo   string
	branch string
}

func NewStore(cfg Config) (*Store, error) {
	owner, repo, ok := strings.Cut(cfg.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("github repository must be in owner/name form, got %q", cfg.Repository)
	}

	httpClient := oauth2.NewClient(context.Background(), oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: cfg.Token},
	))

	return &Store{
		client: github.NewClient(httpClient),
		owner:  owner,
		repo:   repo,
		branch: cfg.Branch,
	}, nil
}

// Ping verifies the token and repository are usable.
func (s *Store) Ping(ctx context.Context) error {
	_, _, err := s.client.Repositories.Get(ctx, s.owner, s.repo)
	return err
}

func (s *Store) Load(ctx context.Context, name string) ([]byte, bool, error) {
	content, _, err := s.getContents(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	decoded, err := content.GetContent()
	if err != nil {
		return nil, false, err
	}
	return []byte(decoded), true, nil
}

// Save reads the document first to obtain its current revision, then
// updates it; a document that does not exist yet is created instead.
// Failures are reported to the caller, never retried.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	content, _, err := s.getContents(ctx, name)
	if err != nil {
		if !isNotFound(err) {
			return err
		}
		opts := &github.RepositoryContentFileOptions{
			Message: github.String(fmt.Sprintf("Create %s", name)),
			Content: data,
		}
		if s.branch != "" {
			opts.Branch = github.String(s.branch)
		}
		_, _, err = s.client.Repositories.CreateFile(ctx, s.owner, s.repo, name, opts)
		return err
	}

	opts := &github.RepositoryContentFileOptions{
		Message: github.String(fmt.Sprintf("Update %s", name)),
		Content: data,
		SHA:     github.String(content.GetSHA()),
	}
	if s.branch != "" {
		opts.Branch = github.String(s.branch)
	}
	_, _, err = s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, name, opts)
	return err
}

func (s *Store) getContents(ctx context.Context, name string) (*github.RepositoryContent, *github.Response, error) {
	var opts *github.RepositoryContentGetOptions
	if s.branch != "" {
		opts = &github.RepositoryContentGetOptions{Ref: s.branch}
	}

	content, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, name, opts)
	if err != nil {
		return nil, resp, err
	}
	if content == nil {
		return nil, resp, fmt.Errorf("%q is a directory, not a document", name)
	}
	return content, resp, nil
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
