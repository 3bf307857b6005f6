package reference

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/goto/salt/log"
)

// Service manages the country and manufacturer catalogs. Every successful
// mutation persists the full list immediately.
type Service struct {
	logger     log.Logger
	repository Repository
	validate   *validator.Validate
}

func NewService(logger log.Logger, repository Repository) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		validate:   validator.New(),
	}
}

// GetAll returns the stored list, or the seed defaults when nothing has
// been stored yet.
func (s *Service) GetAll(ctx context.Context, kind Kind) ([]Entry, error) {
	entries, err := s.repository.GetAll(ctx, kind)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return defaultEntries(kind), nil
	}
	return entries, nil
}

// Add appends a new entry. The code must not already be present; matching
// is case-sensitive, callers normalise case before calling.
func (s *Service) Add(ctx context.Context, kind Kind, entry Entry) error {
	if err := s.validate.Struct(entry); err != nil {
		return ValidationError{Err: err}
	}

	entries, err := s.GetAll(ctx, kind)
	if err != nil {
		return err
	}
	for _, existing := range entries {
		if existing.Code == entry.Code {
			return DuplicateError{Kind: kind, Code: entry.Code}
		}
	}

	if err := s.repository.Replace(ctx, kind, append(entries, entry)); err != nil {
		return err
	}
	s.logger.Info("added reference entry", "kind", string(kind), "code", entry.Code)
	return nil
}

// Remove deletes the entry with the given code.
func (s *Service) Remove(ctx context.Context, kind Kind, code string) error {
	entries, err := s.GetAll(ctx, kind)
	if err != nil {
		return err
	}

	kept := entries[:0:0]
	found := false
	for _, existing := range entries {
		if !found && existing.Code == code {
			found = true
			continue
		}
		kept = append(kept, existing)
	}
	if !found {
		return NotFoundError{Kind: kind, Code: code}
	}

	if err := s.repository.Replace(ctx, kind, kept); err != nil {
		return err
	}
	s.logger.Info("removed reference entry", "kind", string(kind), "code", code)
	return nil
}
