package asset

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/goto/salt/log"
)

const maxBatchSize = 100

// Stats summarises the issued tag collection.
type Stats struct {
	TotalTags int `json:"total_tags"`
	Countries int `json:"countries"`
}

// Service is the business process around issuing and importing tags. All
// mutation is read-modify-write against a snapshot loaded per call; the
// last save wins across overlapping sessions.
type Service struct {
	logger     log.Logger
	repository Repository
	now        func() time.Time
}

func NewService(logger log.Logger, repository Repository) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		now:        time.Now,
	}
}

func (s *Service) GetAll(ctx context.Context) ([]Asset, error) {
	return s.repository.GetAll(ctx)
}

// Recent returns up to size assets, newest first.
func (s *Service) Recent(ctx context.Context, size int) ([]Asset, error) {
	assets, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return assets[i].DateCreated.After(assets[j].DateCreated)
	})
	if size > 0 && len(assets) > size {
		assets = assets[:size]
	}
	return assets, nil
}

// GenerateTags issues count sequential tags for the pair and persists them.
// Each generated asset is fed back into the working snapshot so a batch
// never collides with itself. There is no save-time uniqueness check
// against writes from other sessions.
func (s *Service) GenerateTags(ctx context.Context, countryCode, manufacturerCode, name string, count int) ([]Asset, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ValidationError{Err: ErrEmptyName}
	}
	if count < 1 || count > maxBatchSize {
		return nil, ValidationError{Err: ErrInvalidCount}
	}

	snapshot, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	generated := make([]Asset, 0, count)
	for i := 0; i < count; i++ {
		ast := Asset{
			Tag:              NextTag(countryCode, manufacturerCode, snapshot),
			CountryCode:      countryCode,
			ManufacturerCode: manufacturerCode,
			Name:             fmt.Sprintf("%s #%d", name, i+1),
			DateCreated:      s.now(),
		}
		snapshot = append(snapshot, ast)
		generated = append(generated, ast)
	}

	if err := s.repository.Replace(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info("generated asset tags", "count", count, "country", countryCode, "manufacturer", manufacturerCode)
	return generated, nil
}

// Import appends assets parsed from pasted text. ErrNothingToDo is
// returned when no line survives format and duplicate filtering.
func (s *Service) Import(ctx context.Context, text string) ([]Asset, error) {
	snapshot, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	imported := ImportTags(text, snapshot, s.now())
	if len(imported) == 0 {
		return nil, ValidationError{Err: ErrNothingToDo}
	}

	if err := s.repository.Replace(ctx, append(snapshot, imported...)); err != nil {
		return nil, err
	}

	s.logger.Info("imported asset tags", "count", len(imported))
	return imported, nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	assets, err := s.repository.GetAll(ctx)
	if err != nil {
		return Stats{}, err
	}

	countries := map[string]bool{}
	for _, ast := range assets {
		countries[ast.CountryCode] = true
	}
	return Stats{
		TotalTags: len(assets),
		Countries: len(countries),
	}, nil
}
