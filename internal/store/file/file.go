package file

import (
	"context"
	"os"
	"path/filepath"
)

type Config struct {
	Dir string `yaml:"dir" mapstructure:"dir" default:"data"`
}

// Store keeps one JSON file per collection in a flat directory.
type Store struct {
	dir string
}

// NewStore creates the data directory when it does not exist yet.
func NewStore(cfg Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: cfg.Dir}, nil
}

func (s *Store) Load(_ context.Context, name string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *Store) Save(_ context.Context, name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, name), data, 0o644)
}
