package store

import (
	"context"
	"fmt"
)

// Collection document names. The same names are used as file names by the
// local backend and as repository paths by the remote backend.
const (
	AssetsCollection        = "assets.json"
	ManufacturersCollection = "manufacturers.json"
	CountriesCollection     = "countries.json"
)

// Backend persists named JSON collections. Load reports ok=false with a
// nil error when the collection has never been stored, so callers can tell
// "nothing stored yet" apart from "storage unreachable".
type Backend interface {
	Load(ctx context.Context, name string) (data []byte, ok bool, err error)
	Save(ctx context.Context, name string, data []byte) error
}

type TransportError struct {
	Op         string
	Collection string
	Err        error
}

func (err TransportError) Error() string {
	return fmt.Sprintf("storage error: %s %q: %s", err.Op, err.Collection, err.Err)
}

func (err TransportError) Unwrap() error {
	return err.Err
}
