package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goto/tagger/core/reference"
)

// ReferenceRepository stores the country and manufacturer catalogs, one
// JSON document per kind.
type ReferenceRepository struct {
	backend Backend
}

func NewReferenceRepository(backend Backend) *ReferenceRepository {
	return &ReferenceRepository{backend: backend}
}

func collectionFor(kind reference.Kind) (string, error) {
	switch kind {
	case reference.KindCountry:
		return CountriesCollection, nil
	case reference.KindManufacturer:
		return ManufacturersCollection, nil
	}
	return "", fmt.Errorf("unknown reference kind: %q", kind)
}

func (r *ReferenceRepository) GetAll(ctx context.Context, kind reference.Kind) ([]reference.Entry, error) {
	name, err := collectionFor(kind)
	if err != nil {
		return nil, err
	}

	data, ok, err := r.backend.Load(ctx, name)
	if err != nil {
		return nil, TransportError{Op: "load", Collection: name, Err: err}
	}
	if !ok {
		return nil, nil
	}

	var entries []reference.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, TransportError{Op: "decode", Collection: name, Err: err}
	}
	return entries, nil
}

func (r *ReferenceRepository) Replace(ctx context.Context, kind reference.Kind, entries []reference.Entry) error {
	name, err := collectionFor(kind)
	if err != nil {
		return err
	}

	if entries == nil {
		entries = []reference.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return TransportError{Op: "encode", Collection: name, Err: err}
	}
	if err := r.backend.Save(ctx, name, data); err != nil {
		return TransportError{Op: "save", Collection: name, Err: err}
	}
	return nil
}
