package store

import (
	"context"
	"encoding/json"

	"github.com/goto/tagger/core/asset"
)

// AssetRepository stores the asset collection as one JSON document on a
// Backend.
type AssetRepository struct {
	backend Backend
}

func NewAssetRepository(backend Backend) *AssetRepository {
	return &AssetRepository{backend: backend}
}

func (r *AssetRepository) GetAll(ctx context.Context) ([]asset.Asset, error) {
	data, ok, err := r.backend.Load(ctx, AssetsCollection)
	if err != nil {
		return nil, TransportError{Op: "load", Collection: AssetsCollection, Err: err}
	}
	if !ok {
		return nil, nil
	}

	var assets []asset.Asset
	if err := json.Unmarshal(data, &assets); err != nil {
		return nil, TransportError{Op: "decode", Collection: AssetsCollection, Err: err}
	}
	return assets, nil
}

func (r *AssetRepository) Replace(ctx context.Context, assets []asset.Asset) error {
	if assets == nil {
		assets = []asset.Asset{}
	}
	data, err := json.MarshalIndent(assets, "", "  ")
	if err != nil {
		return TransportError{Op: "encode", Collection: AssetsCollection, Err: err}
	}
	if err := r.backend.Save(ctx, AssetsCollection, data); err != nil {
		return TransportError{Op: "save", Collection: AssetsCollection, Err: err}
	}
	return nil
}
