package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
)

type AssetRepository struct {
	mock.Mock
}

func (repo *AssetRepository) GetAll(ctx context.Context) ([]asset.Asset, error) {
	args := repo.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]asset.Asset), args.Error(1)
}

func (repo *AssetRepository) Replace(ctx context.Context, assets []asset.Asset) error {
	args := repo.Called(ctx, assets)
	return args.Error(0)
}

type ReferenceRepository struct {
	mock.Mock
}

func (repo *ReferenceRepository) GetAll(ctx context.Context, kind reference.Kind) ([]reference.Entry, error) {
	args := repo.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]reference.Entry), args.Error(1)
}

func (repo *ReferenceRepository) Replace(ctx context.Context, kind reference.Kind, entries []reference.Entry) error {
	args := repo.Called(ctx, kind, entries)
	return args.Error(0)
}
