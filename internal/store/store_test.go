package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/tagger/core/asset"
	"github.com/goto/tagger/core/reference"
	"github.com/goto/tagger/internal/store"
)

// memoryBackend is an in-memory Backend for tests.
type memoryBackend struct {
	docs    map[string][]byte
	loadErr error
	saveErr error
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{docs: map[string][]byte{}}
}

func (m *memoryBackend) Load(_ context.Context, name string) ([]byte, bool, error) {
	if m.loadErr != nil {
		return nil, false, m.loadErr
	}
	data, ok := m.docs[name]
	return data, ok, nil
}

func (m *memoryBackend) Save(_ context.Context, name string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.docs[name] = data
	return nil
}

func TestAssetRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should return an empty list when nothing is stored", func(t *testing.T) {
		repo := store.NewAssetRepository(newMemoryBackend())

		assets, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, assets)
	})

	t.Run("should round-trip assets in order", func(t *testing.T) {
		repo := store.NewAssetRepository(newMemoryBackend())
		saved := []asset.Asset{
			{Tag: "EGY-ZE-0001", CountryCode: "EGY", ManufacturerCode: "ZE", Name: "Printer #1", DateCreated: time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)},
			{Tag: "EGY-ZE-0002", CountryCode: "EGY", ManufacturerCode: "ZE", Name: "Printer #2", DateCreated: time.Date(2023, 6, 1, 11, 0, 0, 0, time.UTC)},
		}

		require.NoError(t, repo.Replace(ctx, saved))
		loaded, err := repo.GetAll(ctx)
		require.NoError(t, err)

		assert.Equal(t, saved, loaded)
	})

	t.Run("should wrap backend failures in TransportError", func(t *testing.T) {
		backend := newMemoryBackend()
		backend.loadErr = errors.New("remote unreachable")
		repo := store.NewAssetRepository(backend)

		_, err := repo.GetAll(ctx)
		var terr store.TransportError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, "load", terr.Op)
	})

	t.Run("should reject unparseable documents as errors, not as empty", func(t *testing.T) {
		backend := newMemoryBackend()
		backend.docs[store.AssetsCollection] = []byte(`{not json`)
		repo := store.NewAssetRepository(backend)

		_, err := repo.GetAll(ctx)
		assert.True(t, errors.As(err, new(store.TransportError)))
	})
}

func TestReferenceRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("should keep countries and manufacturers in separate documents", func(t *testing.T) {
		backend := newMemoryBackend()
		repo := store.NewReferenceRepository(backend)

		require.NoError(t, repo.Replace(ctx, reference.KindCountry, []reference.Entry{{Code: "EGY", Name: "Egypt"}}))
		require.NoError(t, repo.Replace(ctx, reference.KindManufacturer, []reference.Entry{{Code: "ZE", Name: "Zebra Electronics"}}))

		assert.Contains(t, backend.docs, store.CountriesCollection)
		assert.Contains(t, backend.docs, store.ManufacturersCollection)

		countries, err := repo.GetAll(ctx, reference.KindCountry)
		require.NoError(t, err)
		require.Len(t, countries, 1)
		assert.Equal(t, "EGY", countries[0].Code)
	})

	t.Run("should fail on an unknown kind", func(t *testing.T) {
		repo := store.NewReferenceRepository(newMemoryBackend())
		_, err := repo.GetAll(ctx, reference.Kind("vendors"))
		assert.Error(t, err)
	})
}

func TestDualWriter(t *testing.T) {
	ctx := context.Background()
	logger := log.NewNoop()

	t.Run("should load from remote when reachable", func(t *testing.T) {
		remote := newMemoryBackend()
		remote.docs["assets.json"] = []byte(`[1]`)
		local := newMemoryBackend()
		local.docs["assets.json"] = []byte(`[2]`)

		dual := store.NewDualWriter(logger, remote, local)
		data, ok, err := dual.Load(ctx, "assets.json")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[1]`), data)
	})

	t.Run("should fall back to the local mirror when remote load fails", func(t *testing.T) {
		remote := newMemoryBackend()
		remote.loadErr = errors.New("remote unreachable")
		local := newMemoryBackend()
		local.docs["assets.json"] = []byte(`[2]`)

		dual := store.NewDualWriter(logger, remote, local)
		data, ok, err := dual.Load(ctx, "assets.json")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[2]`), data)
	})

	t.Run("should save to both backends", func(t *testing.T) {
		remote := newMemoryBackend()
		local := newMemoryBackend()

		dual := store.NewDualWriter(logger, remote, local)
		require.NoError(t, dual.Save(ctx, "assets.json", []byte(`[1]`)))

		assert.Equal(t, []byte(`[1]`), remote.docs["assets.json"])
		assert.Equal(t, []byte(`[1]`), local.docs["assets.json"])
	})

	t.Run("should report failure when either backend fails", func(t *testing.T) {
		remote := newMemoryBackend()
		local := newMemoryBackend()
		local.saveErr = errors.New("disk full")

		dual := store.NewDualWriter(logger, remote, local)
		err := dual.Save(ctx, "assets.json", []byte(`[1]`))

		assert.Error(t, err)
		// remote write already happened; the partial success is not rolled back
		assert.Equal(t, []byte(`[1]`), remote.docs["assets.json"])
	})
}
