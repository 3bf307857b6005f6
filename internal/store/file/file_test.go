package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/tagger/internal/store/file"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("should create the data directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")
		_, err := file.NewStore(file.Config{Dir: dir})
		require.NoError(t, err)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("should report ok=false for a collection never stored", func(t *testing.T) {
		store, err := file.NewStore(file.Config{Dir: t.TempDir()})
		require.NoError(t, err)

		data, ok, err := store.Load(ctx, "assets.json")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, data)
	})

	t.Run("should round-trip a saved collection byte for byte", func(t *testing.T) {
		store, err := file.NewStore(file.Config{Dir: t.TempDir()})
		require.NoError(t, err)

		doc := []byte(`[{"tag":"EGY-ZE-0001"},{"tag":"EGY-ZE-0002"}]`)
		require.NoError(t, store.Save(ctx, "assets.json", doc))

		data, ok, err := store.Load(ctx, "assets.json")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, doc, data)
	})

	t.Run("should overwrite on save", func(t *testing.T) {
		store, err := file.NewStore(file.Config{Dir: t.TempDir()})
		require.NoError(t, err)

		require.NoError(t, store.Save(ctx, "countries.json", []byte(`[1]`)))
		require.NoError(t, store.Save(ctx, "countries.json", []byte(`[2]`)))

		data, ok, err := store.Load(ctx, "countries.json")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte(`[2]`), data)
	})
}
