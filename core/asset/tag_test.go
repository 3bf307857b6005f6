package asset_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goto/tagger/core/asset"
)

func TestParseTag(t *testing.T) {
	t.Run("should parse a well-formed tag", func(t *testing.T) {
		id, err := asset.ParseTag("EGY-ZE-0001")
		require.NoError(t, err)

		assert.Equal(t, "EGY", id.CountryCode)
		assert.Equal(t, "ZE", id.ManufacturerCode)
		assert.Equal(t, 1, id.Sequence)
		assert.True(t, id.HasSequence)
	})

	t.Run("should tolerate a non-numeric suffix", func(t *testing.T) {
		id, err := asset.ParseTag("EGY-ZE-DRAFT")
		require.NoError(t, err)

		assert.Equal(t, "EGY", id.CountryCode)
		assert.False(t, id.HasSequence)
	})

	t.Run("should reject structurally invalid tags", func(t *testing.T) {
		for _, text := range []string{
			"",
			"BADFORMAT",
			"EGY-ZE",
			"EGY-ZE-00-01",
			"EGY--0001",
			"-ZE-0001",
		} {
			_, err := asset.ParseTag(text)
			assert.Truef(t, errors.As(err, new(asset.InvalidTagError)), "expected InvalidTagError for %q", text)
		}
	})
}

func TestFormatTag(t *testing.T) {
	t.Run("should zero-pad the sequence to four digits", func(t *testing.T) {
		assert.Equal(t, "EGY-ZE-0001", asset.FormatTag("EGY", "ZE", 1))
		assert.Equal(t, "KSA-DE-0042", asset.FormatTag("KSA", "DE", 42))
	})

	t.Run("should let sequences above 9999 grow naturally", func(t *testing.T) {
		assert.Equal(t, "EGY-ZE-10000", asset.FormatTag("EGY", "ZE", 10000))
	})
}

func TestTagRoundTrip(t *testing.T) {
	for _, tag := range []string{
		"EGY-ZE-0001",
		"KSA-DE-0930",
		"EGY-HP-9999",
		"KSA-AP-10001",
	} {
		id, err := asset.ParseTag(tag)
		require.NoError(t, err)
		require.True(t, id.HasSequence)

		assert.Equal(t, tag, asset.FormatTag(id.CountryCode, id.ManufacturerCode, id.Sequence))
	}
}
