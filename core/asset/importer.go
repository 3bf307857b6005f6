package asset

import (
	"fmt"
	"strings"
	"time"
)

// ImportTags parses freeform pasted text, one tag per line, into new asset
// records. Blank lines, lines that are not exactly three dash-delimited
// segments, and lines duplicating an existing tag (or an earlier accepted
// line) are skipped. The caller persists the result.
func ImportTags(text string, existing []Asset, now time.Time) []Asset {
	seen := make(map[string]bool, len(existing))
	for _, ast := range existing {
		seen[ast.Tag] = true
	}

	var imported []Asset
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		id, err := ParseTag(line)
		if err != nil {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true

		segments := strings.Split(line, "-")
		imported = append(imported, Asset{
			Tag:              line,
			CountryCode:      id.CountryCode,
			ManufacturerCode: id.ManufacturerCode,
			Name:             fmt.Sprintf("Imported Asset %s", strings.TrimSpace(segments[2])),
			DateCreated:      now,
		})
	}
	return imported
}
