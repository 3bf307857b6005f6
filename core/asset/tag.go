package asset

import (
	"fmt"
	"strconv"
	"strings"
)

// TagID is the decomposed form of a tag identifier COUNTRY-MANUFACTURER-NNNN.
type TagID struct {
	CountryCode      string
	ManufacturerCode string
	Sequence         int

	// HasSequence is false when the trailing segment is not numeric. Such
	// tags are structurally valid but excluded from sequence derivation.
	HasSequence bool
}

// ParseTag splits text into its three dash-delimited segments. It returns
// InvalidTagError unless there are exactly three non-empty segments. A
// non-numeric trailing segment is tolerated and reported via HasSequence.
func ParseTag(text string) (TagID, error) {
	segments := strings.Split(text, "-")
	if len(segments) != 3 {
		return TagID{}, InvalidTagError{Tag: text}
	}
	for _, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return TagID{}, InvalidTagError{Tag: text}
		}
	}

	id := TagID{
		CountryCode:      strings.TrimSpace(segments[0]),
		ManufacturerCode: strings.TrimSpace(segments[1]),
	}
	if seq, err := strconv.Atoi(strings.TrimSpace(segments[2])); err == nil {
		id.Sequence = seq
		id.HasSequence = true
	}
	return id, nil
}

// FormatTag renders a tag with the sequence zero-padded to four digits.
// Sequences of five or more digits grow naturally.
func FormatTag(countryCode, manufacturerCode string, sequence int) string {
	return fmt.Sprintf("%s-%s-%04d", countryCode, manufacturerCode, sequence)
}

func (t TagID) String() string {
	return FormatTag(t.CountryCode, t.ManufacturerCode, t.Sequence)
}
