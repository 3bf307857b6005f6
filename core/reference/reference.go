package reference

import (
	"context"
	"encoding/json"
)

// Kind names one of the two reference catalogs.
type Kind string

const (
	KindCountry      Kind = "countries"
	KindManufacturer Kind = "manufacturers"
)

// Repository persists one reference list per kind.
type Repository interface {
	GetAll(ctx context.Context, kind Kind) ([]Entry, error)
	Replace(ctx context.Context, kind Kind, entries []Entry) error
}

// Entry is a code/name pair in a reference list. Codes are unique within
// their list.
type Entry struct {
	Code string `json:"code" validate:"required,uppercase,max=5"`
	Name string `json:"name" validate:"required"`

	// Extra preserves unknown keys across a load/save round-trip.
	Extra map[string]json.RawMessage `json:"-"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if raw, ok := fields["code"]; ok {
		_ = json.Unmarshal(raw, &e.Code)
		delete(fields, "code")
	}
	if raw, ok := fields["name"]; ok {
		_ = json.Unmarshal(raw, &e.Name)
		delete(fields, "name")
	}
	if len(fields) > 0 {
		e.Extra = fields
	}
	return nil
}

func (e Entry) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(e.Extra)+2)
	for k, v := range e.Extra {
		doc[k] = v
	}
	doc["code"] = e.Code
	doc["name"] = e.Name
	return json.Marshal(doc)
}

// Seed lists used when a catalog has never been stored.
func defaultEntries(kind Kind) []Entry {
	switch kind {
	case KindCountry:
		return []Entry{
			{Code: "EGY", Name: "Egypt"},
			{Code: "KSA", Name: "Saudi Arabia"},
		}
	case KindManufacturer:
		return []Entry{
			{Code: "ZE", Name: "Zebra Electronics"},
			{Code: "HP", Name: "Hewlett Packard"},
			{Code: "DE", Name: "Dell"},
			{Code: "LE", Name: "Lenovo"},
			{Code: "AP", Name: "Apple"},
		}
	}
	return nil
}
