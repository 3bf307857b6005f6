package asset

import (
	"context"
	"encoding/json"
	"time"
)

// Repository persists the full asset collection. Implementations load and
// store the list as a single JSON document; ordering is insertion order.
type Repository interface {
	GetAll(ctx context.Context) ([]Asset, error)
	Replace(ctx context.Context, assets []Asset) error
}

// Asset is one issued tag together with its metadata.
type Asset struct {
	Tag              string    `json:"tag"`
	CountryCode      string    `json:"country_code"`
	ManufacturerCode string    `json:"manufacturer_code"`
	Name             string    `json:"name"`
	DateCreated      time.Time `json:"date_created"`

	// Extra carries keys we do not interpret so documents written by other
	// tools survive a load/save round-trip.
	Extra map[string]json.RawMessage `json:"-"`
}

// timeLayouts covers RFC3339 and the zone-less ISO-8601 stamps found in
// documents written by earlier versions of the tracker.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

func parseTimestamp(raw json.RawMessage) time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (a *Asset) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	str := func(key string, dst *string) {
		if raw, ok := fields[key]; ok {
			_ = json.Unmarshal(raw, dst)
			delete(fields, key)
		}
	}
	str("tag", &a.Tag)
	str("country_code", &a.CountryCode)
	str("manufacturer_code", &a.ManufacturerCode)
	str("name", &a.Name)

	if raw, ok := fields["date_created"]; ok {
		a.DateCreated = parseTimestamp(raw)
		delete(fields, "date_created")
	}

	if len(fields) > 0 {
		a.Extra = fields
	}
	return nil
}

func (a Asset) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(a.Extra)+5)
	for k, v := range a.Extra {
		doc[k] = v
	}
	doc["tag"] = a.Tag
	doc["country_code"] = a.CountryCode
	doc["manufacturer_code"] = a.ManufacturerCode
	doc["name"] = a.Name
	doc["date_created"] = a.DateCreated.Format(time.RFC3339Nano)

	return json.Marshal(doc)
}
