// Package model contains domain models passed between layers.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/okian/arena/internal/domain/catalog"
)

// Cube maps indicator -> house -> value for a single period.
type Cube map[catalog.IndicatorKey]map[catalog.HouseKey]float64

// Value returns the value for (indicator, house) and whether it is present.
func (c Cube) Value(ind catalog.IndicatorKey, house catalog.HouseKey) (float64, bool) {
	row, ok := c[ind]
	if !ok {
		return 0, false
	}
	v, ok := row[house]
	return v, ok
}

// House is the descriptive record of a house supplied with the data.
type House struct {
	Name            string `json:"name"`
	Leader          string `json:"leader"`
	Sensibility     string `json:"sensibility"`
	Motto           string `json:"motto"`
	TherapistsCount int    `json:"therapists_count"`
	ActivePatients  int    `json:"active_patients"`
}

// Period is a labelled data cube.
type Period struct {
	Label string `json:"label"`
	KPIs  Cube   `json:"kpis"`
}

// Snapshot is the full data object rendered by the dashboard.
type Snapshot struct {
	UpdatedAt Timestamp                  `json:"updated_at"`
	Houses    map[catalog.HouseKey]House `json:"houses"`
	Periods   map[PeriodKey]Period       `json:"periods"`
}

// Period returns the period for key.
func (s *Snapshot) Period(key PeriodKey) (Period, error) {
	if _, err := ParsePeriod(string(key)); err != nil {
		return Period{}, err
	}
	p, ok := s.Periods[key]
	if !ok {
		return Period{}, fmt.Errorf("%w: %s", ErrPeriodNotFound, key)
	}
	return p, nil
}

// DecodeSnapshot parses the JSON data object.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeSnapshot, err)
	}
	return &s, nil
}

// timestampLayouts are tried in order. The extraction job writes local
// ISO timestamps without a zone.
var timestampLayouts = []string{ //nolint:gochecknoglobals // constant table
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a time that accepts zone-less ISO strings.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("%w: unsupported updated_at %q", ErrDecodeSnapshot, s)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
