// Package feature reads map feature collections and tints every feature with
// the colour its value and geometry classify to.
//
// The format is a GeoJSON-style FeatureCollection. Geometry is carried through
// untouched; only the properties object is read and extended.
package feature

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/compression"
)

// Collection is a feature collection.
type Collection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
}

// Feature is a single map feature.
type Feature struct {
	Type       string          `json:"type"`
	ID         json.RawMessage `json:"id,omitempty"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

// Decode reads a collection from r.
func Decode(r io.Reader) (*Collection, error) {
	var c Collection
	dec := json.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode feature collection: %w", err)
	}
	if c.Type != "FeatureCollection" {
		return nil, fmt.Errorf("expected a FeatureCollection, got type %q", c.Type)
	}
	for i, f := range c.Features {
		if f == nil {
			return nil, fmt.Errorf("feature %d is null", i)
		}
	}
	return &c, nil
}

// Load reads a collection from a plain or compressed file.
func Load(path string) (*Collection, error) {
	rc, err := compression.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	c, err := Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return c, nil
}

// Encode writes the collection as indented JSON.
func (c *Collection) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode feature collection: %w", err)
	}
	return nil
}

// GeometryType returns the type of the feature's geometry, or "" when it has none.
func (f *Feature) GeometryType() string {
	if len(f.Geometry) == 0 {
		return ""
	}
	var g struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(f.Geometry, &g); err != nil {
		return ""
	}
	return g.Type
}

// Category returns the category named by the given property, or the one
// implied by the geometry when the property is absent.
func (f *Feature) Category(property string) classify.Category {
	if v, ok := f.Properties[property]; ok {
		if s, ok := v.(string); ok {
			return classify.ParseCategory(s)
		}
		return classify.Unknown
	}

	switch f.GeometryType() {
	case "Point", "MultiPoint":
		return classify.Marker
	case "LineString", "MultiLineString":
		return classify.Polyline
	default:
		return classify.Unknown
	}
}

// Value returns the numeric value of the given property. Numeric strings are
// accepted. ok is false when the property is missing or not a number.
func (f *Feature) Value(property string) (v float64, ok bool) {
	switch raw := f.Properties[property].(type) {
	case float64:
		return raw, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// SetProperty sets a property, creating the properties object if needed.
func (f *Feature) SetProperty(name string, v any) {
	if f.Properties == nil {
		f.Properties = make(map[string]any)
	}
	f.Properties[name] = v
}
