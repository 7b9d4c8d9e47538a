package feature

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/scale"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": 1, "geometry": {"type": "Point", "coordinates": [0, 0]}, "properties": {"value": 0}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [1, 1]}, "properties": {"value": 1.5}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {"value": "0.25"}},
    {"type": "Feature", "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}, "properties": {"value": 2}},
    {"type": "Feature", "geometry": {"type": "Polygon", "coordinates": []}, "properties": {"value": 0.5}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [2, 2]}, "properties": {"value": 0.5, "category": "polyline"}},
    {"type": "Feature", "geometry": {"type": "Point", "coordinates": [3, 3]}, "properties": {"name": "no value"}},
    {"type": "Feature", "geometry": null, "properties": null}
  ]
}`

func colorize(t *testing.T, coll *Collection, opts Options) Stats {
	t.Helper()
	c, err := NewColorizer(classify.Default(), opts, nil)
	require.NoError(t, err)
	stats, err := c.Colorize(context.Background(), coll)
	require.NoError(t, err)
	return stats
}

func TestDecode(t *testing.T) {
	coll, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, coll.Features, 8)
	require.Equal(t, "Point", coll.Features[0].GeometryType())
	require.Equal(t, "", coll.Features[7].GeometryType())

	_, err = Decode(strings.NewReader(`{"type": "Feature"}`))
	require.Error(t, err)

	_, err = Decode(strings.NewReader(`{"type": "FeatureCollection", "features": [null]}`))
	require.Error(t, err)

	_, err = Decode(strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestFeatureCategory(t *testing.T) {
	coll, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	want := []classify.Category{
		classify.Marker,
		classify.Marker,
		classify.Polyline,
		classify.Polyline,
		classify.Unknown,
		classify.Polyline,
		classify.Marker,
		classify.Unknown,
	}
	for i, f := range coll.Features {
		require.Equal(t, want[i], f.Category("category"), "feature %d", i)
	}
}

func TestColorize(t *testing.T) {
	coll, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	stats := colorize(t, coll, DefaultOptions())
	require.Equal(t, Stats{Markers: 2, Polylines: 3, Unknown: 1, Skipped: 2}, stats)

	want := []any{
		"blue",
		"darkred",
		scale.Polyline().Sample(0.25).String(),
		"red",
		"grey",
		scale.Polyline().Sample(0.5).String(),
		nil,
		nil,
	}
	for i, f := range coll.Features {
		require.Equal(t, want[i], f.Properties["color"], "feature %d", i)
	}
}

func TestColorizeNormalises(t *testing.T) {
	coll := &Collection{Type: "FeatureCollection", Features: []*Feature{
		{Type: "Feature", Geometry: json.RawMessage(`{"type":"Point"}`), Properties: map[string]any{"value": 50.0}},
		{Type: "Feature", Geometry: json.RawMessage(`{"type":"Point"}`), Properties: map[string]any{"value": 101.0}},
	}}

	opts := DefaultOptions()
	opts.Normaliser = &scale.Normaliser{Min: 0, Max: 100}
	opts.Workers = 2
	colorize(t, coll, opts)

	require.Equal(t, "chartreuse", coll.Features[0].Properties["color"])
	require.Equal(t, "darkred", coll.Features[1].Properties["color"])
}

func TestColorizeCancelled(t *testing.T) {
	coll, err := Decode(strings.NewReader(sample))
	require.NoError(t, err)

	c, err := NewColorizer(classify.Default(), DefaultOptions(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Colorize(ctx, coll)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, coll.Features[0].Properties["color"])
}

func TestNewColorizerValidation(t *testing.T) {
	_, err := NewColorizer(nil, DefaultOptions(), nil)
	require.Error(t, err)

	opts := DefaultOptions()
	opts.ColorProperty = ""
	_, err = NewColorizer(classify.Default(), opts, nil)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.Normaliser = &scale.Normaliser{Min: 1, Max: 1}
	_, err = NewColorizer(classify.Default(), opts, nil)
	require.Error(t, err)
}

func TestLoadAndEncode(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	_, err := w.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(dir, "features.json.gz")
	require.NoError(t, os.WriteFile(path, gz.Bytes(), 0o600))

	coll, err := Load(path)
	require.NoError(t, err)
	colorize(t, coll, DefaultOptions())

	var out bytes.Buffer
	require.NoError(t, coll.Encode(&out))

	again, err := Decode(&out)
	require.NoError(t, err)
	require.Equal(t, "blue", again.Features[0].Properties["color"])
	require.JSONEq(t, `1`, string(again.Features[0].ID))
	require.JSONEq(t, `{"type": "Point", "coordinates": [0, 0]}`, string(again.Features[0].Geometry))
}
