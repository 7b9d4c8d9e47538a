// Package classify turns a numeric value and a feature category into a display colour.
//
// Each category picks a scale and an overflow colour for values above the
// scale's domain. Categories that are not recognised fall back to a neutral
// grey instead of failing, so a single odd feature never aborts a map render.
package classify

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jmylchreest/mapramp/internal/colour"
	"github.com/jmylchreest/mapramp/internal/scale"
)

// Category is the semantic kind of a rendered feature.
type Category string

const (
	// Marker is a point feature.
	Marker Category = "marker"

	// Polyline is a line connecting points.
	Polyline Category = "polyline"

	// Unknown is any category this package does not recognise.
	Unknown Category = "unknown"
)

// ParseCategory maps a token to a Category. It never fails: anything
// unrecognised becomes Unknown.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case Marker:
		return Marker
	case Polyline:
		return Polyline
	default:
		return Unknown
	}
}

// String returns the category token.
func (c Category) String() string {
	return string(c)
}

// Overflow and fallback colours. The legend's boundary glyphs use the same values.
var (
	// OverflowMarker is returned for marker values above 1.
	OverflowMarker = colour.MustNamed("darkred")

	// OverflowPolyline is returned for polyline values above 1.
	OverflowPolyline = colour.MustNamed("red")

	// Fallback is returned for unrecognised categories.
	Fallback = colour.MustNamed("grey")
)

// Request is one value to classify.
type Request struct {
	Value    float64
	Category Category
}

// Classifier maps values to colours. It holds only immutable scales and is
// safe for concurrent use.
type Classifier struct {
	marker   *scale.Scale
	polyline *scale.Scale
}

// New returns a classifier over the given scales.
func New(marker, polyline *scale.Scale) (*Classifier, error) {
	if marker == nil || polyline == nil {
		return nil, fmt.Errorf("classifier requires both a marker and a polyline scale")
	}
	return &Classifier{marker: marker, polyline: polyline}, nil
}

// Default returns a classifier over the built-in scales.
func Default() *Classifier {
	return &Classifier{marker: scale.Marker(), polyline: scale.Polyline()}
}

// Classify returns the colour for value under category c.
//
// Values at or below 1 are sampled from the category's scale; there is no
// separate branch for values below 0. NaN fails the "at or below 1" test and
// is therefore treated as overflow.
func (cl *Classifier) Classify(value float64, c Category) colour.Color {
	switch c {
	case Marker:
		if value <= 1 {
			return cl.marker.Sample(value)
		}
		return OverflowMarker
	case Polyline:
		if value <= 1 {
			return cl.polyline.Sample(value)
		}
		return OverflowPolyline
	default:
		return Fallback
	}
}

// ClassifyAll classifies reqs using up to workers goroutines. Results are in
// request order. It stops early and returns the context error if ctx is
// cancelled.
func (cl *Classifier) ClassifyAll(ctx context.Context, reqs []Request, workers int) ([]colour.Color, error) {
	if workers < 1 {
		workers = 1
	}

	out := make([]colour.Color, len(reqs))
	chunk := (len(reqs) + workers - 1) / workers
	if chunk == 0 {
		return out, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(reqs); start += chunk {
		start := start
		end := min(start+chunk, len(reqs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[i] = cl.Classify(reqs[i].Value, reqs[i].Category)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to classify values: %w", err)
	}
	return out, nil
}
