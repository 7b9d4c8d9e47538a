// Package scale builds piecewise-linear colour scales and samples colours from them.
//
// A Scale is an ordered list of stops, each pairing a domain position with a
// colour. Sampling interpolates the two bracketing stops channel by channel in
// RGB. The engine has no notion of overflow: callers decide what happens to
// values outside the declared domain before sampling.
package scale

import (
	"fmt"
	"math"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// Stop anchors a colour at a domain position.
type Stop struct {
	Position float64      `json:"position"`
	Colour   colour.Color `json:"colour"`
}

// Undefined is the colour sampled at a NaN or infinite position. Browsers
// format the resulting non-numeric channels as 0.
var Undefined = colour.FromRGB(0, 0, 0)

// Scale is an immutable, validated list of stops.
// It is safe for concurrent use.
type Scale struct {
	name  string
	stops []Stop
}

type options struct {
	name      string
	hasDomain bool
	min, max  float64
}

// Option configures scale construction.
type Option func(*options)

// WithName labels the scale; the name appears in errors and listings.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithDomain restricts every stop position to [min, max].
func WithDomain(min, max float64) Option {
	return func(o *options) {
		o.hasDomain = true
		o.min, o.max = min, max
	}
}

// New validates stops and returns a scale over them.
// The stop slice is copied.
func New(stops []Stop, opts ...Option) (*Scale, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(stops) < 2 {
		return nil, &InvalidScaleError{Scale: o.name, Index: -1, Reason: fmt.Sprintf("need at least 2 stops, got %d", len(stops))}
	}

	for i, s := range stops {
		if math.IsNaN(s.Position) || math.IsInf(s.Position, 0) {
			return nil, &InvalidScaleError{Scale: o.name, Index: i, Reason: fmt.Sprintf("position %v is not finite", s.Position)}
		}
		if o.hasDomain && (s.Position < o.min || s.Position > o.max) {
			return nil, &InvalidScaleError{Scale: o.name, Index: i, Reason: fmt.Sprintf("position %v outside [%v, %v]", s.Position, o.min, o.max)}
		}
		if i > 0 && s.Position <= stops[i-1].Position {
			return nil, &InvalidScaleError{Scale: o.name, Index: i, Reason: fmt.Sprintf("position %v does not follow %v", s.Position, stops[i-1].Position)}
		}
	}

	return &Scale{
		name:  o.name,
		stops: append([]Stop(nil), stops...),
	}, nil
}

// MustNew is like New but panics on error.
// Use it only for scales defined in code, where a bad stop list is a programming defect.
func MustNew(stops []Stop, opts ...Option) *Scale {
	s, err := New(stops, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the scale's name.
func (s *Scale) Name() string {
	return s.name
}

// Len returns the number of stops.
func (s *Scale) Len() int {
	return len(s.stops)
}

// Stops returns a copy of the scale's stops.
func (s *Scale) Stops() []Stop {
	return append([]Stop(nil), s.stops...)
}

// Domain returns the first and last stop positions.
func (s *Scale) Domain() (lo, hi float64) {
	return s.stops[0].Position, s.stops[len(s.stops)-1].Position
}

// Sample returns the colour at position p.
//
// Inside the domain the result is the RGB interpolation of the two bracketing
// stops, rounded to 8 bits per channel; at a stop position it is that stop's
// colour exactly. Outside the domain the nearest segment is extrapolated and
// each channel is clamped to [0, 255]. NaN and infinite positions have no
// colour and return Undefined.
func (s *Scale) Sample(p float64) colour.Color {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Undefined
	}
	i := s.segment(p)
	lo, hi := s.stops[i], s.stops[i+1]

	switch p {
	case lo.Position:
		return lo.Colour
	case hi.Position:
		return hi.Colour
	}

	t := (p - lo.Position) / (hi.Position - lo.Position)
	return colour.FromColorful(lo.Colour.Colorful().BlendRgb(hi.Colour.Colorful(), t))
}

// segment returns the index of the stop starting the segment used for p.
// Positions outside the domain use the first or last segment.
func (s *Scale) segment(p float64) int {
	last := len(s.stops) - 2
	for i := 0; i < last; i++ {
		if p < s.stops[i+1].Position {
			return i
		}
	}
	return last
}

// Fractions returns n+1 evenly spaced positions from 0 to 1 inclusive.
// Position i is computed as i/n so that the endpoints are exact.
func Fractions(n int) []float64 {
	if n < 1 {
		return nil
	}
	fs := make([]float64, n+1)
	for i := range fs {
		fs[i] = float64(i) / float64(n)
	}
	return fs
}
