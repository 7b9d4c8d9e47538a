// Package legend builds the legend control that explains the marker colour scale.
//
// Render produces a Spec: a gradient bar sampled from the scale, tick labels
// placed at the sampled fractions, boundary glyphs in the classifier's
// fallback and overflow colours, and a secondary two-colour strip for lines.
// Encoders in this package turn a Spec into JSON, an HTML control node, a PNG
// or a terminal preview.
package legend

import (
	"fmt"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/colour"
	"github.com/jmylchreest/mapramp/internal/scale"
)

// Reference colours and labels of the secondary strip. The strip is drawn
// from these fixed colours, not sampled from the polyline scale.
var (
	StripFrom = colour.FromRGB(0, 255, 0)
	StripTo   = colour.FromRGB(255, 0, 0)
)

const (
	StripStartLabel = "Start"
	StripEndLabel   = "End"
)

// Renderer produces legends for one scale and layout.
// It holds no mutable state and is safe for concurrent use.
type Renderer struct {
	scale  *scale.Scale
	layout Layout
}

// NewRenderer returns a renderer for s using layout.
func NewRenderer(s *scale.Scale, layout Layout) (*Renderer, error) {
	if s == nil {
		return nil, fmt.Errorf("legend requires a colour scale")
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid legend layout: %w", err)
	}
	return &Renderer{scale: s, layout: layout}, nil
}

// Default returns a renderer for the marker scale with the stock layout.
func Default() *Renderer {
	return &Renderer{scale: scale.Marker(), layout: DefaultLayout()}
}

// Layout returns the renderer's layout.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render builds the legend.
func (r *Renderer) Render() Spec {
	l := r.layout
	lo, hi := r.scale.Domain()

	// Sampling and label placement share one list of fractions so the labels
	// stay under their colours whatever the number of divisions.
	fractions := scale.Fractions(l.Divisions)
	stops := make([]GradientStop, len(fractions))
	ticks := make([]Tick, len(fractions))
	for i, f := range fractions {
		v := lo + f*(hi-lo)
		stops[i] = GradientStop{Offset: f, Colour: r.scale.Sample(v)}
		ticks[i] = Tick{Label: fixedPoint(v, l.Precision), Offset: f}
	}

	glyphs := []Glyph{
		{
			Shape:   ShapeWedge,
			Side:    SideLeft,
			Colour:  classify.Fallback,
			SizePx:  l.GlyphSizePx,
			InsetPx: l.GlyphInsetPx,
			TopPx:   l.GlyphTopPx,
		},
		{
			Shape:   ShapeWedge,
			Side:    SideRight,
			Colour:  classify.OverflowMarker,
			SizePx:  l.GlyphSizePx,
			InsetPx: l.GlyphInsetPx,
			TopPx:   l.GlyphTopPx,
		},
	}

	return Spec{
		Position: l.Position,
		Bar: Gradient{
			Stops:    stops,
			WidthPx:  l.BarWidthPx,
			HeightPx: l.BarHeightPx,
		},
		Ticks:  ticks,
		Glyphs: glyphs,
		Strip: Strip{
			From:        StripFrom,
			To:          StripTo,
			StartLabel:  StripStartLabel,
			EndLabel:    StripEndLabel,
			WidthPx:     l.StripWidthPx,
			HeightPx:    l.StripHeightPx,
			MarginTopPx: l.StripMarginTopPx,
		},
		Container: Container{
			PaddingPx:      l.PaddingPx,
			BorderRadiusPx: l.BorderRadiusPx,
			FontSizeEm:     l.FontSizeEm,
			Background:     l.Background,
			BoxShadow:      l.BoxShadow,
			TextAlign:      l.TextAlign,
		},
		Layout: l,
	}
}
