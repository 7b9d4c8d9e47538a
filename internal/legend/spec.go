package legend

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// Side is the end of the gradient bar a boundary glyph sits on.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ShapeWedge is a triangle pointing away from the bar.
const ShapeWedge = "wedge"

// Spec is a declarative description of a legend. It is a plain value:
// two renders of the same scale and layout are equal.
type Spec struct {
	Position  string    `json:"position"`
	Bar       Gradient  `json:"bar"`
	Ticks     []Tick    `json:"ticks"`
	Glyphs    []Glyph   `json:"glyphs"`
	Strip     Strip     `json:"strip"`
	Container Container `json:"container"`
	Layout    Layout    `json:"layout"`
}

// Gradient is a left-to-right colour bar.
type Gradient struct {
	Stops    []GradientStop `json:"stops"`
	WidthPx  int            `json:"width_px"`
	HeightPx int            `json:"height_px"`
}

// GradientStop places a colour at a fraction of the bar width.
type GradientStop struct {
	Offset float64      `json:"offset"`
	Colour colour.Color `json:"colour"`
}

// Tick is a label centred at a fraction of the bar width.
type Tick struct {
	Label  string  `json:"label"`
	Offset float64 `json:"offset"`
}

// Percent returns the tick offset as a percentage of the bar width.
func (t Tick) Percent() float64 {
	return t.Offset * 100
}

// Glyph marks values beyond one end of the bar.
type Glyph struct {
	Shape   string       `json:"shape"`
	Side    Side         `json:"side"`
	Colour  colour.Color `json:"colour"`
	SizePx  int          `json:"size_px"`
	InsetPx int          `json:"inset_px"`
	TopPx   int          `json:"top_px"`
}

// Strip is the secondary two-colour reference gradient with its end labels.
type Strip struct {
	From        colour.Color `json:"from"`
	To          colour.Color `json:"to"`
	StartLabel  string       `json:"start_label"`
	EndLabel    string       `json:"end_label"`
	WidthPx     int          `json:"width_px"`
	HeightPx    int          `json:"height_px"`
	MarginTopPx int          `json:"margin_top_px"`
}

// Container is the box the legend is drawn in.
type Container struct {
	PaddingPx      int          `json:"padding_px"`
	BorderRadiusPx int          `json:"border_radius_px"`
	FontSizeEm     float64      `json:"font_size_em"`
	Background     colour.Color `json:"background"`
	BoxShadow      string       `json:"box_shadow"`
	TextAlign      string       `json:"text_align"`
}

// CSS returns the bar as a CSS linear-gradient value.
func (g Gradient) CSS() string {
	colours := make([]string, len(g.Stops))
	for i, s := range g.Stops {
		colours[i] = s.Colour.String()
	}
	return fmt.Sprintf("linear-gradient(to right, %s)", strings.Join(colours, ", "))
}

// At returns the bar colour at fraction f of its width, interpolating between
// stops the way a CSS linear-gradient does. f is clamped to [0, 1].
func (g Gradient) At(f float64) colour.Color {
	if len(g.Stops) == 0 {
		return colour.Color{}
	}
	if f <= g.Stops[0].Offset {
		return g.Stops[0].Colour
	}
	for i := 1; i < len(g.Stops); i++ {
		lo, hi := g.Stops[i-1], g.Stops[i]
		if f == hi.Offset {
			return hi.Colour
		}
		if f < hi.Offset {
			t := (f - lo.Offset) / (hi.Offset - lo.Offset)
			return colour.FromColorful(lo.Colour.Colorful().BlendRgb(hi.Colour.Colorful(), t))
		}
	}
	return g.Stops[len(g.Stops)-1].Colour
}

// At returns the strip colour at fraction f of its width.
func (s Strip) At(f float64) colour.Color {
	return Gradient{Stops: []GradientStop{{Offset: 0, Colour: s.From}, {Offset: 1, Colour: s.To}}}.At(f)
}

// CSS returns the strip as a CSS linear-gradient value.
func (s Strip) CSS() string {
	return fmt.Sprintf("linear-gradient(to right, %s, %s)", s.From, s.To)
}

// Glyph returns the glyph on the given side.
func (s Spec) Glyph(side Side) (Glyph, bool) {
	for _, g := range s.Glyphs {
		if g.Side == side {
			return g, true
		}
	}
	return Glyph{}, false
}

// Labels returns the tick label texts in order.
func (s Spec) Labels() []string {
	labels := make([]string, len(s.Ticks))
	for i, t := range s.Ticks {
		labels[i] = t.Label
	}
	return labels
}

// Validate checks the structural invariants of a legend.
func (s Spec) Validate() error {
	n := s.Layout.Divisions + 1
	if len(s.Bar.Stops) != n {
		return fmt.Errorf("legend has %d gradient stops, want %d", len(s.Bar.Stops), n)
	}
	if len(s.Ticks) != n {
		return fmt.Errorf("legend has %d ticks, want %d", len(s.Ticks), n)
	}

	for i := range s.Ticks {
		if s.Ticks[i].Offset != s.Bar.Stops[i].Offset {
			return fmt.Errorf("tick %d at %v does not match gradient stop at %v", i, s.Ticks[i].Offset, s.Bar.Stops[i].Offset)
		}
		if s.Ticks[i].Offset < 0 || s.Ticks[i].Offset > 1 {
			return fmt.Errorf("tick %d offset %v outside [0, 1]", i, s.Ticks[i].Offset)
		}
		if i > 0 && s.Ticks[i].Offset <= s.Ticks[i-1].Offset {
			return fmt.Errorf("tick %d offset %v does not follow %v", i, s.Ticks[i].Offset, s.Ticks[i-1].Offset)
		}
	}

	if len(s.Glyphs) != 2 {
		return fmt.Errorf("legend has %d boundary glyphs, want 2", len(s.Glyphs))
	}
	if _, ok := s.Glyph(SideLeft); !ok {
		return fmt.Errorf("legend is missing the left boundary glyph")
	}
	if _, ok := s.Glyph(SideRight); !ok {
		return fmt.Errorf("legend is missing the right boundary glyph")
	}
	return nil
}

// ToJSON converts the legend to indented JSON.
func (s Spec) ToJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
