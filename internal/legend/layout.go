package legend

import (
	"fmt"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// Control positions understood by map surfaces.
const (
	PositionTopLeft     = "topleft"
	PositionTopRight    = "topright"
	PositionBottomLeft  = "bottomleft"
	PositionBottomRight = "bottomright"
)

// Layout holds the presentation constants of the legend. Sizes are in CSS
// pixels unless the field name says otherwise.
type Layout struct {
	// Position is the map corner the legend control docks to.
	Position string `json:"position"`

	// Divisions is the number of equal segments the gradient is sampled in.
	// The legend has Divisions+1 gradient stops and tick labels.
	Divisions int `json:"divisions"`

	// Precision is the number of decimals in tick labels.
	Precision int `json:"precision"`

	BarWidthPx  int `json:"bar_width_px"`
	BarHeightPx int `json:"bar_height_px"`

	LabelRowWidthPx   int     `json:"label_row_width_px"`
	LabelRowPaddingPx int     `json:"label_row_padding_px"`
	LabelMarginTopPx  int     `json:"label_margin_top_px"`
	LabelFontSizePx   int     `json:"label_font_size_px"`
	TickFontSizeEm    float64 `json:"tick_font_size_em"`

	GlyphSizePx  int `json:"glyph_size_px"`
	GlyphInsetPx int `json:"glyph_inset_px"`
	GlyphTopPx   int `json:"glyph_top_px"`

	StripWidthPx          int `json:"strip_width_px"`
	StripHeightPx         int `json:"strip_height_px"`
	StripMarginTopPx      int `json:"strip_margin_top_px"`
	StripLabelMarginTopPx int `json:"strip_label_margin_top_px"`

	PaddingPx      int          `json:"padding_px"`
	BorderRadiusPx int          `json:"border_radius_px"`
	FontSizeEm     float64      `json:"font_size_em"`
	Background     colour.Color `json:"background"`
	BoxShadow      string       `json:"box_shadow"`
	TextAlign      string       `json:"text_align"`
}

// DefaultLayout returns the stock legend layout.
func DefaultLayout() Layout {
	return Layout{
		Position:  PositionBottomLeft,
		Divisions: 6,
		Precision: 1,

		BarWidthPx:  290,
		BarHeightPx: 10,

		LabelRowWidthPx:   300,
		LabelRowPaddingPx: 20,
		LabelMarginTopPx:  5,
		LabelFontSizePx:   12,
		TickFontSizeEm:    0.9,

		GlyphSizePx:  5,
		GlyphInsetPx: 10,
		GlyphTopPx:   15,

		StripWidthPx:          310,
		StripHeightPx:         10,
		StripMarginTopPx:      25,
		StripLabelMarginTopPx: 5,

		PaddingPx:      15,
		BorderRadiusPx: 5,
		FontSizeEm:     0.8,
		Background:     colour.MustNamed("white"),
		BoxShadow:      "0 0 5px rgba(0, 0, 0, 0.5)",
		TextAlign:      "center",
	}
}

// ValidPositions returns the accepted control positions.
func ValidPositions() []string {
	return []string{PositionTopLeft, PositionTopRight, PositionBottomLeft, PositionBottomRight}
}

// Validate checks that the layout can produce a legend.
func (l Layout) Validate() error {
	valid := false
	for _, p := range ValidPositions() {
		if l.Position == p {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid legend position: %q (valid: %v)", l.Position, ValidPositions())
	}

	if l.Divisions < 1 {
		return fmt.Errorf("divisions must be at least 1, got %d", l.Divisions)
	}
	if l.Precision < 0 || l.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", l.Precision)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"bar width", l.BarWidthPx},
		{"bar height", l.BarHeightPx},
		{"label row width", l.LabelRowWidthPx},
		{"label font size", l.LabelFontSizePx},
		{"glyph size", l.GlyphSizePx},
		{"strip width", l.StripWidthPx},
		{"strip height", l.StripHeightPx},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"label row padding", l.LabelRowPaddingPx},
		{"label margin", l.LabelMarginTopPx},
		{"glyph inset", l.GlyphInsetPx},
		{"glyph top", l.GlyphTopPx},
		{"strip margin", l.StripMarginTopPx},
		{"strip label margin", l.StripLabelMarginTopPx},
		{"padding", l.PaddingPx},
		{"border radius", l.BorderRadiusPx},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", p.name, p.value)
		}
	}

	if l.FontSizeEm <= 0 || l.TickFontSizeEm <= 0 {
		return fmt.Errorf("font sizes must be positive")
	}
	return nil
}
