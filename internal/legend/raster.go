package legend

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// geometry holds the pixel placement of each legend part in a raster.
type geometry struct {
	width, height int

	bar        image.Rectangle
	labelTop   int
	strip      image.Rectangle
	stripLabel int

	lineHeight int
}

// layoutRaster places the legend parts top to bottom inside the container padding.
func layoutRaster(spec Spec) geometry {
	l := spec.Layout
	face := basicfont.Face7x13
	lineHeight := face.Height

	glyphSpan := l.GlyphInsetPx + l.GlyphSizePx
	contentW := max(spec.Strip.WidthPx, spec.Bar.WidthPx+2*glyphSpan)
	pad := spec.Container.PaddingPx

	barX := pad + (contentW-spec.Bar.WidthPx)/2
	bar := image.Rect(barX, pad, barX+spec.Bar.WidthPx, pad+spec.Bar.HeightPx)

	labelTop := bar.Max.Y + l.LabelMarginTopPx
	// Labels are positioned absolutely in the HTML control, so the strip
	// margin is measured from the top of the label row.
	stripTop := max(labelTop+l.StripMarginTopPx, labelTop+lineHeight)
	stripX := pad + (contentW-spec.Strip.WidthPx)/2
	strip := image.Rect(stripX, stripTop, stripX+spec.Strip.WidthPx, stripTop+spec.Strip.HeightPx)

	stripLabel := strip.Max.Y + l.StripLabelMarginTopPx

	return geometry{
		width:      contentW + 2*pad,
		height:     stripLabel + lineHeight + pad,
		bar:        bar,
		labelTop:   labelTop,
		strip:      strip,
		stripLabel: stripLabel,
		lineHeight: lineHeight,
	}
}

// Raster draws the legend into a new image.
func Raster(spec Spec) (*image.RGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid legend: %w", err)
	}

	g := layoutRaster(spec)
	img := image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	bg := spec.Container.Background
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	fillGradient(img, g.bar, spec.Bar.At)
	fillGradient(img, g.strip, spec.Strip.At)

	mid := g.bar.Min.Y + spec.Bar.HeightPx/2
	for _, gl := range spec.Glyphs {
		drawWedge(img, g.bar, mid, gl)
	}

	ink := colour.ContrastText(bg.RGB)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
	}
	baseline := func(top int) int { return top + basicfont.Face7x13.Ascent }

	for _, t := range spec.Ticks {
		cx := g.bar.Min.X + int(t.Offset*float64(spec.Bar.WidthPx-1)+0.5)
		drawText(d, t.Label, cx-d.MeasureString(t.Label).Round()/2, baseline(g.labelTop))
	}

	drawText(d, spec.Strip.StartLabel, g.strip.Min.X, baseline(g.stripLabel))
	endW := d.MeasureString(spec.Strip.EndLabel).Round()
	drawText(d, spec.Strip.EndLabel, g.strip.Max.X-endW, baseline(g.stripLabel))

	return img, nil
}

// PNG encodes the rastered legend to w.
func PNG(w io.Writer, spec Spec) error {
	img, err := Raster(spec)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode legend PNG: %w", err)
	}
	return nil
}

// fillGradient paints r column by column with at(fraction).
func fillGradient(img *image.RGBA, r image.Rectangle, at func(float64) colour.Color) {
	w := r.Dx()
	for x := 0; x < w; x++ {
		f := 0.0
		if w > 1 {
			f = float64(x) / float64(w-1)
		}
		col := image.Rect(r.Min.X+x, r.Min.Y, r.Min.X+x+1, r.Max.Y)
		draw.Draw(img, col, image.NewUniform(at(f)), image.Point{}, draw.Src)
	}
}

// drawWedge draws a triangle pointing away from the bar, its base one inset
// away from the bar edge and centred on row mid.
func drawWedge(img *image.RGBA, bar image.Rectangle, mid int, g Glyph) {
	c := color.RGBA{R: g.Colour.R, G: g.Colour.G, B: g.Colour.B, A: 255}
	for k := 0; k < g.SizePx; k++ {
		var x int
		if g.Side == SideLeft {
			x = bar.Min.X - g.InsetPx - 1 - k
		} else {
			x = bar.Max.X + g.InsetPx + k
		}
		half := g.SizePx - k
		for y := mid - half; y <= mid+half; y++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawText(d *font.Drawer, s string, x, y int) {
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}
