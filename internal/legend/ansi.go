package legend

import (
	"strings"

	"github.com/jmylchreest/mapramp/internal/colour"
)

const (
	leftWedge  = "◀"
	rightWedge = "▶"
)

// ANSI renders the legend for a terminal, width cells wide. Colour escapes
// are omitted when colour.DisableColourOutput is set.
func ANSI(spec Spec, width int) string {
	if width < len(spec.Ticks) {
		width = len(spec.Ticks)
	}

	var b strings.Builder

	left, _ := spec.Glyph(SideLeft)
	right, _ := spec.Glyph(SideRight)
	b.WriteString(colour.ColourString(left.Colour.RGB, leftWedge))
	b.WriteString(cells(width, spec.Bar.At))
	b.WriteString(colour.ColourString(right.Colour.RGB, rightWedge))
	b.WriteString("\n")

	// One column of margin on each side for the wedges.
	b.WriteString(tickRow(spec.Ticks, width+2, 1))
	b.WriteString("\n\n")

	b.WriteString(" ")
	b.WriteString(cells(width, spec.Strip.At))
	b.WriteString("\n")

	start, end := spec.Strip.StartLabel, spec.Strip.EndLabel
	gap := max(width-len(start)-len(end), 1)
	b.WriteString(" " + start + strings.Repeat(" ", gap) + end + "\n")

	return b.String()
}

// cells renders width solid cells coloured by at(fraction).
func cells(width int, at func(float64) colour.Color) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		f := 0.0
		if width > 1 {
			f = float64(x) / float64(width-1)
		}
		b.WriteString(colour.ColourPreview(at(f).RGB, 1))
	}
	return b.String()
}

// tickRow centres each label under its offset. A label that would overlap
// the previous one is dropped rather than printed over it.
func tickRow(ticks []Tick, rowWidth, margin int) string {
	row := []rune(strings.Repeat(" ", rowWidth))
	span := rowWidth - 2*margin - 1
	next := 0

	for _, t := range ticks {
		label := []rune(t.Label)
		if len(label) > rowWidth {
			continue
		}
		centre := margin + int(t.Offset*float64(span)+0.5)
		start := min(max(centre-len(label)/2, 0), rowWidth-len(label))
		if start < next {
			continue
		}
		copy(row[start:], label)
		next = start + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}
