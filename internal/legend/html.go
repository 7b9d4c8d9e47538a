package legend

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

// legendTemplate mirrors the node a map control returns from its add hook.
const legendTemplate = `<div class="legend" style="{{.Container}}">
<div id="colorBar" style="{{.Bar}}"></div>
{{range .Glyphs}}<div class="legend-glyph" style="{{.}}"></div>
{{end}}<div id="legendMarker" style="{{.LabelRow}}">
{{range .Ticks}}<p class="legend-tick" style="{{.Style}}">{{.Label}}</p>
{{end}}</div>
<div class="legend-strip" style="{{.Strip}}"></div>
<div class="legend-strip-labels" style="{{.StripLabels}}"><span>{{.Start}}</span><span>{{.End}}</span></div>
</div>
`

var htmlTemplate = template.Must(template.New("legend").Parse(legendTemplate))

type htmlTick struct {
	Label string
	Style safehtml.Style
}

type htmlData struct {
	Container   safehtml.Style
	Bar         safehtml.Style
	Glyphs      []safehtml.Style
	LabelRow    safehtml.Style
	Ticks       []htmlTick
	Strip       safehtml.Style
	StripLabels safehtml.Style
	Start       string
	End         string
}

// declarations accumulates CSS declarations into a style attribute value.
type declarations []string

func (d *declarations) add(property, value string) {
	*d = append(*d, property+": "+value+";")
}

func (d declarations) style() safehtml.Style {
	// Every value comes from a Spec: colours are formatted by the colour
	// package and sizes are numbers, so no caller text reaches the CSS.
	return uncheckedconversions.StyleFromStringKnownToSatisfyTypeContract(strings.Join(d, " "))
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func em(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "em"
}

func percent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// HTML renders the legend as a self-contained HTML fragment.
func HTML(spec Spec) (safehtml.HTML, error) {
	if err := spec.Validate(); err != nil {
		return safehtml.HTML{}, fmt.Errorf("invalid legend: %w", err)
	}

	data := htmlData{
		Container:   containerStyle(spec.Container),
		Bar:         barStyle(spec.Bar),
		LabelRow:    labelRowStyle(spec.Layout),
		Strip:       stripStyle(spec.Strip),
		StripLabels: stripLabelStyle(spec.Strip, spec.Layout),
		Start:       spec.Strip.StartLabel,
		End:         spec.Strip.EndLabel,
	}
	for _, g := range spec.Glyphs {
		data.Glyphs = append(data.Glyphs, glyphStyle(g))
	}
	for _, t := range spec.Ticks {
		data.Ticks = append(data.Ticks, htmlTick{Label: t.Label, Style: tickStyle(t, spec.Layout)})
	}

	out, err := htmlTemplate.ExecuteToHTML(data)
	if err != nil {
		return safehtml.HTML{}, fmt.Errorf("failed to render legend HTML: %w", err)
	}
	return out, nil
}

func containerStyle(c Container) safehtml.Style {
	var d declarations
	d.add("padding", px(c.PaddingPx))
	d.add("background-color", c.Background.String())
	d.add("border-radius", px(c.BorderRadiusPx))
	d.add("font-size", em(c.FontSizeEm))
	d.add("box-shadow", c.BoxShadow)
	d.add("text-align", c.TextAlign)
	return d.style()
}

func barStyle(g Gradient) safehtml.Style {
	var d declarations
	d.add("background-image", g.CSS())
	d.add("width", px(g.WidthPx))
	d.add("height", px(g.HeightPx))
	d.add("position", "relative")
	return d.style()
}

// glyphStyle draws a wedge with the CSS border-triangle technique: a zero
// width box whose coloured border faces the bar.
func glyphStyle(g Glyph) safehtml.Style {
	var d declarations
	d.add("position", "absolute")
	d.add("top", px(g.TopPx))
	d.add(string(g.Side), px(g.InsetPx))
	d.add("width", "0")
	d.add("height", "0")
	d.add("border-top", px(g.SizePx)+" solid transparent")
	d.add("border-bottom", px(g.SizePx)+" solid transparent")
	facing := "border-right"
	if g.Side == SideRight {
		facing = "border-left"
	}
	d.add(facing, px(g.SizePx)+" solid "+g.Colour.String())
	return d.style()
}

func labelRowStyle(l Layout) safehtml.Style {
	var d declarations
	d.add("width", px(l.LabelRowWidthPx))
	d.add("text-align", "center")
	d.add("font-size", px(l.LabelFontSizePx))
	d.add("position", "relative")
	d.add("margin-top", px(l.LabelMarginTopPx))
	d.add("padding", "0 "+px(l.LabelRowPaddingPx))
	return d.style()
}

func tickStyle(t Tick, l Layout) safehtml.Style {
	var d declarations
	d.add("display", "inline-block")
	d.add("text-align", "center")
	d.add("position", "absolute")
	d.add("left", percent(t.Percent()))
	d.add("width", percent(t.Percent()))
	d.add("transform", "translateX(-50%)")
	d.add("margin-bottom", px(10))
	d.add("font-size", em(l.TickFontSizeEm))
	return d.style()
}

func stripStyle(s Strip) safehtml.Style {
	var d declarations
	d.add("background-image", s.CSS())
	d.add("width", px(s.WidthPx))
	d.add("height", px(s.HeightPx))
	d.add("margin-top", px(s.MarginTopPx))
	return d.style()
}

func stripLabelStyle(s Strip, l Layout) safehtml.Style {
	var d declarations
	d.add("display", "flex")
	d.add("justify-content", "space-between")
	d.add("width", px(s.WidthPx))
	d.add("margin-top", px(l.StripLabelMarginTopPx))
	return d.style()
}
