package colour

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a display colour. Colours declared by CSS keyword remember the
// keyword so that they render back exactly as declared ("darkred" rather than
// "rgb(139, 0, 0)").
type Color struct {
	RGB
	Name string
}

// Named returns the colour for a CSS colour keyword.
func Named(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	c, ok := colornames.Map[key]
	if !ok {
		return Color{}, fmt.Errorf("unknown colour name: %q", name)
	}
	return Color{RGB: ToRGB(c), Name: key}, nil
}

// MustNamed is like Named but panics if the keyword is unknown.
// It is intended for package-level colour constants.
func MustNamed(name string) Color {
	c, err := Named(name)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB returns an unnamed colour with the given channels.
func FromRGB(r, g, b uint8) Color {
	return Color{RGB: RGB{R: r, G: g, B: b}}
}

// Parse reads a colour in any of the forms the host surface accepts:
// a CSS keyword, "#rgb", "#rrggbb" or "rgb(r, g, b)".
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "":
		return Color{}, fmt.Errorf("empty colour")
	case strings.HasPrefix(s, "#"):
		cf, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
		}
		return FromColorful(cf), nil
	case strings.HasPrefix(strings.ToLower(s), "rgb("):
		return parseFunctional(s)
	default:
		return Named(s)
	}
}

// parseFunctional parses the "rgb(r, g, b)" notation with integer channels.
func parseFunctional(s string) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, fmt.Errorf("invalid rgb colour %q: missing closing parenthesis", s)
	}
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("invalid rgb colour %q: expected 3 channels, got %d", s, len(parts))
	}

	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, fmt.Errorf("invalid rgb colour %q: %w", s, err)
		}
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("invalid rgb colour %q: channel %d out of range", s, v)
		}
		ch[i] = uint8(v)
	}
	return FromRGB(ch[0], ch[1], ch[2]), nil
}

// String returns the CSS keyword when the colour has one, otherwise "rgb(r, g, b)".
func (c Color) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.RGB.String()
}

// Equal reports whether both colours have the same channels, ignoring names.
func (c Color) Equal(o Color) bool {
	return c.RGB == o.RGB
}

// Colorful converts the colour to go-colorful's float representation.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful colour, rounding each channel to the
// nearest 8-bit value. Out-of-gamut values are clamped first.
func FromColorful(cf colorful.Color) Color {
	r, g, b := cf.Clamped().RGB255()
	return FromRGB(r, g, b)
}

// MarshalText encodes the colour as its CSS string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes any form accepted by Parse.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
