package scale

import (
	"fmt"
	"sort"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// Names of the built-in scales.
const (
	MarkerName   = "marker"
	PolylineName = "polyline"
)

// MarkerDivisions is the number of equal segments in the marker scale.
const MarkerDivisions = 6

// markerColours runs cool to warm: low severity is blue, worst case is red.
var markerColours = []string{"blue", "teal", "green", "chartreuse", "yellow", "orange", "red"}

var polylineColours = []string{"green", "red"}

var (
	marker   = MustNew(evenStops(markerColours), WithName(MarkerName), WithDomain(0, 1))
	polyline = MustNew(evenStops(polylineColours), WithName(PolylineName), WithDomain(0, 1))

	builtin = map[string]*Scale{
		MarkerName:   marker,
		PolylineName: polyline,
	}
)

// evenStops spreads the named colours evenly over [0, 1].
func evenStops(names []string) []Stop {
	positions := Fractions(len(names) - 1)
	stops := make([]Stop, len(names))
	for i, name := range names {
		stops[i] = Stop{Position: positions[i], Colour: colour.MustNamed(name)}
	}
	return stops
}

// Marker returns the seven-stop severity scale used to colour point markers.
func Marker() *Scale {
	return marker
}

// Polyline returns the two-stop scale used to colour connecting lines.
func Polyline() *Scale {
	return polyline
}

// Lookup returns a built-in scale by name.
func Lookup(name string) (*Scale, error) {
	s, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown scale: %s (valid scales: %v)", name, Names())
	}
	return s, nil
}

// Names returns the names of the built-in scales in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
