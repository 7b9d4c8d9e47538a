package scale

import (
	"fmt"
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Normaliser maps a raw metric onto the unit ratio that the built-in scales expect.
// Values outside [Min, Max] map outside [0, 1] unless Clamp is set, so that
// overflow handling downstream still sees them.
type Normaliser struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Clamp bool    `json:"clamp"`
}

// Validate checks that the bounds are finite and ordered.
func (n Normaliser) Validate() error {
	if math.IsNaN(n.Min) || math.IsInf(n.Min, 0) || math.IsNaN(n.Max) || math.IsInf(n.Max, 0) {
		return fmt.Errorf("normaliser bounds must be finite, got [%v, %v]", n.Min, n.Max)
	}
	if n.Max <= n.Min {
		return fmt.Errorf("normaliser max (%v) must be greater than min (%v)", n.Max, n.Min)
	}
	return nil
}

// Normalise maps v linearly so that Min becomes 0 and Max becomes 1.
func (n Normaliser) Normalise(v float64) float64 {
	return moremath.Linear{Min: n.Min, Max: n.Max, Clamp: n.Clamp}.Map(v)
}
