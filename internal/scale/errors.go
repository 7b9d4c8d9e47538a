package scale

import (
	"errors"
	"fmt"
)

// ErrInvalidScale is matched by every error returned for a malformed stop list.
var ErrInvalidScale = errors.New("invalid colour scale")

// InvalidScaleError describes why a stop list was rejected.
// Index is the offending stop, or -1 when the list as a whole is at fault.
type InvalidScaleError struct {
	Scale  string
	Index  int
	Reason string
}

func (e *InvalidScaleError) Error() string {
	name := e.Scale
	if name == "" {
		name = "unnamed"
	}
	if e.Index < 0 {
		return fmt.Sprintf("%s %q: %s", ErrInvalidScale, name, e.Reason)
	}
	return fmt.Sprintf("%s %q: stop %d: %s", ErrInvalidScale, name, e.Index, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidScale) match.
func (e *InvalidScaleError) Is(target error) bool {
	return target == ErrInvalidScale
}
