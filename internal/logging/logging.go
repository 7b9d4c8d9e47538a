// Package logging builds the hclog loggers used across mapramp.
package logging

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "mapramp"

// New returns the root logger. Verbose loggers write debug output to w
// (stderr when w is nil); otherwise logging is switched off.
func New(verbose bool, w io.Writer) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   Name,
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}
	if w == nil {
		w = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: w,
		Level:  hclog.Debug,
	})
}

// OrNull returns l, or a logger that discards everything when l is nil.
func OrNull(l hclog.Logger) hclog.Logger {
	if l == nil {
		return hclog.NewNullLogger()
	}
	return l
}
