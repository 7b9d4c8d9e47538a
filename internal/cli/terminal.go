package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/jmylchreest/mapramp/internal/colour"
)

// Colour output modes.
const (
	colourAuto   = "auto"
	colourAlways = "always"
	colourNever  = "never"
)

// defaultPreviewWidth is used when the output is not a terminal.
const defaultPreviewWidth = 40

// terminalFd returns the file descriptor of w when it is a terminal.
func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd()) // #nosec G115 - File descriptors fit in int
	return fd, term.IsTerminal(fd)
}

// configureColour enables or disables ANSI colour for the run. In auto mode
// colour is only written to terminals.
func configureColour(mode string, w io.Writer) error {
	switch mode {
	case colourAlways:
		colour.DisableColourOutput = false
	case colourNever:
		colour.DisableColourOutput = true
	case colourAuto, "":
		_, isTerm := terminalFd(w)
		colour.DisableColourOutput = !isTerm
	default:
		return fmt.Errorf("invalid colour mode: %s (valid: %s, %s, %s)", mode, colourAuto, colourAlways, colourNever)
	}
	return nil
}

// previewWidth returns the number of cells a preview may use on w, capped at limit.
func previewWidth(w io.Writer, limit int) int {
	fd, isTerm := terminalFd(w)
	if !isTerm {
		return min(defaultPreviewWidth, limit)
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return min(defaultPreviewWidth, limit)
	}
	// Leave room for the boundary glyphs and a margin.
	return min(width-4, limit)
}
