package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/control"
	"github.com/jmylchreest/mapramp/internal/legend"
	"github.com/jmylchreest/mapramp/internal/scale"
)

// Legend output formats.
const (
	formatJSON = "json"
	formatHTML = "html"
	formatPNG  = "png"
	formatANSI = "ansi"
)

var (
	// Legend command flags
	legendFormat string
	legendOutput string
	legendMount  bool
	legendLayout layoutFlags
)

// legendCmd represents the legend command
var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Render the marker colour legend",
	Long: `Render the legend that explains the marker colour scale: a gradient bar
with value labels, a grey wedge for unclassified features, a darkred wedge for
values above the scale, and a green to red strip for lines.

Formats:
  ansi  - terminal preview (default)
  json  - declarative legend description
  html  - map control node
  png   - raster image (requires --output)

Examples:
  mapramp legend
  mapramp legend --format html --output legend.html
  mapramp legend --format png --output legend.png --bar-width 400
  mapramp legend --mount -v`,
	Args: cobra.NoArgs,
	RunE: runLegend,
}

func init() {
	legendCmd.Flags().StringVarP(&legendFormat, "format", "f", formatANSI, "output format (ansi, json, html, png)")
	legendCmd.Flags().StringVarP(&legendOutput, "output", "o", "", "write to file instead of stdout")
	legendCmd.Flags().BoolVar(&legendMount, "mount", false, "attach the legend to an in-memory map surface and report the control")
	registerLayoutFlags(legendCmd.Flags(), &legendLayout)
}

// runLegend executes the legend command.
func runLegend(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := legendLayout.apply(cmd.Flags(), cfg); err != nil {
		return err
	}

	logger := newLogger(cmd)
	renderer, err := legend.NewRenderer(scale.Marker(), cfg.Legend)
	if err != nil {
		return err
	}

	if legendMount {
		return mountLegend(cmd.OutOrStdout(), renderer, logger)
	}

	spec := renderer.Render()
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("invalid legend: %w", err)
	}
	logger.Debug("rendered legend", "format", legendFormat, "ticks", len(spec.Ticks))

	var buf bytes.Buffer
	switch legendFormat {
	case formatJSON:
		data, err := spec.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to encode legend: %w", err)
		}
		buf.Write(data)
		buf.WriteString("\n")
	case formatHTML:
		html, err := legend.HTML(spec)
		if err != nil {
			return err
		}
		buf.WriteString(html.String())
	case formatPNG:
		if legendOutput == "" {
			return fmt.Errorf("png output requires --output")
		}
		if err := legend.PNG(&buf, spec); err != nil {
			return err
		}
	case formatANSI:
		buf.WriteString(legend.ANSI(spec, previewWidth(cmd.OutOrStdout(), spec.Bar.WidthPx/8)))
	default:
		return fmt.Errorf("invalid format: %s (valid: %s, %s, %s, %s)", legendFormat, formatANSI, formatJSON, formatHTML, formatPNG)
	}

	return writeOutput(cmd.OutOrStdout(), legendOutput, buf.Bytes())
}

// mountLegend attaches the legend to an in-memory surface, reports the
// control and unmounts it again.
func mountLegend(w io.Writer, r *legend.Renderer, logger hclog.Logger) error {
	surface := control.NewMemorySurface()
	ctl, err := control.NewLegendControl(r, logger)
	if err != nil {
		return err
	}
	m := control.NewMount(surface, logger)

	h, err := m.Attach(ctl)
	if err != nil {
		return fmt.Errorf("failed to mount legend: %w", err)
	}
	entries := surface.Controls()
	fmt.Fprintf(w, "✓ Mounted legend %s at %s (%d bytes of HTML)\n", h.ID, h.Position, len(entries[0].Node.String()))

	if err := m.Unmount(); err != nil {
		return fmt.Errorf("failed to unmount legend: %w", err)
	}
	fmt.Fprintf(w, "✓ Unmounted, %d controls remain\n", surface.Len())
	return nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 - Output files are meant to be shared
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
