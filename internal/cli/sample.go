package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/colour"
	"github.com/jmylchreest/mapramp/internal/scale"
)

var (
	// Sample command flags
	sampleScale   string
	samplePreview bool
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <position>...",
	Short: "Sample a built-in colour scale",
	Long: `Sample a built-in colour scale at one or more positions.

Positions outside the scale's domain extrapolate the nearest segment, with
each channel clamped to 0-255. Unlike classify, sampling never applies
overflow colours.

Examples:
  mapramp sample 0 0.25 1
  mapramp sample --scale polyline 0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleScale, "scale", "s", scale.MarkerName, fmt.Sprintf("scale to sample %v", scale.Names()))
	sampleCmd.Flags().BoolVarP(&samplePreview, "preview", "p", false, "show a colour swatch next to each result")
}

// runSample executes the sample command.
func runSample(cmd *cobra.Command, args []string) error {
	s, err := scale.Lookup(sampleScale)
	if err != nil {
		return err
	}
	positions, err := parseValues(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	table := NewTable([]string{"POSITION", "COLOUR", "HEX"})
	for i, p := range positions {
		c := s.Sample(p)
		name := c.String()
		if samplePreview {
			name = colour.ColourPreview(c.RGB, 2) + " " + name
		}
		table.AddRow([]string{args[i], name, c.Hex()})
	}
	fmt.Fprint(out, table.Render())
	return nil
}
