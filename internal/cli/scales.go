package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/colour"
	"github.com/jmylchreest/mapramp/internal/scale"
)

var (
	// Scales command flags
	scalesPreview bool
)

// scalesCmd represents the scales command
var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "List the built-in colour scales",
	Long: `List the built-in colour scales with their domains and stops.

Examples:
  mapramp scales
  mapramp scales --preview`,
	Args: cobra.NoArgs,
	RunE: runScales,
}

func init() {
	scalesCmd.Flags().BoolVarP(&scalesPreview, "preview", "p", false, "show a gradient preview of each scale")
}

// runScales executes the scales command.
func runScales(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	headers := []string{"NAME", "DOMAIN", "STOPS"}
	if scalesPreview {
		headers = append(headers, "PREVIEW")
	}
	table := NewTable(headers)
	table.SetColumnMaxWidth(2, 48)

	width := previewWidth(out, 24)
	for _, name := range scale.Names() {
		s, err := scale.Lookup(name)
		if err != nil {
			return err
		}
		lo, hi := s.Domain()
		row := []string{
			name,
			fmt.Sprintf("[%s, %s]", formatNumber(lo), formatNumber(hi)),
			describeStops(s),
		}
		if scalesPreview {
			row = append(row, gradientPreview(s, width))
		}
		table.AddRow(row)
	}

	fmt.Fprint(out, table.Render())
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// describeStops lists the stops as "position:colour" pairs.
func describeStops(s *scale.Scale) string {
	stops := s.Stops()
	parts := make([]string, len(stops))
	for i, st := range stops {
		parts[i] = strconv.FormatFloat(st.Position, 'f', 2, 64) + ":" + st.Colour.String()
	}
	return strings.Join(parts, " ")
}

// gradientPreview renders s as width coloured cells.
func gradientPreview(s *scale.Scale, width int) string {
	lo, hi := s.Domain()
	var b strings.Builder
	for _, f := range scale.Fractions(width - 1) {
		b.WriteString(colour.ColourPreview(s.Sample(lo+f*(hi-lo)).RGB, 1))
	}
	return b.String()
}
