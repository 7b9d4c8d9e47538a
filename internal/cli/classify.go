package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/colour"
)

var (
	// Classify command flags
	classifyCategory string
	classifyPreview  bool
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <value>...",
	Short: "Classify values into display colours",
	Long: `Classify one or more values for a feature category and print the colour
each one is drawn in.

Categories:
  marker    - seven-stop blue to red scale, darkred above 1
  polyline  - green to red scale, red above 1
  (other)   - grey

Examples:
  mapramp classify 0.5
  mapramp classify --category polyline 0.25 1.5
  mapramp classify --category building 0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyCategory, "category", "k", string(classify.Marker), "feature category")
	classifyCmd.Flags().BoolVarP(&classifyPreview, "preview", "p", false, "draw each value on a swatch of its colour")
}

// parseValues parses numeric arguments.
func parseValues(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", a, err)
		}
		values[i] = v
	}
	return values, nil
}

// runClassify executes the classify command.
func runClassify(cmd *cobra.Command, args []string) error {
	values, err := parseValues(args)
	if err != nil {
		return err
	}

	logger := newLogger(cmd).Named("classify")
	category := classify.ParseCategory(classifyCategory)
	if category == classify.Unknown {
		logger.Debug("unrecognised category, using fallback colour", "category", classifyCategory)
	}

	cl := classify.Default()
	out := cmd.OutOrStdout()
	for i, v := range values {
		c := cl.Classify(v, category)
		logger.Debug("classified", "value", v, "category", category, "colour", c)
		if classifyPreview {
			fmt.Fprintln(out, colour.ColourPreviewWithText(c.RGB, args[i], 8)+"  "+c.String())
			continue
		}
		fmt.Fprintln(out, c.String())
	}
	return nil
}
