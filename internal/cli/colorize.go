package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/feature"
	"github.com/jmylchreest/mapramp/internal/scale"
)

var (
	// Colorize command flags
	colorizeOutput   string
	colorizeWorkers  int
	colorizeMin      float64
	colorizeMax      float64
	colorizeClamp    bool
	colorizeValue    string
	colorizeCategory string
	colorizeProperty string
)

// colorizeCmd represents the colorize command
var colorizeCmd = &cobra.Command{
	Use:   "colorize <features.json>",
	Short: "Add display colours to a feature collection",
	Long: `Read a GeoJSON-style FeatureCollection and set a colour property on every
feature with a numeric value.

Point features are classified as markers and line features as polylines,
unless the category property says otherwise. Input may be gzip, xz or bzip2
compressed.

When --min and --max are given, raw values are mapped so that min becomes 0
and max becomes 1 before classification.

Examples:
  mapramp colorize sites.json
  mapramp colorize sites.json.xz --min 0 --max 250 --output coloured.json
  mapramp colorize routes.json --value severity --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runColorize,
}

func init() {
	colorizeCmd.Flags().StringVarP(&colorizeOutput, "output", "o", "", "write to file instead of stdout")
	colorizeCmd.Flags().IntVarP(&colorizeWorkers, "workers", "w", 0, "concurrent classification workers (0 = one per CPU)")
	colorizeCmd.Flags().Float64Var(&colorizeMin, "min", 0, "raw value mapped to 0")
	colorizeCmd.Flags().Float64Var(&colorizeMax, "max", 1, "raw value mapped to 1")
	colorizeCmd.Flags().BoolVar(&colorizeClamp, "clamp", false, "clamp normalised values to [0, 1]")

	d := feature.DefaultOptions()
	colorizeCmd.Flags().StringVar(&colorizeValue, "value", d.ValueProperty, "property holding the value")
	colorizeCmd.Flags().StringVar(&colorizeCategory, "category", d.CategoryProperty, "property overriding the category")
	colorizeCmd.Flags().StringVar(&colorizeProperty, "property", d.ColorProperty, "property receiving the colour")
}

// runColorize executes the colorize command.
func runColorize(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := feature.DefaultOptions()
	opts.ValueProperty = colorizeValue
	opts.CategoryProperty = colorizeCategory
	opts.ColorProperty = colorizeProperty
	opts.Workers = cfg.Workers
	opts.Normaliser = cfg.Normalise

	flags := cmd.Flags()
	if flags.Changed("workers") {
		opts.Workers = colorizeWorkers
	}
	if flags.Changed("min") || flags.Changed("max") || flags.Changed("clamp") {
		n := scale.Normaliser{Min: colorizeMin, Max: colorizeMax, Clamp: colorizeClamp}
		if cfg.Normalise != nil {
			n = *cfg.Normalise
			if flags.Changed("min") {
				n.Min = colorizeMin
			}
			if flags.Changed("max") {
				n.Max = colorizeMax
			}
			if flags.Changed("clamp") {
				n.Clamp = colorizeClamp
			}
		}
		opts.Normaliser = &n
	}

	logger := newLogger(cmd)
	colorizer, err := feature.NewColorizer(classify.Default(), opts, logger)
	if err != nil {
		return err
	}

	coll, err := feature.Load(args[0])
	if err != nil {
		return err
	}

	stats, err := colorizer.Colorize(cmd.Context(), coll)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := coll.Encode(&buf); err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), colorizeOutput, buf.Bytes()); err != nil {
		return err
	}

	if globalVerbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Coloured %d markers, %d polylines, %d other (%d skipped)\n",
			stats.Markers, stats.Polylines, stats.Unknown, stats.Skipped)
	}
	return nil
}
