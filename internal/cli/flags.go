package cli

import (
	"github.com/spf13/pflag"

	"github.com/jmylchreest/mapramp/internal/config"
	"github.com/jmylchreest/mapramp/internal/legend"
)

// layoutFlags holds command-line overrides for the legend layout.
type layoutFlags struct {
	position   string
	divisions  int
	precision  int
	barWidth   int
	stripWidth int
}

// registerLayoutFlags registers the legend layout overrides on fs.
func registerLayoutFlags(fs *pflag.FlagSet, f *layoutFlags) {
	d := legend.DefaultLayout()
	fs.StringVar(&f.position, "position", d.Position, "legend position (topleft, topright, bottomleft, bottomright)")
	fs.IntVar(&f.divisions, "divisions", d.Divisions, "number of gradient segments")
	fs.IntVar(&f.precision, "precision", d.Precision, "decimals in tick labels")
	fs.IntVar(&f.barWidth, "bar-width", d.BarWidthPx, "gradient bar width in pixels")
	fs.IntVar(&f.stripWidth, "strip-width", d.StripWidthPx, "reference strip width in pixels")
}

// apply layers the flags that were set on the command line over cfg.
func (f *layoutFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("position") {
		cfg.Legend.Position = f.position
	}
	if fs.Changed("divisions") {
		cfg.Legend.Divisions = f.divisions
	}
	if fs.Changed("precision") {
		cfg.Legend.Precision = f.precision
	}
	if fs.Changed("bar-width") {
		cfg.Legend.BarWidthPx = f.barWidth
	}
	if fs.Changed("strip-width") {
		cfg.Legend.StripWidthPx = f.stripWidth
	}
	return cfg.Validate()
}
