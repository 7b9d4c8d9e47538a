package feature

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mapramp/internal/classify"
	"github.com/jmylchreest/mapramp/internal/logging"
	"github.com/jmylchreest/mapramp/internal/scale"
)

// Options controls how features are read and tinted.
type Options struct {
	// ValueProperty holds the numeric value to classify.
	ValueProperty string

	// CategoryProperty overrides the category implied by the geometry.
	CategoryProperty string

	// ColorProperty receives the classified colour.
	ColorProperty string

	// Normaliser maps raw values onto the unit ratio before classification.
	// Nil means values are already ratios.
	Normaliser *scale.Normaliser

	// Workers bounds concurrent classification; values below 1 mean one per CPU.
	Workers int
}

// DefaultOptions returns the stock property names.
func DefaultOptions() Options {
	return Options{
		ValueProperty:    "value",
		CategoryProperty: "category",
		ColorProperty:    "color",
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.ValueProperty == "" || o.ColorProperty == "" {
		return fmt.Errorf("value and color property names are required")
	}
	if o.Normaliser != nil {
		if err := o.Normaliser.Validate(); err != nil {
			return fmt.Errorf("invalid normaliser: %w", err)
		}
	}
	return nil
}

// Stats counts the features a Colorize call handled.
type Stats struct {
	Markers   int `json:"markers"`
	Polylines int `json:"polylines"`
	Unknown   int `json:"unknown"`
	Skipped   int `json:"skipped"`
}

// Colorizer tints feature collections.
type Colorizer struct {
	classifier *classify.Classifier
	opts       Options
	logger     hclog.Logger
}

// NewColorizer returns a colorizer using cl.
func NewColorizer(cl *classify.Classifier, opts Options, logger hclog.Logger) (*Colorizer, error) {
	if cl == nil {
		return nil, fmt.Errorf("colorizer requires a classifier")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Colorizer{
		classifier: cl,
		opts:       opts,
		logger:     logging.OrNull(logger).Named("colorize"),
	}, nil
}

// Colorize sets the colour property on every feature that has a value.
// Features without a numeric value are left untouched and counted as skipped.
func (c *Colorizer) Colorize(ctx context.Context, coll *Collection) (Stats, error) {
	var stats Stats
	reqs := make([]classify.Request, 0, len(coll.Features))
	targets := make([]*Feature, 0, len(coll.Features))

	for i, f := range coll.Features {
		v, ok := f.Value(c.opts.ValueProperty)
		if !ok {
			stats.Skipped++
			c.logger.Debug("skipping feature without value", "index", i)
			continue
		}
		if c.opts.Normaliser != nil {
			v = c.opts.Normaliser.Normalise(v)
		}

		cat := f.Category(c.opts.CategoryProperty)
		switch cat {
		case classify.Marker:
			stats.Markers++
		case classify.Polyline:
			stats.Polylines++
		default:
			stats.Unknown++
		}

		reqs = append(reqs, classify.Request{Value: v, Category: cat})
		targets = append(targets, f)
	}

	workers := c.opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	colours, err := c.classifier.ClassifyAll(ctx, reqs, workers)
	if err != nil {
		return Stats{}, err
	}
	for i, f := range targets {
		f.SetProperty(c.opts.ColorProperty, colours[i].String())
	}

	c.logger.Debug("colorized",
		"markers", stats.Markers,
		"polylines", stats.Polylines,
		"unknown", stats.Unknown,
		"skipped", stats.Skipped)
	return stats, nil
}
