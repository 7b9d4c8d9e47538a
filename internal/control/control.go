// Package control attaches rendered legends to a host map surface.
//
// A map surface only needs to add and remove positioned HTML nodes. Controls
// render themselves on attach and remember the handle they were given so the
// same surface can remove them later.
package control

import (
	"errors"
	"fmt"

	"github.com/google/safehtml"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mapramp/internal/legend"
	"github.com/jmylchreest/mapramp/internal/logging"
)

// ErrUnknownControl is returned when removing a control the surface does not hold.
var ErrUnknownControl = errors.New("unknown control")

// Surface is a map that positioned controls can be added to.
type Surface interface {
	AddControl(position string, node safehtml.HTML) (string, error)
	RemoveControl(id string) error
}

// Handle identifies an attached control.
type Handle struct {
	ID       string
	Position string

	surface Surface
}

// RenderableControl is a control that can be attached to and detached from a surface.
type RenderableControl interface {
	Attach(s Surface) (Handle, error)
	Detach(h Handle) error
}

// LegendControl renders a legend as an HTML node on attach.
type LegendControl struct {
	renderer *legend.Renderer
	logger   hclog.Logger
}

// NewLegendControl returns a control drawing legends with r.
func NewLegendControl(r *legend.Renderer, logger hclog.Logger) (*LegendControl, error) {
	if r == nil {
		return nil, fmt.Errorf("legend control requires a renderer")
	}
	return &LegendControl{
		renderer: r,
		logger:   logging.OrNull(logger).Named("legend"),
	}, nil
}

// Attach renders the legend and adds it at the layout's position.
func (c *LegendControl) Attach(s Surface) (Handle, error) {
	if s == nil {
		return Handle{}, fmt.Errorf("cannot attach legend: no surface")
	}

	spec := c.renderer.Render()
	node, err := legend.HTML(spec)
	if err != nil {
		return Handle{}, fmt.Errorf("failed to render legend: %w", err)
	}

	id, err := s.AddControl(spec.Position, node)
	if err != nil {
		return Handle{}, fmt.Errorf("failed to add legend control: %w", err)
	}
	c.logger.Debug("attached", "id", id, "position", spec.Position)

	return Handle{ID: id, Position: spec.Position, surface: s}, nil
}

// Detach removes the control identified by h from the surface it was attached to.
func (c *LegendControl) Detach(h Handle) error {
	if h.surface == nil {
		return fmt.Errorf("cannot detach legend %q: handle is not attached", h.ID)
	}
	if err := h.surface.RemoveControl(h.ID); err != nil {
		return fmt.Errorf("failed to remove legend control %q: %w", h.ID, err)
	}
	c.logger.Debug("detached", "id", h.ID)
	return nil
}
