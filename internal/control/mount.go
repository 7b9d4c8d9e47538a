package control

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mapramp/internal/logging"
)

type attachment struct {
	control RenderableControl
	handle  Handle
}

// Mount keeps at most one control attached to a surface. Attaching a new
// control detaches the current one first.
type Mount struct {
	mu      sync.Mutex
	surface Surface
	current *attachment
	logger  hclog.Logger
}

// NewMount returns a mount for s.
func NewMount(s Surface, logger hclog.Logger) *Mount {
	return &Mount{
		surface: s,
		logger:  logging.OrNull(logger).Named("mount"),
	}
}

// Attach detaches the current control, if any, and attaches c.
func (m *Mount) Attach(c RenderableControl) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.detachLocked(); err != nil {
		return Handle{}, err
	}

	h, err := c.Attach(m.surface)
	if err != nil {
		return Handle{}, err
	}
	m.current = &attachment{control: c, handle: h}
	m.logger.Debug("mounted", "id", h.ID)
	return h, nil
}

// Current returns the handle of the attached control.
func (m *Mount) Current() (Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return Handle{}, false
	}
	return m.current.handle, true
}

// Unmount detaches the attached control. It is safe to call more than once.
func (m *Mount) Unmount() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.detachLocked()
}

func (m *Mount) detachLocked() error {
	if m.current == nil {
		return nil
	}

	cur := m.current
	if err := cur.control.Detach(cur.handle); err != nil {
		// A surface that already dropped the control has nothing left to clean up.
		if !errors.Is(err, ErrUnknownControl) {
			return fmt.Errorf("failed to detach control: %w", err)
		}
		m.logger.Warn("control already removed", "id", cur.handle.ID)
	}
	m.current = nil
	m.logger.Debug("unmounted", "id", cur.handle.ID)
	return nil
}
