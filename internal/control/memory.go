package control

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/google/safehtml"
)

// Entry is a control held by a MemorySurface.
type Entry struct {
	ID       string
	Position string
	Node     safehtml.HTML
}

// MemorySurface is a Surface that keeps controls in memory.
type MemorySurface struct {
	mu       sync.Mutex
	next     int
	controls map[string]Entry
}

// NewMemorySurface returns an empty surface.
func NewMemorySurface() *MemorySurface {
	return &MemorySurface{controls: make(map[string]Entry)}
}

// AddControl stores node at position and returns its id.
func (s *MemorySurface) AddControl(position string, node safehtml.HTML) (string, error) {
	if position == "" {
		return "", fmt.Errorf("control position is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	id := "control-" + strconv.Itoa(s.next)
	s.controls[id] = Entry{ID: id, Position: position, Node: node}
	return id, nil
}

// RemoveControl removes the control with the given id.
func (s *MemorySurface) RemoveControl(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.controls[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownControl, id)
	}
	delete(s.controls, id)
	return nil
}

// Controls returns the held controls ordered by insertion.
func (s *MemorySurface) Controls() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, 0, len(s.controls))
	for _, e := range s.controls {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return controlSeq(entries[i].ID) < controlSeq(entries[j].ID)
	})
	return entries
}

// Len returns the number of held controls.
func (s *MemorySurface) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.controls)
}

func controlSeq(id string) int {
	n, _ := strconv.Atoi(id[len("control-"):])
	return n
}
