// Package stylesink provides port.StyleSink implementations.
package stylesink

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/readably/internal/application/port"
)

var _ port.StyleSink = (*Memory)(nil)

// Element is a style element as held by a sink.
type Element struct {
	ID  string
	CSS string
}

// Memory keeps style elements in insertion order.
type Memory struct {
	mu       sync.RWMutex
	elements []Element
}

// NewMemory returns an empty sink.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Upsert(_ context.Context, id, css string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		m.elements[i].CSS = css
		return nil
	}
	m.elements = append(m.elements, Element{ID: id, CSS: css})
	return nil
}

func (m *Memory) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.index(id); i >= 0 {
		m.elements = slices.Delete(m.elements, i, i+1)
	}
	return nil
}

// Elements returns a snapshot of the current elements.
func (m *Memory) Elements() []Element {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.elements)
}

// CSS returns the CSS of the element with id and whether it exists.
func (m *Memory) CSS(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.index(id); i >= 0 {
		return m.elements[i].CSS, true
	}
	return "", false
}

// Count returns how many elements carry id.
func (m *Memory) Count(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, e := range m.elements {
		if e.ID == id {
			n++
		}
	}
	return n
}

func (m *Memory) index(id string) int {
	return slices.IndexFunc(m.elements, func(e Element) bool { return e.ID == id })
}
