package render

import (
	"fmt"
	"sort"
)

// Drawable is one pass over the frame buffer.
type Drawable interface {
	Draw(dst *Buffer) error
}

type DrawFunc func(dst *Buffer) error

func (f DrawFunc) Draw(dst *Buffer) error { return f(dst) }

type LayerID uint64

type layer struct {
	id       LayerID
	priority int
	d        Drawable
}

// Layers keeps drawables ordered by priority, lowest first. Layers with equal
// priority draw in the order they were added.
type Layers struct {
	lastID LayerID
	items  []layer
}

func (l *Layers) Add(d Drawable, priority int) LayerID {
	l.lastID++
	id := l.lastID

	// first slot with a strictly higher priority keeps equal priorities in order
	i := sort.Search(len(l.items), func(i int) bool { return l.items[i].priority > priority })
	l.items = append(l.items, layer{})
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = layer{id: id, priority: priority, d: d}
	return id
}

// Remove drops the layer with id and reports whether it was present.
func (l *Layers) Remove(id LayerID) bool {
	for i, it := range l.items {
		if it.id == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *Layers) Len() int { return len(l.items) }

// Draw runs every layer in order and stops at the first error.
func (l *Layers) Draw(dst *Buffer) error {
	for _, it := range l.items {
		if err := it.d.Draw(dst); err != nil {
			return fmt.Errorf("layer %d (priority %d): %w", it.id, it.priority, err)
		}
	}
	return nil
}
