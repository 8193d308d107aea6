package editor

import "slices"

// Document owns the live shapes, in z-order from bottom to top, and the
// current selection.
type Document struct {
	shapes   []*Shape
	selected *Shape
}

func NewDocument() *Document {
	return &Document{shapes: make([]*Shape, 0)}
}

func (d *Document) Len() int { return len(d.shapes) }

// Shapes returns the live shapes. Callers must not modify the slice.
func (d *Document) Shapes() []*Shape { return d.shapes }

func (d *Document) Add(s *Shape) {
	d.shapes = append(d.shapes, s)
}

// Insert places s at index i, clamped to the collection bounds.
func (d *Document) Insert(i int, s *Shape) {
	if i < 0 {
		i = 0
	}
	if i >= len(d.shapes) {
		d.shapes = append(d.shapes, s)
		return
	}
	d.shapes = append(d.shapes, nil)
	copy(d.shapes[i+1:], d.shapes[i:])
	d.shapes[i] = s
}

// IndexOf returns the position of s by identity, or -1.
func (d *Document) IndexOf(s *Shape) int {
	for i, shape := range d.shapes {
		if shape == s {
			return i
		}
	}
	return -1
}

// Remove deletes s by identity and returns the index it occupied.
func (d *Document) Remove(s *Shape) (int, bool) {
	i := d.IndexOf(s)
	if i < 0 {
		return -1, false
	}
	if d.selected == s {
		d.Deselect()
	}
	d.shapes = slices.Delete(d.shapes, i, i+1)
	return i, true
}

// Clear removes every shape and drops the selection.
func (d *Document) Clear() {
	d.Deselect()
	clear(d.shapes)
	d.shapes = d.shapes[:0]
}

func (d *Document) Selected() *Shape { return d.selected }

// Select marks s as the only selected shape.
func (d *Document) Select(s *Shape) {
	if d.selected == s {
		return
	}
	d.Deselect()
	if s != nil {
		s.Selected = true
	}
	d.selected = s
}

func (d *Document) Deselect() {
	if d.selected != nil {
		d.selected.Selected = false
	}
	d.selected = nil
}

// HitTest returns the topmost shape containing p, or nil.
func (d *Document) HitTest(p Point) *Shape {
	for i := len(d.shapes) - 1; i >= 0; i-- {
		if d.shapes[i].Contains(p) {
			return d.shapes[i]
		}
	}
	return nil
}
