package editor

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a location in canvas pixels.
type Point struct {
	X, Y float64
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Rect is an axis-aligned bounding box.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// RectFromPoints returns the rectangle spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X: min(a.X, b.X),
		Y: min(a.Y, b.Y),
		W: abs(b.X - a.X),
		H: abs(b.Y - a.Y),
	}
}

// Shape is one figure on the canvas.
type Shape struct {
	ID       string
	Color    color.RGBA
	Selected bool

	kind Kind
	rect Rect
}

// NewShape creates a shape of the given kind. Negative sizes are clamped to 0.
func NewShape(kind Kind, r Rect, c color.RGBA) *Shape {
	r.W = max(r.W, 0)
	r.H = max(r.H, 0)
	return &Shape{
		ID:    uuid.NewString(),
		Color: c,
		kind:  kind,
		rect:  r,
	}
}

func (s *Shape) Kind() Kind { return s.kind }

// Bounds returns the bounding box of the shape.
func (s *Shape) Bounds() Rect { return s.rect }

// Center returns the centre of the bounding box.
func (s *Shape) Center() Point {
	return Point{s.rect.X + s.rect.W/2, s.rect.Y + s.rect.H/2}
}

// Contains reports whether p lies inside the shape's area.
func (s *Shape) Contains(p Point) bool {
	r := s.rect
	switch s.kind {
	case KindCircle:
		if r.W <= 0 || r.H <= 0 {
			return false
		}
		rx, ry := r.W/2, r.H/2
		dx := (p.X - (r.X + rx)) / rx
		dy := (p.Y - (r.Y + ry)) / ry
		return dx*dx+dy*dy <= 1
	case KindRectangle:
		return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
	}
	return false
}

// Translate moves the shape by (dx, dy). Size, kind and colour are unchanged.
func (s *Shape) Translate(dx, dy float64) {
	s.rect.X += dx
	s.rect.Y += dy
}

// Clone returns an independent copy of the shape, including its selection flag.
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
