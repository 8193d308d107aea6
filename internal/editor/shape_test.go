package editor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.RGBA{R: 255, A: 255}

func TestShapeContains(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		p    Point
		want bool
	}{
		{"circle centre", KindCircle, Point{30, 30}, true},
		{"circle edge midpoint", KindCircle, Point{60, 30}, true},
		{"circle bounding corner", KindCircle, Point{2, 2}, false},
		{"circle outside", KindCircle, Point{70, 30}, false},
		{"rect corner", KindRectangle, Point{0, 0}, true},
		{"rect inner corner", KindRectangle, Point{2, 2}, true},
		{"rect right edge exclusive", KindRectangle, Point{60, 30}, false},
		{"rect outside", KindRectangle, Point{-1, 30}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewShape(tt.kind, Rect{0, 0, 60, 60}, red)
			assert.Equal(t, tt.want, s.Contains(tt.p))
		})
	}
}

func TestShapeZeroSizeCircleContainsNothing(t *testing.T) {
	s := NewShape(KindCircle, Rect{10, 10, 0, 0}, red)
	assert.False(t, s.Contains(Point{10, 10}))
}

func TestNewShapeClampsNegativeSize(t *testing.T) {
	s := NewShape(KindRectangle, Rect{5, 5, -3, -4}, red)
	assert.Equal(t, Rect{5, 5, 0, 0}, s.Bounds())
	assert.NotEmpty(t, s.ID)
}

func TestShapeTranslate(t *testing.T) {
	s := NewShape(KindCircle, Rect{10, 20, 30, 40}, red)
	s.Translate(5, -7)

	assert.Equal(t, Rect{15, 13, 30, 40}, s.Bounds())
	assert.Equal(t, KindCircle, s.Kind())
	assert.Equal(t, red, s.Color)
	assert.Equal(t, Point{30, 33}, s.Center())
}

func TestShapeCloneIsIndependent(t *testing.T) {
	s := NewShape(KindRectangle, Rect{1, 2, 3, 4}, red)
	s.Selected = true

	c := s.Clone()
	require.NotSame(t, s, c)
	assert.Equal(t, *s, *c)

	c.Translate(100, 100)
	c.Color = color.RGBA{B: 255, A: 255}
	assert.Equal(t, Rect{1, 2, 3, 4}, s.Bounds())
	assert.Equal(t, red, s.Color)
}

func TestRectFromPoints(t *testing.T) {
	r := RectFromPoints(Point{150, 120}, Point{50, 50})
	assert.Equal(t, Rect{50, 50, 100, 70}, r)
	assert.Equal(t, 150.0, r.Right())
	assert.Equal(t, 120.0, r.Bottom())
}
