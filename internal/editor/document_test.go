package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHitTestPrefersTopmost(t *testing.T) {
	d := NewDocument()
	bottom := NewShape(KindRectangle, Rect{0, 0, 100, 100}, red)
	top := NewShape(KindRectangle, Rect{50, 50, 100, 100}, red)
	d.Add(bottom)
	d.Add(top)

	assert.Same(t, top, d.HitTest(Point{75, 75}))
	assert.Same(t, bottom, d.HitTest(Point{10, 10}))
	assert.Nil(t, d.HitTest(Point{500, 500}))
}

func TestDocumentRemoveByIdentity(t *testing.T) {
	d := NewDocument()
	a := NewShape(KindCircle, Rect{0, 0, 10, 10}, red)
	twin := a.Clone()
	d.Add(a)

	_, ok := d.Remove(twin)
	assert.False(t, ok)
	assert.Equal(t, 1, d.Len())

	i, ok := d.Remove(a)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, 0, d.Len())
}

func TestDocumentRemoveDropsReference(t *testing.T) {
	d := NewDocument()
	a := NewShape(KindCircle, Rect{0, 0, 10, 10}, red)
	b := NewShape(KindCircle, Rect{20, 0, 10, 10}, red)
	c := NewShape(KindCircle, Rect{40, 0, 10, 10}, red)
	d.Add(a)
	d.Add(b)
	d.Add(c)

	i, ok := d.Remove(a)
	require.True(t, ok)
	assert.Equal(t, 0, i)
	assert.Equal(t, []*Shape{b, c}, d.Shapes())
	assert.Nil(t, d.shapes[:3][2], "vacated slot still holds a shape")
}

func TestDocumentInsert(t *testing.T) {
	d := NewDocument()
	a := NewShape(KindCircle, Rect{}, red)
	b := NewShape(KindCircle, Rect{}, red)
	c := NewShape(KindCircle, Rect{}, red)
	d.Add(a)
	d.Add(c)
	d.Insert(1, b)
	d.Insert(99, NewShape(KindRectangle, Rect{}, red))

	require.Equal(t, 4, d.Len())
	assert.Same(t, a, d.Shapes()[0])
	assert.Same(t, b, d.Shapes()[1])
	assert.Same(t, c, d.Shapes()[2])
	assert.Equal(t, 1, d.IndexOf(b))
}

func TestDocumentSelection(t *testing.T) {
	d := NewDocument()
	a := NewShape(KindCircle, Rect{}, red)
	b := NewShape(KindCircle, Rect{}, red)
	d.Add(a)
	d.Add(b)

	d.Select(a)
	assert.True(t, a.Selected)
	d.Select(b)
	assert.False(t, a.Selected)
	assert.True(t, b.Selected)
	assert.Same(t, b, d.Selected())

	d.Remove(b)
	assert.False(t, b.Selected)
	assert.Nil(t, d.Selected())

	d.Select(a)
	d.Clear()
	assert.False(t, a.Selected)
	assert.Nil(t, d.Selected())
	assert.Equal(t, 0, d.Len())
}
