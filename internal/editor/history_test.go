package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(NewDocument())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Nil(t, h.Undo())
	assert.Nil(t, h.Redo())
}

func TestHistoryUndoRedoOrder(t *testing.T) {
	d := NewDocument()
	h := NewHistory(d)
	a := NewShape(KindCircle, Rect{0, 0, 10, 10}, red)
	b := NewShape(KindCircle, Rect{20, 0, 10, 10}, red)

	addA, addB := NewAddShape(a), NewAddShape(b)
	h.Execute(addA)
	h.Execute(addB)
	move := NewMove(a, 5, 5)
	h.Execute(move)
	assert.Equal(t, 3, h.UndoLen())

	assert.Same(t, move, h.Undo())
	assert.Same(t, addB, h.Undo())
	assert.Equal(t, []*Shape{a}, d.Shapes())
	assert.Equal(t, 2, h.RedoLen())

	assert.Same(t, addB, h.Redo())
	assert.Same(t, move, h.Redo())
	assert.Equal(t, Rect{5, 5, 10, 10}, a.Bounds())
	assert.False(t, h.CanRedo())
}

func TestHistoryExecuteDiscardsRedo(t *testing.T) {
	d := NewDocument()
	h := NewHistory(d)
	h.Execute(NewAddShape(NewShape(KindCircle, Rect{}, red)))
	h.Execute(NewAddShape(NewShape(KindCircle, Rect{}, red)))
	h.Undo()
	h.Undo()
	require.True(t, h.CanRedo())

	h.Execute(NewAddShape(NewShape(KindRectangle, Rect{}, red)))
	assert.False(t, h.CanRedo())
	assert.Equal(t, 0, h.RedoLen())
	assert.Equal(t, 1, h.UndoLen())
	assert.Nil(t, h.Redo())
}

func TestHistoryFullUndoReturnsToEmpty(t *testing.T) {
	d := NewDocument()
	h := NewHistory(d)
	s := NewShape(KindRectangle, Rect{0, 0, 10, 10}, red)
	h.Execute(NewAddShape(s))
	h.Execute(NewMove(s, 3, 3))
	h.Execute(NewAddShape(NewShape(KindCircle, Rect{50, 50, 10, 10}, red)))
	h.Execute(NewClear(d))
	h.Undo()
	h.Execute(NewRemoveShape(d.Shapes()[0]))

	for h.CanUndo() {
		h.Undo()
	}
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Selected())
}
