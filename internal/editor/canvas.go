package editor

import (
	"image/color"
	"log/slog"
)

// Canvas turns pointer and keyboard input into commands. It owns the
// document, the history and the current tool settings. A Canvas is driven
// from a single event loop and is not safe for concurrent use.
type Canvas struct {
	doc     *Document
	history *History

	drawColor    color.RGBA
	shapeKind    Kind
	snapDistance float64

	state   State
	start   Point
	current Point
	tracked Point
	active  *Shape
	moved   Point
}

// Option configures a Canvas during creation.
type Option func(*Canvas)

// WithDrawColor sets the initial fill colour for new shapes.
func WithDrawColor(c color.RGBA) Option { return func(cv *Canvas) { cv.drawColor = c } }

// WithShapeKind sets the initial kind for new shapes.
func WithShapeKind(k Kind) Option { return func(cv *Canvas) { cv.shapeKind = k } }

// WithSnapDistance overrides the magnetic snapping range. Zero disables it.
func WithSnapDistance(d float64) Option { return func(cv *Canvas) { cv.snapDistance = d } }

// DefaultColor is the fill used when no colour is configured.
var DefaultColor = color.RGBA{R: 30, G: 144, B: 255, A: 255}

func NewCanvas(opts ...Option) *Canvas {
	doc := NewDocument()
	c := &Canvas{
		doc:          doc,
		history:      NewHistory(doc),
		drawColor:    DefaultColor,
		shapeKind:    KindCircle,
		snapDistance: SnapDistance,
	}
	for _, o := range opts {
		o(c)
	}
	if c.snapDistance < 0 {
		c.snapDistance = 0
	}
	return c
}

func (c *Canvas) Len() int          { return c.doc.Len() }
func (c *Canvas) History() *History { return c.history }
func (c *Canvas) State() State      { return c.state }

func (c *Canvas) DrawColor() color.RGBA       { return c.drawColor }
func (c *Canvas) SetDrawColor(col color.RGBA) { c.drawColor = col }
func (c *Canvas) ShapeKind() Kind             { return c.shapeKind }
func (c *Canvas) SetShapeKind(k Kind)         { c.shapeKind = k }

func (c *Canvas) CanUndo() bool { return c.history.CanUndo() }
func (c *Canvas) CanRedo() bool { return c.history.CanRedo() }

// PointerDown starts a gesture at p. modifier selects the
// selection/move gesture instead of shape creation.
func (c *Canvas) PointerDown(p Point, modifier bool) {
	if c.state != StateIdle {
		Logger().Debug("gesture abandoned", slog.String("state", c.state.String()))
		c.Cancel()
	}
	c.start, c.current, c.tracked = p, p, p
	c.moved = Point{}

	if modifier {
		hit := c.doc.HitTest(p)
		if hit == nil {
			c.doc.Deselect()
			return
		}
		c.doc.Select(hit)
		c.beginMove(hit)
		return
	}

	if sel := c.doc.Selected(); sel != nil && sel.Contains(p) {
		c.beginMove(sel)
		return
	}
	c.doc.Deselect()
	c.state = StateCreatingShape
	Logger().Debug("gesture started", slog.String("state", c.state.String()))
}

func (c *Canvas) beginMove(s *Shape) {
	c.active = s
	c.state = StateSelectingOrMoving
	Logger().Debug("gesture started", slog.String("state", c.state.String()), slog.String("shape", s.ID))
}

// PointerDrag updates the gesture in progress.
func (c *Canvas) PointerDrag(p Point) {
	switch c.state {
	case StateCreatingShape:
		c.current = p
	case StateSelectingOrMoving:
		c.current = p
		c.moveActive(p)
	}
}

// moveActive drags the active shape toward p, snapping its edges.
func (c *Canvas) moveActive(p Point) {
	if c.active == nil || p == c.tracked {
		return
	}
	d := p.Sub(c.tracked)
	dx, dy, snapped := snapDelta(c.active, c.doc.Shapes(), d.X, d.Y, c.snapDistance)
	if snapped {
		Logger().Debug("snapped", slog.Float64("dx", dx-d.X), slog.Float64("dy", dy-d.Y))
	}
	c.active.Translate(dx, dy)
	c.moved = c.moved.Add(Point{dx, dy})
	c.tracked = c.tracked.Add(Point{dx, dy})
}

// PointerUp completes the gesture in progress and records its command.
func (c *Canvas) PointerUp(p Point) {
	switch c.state {
	case StateCreatingShape:
		c.current = p
		c.history.Execute(NewAddShape(c.buildShape(c.start, p)))
	case StateSelectingOrMoving:
		c.current = p
		c.finishMove(p)
	}
	c.reset()
}

// finishMove settles the move at the release point and records it.
func (c *Canvas) finishMove(p Point) {
	if c.active == nil {
		return
	}
	c.moveActive(p)
	dx, dy := c.moved.X, c.moved.Y
	// The live preview already moved the shape; the command re-applies it.
	c.active.Translate(-dx, -dy)
	if abs(dx) < MoveThreshold && abs(dy) < MoveThreshold {
		return
	}
	c.history.Execute(NewMove(c.active, dx, dy))
}

func (c *Canvas) buildShape(from, to Point) *Shape {
	var r Rect
	if abs(to.X-from.X) >= ClickThreshold || abs(to.Y-from.Y) >= ClickThreshold {
		r = RectFromPoints(from, to)
		r.W = max(r.W, MinSize)
		r.H = max(r.H, MinSize)
	} else {
		r = Rect{X: from.X - DefaultSize/2, Y: from.Y - DefaultSize/2, W: DefaultSize, H: DefaultSize}
	}
	return NewShape(c.shapeKind, r, c.drawColor)
}

// Cancel abandons the gesture in progress. A live move is reverted and no
// command is recorded.
func (c *Canvas) Cancel() {
	if c.state == StateSelectingOrMoving && c.active != nil {
		c.active.Translate(-c.moved.X, -c.moved.Y)
	}
	c.reset()
}

func (c *Canvas) reset() {
	c.state = StateIdle
	c.active = nil
	c.moved = Point{}
}

// DeleteSelected removes the selected shape, if any.
func (c *Canvas) DeleteSelected() bool {
	sel := c.doc.Selected()
	if sel == nil {
		return false
	}
	c.Cancel()
	c.history.Execute(NewRemoveShape(sel))
	return true
}

// ClearAll removes every shape as one undoable step. An empty canvas records
// nothing.
func (c *Canvas) ClearAll() bool {
	c.Cancel()
	if c.doc.Len() == 0 {
		return false
	}
	c.history.Execute(NewClear(c.doc))
	return true
}

// Undo cancels any gesture and reverts the last command.
func (c *Canvas) Undo() *Command {
	c.Cancel()
	return c.history.Undo()
}

// Redo cancels any gesture and re-applies the last undone command.
func (c *Canvas) Redo() *Command {
	c.Cancel()
	return c.history.Redo()
}

// Shapes returns copies of the shapes in z-order, bottom to top.
func (c *Canvas) Shapes() []Shape {
	out := make([]Shape, 0, c.doc.Len())
	for _, s := range c.doc.Shapes() {
		out = append(out, *s)
	}
	return out
}

// Selected returns a copy of the selected shape.
func (c *Canvas) Selected() (Shape, bool) {
	if s := c.doc.Selected(); s != nil {
		return *s, true
	}
	return Shape{}, false
}

// PreviewShape returns the shape being dragged out, if a creation gesture is
// in progress. The preview is not clamped to the minimum size.
func (c *Canvas) PreviewShape() (Shape, bool) {
	if c.state != StateCreatingShape {
		return Shape{}, false
	}
	return Shape{
		Color: c.drawColor,
		kind:  c.shapeKind,
		rect:  RectFromPoints(c.start, c.current),
	}, true
}
