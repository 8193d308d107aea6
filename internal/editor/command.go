package editor

import "log/slog"

// CommandType tags the variant carried by a Command.
type CommandType int

const (
	CommandAddShape CommandType = iota
	CommandRemoveShape
	CommandMove
	CommandClear
)

func (t CommandType) String() string {
	switch t {
	case CommandAddShape:
		return "add"
	case CommandRemoveShape:
		return "remove"
	case CommandMove:
		return "move"
	case CommandClear:
		return "clear"
	}
	return "unknown"
}

// Command is a reversible edit of a Document. Execute and Undo must be called
// in alternation, starting with Execute.
type Command struct {
	Type CommandType

	shape *Shape
	dx    float64
	dy    float64

	// remove bookkeeping, captured by Execute
	index       int
	wasSelected bool

	cleared  []*Shape
	snapshot []*Shape
	selected int
}

// NewAddShape inserts s on top of the document.
func NewAddShape(s *Shape) *Command {
	return &Command{Type: CommandAddShape, shape: s}
}

// NewRemoveShape removes s from the document.
func NewRemoveShape(s *Shape) *Command {
	return &Command{Type: CommandRemoveShape, shape: s, index: -1}
}

// NewMove translates s by (dx, dy).
func NewMove(s *Shape, dx, dy float64) *Command {
	return &Command{Type: CommandMove, shape: s, dx: dx, dy: dy}
}

// NewClear snapshots every shape currently in d. Undo brings back the same
// shape instances with the snapshotted state, so earlier commands in the
// history still refer to live shapes.
func NewClear(d *Document) *Command {
	cleared := make([]*Shape, 0, d.Len())
	snapshot := make([]*Shape, 0, d.Len())
	selected := -1
	for i, s := range d.Shapes() {
		if s == d.Selected() {
			selected = i
		}
		cleared = append(cleared, s)
		snapshot = append(snapshot, s.Clone())
	}
	return &Command{Type: CommandClear, cleared: cleared, snapshot: snapshot, selected: selected}
}

// Shape returns the shape the command targets, nil for Clear.
func (c *Command) Shape() *Shape { return c.shape }

// Delta returns the displacement of a Move.
func (c *Command) Delta() (float64, float64) { return c.dx, c.dy }

func (c *Command) Execute(d *Document) {
	switch c.Type {
	case CommandAddShape:
		d.Add(c.shape)
	case CommandRemoveShape:
		c.wasSelected = d.Selected() == c.shape
		c.index, _ = d.Remove(c.shape)
	case CommandMove:
		c.shape.Translate(c.dx, c.dy)
	case CommandClear:
		d.Clear()
	}
	Logger().Debug("command executed", c.attrs()...)
}

func (c *Command) Undo(d *Document) {
	switch c.Type {
	case CommandAddShape:
		d.Remove(c.shape)
	case CommandRemoveShape:
		if c.index < 0 {
			return
		}
		d.Insert(c.index, c.shape)
		if c.wasSelected {
			d.Select(c.shape)
		}
	case CommandMove:
		c.shape.Translate(-c.dx, -c.dy)
	case CommandClear:
		for i, s := range c.cleared {
			*s = *c.snapshot[i]
			s.Selected = false
			d.Add(s)
		}
		if c.selected >= 0 {
			d.Select(c.cleared[c.selected])
		}
	}
	Logger().Debug("command undone", c.attrs()...)
}

func (c *Command) attrs() []any {
	attrs := []any{slog.String("type", c.Type.String())}
	if c.shape != nil {
		attrs = append(attrs, slog.String("shape", c.shape.ID))
	}
	switch c.Type {
	case CommandMove:
		attrs = append(attrs, slog.Float64("dx", c.dx), slog.Float64("dy", c.dy))
	case CommandClear:
		attrs = append(attrs, slog.Int("shapes", len(c.snapshot)))
	}
	return attrs
}
