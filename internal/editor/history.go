package editor

// History is the undo/redo engine. Both stacks grow without limit.
type History struct {
	doc  *Document
	undo []*Command
	redo []*Command
}

func NewHistory(d *Document) *History {
	return &History{doc: d}
}

// Execute applies cmd and records it. Any undone commands are discarded.
func (h *History) Execute(cmd *Command) {
	cmd.Execute(h.doc)
	h.undo = append(h.undo, cmd)
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo reverts the most recent command and returns it, or nil when there is
// nothing to undo.
func (h *History) Undo() *Command {
	if len(h.undo) == 0 {
		return nil
	}
	last := len(h.undo) - 1
	cmd := h.undo[last]
	h.undo[last] = nil
	h.undo = h.undo[:last]

	cmd.Undo(h.doc)
	h.redo = append(h.redo, cmd)
	return cmd
}

// Redo re-applies the most recently undone command and returns it, or nil.
func (h *History) Redo() *Command {
	if len(h.redo) == 0 {
		return nil
	}
	last := len(h.redo) - 1
	cmd := h.redo[last]
	h.redo[last] = nil
	h.redo = h.redo[:last]

	cmd.Execute(h.doc)
	h.undo = append(h.undo, cmd)
	return cmd
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) UndoLen() int  { return len(h.undo) }
func (h *History) RedoLen() int  { return len(h.redo) }
