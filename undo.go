package main

import "figedit/internal/editor"

func (m *model) undo() {
	cmd := m.canvas.Undo()
	if cmd == nil {
		m.errorMessage = "nothing to undo"
		return
	}
	m.successMessage = "undid " + describe(cmd)
}

func (m *model) redo() {
	cmd := m.canvas.Redo()
	if cmd == nil {
		m.errorMessage = "nothing to redo"
		return
	}
	m.successMessage = "redid " + describe(cmd)
}

func describe(cmd *editor.Command) string {
	switch cmd.Type {
	case editor.CommandAddShape:
		return "add " + cmd.Shape().Kind().String()
	case editor.CommandRemoveShape:
		return "delete " + cmd.Shape().Kind().String()
	case editor.CommandMove:
		return "move"
	case editor.CommandClear:
		return "clear"
	default:
		return cmd.Type.String()
	}
}
