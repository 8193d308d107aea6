package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"figedit/internal/editor"
)

const (
	glyphShape    = '█'
	glyphSelected = '▓'
	glyphPreview  = '░'
	glyphCursor   = '+'
	glyphEmpty    = ' '
)

var (
	statusStyle = lipgloss.NewStyle().Reverse(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC143C")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
)

type cell struct {
	glyph rune
	color color.RGBA
	// colored cells take their foreground from color
	colored bool
	cursor  bool
}

// renderCanvas samples every visible cell at its centre pixel and returns one
// string per row.
func (m *model) renderCanvas(width, height int) []string {
	shapes := m.canvas.Shapes()
	preview, previewing := m.canvas.PreviewShape()
	showCursor := m.keyPointer || m.cursorShown

	lines := make([]string, height)
	row := make([]cell, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := m.cellToPoint(x, y)
			c := cell{glyph: glyphEmpty}
			if previewing && preview.Contains(p) {
				c = cell{glyph: glyphPreview, color: preview.Color, colored: true}
			} else if s := topmost(shapes, p); s != nil {
				c = cell{glyph: glyphShape, color: s.Color, colored: true}
				if s.Selected {
					c.glyph = glyphSelected
				}
			}
			if showCursor && x == m.cursorX && y == m.cursorY {
				c.cursor = true
				if c.glyph == glyphEmpty {
					c.glyph = glyphCursor
				}
			}
			row[x] = c
		}
		lines[y] = renderRow(row)
	}
	return lines
}

func topmost(shapes []editor.Shape, p editor.Point) *editor.Shape {
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].Contains(p) {
			return &shapes[i]
		}
	}
	return nil
}

// renderRow groups runs of identically styled cells into one styled segment.
func renderRow(row []cell) string {
	var b strings.Builder
	var run strings.Builder
	start := 0
	flush := func(end int) {
		if run.Len() == 0 {
			return
		}
		b.WriteString(cellStyle(row[start]).Render(run.String()))
		run.Reset()
		start = end
	}
	for i, c := range row {
		if i > start && !sameStyle(row[start], c) {
			flush(i)
		}
		run.WriteRune(c.glyph)
	}
	flush(len(row))
	return b.String()
}

func sameStyle(a, b cell) bool {
	return a.cursor == b.cursor && a.colored == b.colored && (!a.colored || a.color == b.color)
}

func cellStyle(c cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.cursor {
		style = cursorStyle
	}
	if c.colored {
		style = style.Foreground(lipgloss.Color(toHex(opaque(c.color))))
	}
	return style
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}

func (m *model) statusLine() string {
	status := fmt.Sprintf("Mode: %s | %s | Tool: %s | Color: %s | Undo %d Redo %d",
		m.modeString(), m.canvas.State(), m.canvas.ShapeKind(), toHex(m.canvas.DrawColor()),
		m.canvas.History().UndoLen(), m.canvas.History().RedoLen())
	if s, ok := m.canvas.Selected(); ok {
		status += fmt.Sprintf(" | Selected: %s %s", s.Kind(), shortID(s.ID))
	}
	if m.zPanMode {
		status += " | PAN"
	}
	if m.keyPointer {
		status += " | POINTER"
	}
	if m.successMessage != "" {
		status += " | " + m.successMessage
	}
	return statusStyle.Render(status)
}

func (m *model) shortcutBar() string {
	switch m.mode {
	case ModeFileInput:
		what := "PNG"
		if m.fileOp == FileOpSavePDF {
			what = "PDF"
		}
		return fmt.Sprintf("Export %s as: %s_  (Enter to save, Esc to cancel)", what, m.filename)
	case ModeConfirm:
		if m.confirmAction == ConfirmQuit {
			return "Quit? (y/n)"
		}
		return "Clear all shapes? (y/n)"
	}
	if m.errorMessage != "" {
		return errorStyle.Render("ERROR: " + m.errorMessage)
	}
	return barStyle.Render("c/r tool | 1-8 color | space press | d delete | u/U undo/redo | x clear | s/S export | ? help | q quit")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
