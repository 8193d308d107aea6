package main

import tea "github.com/charmbracelet/bubbletea"

func (m *model) handleNavigation(key string, speed int) (tea.Model, tea.Cmd) {
	m.cursorShown = true
	if m.zPanMode {
		m.handlePan(key, speed)
	} else {
		m.handleCursorMove(key, speed)
	}
	return *m, nil
}

// handlePan shifts the view by whole cells so the pixel mapping stays aligned.
func (m *model) handlePan(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed * cellWidth
	case "l", "right", "L", "shift+right":
		m.panX += speed * cellWidth
	case "k", "up", "K", "shift+up":
		m.panY -= speed * cellHeight
	case "j", "down", "J", "shift+down":
		m.panY += speed * cellHeight
	}
	if m.panX < 0 {
		m.panX = 0
	}
	if m.panY < 0 {
		m.panY = 0
	}
	if m.keyPointer {
		m.canvas.PointerDrag(m.cursorPoint())
	}
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.keyPointer {
		m.canvas.PointerDrag(m.cursorPoint())
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	if m.cursorX < 0 {
		m.cursorX = 0
	}
	if m.cursorY < 0 {
		m.cursorY = 0
	}
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	if maxY := m.canvasRows() - 1; m.height > 0 && m.cursorY > maxY {
		m.cursorY = maxY
	}
}
