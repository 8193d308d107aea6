package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"figedit/internal/editor"
)

func main() {
	configPath := flag.String("config", "", "config file (default ~/.figeditrc)")
	debug := flag.Bool("debug", false, "write debug logs to the -log file")
	logPath := flag.String("log", "figedit.log", "debug log file")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile(*logPath, "figedit")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
		editor.SetLogger(logger)
	} else {
		slog.SetDefault(slog.New(slog.DiscardHandler))
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "figedit: config: %v (using defaults)\n", err)
		config = defaultConfig()
	}

	p := tea.NewProgram(
		initialModel(config),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

func initialModel(config *Config) model {
	return model{
		canvas: editor.NewCanvas(
			editor.WithDrawColor(config.Color),
			editor.WithShapeKind(config.Shape),
			editor.WithSnapDistance(config.SnapDistance),
		),
		config:        config,
		mode:          ModeNormal,
		selectedColor: paletteIndex(config.Color),
	}
}

func paletteIndex(c color.RGBA) int {
	for i, p := range palette {
		if p == c {
			return i
		}
	}
	return -1
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		if m.mode != ModeNormal || m.help {
			return m, nil
		}
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg)
		}
		switch m.mode {
		case ModeFileInput:
			return m.handleFileInput(msg)
		case ModeConfirm:
			return m.handleConfirm(msg)
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	x, y := msg.X, msg.Y
	if x < 0 {
		x = 0
	}
	if rows := m.canvasRows(); y >= rows {
		// the status rows only accept the end of a gesture
		if msg.Action == tea.MouseActionPress {
			return
		}
		y = rows - 1
	}
	p := m.cellToPoint(x, y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.errorMessage = ""
			m.successMessage = ""
			m.keyPointer = false
			m.cursorShown = false
			m.canvas.PointerDown(p, msg.Shift || msg.Alt || msg.Ctrl)
		case tea.MouseButtonWheelUp:
			m.handlePan("k", 1)
		case tea.MouseButtonWheelDown:
			m.handlePan("j", 1)
		}
	case tea.MouseActionMotion:
		if m.canvas.State() != editor.StateIdle {
			m.canvas.PointerDrag(p)
		}
	case tea.MouseActionRelease:
		if m.canvas.State() != editor.StateIdle && !m.keyPointer {
			m.canvas.PointerUp(p)
		}
	}
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	m.errorMessage = ""
	m.successMessage = ""

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "q":
		if m.config.Confirmations && m.canvas.Len() > 0 {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
		return m, nil
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		return m.handleNavigation(key, m.getMoveSpeed(key))
	case "z":
		m.zPanMode = !m.zPanMode
	case " ", "v":
		m.cursorShown = true
		if m.keyPointer {
			m.canvas.PointerUp(m.cursorPoint())
			m.keyPointer = false
		} else {
			m.canvas.PointerDown(m.cursorPoint(), key == "v")
			m.keyPointer = m.canvas.State() != editor.StateIdle
		}
	case "esc":
		m.canvas.Cancel()
		m.keyPointer = false
		m.zPanMode = false
	case "delete", "backspace", "d":
		m.keyPointer = false
		if m.canvas.DeleteSelected() {
			m.successMessage = "deleted shape"
		} else {
			m.errorMessage = "nothing selected"
		}
	case "u", "ctrl+z":
		m.keyPointer = false
		m.undo()
	case "U", "ctrl+y":
		m.keyPointer = false
		m.redo()
	case "c":
		m.canvas.SetShapeKind(editor.KindCircle)
	case "r":
		m.canvas.SetShapeKind(editor.KindRectangle)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		m.selectedColor = int(key[0] - '1')
		m.canvas.SetDrawColor(palette[m.selectedColor])
	case "p":
		m.pasteColor()
	case "y":
		m.copyColor()
	case "x":
		if m.canvas.Len() == 0 {
			m.errorMessage = "canvas is empty"
			return m, nil
		}
		if m.config.Confirmations {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmClear
			return m, nil
		}
		m.clearAll()
	case "s", "S":
		m.canvas.Cancel()
		m.keyPointer = false
		m.mode = ModeFileInput
		m.fileOp = FileOpSavePNG
		if key == "S" {
			m.fileOp = FileOpSavePDF
		}
		m.filename = m.defaultExportName()
	}
	return m, nil
}

func (m *model) clearAll() {
	m.keyPointer = false
	if m.canvas.ClearAll() {
		m.successMessage = "cleared canvas"
	}
}

func (m *model) pasteColor() {
	text, err := readClipboardText()
	if err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	c, err := parseHexColor(text)
	if err != nil {
		m.errorMessage = fmt.Sprintf("clipboard color %q: %v", strings.TrimSpace(text), err)
		return
	}
	m.canvas.SetDrawColor(c)
	m.selectedColor = paletteIndex(c)
	m.successMessage = "color " + toHex(c)
}

func (m *model) copyColor() {
	c := m.canvas.DrawColor()
	if s, ok := m.canvas.Selected(); ok {
		c = s.Color
	}
	if err := writeClipboardText(toHex(c)); err != nil {
		m.errorMessage = fmt.Sprintf("clipboard: %v", err)
		return
	}
	m.successMessage = "copied " + toHex(c)
}

func (m model) handleFileInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		m.errorMessage = ""
		if m.runExport(m.filename) {
			m.mode = ModeNormal
			m.filename = ""
		}
	case tea.KeyBackspace:
		if len(m.filename) > 0 {
			m.filename = m.filename[:len(m.filename)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filename += string(msg.Runes)
	}
	return m, nil
}

func (m model) handleConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	switch msg.String() {
	case "y", "Y":
		if m.confirmAction == ConfirmQuit {
			return m, tea.Quit
		}
		m.clearAll()
	}
	return m, nil
}

func (m model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	width := m.width
	if width < 1 {
		width = 80
	}
	lines := m.renderCanvas(width, m.canvasRows())

	var result strings.Builder
	result.WriteString(strings.Join(lines, "\n"))
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	result.WriteString("\n")
	result.WriteString(m.shortcutBar())
	return result.String()
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		if m.zPanMode {
			return "PAN"
		}
		return "NORMAL"
	case ModeFileInput:
		return "FILE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

var helpLines = []string{
	"figedit Help",
	"============",
	"",
	"Mouse:",
	"------",
	"  Click            Create a shape of the default size centred on the click",
	"  Drag on empty    Create a shape spanning the drag",
	"  Click a shape    Select it (topmost wins)",
	"  Drag a shape     Move it; edges snap to nearby shapes",
	"  Shift/Alt/Ctrl   Hold while pressing to select without creating",
	"  Wheel            Scroll the canvas",
	"",
	"Keyboard pointer:",
	"-----------------",
	"  h/←/j/↓/k/↑/l/→  Move cursor (drags while the pointer is held)",
	"  Shift+h/j/k/l    Move cursor 2x faster",
	"  space            Press / release the pointer at the cursor",
	"  v                Press with the selection modifier",
	"  z                Toggle pan mode (direction keys scroll the canvas)",
	"",
	"Editing:",
	"--------",
	"  c / r            Circle / rectangle tool",
	"  1-8              Pick palette color",
	"  p                Paste #RRGGBB color from clipboard",
	"  y                Copy selected (or current) color to clipboard",
	"  d/Delete         Delete selected shape",
	"  x                Clear all shapes",
	"  u / Ctrl+Z       Undo",
	"  U / Ctrl+Y       Redo",
	"  Esc              Cancel current gesture",
	"",
	"Export:",
	"-------",
	"  s                Export PNG",
	"  S                Export PDF",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) helpView() string {
	visibleHeight := m.height - 1
	if visibleHeight < 1 {
		visibleHeight = 1
	}

	startLine := m.helpScroll
	if startLine > len(helpLines)-visibleHeight {
		startLine = len(helpLines) - visibleHeight
	}
	if startLine < 0 {
		startLine = 0
	}
	endLine := startLine + visibleHeight
	if endLine > len(helpLines) {
		endLine = len(helpLines)
	}

	result := strings.Join(helpLines[startLine:endLine], "\n")
	result += "\n" + fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result
}
