package main

import "figedit/internal/editor"

type model struct {
	width          int
	height         int
	cursorX        int
	cursorY        int
	zPanMode       bool
	panX           int
	panY           int
	canvas         *editor.Canvas
	keyPointer     bool
	cursorShown    bool
	mode           Mode
	help           bool
	helpScroll     int
	filename       string
	fileOp         FileOperation
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
	selectedColor  int // palette index, -1 for a custom colour
}
