package main

import "image/color"

type Mode int

const (
	ModeNormal Mode = iota
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSavePDF
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
)

const (
	// Pixels per terminal cell, shared by input mapping and export sizing.
	cellWidth  = 8
	cellHeight = 16

	// status line and shortcut bar
	chromeHeight = 2
)

var palette = []color.RGBA{
	{R: 30, G: 144, B: 255, A: 255},
	{R: 220, G: 20, B: 60, A: 255},
	{R: 50, G: 205, B: 50, A: 255},
	{R: 255, G: 215, B: 0, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 148, G: 0, B: 211, A: 255},
	{R: 0, G: 206, B: 209, A: 255},
	{R: 40, G: 40, B: 40, A: 255},
}
