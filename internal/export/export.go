// Package export writes editor shapes to image and document files.
package export

import (
	"errors"
	"image/color"
	"math"

	"figedit/internal/editor"
)

// ErrNothingToExport is returned when there are no shapes to draw.
var ErrNothingToExport = errors.New("nothing to export")

// outline is drawn around every shape, matching the on-screen look.
var outline = color.NRGBA{A: 70}

const (
	outlineWidth = 1.2
	fitPadding   = 20
)

// Options controls the size and decoration of an export.
type Options struct {
	// Width and Height of the page in pixels. Zero fits the page to the shapes.
	Width, Height int
	Background    color.Color
	// Scale resamples PNG output; 0 and 1 leave it untouched.
	Scale   float64
	Caption string
}

// DefaultOptions returns options for an 1000x700 white page.
func DefaultOptions() Options {
	return Options{
		Width:      1000,
		Height:     700,
		Background: color.White,
		Scale:      1,
	}
}

// pageSize resolves the page size, fitting it to the shapes when unset.
// The origin stays at (0,0) so coordinates match the canvas.
func pageSize(shapes []editor.Shape, opts Options) (int, int) {
	w, h := opts.Width, opts.Height
	if w > 0 && h > 0 {
		return w, h
	}
	var maxX, maxY float64
	for _, s := range shapes {
		b := s.Bounds()
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}
	if w <= 0 {
		w = int(math.Ceil(maxX)) + fitPadding
	}
	if h <= 0 {
		h = int(math.Ceil(maxY)) + fitPadding
	}
	return w, h
}

func background(opts Options) color.Color {
	if opts.Background == nil {
		return color.White
	}
	return opts.Background
}
