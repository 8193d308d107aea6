package export

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"figedit/internal/editor"
)

const captionSize = 12.0

// Render draws shapes bottom to top onto a new image.
func Render(shapes []editor.Shape, opts Options) (image.Image, error) {
	dc, err := draw(shapes, opts)
	if err != nil {
		return nil, err
	}
	return scale(dc.Image(), opts.Scale), nil
}

// SavePNG renders shapes and writes them to filename as PNG.
func SavePNG(filename string, shapes []editor.Shape, opts Options) error {
	dc, err := draw(shapes, opts)
	if err != nil {
		return err
	}
	if opts.Scale <= 0 || opts.Scale == 1 {
		if err := dc.SavePNG(filename); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		return nil
	}
	if err := imaging.Save(scale(dc.Image(), opts.Scale), filename); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

func draw(shapes []editor.Shape, opts Options) (*gg.Context, error) {
	if len(shapes) == 0 {
		return nil, ErrNothingToExport
	}
	w, h := pageSize(shapes, opts)
	dc := gg.NewContext(w, h)
	dc.SetColor(background(opts))
	dc.Clear()

	for _, s := range shapes {
		drawShape(dc, s)
	}

	if opts.Caption != "" {
		face, err := captionFace()
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.Black)
		dc.DrawString(opts.Caption, 8, float64(h)-8)
	}
	return dc, nil
}

func drawShape(dc *gg.Context, s editor.Shape) {
	b := s.Bounds()
	switch s.Kind() {
	case editor.KindCircle:
		dc.DrawEllipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2)
	case editor.KindRectangle:
		dc.DrawRectangle(b.X, b.Y, b.W, b.H)
	default:
		return
	}
	dc.SetColor(s.Color)
	dc.FillPreserve()
	dc.SetColor(outline)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()
}

func captionFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func scale(img image.Image, factor float64) image.Image {
	if factor <= 0 || factor == 1 {
		return img
	}
	w := int(float64(img.Bounds().Dx())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	return imaging.Resize(img, w, 0, imaging.Lanczos)
}
