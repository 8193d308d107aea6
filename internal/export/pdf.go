package export

import (
	"fmt"
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"figedit/internal/editor"
)

// SavePDF writes shapes to filename as a single-page PDF. One pixel maps to
// one point.
func SavePDF(filename string, shapes []editor.Shape, opts Options) error {
	if len(shapes) == 0 {
		return ErrNothingToExport
	}
	w, h := pageSize(shapes, opts)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r, g, b, _ := rgb8(background(opts))
	pdf.SetFillColor(r, g, b)
	pdf.Rect(0, 0, float64(w), float64(h), "F")

	pdf.SetLineWidth(outlineWidth)
	for _, s := range shapes {
		pdfShape(pdf, s)
	}
	pdf.SetAlpha(1, "Normal")

	if opts.Caption != "" {
		pdf.SetFont("Helvetica", "", captionSize)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(8, float64(h)-8, opts.Caption)
	}

	if err := pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("save pdf: %w", err)
	}
	return nil
}

func pdfShape(pdf *gofpdf.Fpdf, s editor.Shape) {
	b := s.Bounds()
	path := func(style string) {
		switch s.Kind() {
		case editor.KindCircle:
			pdf.Ellipse(b.X+b.W/2, b.Y+b.H/2, b.W/2, b.H/2, 0, style)
		case editor.KindRectangle:
			pdf.Rect(b.X, b.Y, b.W, b.H, style)
		}
	}

	r, g, bl, a := rgb8(s.Color)
	pdf.SetFillColor(r, g, bl)
	pdf.SetAlpha(float64(a)/255, "Normal")
	path("F")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetAlpha(float64(outline.A)/255, "Normal")
	path("D")
}

func rgb8(c color.Color) (r, g, b, a int) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), int(n.A)
}
