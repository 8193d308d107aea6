package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"figedit/internal/export"
)

func (m *model) exportOptions() export.Options {
	opts := export.DefaultOptions()
	opts.Width = m.config.ExportWidth
	opts.Height = m.config.ExportHeight
	opts.Scale = m.config.ExportScale
	opts.Caption = m.config.Caption
	return opts
}

func (m *model) defaultExportName() string {
	if m.fileOp == FileOpSavePDF {
		return "figure.pdf"
	}
	return "figure.png"
}

// runExport writes the current shapes to name and reports whether it
// succeeded. Failures only touch the status line.
func (m *model) runExport(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		m.errorMessage = "no filename given"
		return false
	}

	ext := ".png"
	if m.fileOp == FileOpSavePDF {
		ext = ".pdf"
	}
	path, err := m.config.GetSavePath(withExt(name, ext))
	if err != nil {
		m.errorMessage = fmt.Sprintf("save directory: %v", err)
		return false
	}

	shapes := m.canvas.Shapes()
	if m.fileOp == FileOpSavePDF {
		err = export.SavePDF(path, shapes, m.exportOptions())
	} else {
		err = export.SavePNG(path, shapes, m.exportOptions())
	}
	switch {
	case errors.Is(err, export.ErrNothingToExport):
		m.errorMessage = "canvas is empty"
		return false
	case err != nil:
		slog.Error("export failed", "path", path, "err", err)
		m.errorMessage = err.Error()
		return false
	}
	slog.Info("exported", "path", path, "shapes", len(shapes))
	m.successMessage = "Exported to " + path
	return true
}
