// Package pdf is the seam to the low-level page drawing engine. The composer
// only talks to Canvas; the default implementation wraps gofpdf.
package pdf

import (
	"io"
	"strings"
)

// Canvas is the drawing surface contract the composition engine consumes:
// page creation, positioned text, text measurement, and image placement.
// Coordinates are in the unit the canvas was constructed with, origin at the
// top-left corner of the page.
type Canvas interface {
	// AddPage appends a page and makes it current.
	AddPage()

	// PageCount reports the number of pages added so far.
	PageCount() int

	// UsePage makes an existing page current for additional drawing. Pages
	// are 1-based. Used by the header/footer pass after all sections exist.
	UsePage(n int)

	// PageSize returns the current page dimensions.
	PageSize() (w, h float64)

	// Margins returns the configured page margins.
	Margins() (left, top, right, bottom float64)

	// SetFont selects the font for subsequent text operations.
	SetFont(family, style string, size float64)

	// TextWidth measures s in the current font.
	TextWidth(s string) float64

	// DrawText places a single line with its baseline at (x, y).
	DrawText(x, y float64, text string)

	// DrawTextBox places text inside a fixed box, aligned L, C or R.
	DrawTextBox(x, y, w, h float64, text, align string)

	// DrawMultiline flows wrapped text into a column of the given width
	// starting at (x, y).
	DrawMultiline(x, y, w, lineHeight float64, text string)

	// DrawLine draws a straight line between two points.
	DrawLine(x1, y1, x2, y2 float64)

	// DrawImage places an image loaded from path. The underlying engine
	// caches decoded images by path for the life of the canvas.
	DrawImage(path string, x, y, w, h float64) error

	// Err reports the first drawing error recorded so far, if any.
	Err() error

	// Output writes the finished document.
	Output(w io.Writer) error
}

// NormalizeAlign maps the configured alignment names onto the single-letter
// codes the drawing engine understands. Unrecognised values default to left.
func NormalizeAlign(align string) string {
	switch strings.ToUpper(strings.TrimSpace(align)) {
	case "C", "CENTER":
		return "C"
	case "R", "RIGHT":
		return "R"
	default:
		return "L"
	}
}
