package pdf

import (
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// Option customises the gofpdf-backed canvas.
type Option func(*config)

type config struct {
	orientation string
	unit        string
	size        string
	fontDir     string
	title       string
	marginLeft  float64
	marginTop   float64
	marginRight float64
}

// WithPageSize sets the page format (A4, Letter, Legal...). Defaults to A4.
func WithPageSize(size string) Option {
	return func(cfg *config) {
		size = strings.TrimSpace(size)
		if size != "" {
			cfg.size = size
		}
	}
}

// WithOrientation sets page orientation, P or L. Defaults to portrait.
func WithOrientation(orientation string) Option {
	return func(cfg *config) {
		orientation = strings.TrimSpace(orientation)
		if orientation != "" {
			cfg.orientation = orientation
		}
	}
}

// WithUnit sets the measurement unit (mm, cm, in, pt). Defaults to mm.
func WithUnit(unit string) Option {
	return func(cfg *config) {
		unit = strings.TrimSpace(unit)
		if unit != "" {
			cfg.unit = unit
		}
	}
}

// WithFontDir points the engine at a directory of font definition files for
// non-core fonts.
func WithFontDir(dir string) Option {
	return func(cfg *config) {
		cfg.fontDir = strings.TrimSpace(dir)
	}
}

// WithTitle sets the document title metadata.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// WithMargins overrides the default page margins.
func WithMargins(left, top, right float64) Option {
	return func(cfg *config) {
		cfg.marginLeft = left
		cfg.marginTop = top
		cfg.marginRight = right
	}
}

type fpdfCanvas struct {
	pdf *gofpdf.Fpdf
}

// NewCanvas builds a Canvas backed by gofpdf. One canvas serves one
// generation request; canvases are never shared.
func NewCanvas(options ...Option) Canvas {
	cfg := &config{
		orientation: "P",
		unit:        "mm",
		size:        "A4",
		marginLeft:  15,
		marginTop:   15,
		marginRight: 15,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	doc := gofpdf.New(cfg.orientation, cfg.unit, cfg.size, cfg.fontDir)
	doc.SetMargins(cfg.marginLeft, cfg.marginTop, cfg.marginRight)
	doc.SetAutoPageBreak(false, 0)
	if cfg.title != "" {
		doc.SetTitle(cfg.title, true)
	}
	doc.SetFont("Helvetica", "", 10)

	return &fpdfCanvas{pdf: doc}
}

func (c *fpdfCanvas) AddPage() {
	c.pdf.AddPage()
}

func (c *fpdfCanvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *fpdfCanvas) UsePage(n int) {
	c.pdf.SetPage(n)
}

func (c *fpdfCanvas) PageSize() (float64, float64) {
	return c.pdf.GetPageSize()
}

func (c *fpdfCanvas) Margins() (float64, float64, float64, float64) {
	return c.pdf.GetMargins()
}

func (c *fpdfCanvas) SetFont(family, style string, size float64) {
	if family == "" {
		family = "Helvetica"
	}
	if size <= 0 {
		size = 10
	}
	c.pdf.SetFont(family, style, size)
}

func (c *fpdfCanvas) TextWidth(s string) float64 {
	return c.pdf.GetStringWidth(s)
}

func (c *fpdfCanvas) DrawText(x, y float64, text string) {
	c.pdf.Text(x, y, text)
}

func (c *fpdfCanvas) DrawTextBox(x, y, w, h float64, text, align string) {
	c.pdf.SetXY(x, y)
	c.pdf.CellFormat(w, h, text, "", 0, NormalizeAlign(align), false, 0, "")
}

func (c *fpdfCanvas) DrawMultiline(x, y, w, lineHeight float64, text string) {
	c.pdf.SetXY(x, y)
	c.pdf.MultiCell(w, lineHeight, text, "", "L", false)
}

func (c *fpdfCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) DrawImage(path string, x, y, w, h float64) error {
	c.pdf.ImageOptions(path, x, y, w, h, false, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	return c.pdf.Error()
}

func (c *fpdfCanvas) Err() error {
	return c.pdf.Error()
}

func (c *fpdfCanvas) Output(w io.Writer) error {
	return c.pdf.Output(w)
}
