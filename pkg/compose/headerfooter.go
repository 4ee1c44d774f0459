package compose

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// Slot distinguishes the page edge a header/footer item renders into.
type Slot int

const (
	// SlotHeader places content along the top edge.
	SlotHeader Slot = iota
	// SlotFooter places content along the bottom edge.
	SlotFooter
)

// defaultEdgeOffset is the distance from the page edge to the first
// header/footer baseline when an item does not configure one.
const defaultEdgeOffset = 10.0

// HeaderFooterRenderer draws one configured header or footer item onto the
// current page. pageNumber is 1-based; both it and totalPages are available
// to the item's template text.
type HeaderFooterRenderer interface {
	Type() string
	Render(rc *Context, canvas pdf.Canvas, item tmpl.HeaderFooterItem, slot Slot, pageNumber, totalPages int) error
}

// applyHeadersFooters composites the configured header/footer items across
// every non-excluded page of the finished document. A missing render type is
// fatal; a failure rendering one item is logged and skipped.
func (c *Composer) applyHeadersFooters(rc *Context, canvas pdf.Canvas) error {
	cfg := rc.Template.HeaderFooter
	if cfg.Empty() {
		return nil
	}

	excluded := make(map[int]struct{}, len(cfg.ExcludePages))
	for _, page := range cfg.ExcludePages {
		excluded[page] = struct{}{}
	}

	total := canvas.PageCount()
	for index := 0; index < total; index++ {
		if _, skip := excluded[index]; skip {
			continue
		}
		canvas.UsePage(index + 1)

		for _, item := range cfg.Header {
			if err := c.renderEdgeItem(rc, canvas, item, SlotHeader, index+1, total); err != nil {
				return err
			}
		}
		for _, item := range cfg.Footer {
			if err := c.renderEdgeItem(rc, canvas, item, SlotFooter, index+1, total); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Composer) renderEdgeItem(rc *Context, canvas pdf.Canvas, item tmpl.HeaderFooterItem, slot Slot, pageNumber, total int) error {
	renderer, ok := c.edgeRenderers[item.RenderType]
	if !ok {
		return &UnsupportedRenderTypeError{RenderType: item.RenderType}
	}

	if err := renderer.Render(rc, canvas, item, slot, pageNumber, total); err != nil {
		c.logger.Warn("header/footer item failed",
			slog.String("template", rc.Template.ID),
			slog.String("render_type", item.RenderType),
			slog.Int("page", pageNumber),
			slog.Any("error", err))
	}
	return nil
}

// textEdgeRenderer substitutes the data context plus pageNumber/totalPages
// into the item's template text and lays the lines out with the configured
// alignment computed from measured text width.
type textEdgeRenderer struct {
	lineHeight float64
}

// NewTextEdgeRenderer builds the built-in "text" header/footer renderer.
func NewTextEdgeRenderer() HeaderFooterRenderer {
	return &textEdgeRenderer{lineHeight: 5}
}

func (r *textEdgeRenderer) Type() string { return "text" }

func (r *textEdgeRenderer) Render(rc *Context, canvas pdf.Canvas, item tmpl.HeaderFooterItem, slot Slot, pageNumber, total int) error {
	compiled, err := pongo2.FromString(item.Template)
	if err != nil {
		return fmt.Errorf("compose: header/footer template: %w", err)
	}

	model := pongo2.Context{}
	for key, value := range rc.Data {
		model[key] = value
	}
	model["pageNumber"] = pageNumber
	model["totalPages"] = total

	content, err := compiled.Execute(model)
	if err != nil {
		return fmt.Errorf("compose: header/footer template: %w", err)
	}

	family := item.FontFamily
	if family == "" {
		family = "Helvetica"
	}
	size := item.FontSize
	if size <= 0 {
		size = 9
	}
	canvas.SetFont(family, item.FontStyle, size)

	pageWidth, pageHeight := canvas.PageSize()
	left, _, right, _ := canvas.Margins()

	offset := item.Offset
	if offset <= 0 {
		offset = defaultEdgeOffset
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		y := offset + float64(i)*r.lineHeight
		if slot == SlotFooter {
			y = pageHeight - offset + float64(i)*r.lineHeight
		}

		x := left
		switch pdf.NormalizeAlign(item.Align) {
		case "C":
			x = (pageWidth - canvas.TextWidth(line)) / 2
		case "R":
			x = pageWidth - right - canvas.TextWidth(line)
		}
		canvas.DrawText(x, y, line)
	}
	return canvas.Err()
}

// imageEdgeRenderer places a static image (a logo, a signature strip) along
// the page edge.
type imageEdgeRenderer struct{}

// NewImageEdgeRenderer builds the built-in "image" header/footer renderer.
func NewImageEdgeRenderer() HeaderFooterRenderer {
	return &imageEdgeRenderer{}
}

func (r *imageEdgeRenderer) Type() string { return "image" }

func (r *imageEdgeRenderer) Render(rc *Context, canvas pdf.Canvas, item tmpl.HeaderFooterItem, slot Slot, pageNumber, total int) error {
	if item.Source == "" {
		return fmt.Errorf("compose: image header/footer item missing source")
	}

	pageWidth, pageHeight := canvas.PageSize()
	left, _, right, _ := canvas.Margins()

	offset := item.Offset
	if offset <= 0 {
		offset = defaultEdgeOffset
	}

	y := offset
	if slot == SlotFooter {
		y = pageHeight - offset - item.Height
	}

	x := left
	switch pdf.NormalizeAlign(item.Align) {
	case "C":
		x = (pageWidth - item.Width) / 2
	case "R":
		x = pageWidth - right - item.Width
	}

	return canvas.DrawImage(item.Source, x, y, item.Width, item.Height)
}
