package compose

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// templatedViewRenderer produces a page by substituting the data model into a
// text template and flowing the result down the page.
type templatedViewRenderer struct {
	fontFamily string
	fontSize   float64
	lineHeight float64
}

// NewTemplatedViewRenderer builds the templated-view section renderer with
// its default body font.
func NewTemplatedViewRenderer() SectionRenderer {
	return &templatedViewRenderer{
		fontFamily: "Helvetica",
		fontSize:   10,
		lineHeight: 5,
	}
}

func (r *templatedViewRenderer) Type() tmpl.RendererType { return tmpl.RendererTemplatedView }

func (r *templatedViewRenderer) RenderPage(rc *Context, canvas pdf.Canvas, in RenderInput) error {
	text, err := rc.Text(in.ArtifactPath)
	if err != nil {
		return err
	}

	model := pongo2.Context{}
	for key, value := range in.Data {
		model[key] = value
	}
	model["fields"] = in.Values
	model["meta"] = rc.Metadata

	body, err := text.Execute(model)
	if err != nil {
		return fmt.Errorf("compose: execute text template %q: %w", in.ArtifactPath, err)
	}

	canvas.AddPage()
	rc.PageAdded()

	left, top, right, _ := canvas.Margins()
	width, _ := canvas.PageSize()
	canvas.SetFont(r.fontFamily, "", r.fontSize)
	canvas.DrawMultiline(left, top, width-left-right, r.lineHeight, strings.TrimRight(body, "\n"))
	return canvas.Err()
}
