package compose

import (
	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// formFillRenderer produces a page from a fixed layout artifact, filling its
// named field boxes with the resolved values.
type formFillRenderer struct{}

// NewFormFillRenderer builds the form-fill section renderer.
func NewFormFillRenderer() SectionRenderer {
	return &formFillRenderer{}
}

func (r *formFillRenderer) Type() tmpl.RendererType { return tmpl.RendererFormFill }

func (r *formFillRenderer) RenderPage(rc *Context, canvas pdf.Canvas, in RenderInput) error {
	layout, err := rc.Layout(in.ArtifactPath)
	if err != nil {
		return err
	}

	canvas.AddPage()
	rc.PageAdded()
	return layout.Render(canvas, in.Values)
}
