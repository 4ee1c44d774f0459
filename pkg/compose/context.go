package compose

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// Context is the ephemeral per-request render state: the resolved template
// (shared, read-only), the input data tree, the page counter, a metadata map
// for cross-section signalling, and lazily populated artifact caches. A
// Context is owned by exactly one generation request and never reused.
type Context struct {
	Template *tmpl.Template
	Data     map[string]any

	// Metadata carries cross-section signals, e.g. overflow indicators.
	Metadata map[string]string

	fsys  fs.FS
	pages int

	layouts map[string]*pdf.Layout
	texts   map[string]*pongo2.Template
}

// NewContext builds the render context for one request. fsys holds the
// section artifacts (page layouts, text templates); nil falls back to the
// process working directory.
func NewContext(template *tmpl.Template, data map[string]any, fsys fs.FS) *Context {
	if data == nil {
		data = map[string]any{}
	}
	return &Context{
		Template: template,
		Data:     data,
		Metadata: make(map[string]string),
		fsys:     fsys,
		layouts:  make(map[string]*pdf.Layout),
		texts:    make(map[string]*pongo2.Template),
	}
}

// PageAdded records a newly emitted page and returns its 1-based number.
func (rc *Context) PageAdded() int {
	rc.pages++
	return rc.pages
}

// Pages reports how many pages have been emitted so far.
func (rc *Context) Pages() int { return rc.pages }

// Layout returns the parsed page layout at path, loading it on first use and
// reusing the handle for the rest of the request.
func (rc *Context) Layout(path string) (*pdf.Layout, error) {
	if layout, ok := rc.layouts[path]; ok {
		return layout, nil
	}

	raw, err := rc.readArtifact(path)
	if err != nil {
		return nil, fmt.Errorf("compose: read layout %q: %w", path, err)
	}
	layout, err := pdf.ParseLayout(raw)
	if err != nil {
		return nil, fmt.Errorf("compose: layout %q: %w", path, err)
	}

	rc.layouts[path] = layout
	return layout, nil
}

// Text returns the compiled text template at path, loading it on first use.
func (rc *Context) Text(path string) (*pongo2.Template, error) {
	if text, ok := rc.texts[path]; ok {
		return text, nil
	}

	raw, err := rc.readArtifact(path)
	if err != nil {
		return nil, fmt.Errorf("compose: read text template %q: %w", path, err)
	}
	text, err := pongo2.FromString(string(raw))
	if err != nil {
		return nil, fmt.Errorf("compose: text template %q: %w", path, err)
	}

	rc.texts[path] = text
	return text, nil
}

func (rc *Context) readArtifact(path string) ([]byte, error) {
	if rc.fsys == nil {
		return os.ReadFile(path)
	}
	return fs.ReadFile(rc.fsys, path)
}
