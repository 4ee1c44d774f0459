package compose

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// RenderInput is everything a section renderer needs to emit one page.
type RenderInput struct {
	Section tmpl.Section

	// ArtifactPath points at the page definition: the section's own template
	// path for the main page, the addendum template path for overflow pages.
	ArtifactPath string

	// Data is the data tree for this page, already substituted with the
	// overflow slice and narrowed to the section's view model when one is
	// configured.
	Data map[string]any

	// Values holds the resolved field values, overflow indicators included.
	Values map[string]string
}

// SectionRenderer emits one page for a section. Implementations add the page
// themselves so multi-page expansion stays in the composer's control.
type SectionRenderer interface {
	Type() tmpl.RendererType
	RenderPage(rc *Context, canvas pdf.Canvas, in RenderInput) error
}

// Registry stores section renderers by renderer type.
type Registry struct {
	mu        sync.RWMutex
	renderers map[tmpl.RendererType]SectionRenderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[tmpl.RendererType]SectionRenderer)}
}

// Register adds a renderer by its Type(). Duplicate types return an error.
func (r *Registry) Register(renderer SectionRenderer) error {
	if renderer == nil {
		return fmt.Errorf("compose: renderer is required")
	}
	typ := renderer.Type()
	if typ == "" {
		return fmt.Errorf("compose: renderer type is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[typ]; exists {
		return fmt.Errorf("compose: renderer %q already registered", typ)
	}
	r.renderers[typ] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer SectionRenderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by type.
func (r *Registry) Get(typ tmpl.RendererType) (SectionRenderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[typ]
	if !ok {
		return nil, &UnsupportedRenderTypeError{RenderType: string(typ)}
	}
	return renderer, nil
}

// Has reports whether a renderer is registered for the type.
func (r *Registry) Has(typ tmpl.RendererType) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[typ]
	return ok
}
