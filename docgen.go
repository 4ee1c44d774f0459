// Package docgen assembles multi-page PDF documents from declarative
// templates plus runtime data: template inheritance, pluggable field-mapping
// strategies, overflow pagination, and header/footer compositing.
package docgen

import (
	"context"

	"github.com/goliatone/go-docgen/pkg/compose"
	"github.com/goliatone/go-docgen/pkg/mapping"
	"github.com/goliatone/go-docgen/pkg/template"
)

// Request describes one document generation.
type Request = compose.Request

// MappingType identifies a field-mapping expression language.
type MappingType = mapping.Type

// Aliases exported via the root package for convenience.
const (
	MappingDirect   = mapping.TypeDirect
	MappingJSONPath = mapping.TypeJSONPath
	MappingJSONata  = mapping.TypeJSONata
)

// NewComposer exposes the composer constructor from the top-level module.
func NewComposer(options ...compose.Option) *compose.Composer {
	return compose.New(options...)
}

// NewLoader constructs a cached template loader.
func NewLoader(options ...template.LoaderOption) template.Loader {
	return template.NewLoader(options...)
}

// Generate loads the named template, composes the document over data, and
// returns the finished PDF bytes. It is the simplest entry point for callers
// that just want a document out of a template directory.
func Generate(ctx context.Context, templateID string, data map[string]any, options ...compose.Option) ([]byte, error) {
	composer := compose.New(options...)
	return composer.Generate(ctx, compose.Request{
		TemplateID: templateID,
		Data:       data,
	})
}

// WithBaseDir points the composer at a directory holding template artifacts.
func WithBaseDir(dir string) compose.Option {
	return compose.WithBaseDir(dir)
}

// WithLoader injects a custom template loader.
func WithLoader(loader template.Loader) compose.Option {
	return compose.WithLoader(loader)
}
