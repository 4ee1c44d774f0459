// Package compose orchestrates document generation: template resolution,
// conditional section rendering, overflow pagination, and header/footer
// compositing over the final page set.
package compose

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-docgen/pkg/mapping"
	"github.com/goliatone/go-docgen/pkg/overflow"
	"github.com/goliatone/go-docgen/pkg/pdf"
	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// Option customises the composer configuration.
type Option func(*Composer)

// WithLoader injects a custom template loader.
func WithLoader(loader tmpl.Loader) Option {
	return func(c *Composer) {
		c.loader = loader
	}
}

// WithStrategySet injects the mapping strategy set.
func WithStrategySet(set *mapping.Set) Option {
	return func(c *Composer) {
		c.strategies = set
	}
}

// WithRegistry injects a section renderer registry.
func WithRegistry(registry *Registry) Option {
	return func(c *Composer) {
		c.registry = registry
	}
}

// WithHeaderFooterRenderer registers an additional header/footer renderer,
// replacing any existing renderer of the same type.
func WithHeaderFooterRenderer(renderer HeaderFooterRenderer) Option {
	return func(c *Composer) {
		if renderer == nil {
			return
		}
		if c.edgeRenderers == nil {
			c.edgeRenderers = make(map[string]HeaderFooterRenderer)
		}
		c.edgeRenderers[renderer.Type()] = renderer
	}
}

// WithArtifactsFS supplies the filesystem holding page layouts and text
// templates referenced by section template paths.
func WithArtifactsFS(fsys fs.FS) Option {
	return func(c *Composer) {
		c.artifacts = fsys
	}
}

// WithBaseDir points both the artifact filesystem and, unless a loader was
// injected, the template loader at a directory on disk.
func WithBaseDir(dir string) Option {
	return func(c *Composer) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return
		}
		c.baseDir = dir
		c.artifacts = os.DirFS(dir)
	}
}

// WithCanvasFactory overrides how the per-request drawing canvas is built.
func WithCanvasFactory(factory func() pdf.Canvas) Option {
	return func(c *Composer) {
		c.newCanvas = factory
	}
}

// WithLogger injects the diagnostic logger used for recovered failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Composer coordinates the full pipeline from template identifier to
// finished PDF bytes. It applies sensible defaults (built-in renderers,
// gofpdf canvas, cached loader) while remaining open to dependency injection.
type Composer struct {
	loader        tmpl.Loader
	strategies    *mapping.Set
	registry      *Registry
	edgeRenderers map[string]HeaderFooterRenderer
	artifacts     fs.FS
	baseDir       string
	newCanvas     func() pdf.Canvas
	logger        *slog.Logger
}

// New constructs a Composer applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Composer {
	c := &Composer{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}

	if c.loader == nil {
		loaderOptions := []tmpl.LoaderOption{tmpl.WithLoaderLogger(c.logger)}
		if c.baseDir != "" {
			loaderOptions = append(loaderOptions, tmpl.WithBaseDir(c.baseDir))
		}
		c.loader = tmpl.NewLoader(loaderOptions...)
	}
	if c.strategies == nil {
		c.strategies = mapping.NewSet(mapping.WithLogger(c.logger))
	}
	if c.registry == nil {
		c.registry = NewRegistry()
		c.registry.MustRegister(NewFormFillRenderer())
		c.registry.MustRegister(NewTemplatedViewRenderer())
	}
	if c.edgeRenderers == nil {
		c.edgeRenderers = make(map[string]HeaderFooterRenderer)
	}
	for _, renderer := range []HeaderFooterRenderer{NewTextEdgeRenderer(), NewImageEdgeRenderer()} {
		if _, exists := c.edgeRenderers[renderer.Type()]; !exists {
			c.edgeRenderers[renderer.Type()] = renderer
		}
	}
	if c.newCanvas == nil {
		c.newCanvas = func() pdf.Canvas { return pdf.NewCanvas() }
	}
	return c
}

// Request describes one document generation.
type Request struct {
	// TemplateID names the template to load. Ignored when Template is set.
	TemplateID string

	// Template bypasses the loader for callers holding a resolved template.
	Template *tmpl.Template

	// Data is the input data tree. Read-only for the duration of the request.
	Data map[string]any

	// Canvas overrides the per-request drawing canvas.
	Canvas pdf.Canvas
}

// Generate executes the load → render sections → overflow → headers/footers
// sequence and returns the finished PDF bytes. Field-level mapping failures
// degrade to empty values; section-level failures abort with context.
func (c *Composer) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("compose: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	template, err := c.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}

	canvas := req.Canvas
	if canvas == nil {
		canvas = c.newCanvas()
	}

	rc := NewContext(template, req.Data, c.artifacts)

	for _, section := range template.Sections {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		render, err := c.evaluateCondition(rc, section)
		if err != nil {
			return nil, &SectionError{TemplateID: template.ID, SectionID: section.ID, Err: err}
		}
		if !render {
			c.logger.Debug("section skipped by condition",
				slog.String("template", template.ID),
				slog.String("section", section.ID))
			continue
		}

		if err := c.renderSection(rc, canvas, section); err != nil {
			return nil, &SectionError{TemplateID: template.ID, SectionID: section.ID, Err: err}
		}
	}

	if err := c.applyHeadersFooters(rc, canvas); err != nil {
		return nil, fmt.Errorf("compose: template %q headers/footers: %w", template.ID, err)
	}

	if err := canvas.Err(); err != nil {
		return nil, fmt.Errorf("compose: template %q: drawing: %w", template.ID, err)
	}

	var buf bytes.Buffer
	if err := canvas.Output(&buf); err != nil {
		return nil, fmt.Errorf("compose: template %q: output: %w", template.ID, err)
	}
	return buf.Bytes(), nil
}

func (c *Composer) resolveTemplate(ctx context.Context, req Request) (*tmpl.Template, error) {
	if req.Template != nil {
		return req.Template, nil
	}
	if req.TemplateID == "" {
		return nil, errors.New("compose: template id or template is required")
	}
	return c.loader.Load(ctx, req.TemplateID)
}

// evaluateCondition runs the section's condition in its own mapping language.
// A falsy or missing result skips the section; an evaluator failure is
// logged and also skips, so one broken condition cannot sink the document.
func (c *Composer) evaluateCondition(rc *Context, section tmpl.Section) (bool, error) {
	if section.Condition == "" {
		return true, nil
	}

	strategy, err := c.strategies.For(typeOrDefault(section.MappingType, ""))
	if err != nil {
		return false, err
	}

	value, err := strategy.EvaluatePath(rc.Data, section.Condition)
	if err != nil {
		c.logger.Warn("section condition failed, skipping section",
			slog.String("template", rc.Template.ID),
			slog.String("section", section.ID),
			slog.String("condition", section.Condition),
			slog.Any("error", err))
		return false, nil
	}
	return mapping.Truthy(value), nil
}

// addendumPage pairs an addendum artifact with the batch-substituted data it
// renders from.
type addendumPage struct {
	artifactPath string
	data         map[string]any
}

func (c *Composer) renderSection(rc *Context, canvas pdf.Canvas, section tmpl.Section) error {
	renderer, err := c.registry.Get(section.Renderer)
	if err != nil {
		return err
	}

	mainData := rc.Data
	indicators := make(map[string]string)
	var addenda []addendumPage

	for _, cfg := range section.Overflow {
		strategy, err := c.strategies.For(typeOrDefault(cfg.MappingType, section.MappingType))
		if err != nil {
			return err
		}

		raw, err := strategy.EvaluatePath(rc.Data, cfg.ArrayPath)
		if err != nil {
			return fmt.Errorf("resolve overflow array %q: %w", cfg.ArrayPath, err)
		}
		items := toItems(raw)

		plan, err := overflow.Split(items, cfg.MaxItemsInMain, cfg.ItemsPerPage)
		if err != nil {
			return err
		}

		// The main page sees only the items that fit; addendum pages each see
		// their own batch substituted at the same path.
		mainData = withValueAt(mainData, cfg.ArrayPath, plan.MainPageItems)

		if !plan.Overflowed() {
			continue
		}

		rc.Metadata["overflow."+section.ID] = "true"
		if cfg.IndicatorField != "" {
			indicators[cfg.IndicatorField] = "true"
		}
		for _, batch := range plan.AddendumBatches {
			addenda = append(addenda, addendumPage{
				artifactPath: cfg.AddendumTemplatePath,
				data:         withValueAt(rc.Data, cfg.ArrayPath, batch),
			})
		}
	}

	values, err := c.resolveFields(section, mainData)
	if err != nil {
		return err
	}
	for name, value := range indicators {
		values[name] = value
	}

	if err := renderer.RenderPage(rc, canvas, RenderInput{
		Section:      section,
		ArtifactPath: section.TemplatePath,
		Data:         c.viewModelData(section, mainData),
		Values:       values,
	}); err != nil {
		return err
	}

	for _, page := range addenda {
		values, err := c.resolveFields(section, page.data)
		if err != nil {
			return err
		}
		if err := renderer.RenderPage(rc, canvas, RenderInput{
			Section:      section,
			ArtifactPath: page.artifactPath,
			Data:         c.viewModelData(section, page.data),
			Values:       values,
		}); err != nil {
			return err
		}
	}
	return nil
}

// resolveFields maps the section's fields. Groups apply in declaration
// order, later groups overwriting overlapping names; otherwise the section's
// single mapping type and field map are used.
func (c *Composer) resolveFields(section tmpl.Section, data map[string]any) (map[string]string, error) {
	if len(section.Groups) > 0 {
		out := make(map[string]string)
		for _, group := range section.Groups {
			strategy, err := c.strategies.For(typeOrDefault(group.MappingType, section.MappingType))
			if err != nil {
				return nil, err
			}
			for name, value := range strategy.Map(data, group.Fields) {
				out[name] = value
			}
		}
		return out, nil
	}

	if len(section.Fields) == 0 {
		return make(map[string]string), nil
	}

	strategy, err := c.strategies.For(typeOrDefault(section.MappingType, ""))
	if err != nil {
		return nil, err
	}
	return strategy.Map(data, section.Fields), nil
}

// viewModelData narrows the page's data tree to the section's view model
// subtree when one is configured. A view model path that does not resolve to
// a map leaves the full tree in place.
func (c *Composer) viewModelData(section tmpl.Section, data map[string]any) map[string]any {
	if section.ViewModel == "" {
		return data
	}

	segments := pathSegments(section.ViewModel)
	var current any = data
	for _, segment := range segments {
		container, ok := current.(map[string]any)
		if !ok {
			return data
		}
		current, ok = container[segment]
		if !ok {
			return data
		}
	}
	if narrowed, ok := current.(map[string]any); ok {
		return narrowed
	}
	return data
}
