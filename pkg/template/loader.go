package template

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"
	"sync"
)

// Loader resolves a template identifier to a fully merged Template.
type Loader interface {
	Load(ctx context.Context, id string) (*Template, error)
	ClearCache()
}

// maxInheritanceDepth bounds parent chains; the cycle check catches repeats,
// this catches pathological non-repeating chains.
const maxInheritanceDepth = 32

// LoaderOption customises a cached loader.
type LoaderOption func(*CachedLoader)

// WithFS supplies the filesystem holding template artifacts.
func WithFS(fsys fs.FS) LoaderOption {
	return func(l *CachedLoader) {
		l.fsys = fsys
	}
}

// WithBaseDir loads template artifacts from a directory on disk.
func WithBaseDir(dir string) LoaderOption {
	return func(l *CachedLoader) {
		dir = strings.TrimSpace(dir)
		if dir != "" {
			l.fsys = os.DirFS(dir)
		}
	}
}

// WithExtension overrides the artifact extension appended to bare
// identifiers. Defaults to .yaml.
func WithExtension(ext string) LoaderOption {
	return func(l *CachedLoader) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		l.ext = ext
	}
}

// WithLoaderLogger injects the loader's diagnostic logger.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *CachedLoader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// CachedLoader parses template artifacts, resolves inheritance, and caches
// the merged result keyed by the requested identifier for the process
// lifetime (or until ClearCache). Safe for concurrent use: duplicate
// concurrent misses may parse redundantly, the last write wins and every
// winner is equivalent.
type CachedLoader struct {
	fsys   fs.FS
	ext    string
	logger *slog.Logger

	mu    sync.RWMutex
	cache map[string]*Template
}

// NewLoader constructs a CachedLoader.
func NewLoader(options ...LoaderOption) *CachedLoader {
	l := &CachedLoader{
		ext:    ".yaml",
		logger: slog.Default(),
		cache:  make(map[string]*Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load returns the merged template for id, parsing at most its inheritance
// chain on a cache miss.
func (l *CachedLoader) Load(ctx context.Context, id string) (*Template, error) {
	l.mu.RLock()
	cached, hit := l.cache[id]
	l.mu.RUnlock()
	if hit {
		return cached, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tpl, err := l.resolve(id, nil)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[id] = tpl
	l.mu.Unlock()

	l.logger.Debug("template resolved",
		slog.String("template", id),
		slog.Int("sections", len(tpl.Sections)))
	return tpl, nil
}

// ClearCache drops every cached template; subsequent loads re-parse.
func (l *CachedLoader) ClearCache() {
	l.mu.Lock()
	l.cache = make(map[string]*Template)
	l.mu.Unlock()
}

func (l *CachedLoader) resolve(id string, chain []string) (*Template, error) {
	for _, ancestor := range chain {
		if ancestor == id {
			return nil, &CycleError{Chain: append(chain, id)}
		}
	}
	if len(chain) >= maxInheritanceDepth {
		return nil, &CycleError{Chain: append(chain, id)}
	}

	raw, err := l.read(id)
	if err != nil {
		return nil, &NotFoundError{ID: id, Err: err}
	}

	tpl, err := Parse(raw)
	if err != nil {
		return nil, &ParseError{ID: id, Err: err}
	}

	if tpl.Parent != "" {
		parent, err := l.resolve(tpl.Parent, append(chain, id))
		if err != nil {
			return nil, err
		}
		tpl = Merge(parent, tpl)
	} else {
		tpl = finalizeRoot(tpl)
	}

	if err := validateResolved(tpl); err != nil {
		return nil, &ParseError{ID: id, Err: err}
	}
	return tpl, nil
}

func (l *CachedLoader) read(id string) ([]byte, error) {
	name := id
	if path.Ext(name) == "" {
		name += l.ext
	}
	if l.fsys == nil {
		return os.ReadFile(name)
	}
	return fs.ReadFile(l.fsys, name)
}

// finalizeRoot normalises a template without a parent: exclusion markers
// have nothing to remove and are dropped, sections are put in render order.
func finalizeRoot(tpl *Template) *Template {
	out := &Template{
		ID:           tpl.ID,
		HeaderFooter: tpl.HeaderFooter,
	}
	for _, sec := range tpl.Sections {
		if sec.Exclude {
			continue
		}
		out.Sections = append(out.Sections, copySection(sec))
	}
	sortSections(out.Sections)
	return out
}
