// Package template defines the declarative document template model, its YAML
// parsing, inheritance merging, and the cached loader.
package template

import "github.com/goliatone/go-docgen/pkg/mapping"

// RendererType selects how a section's page is produced.
type RendererType string

const (
	// RendererFormFill fills named field boxes on a fixed page layout.
	RendererFormFill RendererType = "form-fill"
	// RendererTemplatedView renders a text template over the data model and
	// lays the result out as flowing lines.
	RendererTemplatedView RendererType = "templated-view"
)

// Template is a resolved, inheritance-merged document definition. Templates
// and everything they own are immutable once the loader returns them; cached
// instances are shared across requests.
type Template struct {
	ID           string             `yaml:"template"`
	Parent       string             `yaml:"extends,omitempty"`
	Sections     []Section          `yaml:"sections"`
	HeaderFooter HeaderFooterConfig `yaml:"header_footer,omitempty"`
}

// Section returns the section with the given id, if present.
func (t *Template) Section(id string) (Section, bool) {
	for _, sec := range t.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Section is one page-producing unit of a template.
type Section struct {
	ID           string              `yaml:"id"`
	Renderer     RendererType        `yaml:"renderer,omitempty"`
	TemplatePath string              `yaml:"template_path,omitempty"`
	MappingType  mapping.Type        `yaml:"mapping_type,omitempty"`
	Fields       map[string]string   `yaml:"fields,omitempty"`
	Groups       []FieldMappingGroup `yaml:"mapping_groups,omitempty"`
	ViewModel    string              `yaml:"view_model,omitempty"`
	Condition    string              `yaml:"condition,omitempty"`
	Overflow     []OverflowConfig    `yaml:"overflow,omitempty"`
	Order        int                 `yaml:"order,omitempty"`

	// Exclude marks a parent section for removal during merge. It never
	// survives into a resolved template.
	Exclude bool `yaml:"exclude,omitempty"`
}

// FieldMappingGroup binds a subset of a section's fields to one mapping
// strategy. Groups apply in declaration order; later groups overwrite
// overlapping field names.
type FieldMappingGroup struct {
	MappingType mapping.Type      `yaml:"mapping_type"`
	Fields      map[string]string `yaml:"fields"`
}

// OverflowConfig describes how a repeating data array paginates when it
// exceeds the section's main-page capacity.
type OverflowConfig struct {
	ArrayPath            string       `yaml:"array_path"`
	MappingType          mapping.Type `yaml:"mapping_type,omitempty"`
	MaxItemsInMain       int          `yaml:"max_items_in_main"`
	ItemsPerPage         int          `yaml:"items_per_page"`
	AddendumTemplatePath string       `yaml:"addendum_template"`
	IndicatorField       string       `yaml:"indicator_field,omitempty"`
}

// HeaderFooterConfig holds the header and footer items applied to every
// non-excluded page of the finished document.
type HeaderFooterConfig struct {
	ExcludePages []int              `yaml:"exclude_pages,omitempty"`
	Header       []HeaderFooterItem `yaml:"header,omitempty"`
	Footer       []HeaderFooterItem `yaml:"footer,omitempty"`
}

// Empty reports whether no header or footer content is configured.
func (c HeaderFooterConfig) Empty() bool {
	return len(c.Header) == 0 && len(c.Footer) == 0
}

// HeaderFooterItem is one piece of header or footer content. Template text is
// substituted with the data context plus pageNumber/totalPages before layout.
type HeaderFooterItem struct {
	RenderType string  `yaml:"render_type"`
	Template   string  `yaml:"template,omitempty"`
	Source     string  `yaml:"source,omitempty"`
	Align      string  `yaml:"align,omitempty"`
	FontFamily string  `yaml:"font_family,omitempty"`
	FontStyle  string  `yaml:"font_style,omitempty"`
	FontSize   float64 `yaml:"font_size,omitempty"`
	Offset     float64 `yaml:"offset,omitempty"`
	Width      float64 `yaml:"width,omitempty"`
	Height     float64 `yaml:"height,omitempty"`
}
