package pdf

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Layout is a fixed page layout artifact: static elements plus named field
// boxes that get filled with mapped values. It is the form-fill renderer's
// page definition.
type Layout struct {
	Font     FontSpec   `yaml:"font,omitempty"`
	Elements []Element  `yaml:"elements,omitempty"`
	Fields   []FieldBox `yaml:"fields,omitempty"`
}

// FontSpec names a font face for a layout element or field box.
type FontSpec struct {
	Family string  `yaml:"family,omitempty"`
	Style  string  `yaml:"style,omitempty"`
	Size   float64 `yaml:"size,omitempty"`
}

func (f FontSpec) orDefault(def FontSpec) FontSpec {
	out := f
	if out.Family == "" {
		out.Family = def.Family
	}
	if out.Size <= 0 {
		out.Size = def.Size
	}
	return out
}

// Element is a static page decoration. Type selects which fields apply.
type Element struct {
	Type string `yaml:"type"` // text, line, image

	Text  string    `yaml:"text,omitempty"`
	X     float64   `yaml:"x,omitempty"`
	Y     float64   `yaml:"y,omitempty"`
	Align string    `yaml:"align,omitempty"`
	Font  *FontSpec `yaml:"font,omitempty"`

	X1 float64 `yaml:"x1,omitempty"`
	Y1 float64 `yaml:"y1,omitempty"`
	X2 float64 `yaml:"x2,omitempty"`
	Y2 float64 `yaml:"y2,omitempty"`

	Src    string  `yaml:"src,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// FieldBox is a named slot on the page filled with a mapped value.
type FieldBox struct {
	Name   string    `yaml:"name"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Width  float64   `yaml:"width"`
	Height float64   `yaml:"height"`
	Align  string    `yaml:"align,omitempty"`
	Font   *FontSpec `yaml:"font,omitempty"`
}

// ParseLayout decodes a layout artifact.
func ParseLayout(data []byte) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("pdf: parse layout: %w", err)
	}
	if layout.Font.Family == "" {
		layout.Font.Family = "Helvetica"
	}
	if layout.Font.Size <= 0 {
		layout.Font.Size = 10
	}
	for i, field := range layout.Fields {
		if field.Name == "" {
			return nil, fmt.Errorf("pdf: parse layout: field %d: missing name", i)
		}
	}
	return &layout, nil
}

// Render draws the layout onto the canvas's current page: static elements
// first, then every field box with its value from values. Field names absent
// from values render empty.
func (l *Layout) Render(c Canvas, values map[string]string) error {
	for i, elem := range l.Elements {
		if err := l.renderElement(c, elem); err != nil {
			return fmt.Errorf("pdf: layout element %d: %w", i, err)
		}
	}

	for _, field := range l.Fields {
		font := l.Font
		if field.Font != nil {
			font = field.Font.orDefault(l.Font)
		}
		c.SetFont(font.Family, font.Style, font.Size)

		height := field.Height
		if height <= 0 {
			height = font.Size * 0.5
		}
		c.DrawTextBox(field.X, field.Y, field.Width, height, values[field.Name], field.Align)
	}

	return c.Err()
}

func (l *Layout) renderElement(c Canvas, elem Element) error {
	switch elem.Type {
	case "text":
		font := l.Font
		if elem.Font != nil {
			font = elem.Font.orDefault(l.Font)
		}
		c.SetFont(font.Family, font.Style, font.Size)
		c.DrawText(elem.X, elem.Y, elem.Text)
		return nil
	case "line":
		c.DrawLine(elem.X1, elem.Y1, elem.X2, elem.Y2)
		return nil
	case "image":
		return c.DrawImage(elem.Src, elem.X, elem.Y, elem.Width, elem.Height)
	default:
		return fmt.Errorf("unsupported element type %q", elem.Type)
	}
}
