package template

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-docgen/pkg/mapping"
)

// Parse decodes a raw template artifact into an unresolved Template. The
// result still carries its Parent pointer; inheritance is the loader's job.
func Parse(data []byte) (*Template, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("artifact is empty")
	}

	var tpl Template
	if err := yaml.Unmarshal(data, &tpl); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	if tpl.ID == "" {
		return nil, fmt.Errorf("missing template id")
	}
	for i, sec := range tpl.Sections {
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d: missing id", i)
		}
		if err := validateMappingType(sec.MappingType); err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.ID, err)
		}
		for gi, group := range sec.Groups {
			if err := validateMappingType(group.MappingType); err != nil {
				return nil, fmt.Errorf("section %q: mapping group %d: %w", sec.ID, gi, err)
			}
		}
		for oi, cfg := range sec.Overflow {
			if cfg.ArrayPath == "" {
				return nil, fmt.Errorf("section %q: overflow %d: missing array_path", sec.ID, oi)
			}
			if err := validateMappingType(cfg.MappingType); err != nil {
				return nil, fmt.Errorf("section %q: overflow %d: %w", sec.ID, oi, err)
			}
		}
	}
	return &tpl, nil
}

func validateMappingType(t mapping.Type) error {
	switch t {
	case "", mapping.TypeDirect, mapping.TypeJSONPath, mapping.TypeJSONata:
		return nil
	default:
		return fmt.Errorf("unknown mapping type %q", t)
	}
}

// validateResolved enforces the post-merge invariants: unique section ids and
// no leftover exclusion markers.
func validateResolved(tpl *Template) error {
	seen := make(map[string]struct{}, len(tpl.Sections))
	for _, sec := range tpl.Sections {
		if _, dup := seen[sec.ID]; dup {
			return fmt.Errorf("duplicate section id %q", sec.ID)
		}
		seen[sec.ID] = struct{}{}
	}
	return nil
}
