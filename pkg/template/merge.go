package template

import "sort"

// Merge resolves a child template over its parent. Neither input is mutated;
// cached parents stay safe to reuse across multiple children.
//
// Rules: a child section with a known id replaces or augments the parent's —
// scalar fields override when set on the child, field maps merge key-wise
// with child entries winning. A child section marked exclude removes the
// parent's entirely. Child-only sections are appended. The resolved section
// list is sorted by Order, ties broken by original insertion position.
func Merge(parent, child *Template) *Template {
	result := &Template{
		ID:           child.ID,
		HeaderFooter: child.HeaderFooter,
	}
	if result.HeaderFooter.Empty() && len(result.HeaderFooter.ExcludePages) == 0 {
		result.HeaderFooter = parent.HeaderFooter
	}

	childByID := make(map[string]Section, len(child.Sections))
	for _, sec := range child.Sections {
		childByID[sec.ID] = sec
	}
	parentIDs := make(map[string]struct{}, len(parent.Sections))

	for _, parentSec := range parent.Sections {
		parentIDs[parentSec.ID] = struct{}{}
		childSec, overridden := childByID[parentSec.ID]
		if !overridden {
			result.Sections = append(result.Sections, copySection(parentSec))
			continue
		}
		if childSec.Exclude {
			continue
		}
		result.Sections = append(result.Sections, mergeSection(parentSec, childSec))
	}

	// Brand-new child sections keep their declaration order.
	for _, childSec := range child.Sections {
		if _, known := parentIDs[childSec.ID]; known {
			continue
		}
		if childSec.Exclude {
			continue
		}
		result.Sections = append(result.Sections, copySection(childSec))
	}

	sortSections(result.Sections)
	return result
}

func mergeSection(parent, child Section) Section {
	merged := copySection(parent)

	if child.Renderer != "" {
		merged.Renderer = child.Renderer
	}
	if child.TemplatePath != "" {
		merged.TemplatePath = child.TemplatePath
	}
	if child.MappingType != "" {
		merged.MappingType = child.MappingType
	}
	if child.ViewModel != "" {
		merged.ViewModel = child.ViewModel
	}
	if child.Condition != "" {
		merged.Condition = child.Condition
	}
	if child.Order != 0 {
		merged.Order = child.Order
	}

	if len(child.Fields) > 0 {
		if merged.Fields == nil {
			merged.Fields = make(map[string]string, len(child.Fields))
		}
		for name, expr := range child.Fields {
			merged.Fields[name] = expr
		}
	}

	// Groups and overflow configs are replaced wholesale when the child
	// declares any; partial merging of positional lists has no stable
	// addressing scheme.
	if len(child.Groups) > 0 {
		merged.Groups = copyGroups(child.Groups)
	}
	if len(child.Overflow) > 0 {
		merged.Overflow = append([]OverflowConfig(nil), child.Overflow...)
	}

	return merged
}

func copySection(sec Section) Section {
	out := sec
	out.Exclude = false
	if sec.Fields != nil {
		out.Fields = make(map[string]string, len(sec.Fields))
		for name, expr := range sec.Fields {
			out.Fields[name] = expr
		}
	}
	out.Groups = copyGroups(sec.Groups)
	if sec.Overflow != nil {
		out.Overflow = append([]OverflowConfig(nil), sec.Overflow...)
	}
	return out
}

func copyGroups(groups []FieldMappingGroup) []FieldMappingGroup {
	if groups == nil {
		return nil
	}
	out := make([]FieldMappingGroup, len(groups))
	for i, group := range groups {
		out[i] = group
		if group.Fields != nil {
			out[i].Fields = make(map[string]string, len(group.Fields))
			for name, expr := range group.Fields {
				out[i].Fields[name] = expr
			}
		}
	}
	return out
}

func sortSections(sections []Section) {
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Order < sections[j].Order
	})
}
