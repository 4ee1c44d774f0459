package compose

import (
	"strings"

	"github.com/goliatone/go-docgen/pkg/mapping"
)

func typeOrDefault(t, fallback mapping.Type) mapping.Type {
	if t != "" {
		return t
	}
	if fallback != "" {
		return fallback
	}
	return mapping.TypeDirect
}

// toItems coerces an evaluated array-path result into an item slice. A
// missing value is an empty sequence; a scalar is a one-item sequence, which
// is how the evaluators collapse single-element matches.
func toItems(v any) []any {
	switch value := v.(type) {
	case nil:
		return nil
	case []any:
		return value
	default:
		return []any{value}
	}
}

// withValueAt returns a copy of data with the value substituted at the dotted
// path, sharing every untouched subtree with the original. Maps along the
// path are shallow-copied so the caller's data tree stays read-only. Paths
// that do not navigate maps leave the copy unchanged.
func withValueAt(data map[string]any, path string, value any) map[string]any {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return data
	}

	root := make(map[string]any, len(data))
	for key, val := range data {
		root[key] = val
	}

	current := root
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment].(map[string]any)
		if !ok {
			return root
		}
		branch := make(map[string]any, len(next))
		for key, val := range next {
			branch[key] = val
		}
		current[segment] = branch
		current = branch
	}

	current[segments[len(segments)-1]] = value
	return root
}

// pathSegments normalises an array path across mapping languages: a leading
// JSONPath root ($. or $) is stripped and the rest is treated as dotted keys.
func pathSegments(path string) []string {
	p := strings.TrimSpace(path)
	p = strings.TrimPrefix(p, "$.")
	p = strings.TrimPrefix(p, "$")
	p = strings.Trim(p, ".")
	if p == "" {
		return nil
	}
	return strings.Split(p, ".")
}
