package mapping

import (
	"log/slog"
	"strconv"
	"strings"
)

// directStrategy resolves dot-separated paths over nested maps and slices.
// List indices are non-negative decimal integers embedded as path segments
// (items.0.description). Resolution is positional only; there is no filtering
// or predicate support.
type directStrategy struct {
	logger *slog.Logger
}

// NewDirect builds the dot-path strategy. A nil logger silences diagnostics.
func NewDirect(logger *slog.Logger) Strategy {
	return &directStrategy{logger: logger}
}

func (d *directStrategy) Type() Type { return TypeDirect }

func (d *directStrategy) Supports(t Type) bool { return t == TypeDirect }

func (d *directStrategy) Map(data map[string]any, fields map[string]string) map[string]string {
	return mapFields(d.logger, TypeDirect, d.EvaluatePath, data, fields)
}

// EvaluatePath walks the path segment by segment. A missing key, an index out
// of range, or a segment applied to a non-container all yield (nil, nil): the
// caller maps that single field to the empty string and moves on.
func (d *directStrategy) EvaluatePath(data map[string]any, expr string) (any, error) {
	return nestedValue(data, expr), nil
}

func nestedValue(data map[string]any, path string) any {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	var current any = data
	for _, segment := range strings.Split(path, ".") {
		switch container := current.(type) {
		case map[string]any:
			value, ok := container[segment]
			if !ok {
				return nil
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(container) {
				return nil
			}
			current = container[index]
		default:
			return nil
		}
	}
	return current
}
