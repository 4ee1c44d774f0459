package mapping

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// jsonPathStrategy delegates expression evaluation to the JSONPath evaluator.
// The strategy layer only iterates the field map, converts results with the
// shared value→string rules, and absorbs per-field failures.
type jsonPathStrategy struct {
	logger *slog.Logger
}

// NewJSONPath builds the JSONPath strategy.
func NewJSONPath(logger *slog.Logger) Strategy {
	return &jsonPathStrategy{logger: logger}
}

func (j *jsonPathStrategy) Type() Type { return TypeJSONPath }

func (j *jsonPathStrategy) Supports(t Type) bool { return t == TypeJSONPath }

func (j *jsonPathStrategy) Map(data map[string]any, fields map[string]string) map[string]string {
	return mapFields(j.logger, TypeJSONPath, j.EvaluatePath, data, fields)
}

func (j *jsonPathStrategy) EvaluatePath(data map[string]any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	if !strings.HasPrefix(expr, "$") {
		expr = "$." + expr
	}
	value, err := jsonpath.Get(expr, map[string]any(data))
	if err != nil {
		// The evaluator reports unknown keys as errors; a missing value is
		// not a failure for mapping purposes.
		if strings.Contains(err.Error(), "unknown key") || strings.Contains(err.Error(), "unknown parameter") {
			return nil, nil
		}
		return nil, fmt.Errorf("mapping: jsonpath %q: %w", expr, err)
	}
	return value, nil
}
