package mapping

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	jsonata "github.com/blues/jsonata-go"
)

// jsonataStrategy delegates expression evaluation to the JSONata evaluator.
// Compiled expressions are cached; templates evaluate the same handful of
// expressions for every document of a given type.
type jsonataStrategy struct {
	logger *slog.Logger

	mu       sync.RWMutex
	compiled map[string]*jsonata.Expr
}

// NewJSONata builds the JSONata strategy.
func NewJSONata(logger *slog.Logger) Strategy {
	return &jsonataStrategy{
		logger:   logger,
		compiled: make(map[string]*jsonata.Expr),
	}
}

func (j *jsonataStrategy) Type() Type { return TypeJSONata }

func (j *jsonataStrategy) Supports(t Type) bool { return t == TypeJSONata }

func (j *jsonataStrategy) Map(data map[string]any, fields map[string]string) map[string]string {
	return mapFields(j.logger, TypeJSONata, j.EvaluatePath, data, fields)
}

func (j *jsonataStrategy) EvaluatePath(data map[string]any, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	compiled, err := j.expression(expr)
	if err != nil {
		return nil, fmt.Errorf("mapping: compile jsonata %q: %w", expr, err)
	}

	value, err := compiled.Eval(map[string]any(data))
	if err != nil {
		if errors.Is(err, jsonata.ErrUndefined) {
			return nil, nil
		}
		return nil, fmt.Errorf("mapping: evaluate jsonata %q: %w", expr, err)
	}
	return value, nil
}

func (j *jsonataStrategy) expression(expr string) (*jsonata.Expr, error) {
	j.mu.RLock()
	compiled, ok := j.compiled[expr]
	j.mu.RUnlock()
	if ok {
		return compiled, nil
	}

	compiled, err := jsonata.Compile(expr)
	if err != nil {
		return nil, err
	}

	j.mu.Lock()
	j.compiled[expr] = compiled
	j.mu.Unlock()
	return compiled, nil
}
