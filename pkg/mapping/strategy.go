// Package mapping resolves document field values out of a nested data tree
// using one of several interchangeable expression languages.
package mapping

import (
	"fmt"
	"log/slog"
)

// Type identifies the expression language a strategy evaluates.
type Type string

const (
	// TypeDirect walks dot-separated paths over nested maps and slices.
	TypeDirect Type = "direct"
	// TypeJSONPath delegates to a JSONPath evaluator.
	TypeJSONPath Type = "jsonpath"
	// TypeJSONata delegates to a JSONata evaluator.
	TypeJSONata Type = "jsonata"
)

// Strategy converts a data context plus mapping rules into resolved string
// values. Implementations must never abort a whole Map call because a single
// field failed; failed fields degrade to the empty string.
type Strategy interface {
	// Type reports the expression language this strategy evaluates.
	Type() Type

	// Supports reports whether the strategy can evaluate the given type.
	Supports(t Type) bool

	// Map resolves every entry of fields (form-field name → source
	// expression) against data. Fields that fail to resolve map to "".
	Map(data map[string]any, fields map[string]string) map[string]string

	// EvaluatePath evaluates a single expression against data, returning the
	// raw value. A missing value yields (nil, nil); only evaluator-level
	// failures return an error.
	EvaluatePath(data map[string]any, expr string) (any, error)
}

// Option customises a strategy Set.
type Option func(*Set)

// WithLogger injects the logger used for recovered per-field failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Set) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStrategies replaces the built-in strategy list.
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Set) {
		s.strategies = append([]Strategy(nil), strategies...)
	}
}

// Set holds the configured strategies and resolves them by mapping type.
type Set struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewSet builds a Set with the three built-in strategies unless overridden.
func NewSet(options ...Option) *Set {
	s := &Set{logger: slog.Default()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.strategies == nil {
		s.strategies = []Strategy{
			NewDirect(s.logger),
			NewJSONPath(s.logger),
			NewJSONata(s.logger),
		}
	}
	return s
}

// For returns the first strategy supporting the requested type.
func (s *Set) For(t Type) (Strategy, error) {
	for _, strategy := range s.strategies {
		if strategy.Supports(t) {
			return strategy, nil
		}
	}
	return nil, fmt.Errorf("mapping: no strategy for type %q", t)
}

// mapFields implements the shared Map contract: evaluate each expression,
// stringify, and degrade failures to "" with a warning.
func mapFields(logger *slog.Logger, typ Type, eval func(map[string]any, string) (any, error), data map[string]any, fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for name, expr := range fields {
		value, err := eval(data, expr)
		if err != nil {
			if logger != nil {
				logger.Warn("field mapping failed",
					slog.String("strategy", string(typ)),
					slog.String("field", name),
					slog.String("expression", expr),
					slog.Any("error", err))
			}
			out[name] = ""
			continue
		}
		out[name] = Stringify(value)
	}
	return out
}

// Truthy reports whether a condition result selects a section for rendering.
// nil, false, zero numbers, empty strings and empty containers are falsy.
func Truthy(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != "" && value != "false" && value != "0"
	case int:
		return value != 0
	case int64:
		return value != 0
	case float64:
		return value != 0
	case []any:
		return len(value) > 0
	case map[string]any:
		return len(value) > 0
	default:
		return true
	}
}
