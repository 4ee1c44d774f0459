package mapping_test

import (
	"testing"
	"time"

	"github.com/goliatone/go-docgen/pkg/mapping"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "string", value: "hello", want: "hello"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false", value: false, want: "false"},
		{name: "int", value: 42, want: "42"},
		{name: "float", value: 12.5, want: "12.5"},
		{name: "float whole", value: float64(3), want: "3"},
		{name: "date", value: time.Date(2026, time.March, 9, 11, 30, 0, 0, time.UTC), want: "03/09/2026"},
		{name: "sequence", value: []any{"a", float64(2), true}, want: "a, 2, true"},
		{name: "nested sequence", value: []any{[]any{"x", "y"}, "z"}, want: "x, y, z"},
		{name: "string slice", value: []string{"one", "two"}, want: "one, two"},
		{name: "map fallback", value: map[string]any{"k": "v"}, want: "map[k:v]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mapping.Stringify(tc.value); got != tc.want {
				t.Fatalf("Stringify(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	truthy := []any{true, "yes", 1, 12.5, []any{"x"}, map[string]any{"k": 1}, struct{}{}}
	for _, v := range truthy {
		if !mapping.Truthy(v) {
			t.Errorf("Truthy(%#v) = false, want true", v)
		}
	}

	falsy := []any{nil, false, "", "false", "0", 0, float64(0), []any{}, map[string]any{}}
	for _, v := range falsy {
		if mapping.Truthy(v) {
			t.Errorf("Truthy(%#v) = true, want false", v)
		}
	}
}
