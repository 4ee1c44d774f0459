// Package testsupport holds helpers shared by the contract tests.
package testsupport

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"testing"

	tmpl "github.com/goliatone/go-docgen/pkg/template"
)

// Context returns the context used across contract tests.
func Context() context.Context {
	return context.Background()
}

// SilentLogger returns a logger that swallows diagnostics so recovered
// failures do not pollute test output.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DataFromJSON parses a JSON document into the data tree shape the mapping
// strategies consume.
func DataFromJSON(t *testing.T, raw string) map[string]any {
	t.Helper()

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("parse data fixture: %v", err)
	}
	return data
}

// MustParseTemplate parses a raw template artifact, failing the test on
// malformed fixtures.
func MustParseTemplate(t *testing.T, raw string) *tmpl.Template {
	t.Helper()

	parsed, err := tmpl.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse template fixture: %v", err)
	}
	return parsed
}

// MustReadFile reads a fixture file relative to the test's working directory.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}
