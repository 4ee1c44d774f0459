package template

import (
	"fmt"
	"strings"
)

// NotFoundError reports a template identifier whose backing artifact is
// absent or unreadable.
type NotFoundError struct {
	ID  string
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template: %q not found: %v", e.ID, e.Err)
	}
	return fmt.Sprintf("template: %q not found", e.ID)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ParseError reports a template artifact with malformed structure.
type ParseError struct {
	ID  string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("template: parse %q: %v", e.ID, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// CycleError reports a cycle in the inheritance chain. Chain lists the
// identifiers in resolution order, ending with the repeated one.
type CycleError struct {
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("template: cyclic inheritance: %s", strings.Join(e.Chain, " -> "))
}
