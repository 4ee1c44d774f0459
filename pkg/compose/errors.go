package compose

import "fmt"

// UnsupportedRenderTypeError reports a section or header/footer item whose
// render type has no registered renderer.
type UnsupportedRenderTypeError struct {
	RenderType string
}

func (e *UnsupportedRenderTypeError) Error() string {
	return fmt.Sprintf("compose: unsupported render type %q", e.RenderType)
}

// SectionError is a fatal section-level failure. It aborts the whole
// composition and carries enough context to diagnose which template and
// section broke.
type SectionError struct {
	TemplateID string
	SectionID  string
	Err        error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("compose: template %q section %q: %v", e.TemplateID, e.SectionID, e.Err)
}

func (e *SectionError) Unwrap() error { return e.Err }
