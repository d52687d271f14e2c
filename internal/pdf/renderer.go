package pdf

import "context"

// Renderer converts self-contained HTML markup into a paginated PDF.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// RenderError wraps any failure of the external rendering engine with its
// underlying cause so callers can surface it for diagnosis.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return "rendering engine: " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
