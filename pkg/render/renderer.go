package render

import "context"

// Renderer converts view models into a byte representation (HTML, plain
// text). Implementations must be deterministic: rendering the same view twice
// yields identical output.
type Renderer interface {
	Name() string
	ContentType() string
	RenderTable(ctx context.Context, view TableView) ([]byte, error)
	RenderDialog(ctx context.Context, view DialogView) ([]byte, error)
	RenderPage(ctx context.Context, page Page) ([]byte, error)
}
