package driven

import "github.com/exponent-labs/leetgen/internal/core/domain"

// Renderer serialises questions to text in one output format.
type Renderer interface {
	// Format returns the format this renderer produces.
	Format() domain.OutputFormat

	// Render serialises a single question.
	Render(q domain.Question) (string, error)

	// RenderBatch serialises a batch for saving to a file.
	RenderBatch(questions []domain.Question) (string, error)
}

// RendererRegistry selects a renderer by format.
type RendererRegistry interface {
	// Register adds a renderer, replacing any for the same format.
	Register(renderer Renderer)

	// Get returns the renderer for format.
	// Returns domain.ErrUnsupportedFormat if none is registered.
	Get(format domain.OutputFormat) (Renderer, error)

	// Formats lists the registered formats in registration order.
	Formats() []domain.OutputFormat
}
