package driving

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// SessionRequest describes one generation request from a caller.
type SessionRequest struct {
	// Database names the source database.
	Database string

	// Criteria holds the single-batch filters and count.
	Criteria domain.Criteria

	// Progression switches to per-difficulty mode.
	Progression bool

	// ProgressionOptions configures progression mode. The zero value selects
	// the defaults; a start without a positive count is rejected.
	ProgressionOptions domain.ProgressionOptions

	// Format selects the renderer.
	Format domain.OutputFormat

	// Output is a file target. Empty means the rendered text is only returned.
	Output string
}

// SessionResult is the outcome of a session.
type SessionResult struct {
	// ID identifies the session in the history log.
	ID string

	// Questions are the selected records in output order.
	// Progression results are flattened with a difficulty field per record.
	Questions []domain.Question

	// Rendered holds one rendered string per question.
	Rendered []string

	// OutputPath is where the batch was written, when Output was set.
	OutputPath string
}

// SessionService composes selection, rendering and output for one request.
type SessionService interface {
	Run(ctx context.Context, req SessionRequest) (*SessionResult, error)
}
