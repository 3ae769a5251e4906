package driven

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// HistoryStore persists generation records.
// Records are informational and never influence selection.
type HistoryStore interface {
	// Record stores a generation record.
	Record(ctx context.Context, record domain.GenerationRecord) error

	// List returns the most recent records first.
	// A limit of zero or less returns all records.
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)

	// Get returns a record by ID.
	// Returns domain.ErrNotFound if no record has that ID.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)

	// Clear removes every record.
	Clear(ctx context.Context) error
}
