package driving

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// HistoryService exposes the generation log.
type HistoryService interface {
	// Recent returns the most recent records first.
	Recent(ctx context.Context, limit int) ([]domain.GenerationRecord, error)

	// Get returns a single record.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)

	// Clear removes all records.
	Clear(ctx context.Context) error
}
