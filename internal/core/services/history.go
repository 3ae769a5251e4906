package services

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService exposes the generation log.
type HistoryService struct {
	store driven.HistoryStore
}

// NewHistoryService creates a new history service.
// A nil store behaves as an empty log.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{store: store}
}

// Recent returns the most recent records first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if s.store == nil {
		return []domain.GenerationRecord{}, nil
	}
	return s.store.List(ctx, limit)
}

// Get returns a single record.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, domain.ErrNotFound
	}
	return s.store.Get(ctx, id)
}

// Clear removes all records.
func (s *HistoryService) Clear(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	return s.store.Clear(ctx)
}
