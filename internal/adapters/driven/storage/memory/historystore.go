package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records []domain.GenerationRecord
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores a generation record.
func (s *HistoryStore) Record(_ context.Context, record domain.GenerationRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}
	record.Titles = append([]string(nil), record.Titles...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

// List returns the most recent records first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	s.mu.RLock()
	result := make([]domain.GenerationRecord, len(s.records))
	copy(result, s.records)
	s.mu.RUnlock()

	// Stable on insertion order so equal timestamps list newest insert first.
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, record := range s.records {
		if record.ID == id {
			r := record
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Clear removes every record.
func (s *HistoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}
