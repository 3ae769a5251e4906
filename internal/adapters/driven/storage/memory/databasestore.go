package memory

import (
	"context"
	"sync"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
)

// Ensure DatabaseStore implements the interface.
var _ driven.DatabaseStore = (*DatabaseStore)(nil)

// DatabaseStore is an in-memory implementation of driven.DatabaseStore.
// It keeps documents in load order for listing.
type DatabaseStore struct {
	mu    sync.RWMutex
	docs  []domain.Document
	index map[string]int
}

// NewDatabaseStore creates a new in-memory database store.
func NewDatabaseStore() *DatabaseStore {
	return &DatabaseStore{
		index: make(map[string]int),
	}
}

// Get retrieves a document by name.
func (s *DatabaseStore) Get(_ context.Context, name string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	doc := s.docs[i]
	return &doc, nil
}

// List returns all documents in load order.
func (s *DatabaseStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, len(s.docs))
	copy(result, s.docs)
	return result, nil
}

// Put adds or replaces one document, keeping its position if it existed.
func (s *DatabaseStore) Put(_ context.Context, doc domain.Document) error {
	if doc.Name == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy-on-write so earlier List results never observe the change.
	docs := make([]domain.Document, len(s.docs), len(s.docs)+1)
	copy(docs, s.docs)
	if i, ok := s.index[doc.Name]; ok {
		docs[i] = doc
	} else {
		s.index[doc.Name] = len(docs)
		docs = append(docs, doc)
	}
	s.docs = docs
	return nil
}

// Replace swaps the whole set for docs.
// A later document with a duplicate name replaces the earlier one in place.
func (s *DatabaseStore) Replace(_ context.Context, docs []domain.Document) error {
	next := make([]domain.Document, 0, len(docs))
	index := make(map[string]int, len(docs))
	for _, doc := range docs {
		if doc.Name == "" {
			return domain.ErrInvalidInput
		}
		if i, ok := index[doc.Name]; ok {
			next[i] = doc
			continue
		}
		index[doc.Name] = len(next)
		next = append(next, doc)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = next
	s.index = index
	return nil
}
