package driven

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// DatabaseStore holds the loaded databases.
// Documents are read-only once stored; replacing a set swaps it atomically.
type DatabaseStore interface {
	// Get returns a document by name.
	// Returns domain.ErrNotFound if no document has that name.
	Get(ctx context.Context, name string) (*domain.Document, error)

	// List returns all documents in load order.
	List(ctx context.Context) ([]domain.Document, error)

	// Put adds or replaces one document, keeping its position if it existed.
	Put(ctx context.Context, doc domain.Document) error

	// Replace swaps the whole set for docs.
	Replace(ctx context.Context, docs []domain.Document) error
}
