package driven

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// DatabaseLoader reads question database documents from a location.
type DatabaseLoader interface {
	// Location describes where documents are read from (a directory or repository).
	Location() string

	// Files returns the configured database names in load order.
	Files() []string

	// Load reads every configured database.
	// A database that is missing or malformed yields a *domain.DatabaseLoadError
	// in the returned slice; loading continues with the rest.
	Load(ctx context.Context) ([]domain.Document, []error)
}

// DatabaseWatcher emits the name of a database whenever its file changes.
// The channel is closed when ctx is cancelled.
type DatabaseWatcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}
