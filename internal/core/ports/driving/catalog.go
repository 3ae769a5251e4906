package driving

import (
	"context"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// CatalogService loads databases into the store.
type CatalogService interface {
	// Load reads every configured database and replaces the store contents.
	// Per-database failures are reported, not returned as an error.
	Load(ctx context.Context) (*domain.LoadReport, error)

	// Watch reloads a database whenever its source changes until ctx ends.
	// onReload is called after each reload attempt; it may be nil.
	Watch(ctx context.Context, onReload func(name string, err error)) error
}
