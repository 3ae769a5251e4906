package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// ErrWatchUnsupported is returned by Watch when no watcher is configured.
var ErrWatchUnsupported = errors.New("database watching not supported for this source")

// CatalogService loads databases from a loader into the store.
type CatalogService struct {
	loader  driven.DatabaseLoader
	store   driven.DatabaseStore
	watcher driven.DatabaseWatcher
}

// NewCatalogService creates a new catalog service.
// The watcher parameter is optional (can be nil).
func NewCatalogService(
	loader driven.DatabaseLoader,
	store driven.DatabaseStore,
	watcher driven.DatabaseWatcher,
) *CatalogService {
	return &CatalogService{
		loader:  loader,
		store:   store,
		watcher: watcher,
	}
}

// Load reads every configured database and replaces the store contents.
// A database that fails to load is reported and left out.
func (s *CatalogService) Load(ctx context.Context) (*domain.LoadReport, error) {
	logger.Section("Load Databases")
	defer logger.Timer("load databases")()
	logger.Debug("Location: %s", s.loader.Location())

	docs, failures := s.loader.Load(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.store.Replace(ctx, docs); err != nil {
		return nil, fmt.Errorf("failed to store databases: %w", err)
	}

	report := &domain.LoadReport{
		Loaded:   make([]string, len(docs)),
		Failures: failures,
		Entries:  loadEntries(s.loader.Files(), docs, failures),
	}
	for i, doc := range docs {
		report.Loaded[i] = doc.Name
		logger.Info("Loaded %s (%s)", doc.Name, doc.Kind)
	}
	for _, err := range failures {
		logger.Warn("%v", err)
	}
	return report, nil
}

// Watch reloads the databases whenever the watcher reports a change.
// If the changed database fails to load, the previous snapshot is kept.
// Watch blocks until ctx is cancelled.
func (s *CatalogService) Watch(ctx context.Context, onReload func(name string, err error)) error {
	if s.watcher == nil {
		return ErrWatchUnsupported
	}
	if onReload == nil {
		onReload = func(string, error) {}
	}

	events, err := s.watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch databases: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case name, ok := <-events:
			if !ok {
				return nil
			}
			logger.Debug("Change detected: %s", name)
			onReload(name, s.reload(ctx, name))
		}
	}
}

func (s *CatalogService) reload(ctx context.Context, name string) error {
	docs, failures := s.loader.Load(ctx)
	for _, err := range failures {
		var loadErr *domain.DatabaseLoadError
		if errors.As(err, &loadErr) && loadErr.Database == name {
			logger.Warn("Keeping previous %s: %v", name, err)
			return err
		}
	}
	if err := s.store.Replace(ctx, docs); err != nil {
		return fmt.Errorf("failed to store databases: %w", err)
	}
	logger.Info("Reloaded %d databases after change to %s", len(docs), name)
	return nil
}

// loadEntries merges loaded documents and failures back into the configured
// order. Anything not matched to a configured name keeps its relative order
// at the end.
func loadEntries(files []string, docs []domain.Document, failures []error) []domain.LoadEntry {
	outcomes := make([]domain.LoadEntry, 0, len(docs)+len(failures))
	for _, doc := range docs {
		outcomes = append(outcomes, domain.LoadEntry{Database: doc.Name})
	}
	for _, err := range failures {
		entry := domain.LoadEntry{Err: err}
		var loadErr *domain.DatabaseLoadError
		if errors.As(err, &loadErr) {
			entry.Database = loadErr.Database
		}
		outcomes = append(outcomes, entry)
	}

	entries := make([]domain.LoadEntry, 0, len(outcomes))
	used := make([]bool, len(outcomes))
	for _, name := range files {
		for i, o := range outcomes {
			if !used[i] && o.Database == name {
				entries = append(entries, o)
				used[i] = true
				break
			}
		}
	}
	for i, o := range outcomes {
		if !used[i] {
			entries = append(entries, o)
		}
	}
	return entries
}
