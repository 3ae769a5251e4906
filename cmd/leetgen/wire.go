package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	configfile "github.com/exponent-labs/leetgen/internal/adapters/driven/config/file"
	loaderfile "github.com/exponent-labs/leetgen/internal/adapters/driven/loader/file"
	loadergithub "github.com/exponent-labs/leetgen/internal/adapters/driven/loader/github"
	sinkfile "github.com/exponent-labs/leetgen/internal/adapters/driven/sink/file"
	"github.com/exponent-labs/leetgen/internal/adapters/driven/storage/memory"
	"github.com/exponent-labs/leetgen/internal/adapters/driven/storage/sqlite"
	"github.com/exponent-labs/leetgen/internal/adapters/driven/system"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/cli"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/styles"
	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driven"
	"github.com/exponent-labs/leetgen/internal/core/services"
	"github.com/exponent-labs/leetgen/internal/logger"
	"github.com/exponent-labs/leetgen/internal/normalisers"
	"github.com/exponent-labs/leetgen/internal/renderers"
	"github.com/exponent-labs/leetgen/internal/renderers/markdown"
)

// bootstrap wires the adapters and services for one command run.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := configfile.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	loader, watcher, err := newLoader(ctx, opts, settings)
	if err != nil {
		return nil, err
	}

	var closers []func() error
	var historyStore driven.HistoryStore
	if settings.History.Enabled {
		store, err := sqlite.NewStore(filepath.Join(filepath.Dir(configStore.Path()), "data"))
		if err != nil {
			return nil, fmt.Errorf("failed to open history: %w", err)
		}
		logger.Debug("History database: %s", store.Path())
		historyStore = store.HistoryStore()
		closers = append(closers, store.Close)
	}

	databaseStore := memory.NewDatabaseStore()
	selector := services.NewSelector(system.Random{}, system.Clock{})
	generator := services.NewGeneratorService(databaseStore, normalisers.NewDefaultRegistry(), selector)
	sink := sinkfile.NewSink("")

	heading := styles.DefaultStyles().RenderHeading
	terminalRenderers := renderers.NewDefaultRegistry(markdown.WithHeadingStyle(heading))

	var watcherIface driven.DatabaseWatcher
	if watcher != nil {
		watcherIface = watcher
		closers = append(closers, watcher.Close)
	}

	history := historyStore
	if history == nil {
		history = memory.NewHistoryStore()
	}

	return &cli.Services{
		Generator: generator,
		Session:   services.NewSessionService(generator, renderers.NewDefaultRegistry(), sink, historyStore, system.Clock{}),
		Terminal:  services.NewSessionService(generator, terminalRenderers, sink, historyStore, system.Clock{}),
		Catalog:   services.NewCatalogService(loader, databaseStore, watcherIface),
		History:   services.NewHistoryService(history),
		Settings:  settingsService,
		Close:     closeAll(closers),
	}, nil
}

// newLoader picks the database source: --database-dir, then GitHub, then databases.dir.
// The watcher is nil for remote sources.
func newLoader(
	ctx context.Context, opts cli.Options, settings *domain.AppSettings,
) (driven.DatabaseLoader, *loaderfile.Watcher, error) {
	files := settings.Databases.Files

	if opts.DatabaseDir == "" && settings.GitHub.IsConfigured() {
		cfg, err := loadergithub.ConfigFromSettings(settings.GitHub, files)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid github settings: %w", err)
		}
		client, err := loadergithub.NewClient(ctx, settings.GitHub.Token)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create github client: %w", err)
		}
		return loadergithub.NewLoader(client, cfg), nil, nil
	}

	dir := opts.DatabaseDir
	if dir == "" {
		dir = settings.Databases.Dir
	}
	return loaderfile.NewLoader(dir, files), loaderfile.NewWatcher(dir, files), nil
}

func closeAll(closers []func() error) func() error {
	return func() error {
		var errs []error
		for _, c := range closers {
			errs = append(errs, c())
		}
		return errors.Join(errs...)
	}
}
