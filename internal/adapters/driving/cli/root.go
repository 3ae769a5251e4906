// Package cli implements the leetgen command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// version is set at build time.
var version = "dev"

// annotationNoBootstrap marks commands that run without services.
const annotationNoBootstrap = "leetgen/no-bootstrap"

// Options carry the root flag values to the bootstrapper.
type Options struct {
	ConfigDir   string
	DatabaseDir string
	Verbose     bool
}

// Services are the driving ports the commands use.
type Services struct {
	Generator driving.GeneratorService
	Session   driving.SessionService
	Catalog   driving.CatalogService
	History   driving.HistoryService
	Settings  driving.SettingsService

	// Terminal renders with styled headings for interactive output. Optional.
	Terminal driving.SessionService

	// Close releases resources such as the history database. Optional.
	Close func() error
}

// Bootstrapper builds services once flags are parsed.
type Bootstrapper func(ctx context.Context, opts Options) (*Services, error)

var (
	generatorService driving.GeneratorService
	sessionService   driving.SessionService
	terminalSession  driving.SessionService
	catalogService   driving.CatalogService
	historyService   driving.HistoryService
	settingsService  driving.SettingsService

	bootstrap     Bootstrapper
	closeServices func() error
	loaded        bool
)

var rootOpts Options

var rootCmd = &cobra.Command{
	Use:   "leetgen",
	Short: "Generate LeetCode-style practice questions",
	Long: `leetgen selects practice questions from structured question databases
and renders them as markdown or JSON.

Questions can be drawn at random with difficulty, data structure and pattern
filters, or as a progression that climbs from one difficulty to the next.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: runBootstrap,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigDir, "config-dir", "",
		"configuration directory (default ~/.leetgen)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.DatabaseDir, "database-dir", "",
		"directory containing database files (overrides databases.dir)")
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Verbose, "verbose", "v", false,
		"enable verbose logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap installs the function that builds services before a command runs.
func SetBootstrap(b Bootstrapper) {
	bootstrap = b
}

// SetServices installs services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	generatorService = s.Generator
	sessionService = s.Session
	terminalSession = s.Terminal
	catalogService = s.Catalog
	historyService = s.History
	settingsService = s.Settings
	closeServices = s.Close
	loaded = false
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("close: %v", err)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func runBootstrap(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(rootOpts.Verbose)

	if _, skip := cmd.Annotations[annotationNoBootstrap]; skip || bootstrap == nil {
		return nil
	}

	services, err := bootstrap(cmd.Context(), rootOpts)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// ensureDatabases loads the catalog once and reports each database to stderr.
func ensureDatabases(cmd *cobra.Command) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}
	if loaded || catalogService == nil {
		return nil
	}

	report, err := catalogService.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load databases: %w", err)
	}
	printLoadReport(cmd.ErrOrStderr(), report)
	loaded = true
	return nil
}

func printLoadReport(w io.Writer, report *domain.LoadReport) {
	for _, entry := range report.Entries {
		var loadErr *domain.DatabaseLoadError
		switch {
		case entry.Err == nil:
			fmt.Fprintf(w, "✓ %s\n", entry.Database)
		case errors.Is(entry.Err, os.ErrNotExist):
			fmt.Fprintf(w, "⚠ %s: missing\n", entry.Database)
		case errors.As(entry.Err, &loadErr):
			fmt.Fprintf(w, "✗ %s: %v\n", loadErr.Database, loadErr.Err)
		default:
			fmt.Fprintf(w, "✗ databases: %v\n", entry.Err)
		}
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
