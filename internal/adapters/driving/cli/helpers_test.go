package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	loaderfile "github.com/exponent-labs/leetgen/internal/adapters/driven/loader/file"
	sinkfile "github.com/exponent-labs/leetgen/internal/adapters/driven/sink/file"
	"github.com/exponent-labs/leetgen/internal/adapters/driven/storage/memory"
	"github.com/exponent-labs/leetgen/internal/core/services"
	"github.com/exponent-labs/leetgen/internal/normalisers"
	"github.com/exponent-labs/leetgen/internal/renderers"
)

const mainDatabase = `{
  "metadata": {
    "name": "Main",
    "description": "Core set",
    "total_questions": 3,
    "data_structures": ["array", "hashmap"]
  },
  "question_templates": {
    "easy": {
      "arrays": {
        "examples": [
          {"title": "Two Sum", "data_structure": "array", "pattern": "hashing"},
          {"title": "Contains Duplicate", "data_structure": "hashmap", "pattern": "hashing"}
        ]
      }
    },
    "medium": {
      "lists": {
        "examples": [
          {"title": "LRU Cache", "data_structure": "linked_list", "pattern": "design"}
        ]
      }
    }
  }
}`

const categoryDatabase = `{
  "question_categories": {
    "counting": {
      "difficulty": "easy",
      "questions": [{"title": "Count Chars"}]
    }
  }
}`

// firstRandom always picks the lowest remaining index, keeping pool order.
type firstRandom struct{}

func (firstRandom) IntN(int) int { return 0 }

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) }

// testEnv holds the wired services and directories for one test.
type testEnv struct {
	dbDir     string
	outDir    string
	history   *services.HistoryService
	settings  *services.SettingsService
	config    *memory.ConfigStore
}

// setupTestServices wires real services over temp directories and memory stores.
// missing.json is configured but never written.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	dbDir := t.TempDir()
	outDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dbDir, "main.json"), []byte(mainDatabase), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dbDir, "categories.json"), []byte(categoryDatabase), 0o644))

	files := []string{"main.json", "categories.json", "missing.json"}
	config := memory.NewConfigStore(map[string]any{"databases.files": files})

	store := memory.NewDatabaseStore()
	historyStore := memory.NewHistoryStore()
	generator := services.NewGeneratorService(
		store, normalisers.NewDefaultRegistry(), services.NewSelector(firstRandom{}, fixedClock{}))
	session := services.NewSessionService(
		generator, renderers.NewDefaultRegistry(), sinkfile.NewSink(outDir), historyStore, fixedClock{})
	history := services.NewHistoryService(historyStore)
	settings := services.NewSettingsService(config)

	SetServices(&Services{
		Generator: generator,
		Session:   session,
		Catalog:   services.NewCatalogService(loaderfile.NewLoader(dbDir, files), store, nil),
		History:   history,
		Settings:  settings,
	})
	t.Cleanup(func() { SetServices(nil) })

	return &testEnv{
		dbDir:     dbDir,
		outDir:    outDir,
		history:   history,
		settings:  settings,
		config:    config,
	}
}

// executeCommand runs the root command and returns stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so package-level commands
// do not leak values between tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
