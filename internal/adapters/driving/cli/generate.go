package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/exponent-labs/leetgen/internal/core/domain"
	"github.com/exponent-labs/leetgen/internal/core/ports/driving"
)

// separatorWidth is the width of the rule printed between questions.
const separatorWidth = 50

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate practice questions",
	Long: `Select random questions from a database and print or save them.

Filters narrow the pool before selection. With --progression, --count is the
number of questions per difficulty level, starting at --start.

Examples:
  leetgen generate --difficulty easy --count 3
  leetgen generate -d array-operations-database.json --pattern two_pointers
  leetgen generate --progression --count 2 --format json -o progression.json`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringP("database", "d", "", "database name (default from databases.default)")
	f.String("difficulty", "", "difficulty level (beginner, easy, medium, hard)")
	f.String("data-structure", "", "data structure filter")
	f.String("pattern", "", "algorithm pattern filter")
	f.IntP("count", "c", 0, "number of questions, or questions per level with --progression")
	f.StringP("output", "o", "", "output file path")
	f.StringP("format", "f", "", "output format (markdown, json)")
	f.BoolP("progression", "p", false, "generate a progression across difficulty levels")
	f.String("start", "", "starting difficulty for --progression")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	if err := ensureDatabases(cmd); err != nil {
		return err
	}

	req, err := buildSessionRequest(cmd)
	if err != nil {
		return err
	}

	session := sessionService
	if req.Output == "" && terminalSession != nil && isTerminal(cmd.OutOrStdout()) {
		session = terminalSession
	}

	result, err := session.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.OutputPath != "" {
		fmt.Fprintf(out, "✓ Questions saved to %s\n", result.OutputPath)
		return nil
	}

	rule := "\n" + strings.Repeat("=", separatorWidth) + "\n"
	for _, rendered := range result.Rendered {
		fmt.Fprintln(out, rendered)
		fmt.Fprintln(out, rule)
	}
	return nil
}

// buildSessionRequest merges flags over the configured defaults.
func buildSessionRequest(cmd *cobra.Command) (driving.SessionRequest, error) {
	defaults := domain.DefaultAppSettings()
	if settingsService != nil {
		s, err := settingsService.Get()
		if err != nil {
			return driving.SessionRequest{}, fmt.Errorf("failed to get settings: %w", err)
		}
		defaults = *s
	}

	f := cmd.Flags()
	database, _ := f.GetString("database")
	difficulty, _ := f.GetString("difficulty")
	dataStructure, _ := f.GetString("data-structure")
	pattern, _ := f.GetString("pattern")
	count, _ := f.GetInt("count")
	output, _ := f.GetString("output")
	format, _ := f.GetString("format")
	progression, _ := f.GetBool("progression")
	start, _ := f.GetString("start")

	if database == "" {
		database = defaults.Databases.Default
	}

	req := driving.SessionRequest{
		Database:    database,
		Progression: progression,
		Output:      output,
		Format:      defaults.Generate.Format,
	}

	if format != "" {
		parsed, err := domain.ParseOutputFormat(format)
		if err != nil {
			return driving.SessionRequest{}, err
		}
		req.Format = parsed
	}

	if progression {
		req.ProgressionOptions = domain.ProgressionOptions{
			StartDifficulty: defaults.Progression.Start,
			CountPerLevel:   defaults.Progression.CountPerLevel,
		}
		if start != "" {
			d, err := domain.ParseDifficulty(start)
			if err != nil {
				return driving.SessionRequest{}, err
			}
			req.ProgressionOptions.StartDifficulty = d
		}
		if f.Changed("count") {
			req.ProgressionOptions.CountPerLevel = count
		}
		return req, nil
	}

	req.Criteria = domain.Criteria{
		Difficulty:    difficulty,
		DataStructure: dataStructure,
		Pattern:       pattern,
		Count:         defaults.Generate.Count,
	}
	if f.Changed("count") {
		req.Criteria.Count = count
	}
	return req, nil
}
