package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure database locations, generation defaults and the
optional GitHub source.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a single setting",
	Long: `Set a single setting by key. Run "leetgen settings keys" for the list.

Omitting the value for github.token prompts for it without echo.
List values such as databases.files are comma separated.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List settable keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Databases]")
	cmd.Printf("  Directory: %s\n", settings.Databases.Dir)
	cmd.Printf("  Files: %s\n", strings.Join(settings.Databases.Files, ", "))
	cmd.Printf("  Default: %s\n", settings.Databases.Default)
	cmd.Println()

	cmd.Println("[Generate]")
	cmd.Printf("  Format: %s\n", settings.Generate.Format)
	cmd.Printf("  Count: %d\n", settings.Generate.Count)
	cmd.Println()

	cmd.Println("[Progression]")
	cmd.Printf("  Start: %s\n", settings.Progression.Start)
	cmd.Printf("  Count per level: %d\n", settings.Progression.CountPerLevel)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	cmd.Println()

	cmd.Println("[GitHub]")
	if !settings.GitHub.IsConfigured() {
		cmd.Println("  Status: not configured (loading from the database directory)")
		return nil
	}
	cmd.Printf("  Repository: %s\n", settings.GitHub.Repo)
	cmd.Printf("  Path: %s\n", settings.GitHub.Path)
	ref := settings.GitHub.Ref
	if ref == "" {
		ref = "(default branch)"
	}
	cmd.Printf("  Ref: %s\n", ref)
	if settings.GitHub.Token != "" {
		cmd.Printf("  Token: %s\n", maskToken(settings.GitHub.Token))
	} else {
		cmd.Println("  Token: (not set)")
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else {
		if key != "github.token" {
			return fmt.Errorf("%w: missing value for %s", domain.ErrInvalidInput, key)
		}
		cmd.Print("GitHub token: ")
		value = readSecret(cmd.InOrStdin(), bufio.NewReader(cmd.InOrStdin()))
		cmd.Println()
	}

	if err := settingsService.Set(key, value); err != nil {
		return err
	}
	cmd.Printf("✓ %s updated\n", key)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	cmd.Println("leetgen Setup Wizard")
	cmd.Println("====================")
	cmd.Println()

	cmd.Printf("Database directory [%s]: ", settings.Databases.Dir)
	if dir := readLine(reader); dir != "" {
		settings.Databases.Dir = dir
	}

	cmd.Println()
	cmd.Println("Default database:")
	defaultIdx := 1
	for i, f := range settings.Databases.Files {
		cmd.Printf("  %d. %s\n", i+1, f)
		if f == settings.Databases.Default {
			defaultIdx = i + 1
		}
	}
	if len(settings.Databases.Files) > 0 {
		cmd.Printf("Select [%d]: ", defaultIdx)
		choice := parseChoice(readLine(reader), len(settings.Databases.Files), defaultIdx)
		settings.Databases.Default = settings.Databases.Files[choice-1]
	}

	cmd.Println()
	cmd.Println("Output format:")
	cmd.Println("  1. markdown")
	cmd.Println("  2. json")
	formatIdx := 1
	if settings.Generate.Format == domain.FormatJSON {
		formatIdx = 2
	}
	cmd.Printf("Select [%d]: ", formatIdx)
	if parseChoice(readLine(reader), 2, formatIdx) == 2 {
		settings.Generate.Format = domain.FormatJSON
	} else {
		settings.Generate.Format = domain.FormatMarkdown
	}

	cmd.Printf("Questions per generation [%d]: ", settings.Generate.Count)
	settings.Generate.Count = parseChoice(readLine(reader), 1000, settings.Generate.Count)

	cmd.Println()
	cmd.Println("Progression start:")
	order := domain.DifficultyOrder()
	startIdx := 1
	for i, d := range order {
		cmd.Printf("  %d. %s\n", i+1, d)
		if d == settings.Progression.Start {
			startIdx = i + 1
		}
	}
	cmd.Printf("Select [%d]: ", startIdx)
	settings.Progression.Start = order[parseChoice(readLine(reader), len(order), startIdx)-1]

	cmd.Printf("Questions per level [%d]: ", settings.Progression.CountPerLevel)
	settings.Progression.CountPerLevel = parseChoice(readLine(reader), 1000, settings.Progression.CountPerLevel)

	cmd.Println()
	cmd.Printf("GitHub repository (owner/name, blank for none) [%s]: ", settings.GitHub.Repo)
	if repo := readLine(reader); repo != "" {
		settings.GitHub.Repo = repo
	}
	if settings.GitHub.IsConfigured() {
		cmd.Print("GitHub token (blank to keep): ")
		if token := readSecret(in, reader); token != "" {
			settings.GitHub.Token = token
		}
		cmd.Println()
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println()
	cmd.Println("✓ Settings saved")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

// readSecret reads without echo when in is a terminal.
func readSecret(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	return readLine(reader)
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
