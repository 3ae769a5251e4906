package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui"
	"github.com/exponent-labs/leetgen/internal/adapters/driving/tui/messages"
	"github.com/exponent-labs/leetgen/internal/logger"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive practice UI",
	Long: `Launch the interactive terminal UI for browsing databases and
reading drawn questions.

Controls:
  ↑/k, ↓/j - Navigate
  Enter    - Select
  r        - Draw a fresh batch
  d        - Cycle the difficulty filter
  p        - Toggle progression mode
  n, b     - Next / previous question
  Esc      - Back
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().Bool("watch", false, "reload databases when their files change")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if err := ensureDatabases(cmd); err != nil {
		return err
	}

	session := sessionService
	if terminalSession != nil {
		session = terminalSession
	}

	var opts []tui.Option
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil {
			opts = append(opts,
				tui.WithCount(s.Generate.Count),
				tui.WithCountPerLevel(s.Progression.CountPerLevel))
		}
	}

	app, err := tui.NewApp(&tui.Ports{Generator: generatorService, Session: session}, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch, _ := cmd.Flags().GetBool("watch"); watch && catalogService != nil {
		go func() {
			err := catalogService.Watch(ctx, func(name string, err error) {
				p.Send(messages.DatabaseReloaded{Name: name, Err: err})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("watch stopped: %v", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
