package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent generation sessions",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all history",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "maximum sessions to show (0 for all)")
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	limit, _ := cmd.Flags().GetInt("limit")
	records, err := historyService.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No generation history.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(out, "%s  %s  %-11s  %-8s  %2d  %s\n",
			shortID(r.ID), formatTime(r.CreatedAt), r.Mode, r.Format, len(r.Titles), r.Database)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	r, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("session %s not found", args[0])
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Session: %s\n", r.ID)
	fmt.Fprintf(out, "Time: %s\n", formatTime(r.CreatedAt))
	fmt.Fprintf(out, "Database: %s\n", r.Database)
	fmt.Fprintf(out, "Mode: %s\n", r.Mode)
	fmt.Fprintf(out, "Format: %s\n", r.Format)
	if filters := describeCriteria(r); filters != "" {
		fmt.Fprintf(out, "Filters: %s\n", filters)
	}
	if r.Output != "" {
		fmt.Fprintf(out, "Output: %s\n", r.Output)
	}
	fmt.Fprintf(out, "Questions (%d):\n", len(r.Titles))
	for _, title := range r.Titles {
		fmt.Fprintf(out, "  - %s\n", title)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}
	if err := historyService.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "✓ History cleared")
	return nil
}

func describeCriteria(r *domain.GenerationRecord) string {
	var parts []string
	if r.Mode == domain.ModeProgression {
		if r.Criteria.Difficulty != "" {
			parts = append(parts, "start="+r.Criteria.Difficulty)
		}
		parts = append(parts, fmt.Sprintf("per-level=%d", r.Criteria.Count))
		return strings.Join(parts, " ")
	}
	if r.Criteria.Difficulty != "" {
		parts = append(parts, "difficulty="+r.Criteria.Difficulty)
	}
	if r.Criteria.DataStructure != "" {
		parts = append(parts, "data-structure="+r.Criteria.DataStructure)
	}
	if r.Criteria.Pattern != "" {
		parts = append(parts, "pattern="+r.Criteria.Pattern)
	}
	parts = append(parts, fmt.Sprintf("count=%d", r.Criteria.Count))
	return strings.Join(parts, " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
