package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:     "databases",
	Aliases: []string{"list"},
	Short:   "List available databases",
	Args:    cobra.NoArgs,
	RunE:    runDatabases,
}

var infoCmd = &cobra.Command{
	Use:   "info <database>",
	Short: "Show database information",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().Bool("json", false, "print as JSON")
	rootCmd.AddCommand(databasesCmd)
	rootCmd.AddCommand(infoCmd)
}

func runDatabases(cmd *cobra.Command, _ []string) error {
	if err := ensureDatabases(cmd); err != nil {
		return err
	}

	names, err := generatorService.ListDatabases(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list databases: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available databases:")
	for _, name := range names {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	if err := ensureDatabases(cmd); err != nil {
		return err
	}

	info, err := generatorService.Describe(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "Database: %s\n", info.Name)
	fmt.Fprintf(out, "Description: %s\n", info.Description)
	fmt.Fprintf(out, "Total Questions: %d\n", info.TotalQuestions)
	fmt.Fprintf(out, "Difficulties: %s\n", strings.Join(info.Difficulties, ", "))
	fmt.Fprintf(out, "Data Structures: %s\n", strings.Join(info.DataStructures, ", "))
	return nil
}
