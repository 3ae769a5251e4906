package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exponent-labs/leetgen/internal/adapters/driving/mcp"
	"github.com/exponent-labs/leetgen/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can draw
practice questions.

By default, the server communicates over stdio using JSON-RPC.
Use --port to start an HTTP server instead.

Examples:
  # Stdio mode (default)
  leetgen mcp serve

  # HTTP mode, reloading databases when their files change
  leetgen mcp serve --port 8080 --watch

Assistant configuration:
  {
    "mcpServers": {
      "leetgen": {
        "command": "/path/to/leetgen",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Bool("watch", false, "reload databases when their files change")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	if err := ensureDatabases(cmd); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Generator: generatorService,
		Session:   sessionService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		startWatch(ctx)
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}

// startWatch reloads databases in the background until ctx ends.
func startWatch(ctx context.Context) {
	if catalogService == nil {
		logger.Warn("watch: catalog service not configured")
		return
	}
	go func() {
		err := catalogService.Watch(ctx, func(name string, err error) {
			if err != nil {
				logger.Warn("reload %s failed: %v", name, err)
				return
			}
			logger.Info("reloaded %s", name)
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("watch stopped: %v", err)
		}
	}()
}
