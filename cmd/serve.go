package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/fitz/todokit/internal/mcp"
	"github.com/fitz/todokit/internal/toolset"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol (MCP) server that exposes the todo
tools over JSON-RPC on stdio.

This command is typically invoked by an agent host rather than directly
by users. The host can then:
  - Replace the whole todo list with write_todos
  - Inspect the list with read_todos
  - Fetch the todo_system_prompt guidance, including the current list

Logs go to stderr; stdout carries the protocol.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			exitWithError(err)
		}

		id, _ := cmd.Flags().GetString("id")
		if id == "" {
			id = cfg.ToolsetID
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: cfg.SlogLevel(),
		}))

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("shutting down...")
			cancel()
		}()

		ts := toolset.New(nil, id, logger)
		server := mcpserver.NewServer(cfg.ServerName, ts, logger)

		logger.Info("starting MCP server on stdio", "server", cfg.ServerName, "toolset", ts.ID())
		if err := server.Run(ctx); err != nil && ctx.Err() == nil {
			exitWithError(fmt.Errorf("MCP server error: %w", err))
		}

		logger.Info("server stopped")
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("id", "", "Toolset identifier (overrides TODOKIT_TOOLSET_ID; generated when empty)")
}
