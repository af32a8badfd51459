// Package cmd contains all CLI command definitions.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitz/todokit/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "todokit",
	Short: "todokit - session todo tools for AI agents",
	Long: `todokit gives an AI agent a short, session-scoped todo list.

It serves two MCP tools, read_todos and write_todos, plus a prompt
describing when to use them. The list lives in memory for as long as
the server process runs.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("dir", "d", ".", "Directory containing the .env configuration file")
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// loadConfig resolves --dir and loads configuration from it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	absDir, err := configDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(absDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func configDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("invalid directory: %w", err)
	}
	return absDir, nil
}
