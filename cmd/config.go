package cmd

import (
	"fmt"

	"github.com/fitz/todokit/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long:  `View and modify configuration settings for todokit.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the .env file (local or global).

Use --global flag to set in the global configuration (~/.todokit/config).
Otherwise, sets in the local .env file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		value := args[1]
		global, _ := cmd.Flags().GetBool("global")

		if global {
			if err := config.SetGlobalConfig(key, value); err != nil {
				exitWithError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s (global)\n", key)
			return
		}

		absDir, err := configDir(cmd)
		if err != nil {
			exitWithError(err)
		}
		if err := config.Set(absDir, key, value); err != nil {
			exitWithError(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s (local)\n", key)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get a configuration value",
	Long:  `Retrieve a configuration value from the .env file (or the global file with --global).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key := args[0]
		global, _ := cmd.Flags().GetBool("global")

		var value string
		var err error
		if global {
			value, err = config.GetGlobalConfig(key)
		} else {
			var absDir string
			absDir, err = configDir(cmd)
			if err == nil {
				value, err = config.Get(absDir, key)
			}
		}
		if err != nil {
			exitWithError(err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	Long:  `Display the effective configuration after applying local, global, environment and default values.`,
	Run: func(cmd *cobra.Command, args []string) {
		global, _ := cmd.Flags().GetBool("global")

		var cfg *config.Config
		var err error
		if global {
			cfg, err = config.LoadGlobalConfig()
		} else {
			cfg, err = loadConfig(cmd)
		}

		out := cmd.OutOrStdout()
		if err != nil {
			// LoadGlobalConfig returns the config alongside its validation error.
			if cfg == nil {
				exitWithError(err)
			}
			fmt.Fprintf(out, "Configuration (invalid: %v):\n", err)
		} else {
			fmt.Fprintln(out, "Configuration:")
		}

		fmt.Fprintf(out, "  %s: %s\n", config.KeyServerName, cfg.ServerName)
		fmt.Fprintf(out, "  %s: %s\n", config.KeyToolsetID, orUnset(cfg.ToolsetID))
		fmt.Fprintf(out, "  %s: %s\n", config.KeyLogLevel, cfg.LogLevel)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)

	configCmd.PersistentFlags().Bool("global", false, "Use the global config (~/.todokit/config) instead of the local .env")
}

// orUnset renders an empty value for display.
func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
