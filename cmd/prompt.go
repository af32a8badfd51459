package cmd

import (
	"fmt"

	"github.com/fitz/todokit/internal/prompt"
	"github.com/spf13/cobra"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the todo guidance text",
	Long: `Print the task-management section to add to an agent's system prompt.

Use --tools to print the read_todos and write_todos descriptions instead.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		showTools, _ := cmd.Flags().GetBool("tools")
		if !showTools {
			fmt.Fprint(out, prompt.Render(nil))
			return
		}

		fmt.Fprintln(out, "# read_todos")
		fmt.Fprint(out, prompt.ReadTodosDescription)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "# write_todos")
		fmt.Fprint(out, prompt.WriteTodosDescription)
	},
}

func init() {
	rootCmd.AddCommand(promptCmd)
	promptCmd.Flags().Bool("tools", false, "Print the tool descriptions instead of the system prompt")
}
