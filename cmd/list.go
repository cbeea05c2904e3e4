package cmd

import (
	"github.com/flashcode/gitchart/schema"
	"github.com/spf13/cobra"
)

// listCmd prints the supported chart kinds.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the supported chart kinds.",
	Long: `Print every supported chart kind with its shape and default title.

Examples:
  # See what can be charted
  gitchart list`,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, kind := range schema.AllChartKinds {
			cmd.Printf("%-25s %-4s %s\n", kind, kind.Shape(), kind.DefaultTitle())
		}
	},
}
