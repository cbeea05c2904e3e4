package cmd

import (
	"github.com/flashcode/gitchart/core"
	"github.com/flashcode/gitchart/internal/contract"
	"github.com/spf13/cobra"
)

// dataCmd dumps the aggregated table behind a chart.
var dataCmd = &cobra.Command{
	Use:   "data <kind> [repo-path]",
	Short: "Print the aggregated table behind a chart.",
	Long: `Aggregate Git history like the chart command, but print the
key/count table instead of rendering an image.

Useful for scripting, spreadsheets or loading commit statistics into an
analytics pipeline.

Examples:
  # Human-readable table of commits per year
  gitchart data commits_by_year

  # CSV for a spreadsheet
  gitchart data authors --output csv --output-file authors.csv

  # Parquet for analytics tooling
  gitchart data commits_by_day --output parquet --output-file days.parquet`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteData(rootCtx, cfg, contract.NewLocalGitClient(), cacheManager); err != nil {
			contract.LogFatal("Cannot write chart data", err)
		}
	},
}
