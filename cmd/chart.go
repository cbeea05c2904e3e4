package cmd

import (
	"github.com/flashcode/gitchart/core"
	"github.com/flashcode/gitchart/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders a chart for a repository.
var chartCmd = &cobra.Command{
	Use:   "chart <kind> [repo-path]",
	Short: "Render a repository statistic as an SVG or PNG chart.",
	Long: `Aggregate Git history into a chart and render it.

The chart kind selects what gets counted and how it is drawn:
- Pie charts: authors, tickets_by_author, files_by_type
- Bar charts: commits by hour, day, weekday, month, year or tag
- Dot chart: commits_by_hour_of_week (weekday x hour punchcard)

Run 'gitchart list' for all supported kinds.

Examples:
  # Commit counts per author, as SVG on stdout
  gitchart chart authors > authors.svg

  # Commits per hour of day for another repository, as PNG
  gitchart chart commits_by_hour_of_day ~/src/linux -o hours.png

  # Commits per tag, tags piped in release order
  git tag | gitchart chart commits_by_version -o versions.svg

  # Fold everything past the top 10 authors into one slice
  gitchart chart authors --max-diff 10`,
	Args:    cobra.RangeArgs(1, 2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg, contract.NewLocalGitClient(), cacheManager); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
