// Package cmd defines the command-line interface for gitchart.
package cmd

import (
	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("title", "t", "", "Chart title (default: a title derived from the chart kind)")
	rootCmd.PersistentFlags().StringP("output-file", "o", contract.StdoutTarget, "Output file, '-' writes SVG to stdout; a .png suffix selects PNG")
	rootCmd.PersistentFlags().Bool("no-merges", false, "Skip merge commits")
	rootCmd.PersistentFlags().Int("max-diff", contract.DefaultMaxDiff, "Max entries before folding the rest into 'others' (0 = unlimited)")
	rootCmd.PersistentFlags().Int("sort-max", 0, "Sort by value and keep the N largest entries; negative reverses the order")
	rootCmd.PersistentFlags().String("issues-regex", "", "Regex matching issue references; the first group is the issue number")
	rootCmd.PersistentFlags().Int("width", contract.DefaultWidth, "Chart width in pixels")
	rootCmd.PersistentFlags().Int("height", contract.DefaultHeight, "Chart height in pixels")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Data format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
