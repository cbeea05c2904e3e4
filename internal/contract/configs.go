package contract

import (
	"context"
	"regexp"
	"strings"

	"github.com/flashcode/gitchart/schema"
)

// Default values for configuration.
const (
	DefaultMaxDiff = 20
	DefaultWidth   = 800
	DefaultHeight  = 600
	MinChartSize   = 100
	MaxChartSize   = 10000
)

// DefaultIssuesRegex matches issue references in commit subjects. The first
// capture group is the issue number.
const DefaultIssuesRegex = `(?:close|closes|closed|fix|fixes|fixed|resolve|resolves|resolved) *#([0-9]+)`

// StdoutTarget is the output sentinel that writes SVG to standard output.
const StdoutTarget = "-"

// Config holds the runtime configuration for a chart request.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath   string
	Kind       schema.ChartKind
	Title      string
	OutputFile string // path, or StdoutTarget for SVG on stdout

	NoMerges    bool
	MaxDiff     int // fold entries beyond this into "others"; 0 = unlimited
	SortMax     int // sort by value and keep |n| entries; sign flips order; 0 = off
	IssuesRegex *regexp.Regexp

	// Tags is the ordered tag list read from stdin for commits_by_version.
	Tags []string

	Width  int
	Height int

	Output    schema.OutputMode // data command format
	UseColors bool

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually from positional args and stdin, so no tag
	RepoPathStr string
	KindStr     string
	TagData     string

	Title          string `mapstructure:"title"`
	OutputFile     string `mapstructure:"output-file"`
	NoMerges       bool   `mapstructure:"no-merges"`
	MaxDiff        int    `mapstructure:"max-diff"`
	SortMax        int    `mapstructure:"sort-max"`
	IssuesRegex    string `mapstructure:"issues-regex"`
	Width          int    `mapstructure:"width"`
	Height         int    `mapstructure:"height"`
	Output         string `mapstructure:"output"`
	Color          string `mapstructure:"color"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateKind(cfg, input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTagInput(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPath(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// validateKind resolves the chart kind selector and the chart title.
func validateKind(cfg *Config, input *ConfigRawInput) error {
	cfg.Kind = schema.ChartKind(strings.ToLower(strings.TrimSpace(input.KindStr)))
	if _, ok := schema.ValidChartKinds[cfg.Kind]; !ok {
		return NewConfigError("invalid chart kind %q. Run 'gitchart list' for supported kinds", input.KindStr)
	}

	cfg.Title = input.Title
	if cfg.Title == "" {
		cfg.Title = cfg.Kind.DefaultTitle()
	}
	return nil
}

// validateSimpleInputs processes and validates all non-kind related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.NoMerges = input.NoMerges

	// --- 1. Output target ---
	cfg.OutputFile = strings.TrimSpace(input.OutputFile)
	if cfg.OutputFile == "" {
		cfg.OutputFile = StdoutTarget
	}

	// --- 2. Fold / sort knobs ---
	if input.MaxDiff < 0 {
		return NewConfigError("max-diff must be >= 0 (received %d)", input.MaxDiff)
	}
	cfg.MaxDiff = input.MaxDiff
	cfg.SortMax = input.SortMax

	// --- 3. Issue regex ---
	pattern := input.IssuesRegex
	if pattern == "" {
		pattern = DefaultIssuesRegex
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return NewConfigError("invalid issues regex %q: %v", pattern, err)
	}
	cfg.IssuesRegex = re

	// --- 4. Chart dimensions ---
	cfg.Width = input.Width
	cfg.Height = input.Height
	if cfg.Width < MinChartSize || cfg.Width > MaxChartSize {
		return NewConfigError("width must be between %d and %d (received %d)", MinChartSize, MaxChartSize, cfg.Width)
	}
	if cfg.Height < MinChartSize || cfg.Height > MaxChartSize {
		return NewConfigError("height must be between %d and %d (received %d)", MinChartSize, MaxChartSize, cfg.Height)
	}

	// --- 5. Data output mode ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return NewConfigError("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}

	// --- 6. Color flag ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return NewConfigError("invalid --color value: %v", err)
	}
	cfg.UseColors = colors

	// --- 7. Cache backend ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return NewConfigError("invalid cache backend %q. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return NewConfigError("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return NewConfigError("MySQL connection string must contain '@tcp(' for host:port specification")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return NewConfigError("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return NewConfigError("PostgreSQL connection string must contain 'host=' parameter")
		}
	}
	return nil
}

// processTagInput splits the stdin tag data for the version chart.
// The tag list is required there and ignored everywhere else.
func processTagInput(cfg *Config, input *ConfigRawInput) error {
	for _, line := range strings.Split(input.TagData, "\n") {
		tag := strings.TrimSpace(line)
		if tag != "" {
			cfg.Tags = append(cfg.Tags, tag)
		}
	}
	if cfg.Kind == schema.CommitsByVersion && len(cfg.Tags) == 0 {
		return NewConfigError("%s requires a tag list on standard input, for example: git tag | gitchart chart %s", cfg.Kind, cfg.Kind)
	}
	return nil
}

// resolveGitPath resolves the Git repository root from the positional path.
func resolveGitPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	gitRoot, err := client.GetRepoRoot(ctx, searchPath)
	if err != nil {
		return err
	}
	cfg.RepoPath = gitRoot
	return nil
}
