package core

import (
	"context"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/internal/outwriter"
	"github.com/flashcode/gitchart/internal/render"
	"github.com/flashcode/gitchart/schema"
)

// BuildChartData runs the full aggregation pipeline for the configured
// chart kind: collect raw records, bucket them into categories, then
// normalize into display order.
func BuildChartData(ctx context.Context, cfg *contract.Config, client contract.GitClient, manager contract.CacheManager) (*schema.ChartData, error) {
	if cfg.Kind == schema.CommitsByHourOfWeek {
		lines, err := CollectRecords(ctx, cfg, client, manager)
		if err != nil {
			return nil, err
		}
		data, err := BucketHourOfWeek(lines)
		if err != nil {
			return nil, err
		}
		data.Title = cfg.Title
		return data, nil
	}

	var table *schema.CategoryTable
	var err error
	if cfg.Kind == schema.CommitsByVersion {
		// Tag ranges run one git query per tag pair and depend on the
		// tag list from stdin, so they bypass the query cache.
		table, err = BucketVersions(ctx, cfg, client)
	} else {
		var lines []string
		lines, err = CollectRecords(ctx, cfg, client, manager)
		if err != nil {
			return nil, err
		}
		table, err = ParseAndBucket(cfg.Kind, lines, cfg.IssuesRegex)
	}
	if err != nil {
		return nil, err
	}

	data := Normalize(table, normalizeOptions(cfg))
	data.Kind = cfg.Kind
	data.Title = cfg.Title
	return data, nil
}

// normalizeOptions returns the display rules for a chart kind. Pie kinds
// fold their tail into an aggregate slice; bar kinds order by key unless
// the values arrive pre-ordered or a fixed calendar order applies.
func normalizeOptions(cfg *contract.Config) NormalizeOptions {
	switch cfg.Kind {
	case schema.AuthorsChart, schema.TicketsByAuthorChart, schema.FilesByType:
		// Buckets arrive sorted by count already.
		return NormalizeOptions{FoldLimit: cfg.MaxDiff, CountLabels: true}
	case schema.CommitsByDay:
		return NormalizeOptions{SortKeys: true, MaxKeys: cfg.MaxDiff, SortMax: cfg.SortMax}
	case schema.CommitsByYear, schema.CommitsByYearMonth:
		return NormalizeOptions{SortKeys: true, SortMax: cfg.SortMax, MaxXLabels: maxXLabels(cfg.Kind)}
	case schema.CommitsByVersion:
		// Keys keep the stdin tag order.
		return NormalizeOptions{SortMax: cfg.SortMax}
	default:
		// Fixed calendar orders (hours, weekdays, months) are seeded in
		// insertion order during bucketing.
		return NormalizeOptions{SortMax: cfg.SortMax}
	}
}

// maxXLabels caps axis labels for kinds with unbounded key ranges.
func maxXLabels(kind schema.ChartKind) int {
	if kind == schema.CommitsByYearMonth {
		return 30
	}
	return 0
}

// ExecuteChart builds the chart data and renders it as SVG or PNG to the
// configured output target.
func ExecuteChart(ctx context.Context, cfg *contract.Config, client contract.GitClient, manager contract.CacheManager) error {
	data, err := BuildChartData(ctx, cfg, client, manager)
	if err != nil {
		return err
	}
	return render.WriteChart(data, cfg)
}

// ExecuteData builds the chart data and dumps the underlying table in the
// configured output mode instead of rendering it.
func ExecuteData(ctx context.Context, cfg *contract.Config, client contract.GitClient, manager contract.CacheManager) error {
	data, err := BuildChartData(ctx, cfg, client, manager)
	if err != nil {
		return err
	}
	return outwriter.WriteChartData(data, cfg)
}
