package core

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/internal/iocache"
	"github.com/flashcode/gitchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig(kind schema.ChartKind) *contract.Config {
	return &contract.Config{
		RepoPath:    "/repo",
		Kind:        kind,
		Title:       kind.DefaultTitle(),
		OutputFile:  contract.StdoutTarget,
		MaxDiff:     contract.DefaultMaxDiff,
		IssuesRegex: regexp.MustCompile(contract.DefaultIssuesRegex),
		Width:       contract.DefaultWidth,
		Height:      contract.DefaultHeight,
		Output:      schema.TextOut,
	}
}

// TestBuildChartDataHourOfDay runs the pipeline end to end on mocked git
// output: three commits spread over two hours produce a 24-key table.
func TestBuildChartDataHourOfDay(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByHourOfDay)
	client := new(contract.MockGitClient)

	client.On("GetCommitDates", ctx, "/repo", schema.ISODate, false).Return([]string{
		"2013-03-15 18:27:55 +0100",
		"2013-03-15 18:40:00 +0100",
		"2013-03-15 09:00:00 +0100",
	}, nil).Once()

	data, err := BuildChartData(ctx, cfg, client, nil)
	assert.NoError(t, err)
	assert.Equal(t, schema.CommitsByHourOfDay, data.Kind)
	assert.Len(t, data.Keys, 24)
	assert.Equal(t, 2, data.Values[18])
	assert.Equal(t, 1, data.Values[9])
	assert.Equal(t, 0, data.Values[3])
	client.AssertExpectations(t)
}

// TestBuildChartDataAuthorsFold folds authors past max-diff into one
// aggregate entry.
func TestBuildChartDataAuthorsFold(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.AuthorsChart)
	cfg.MaxDiff = 2
	client := new(contract.MockGitClient)

	client.On("GetAuthorSummary", ctx, "/repo", false).Return([]string{
		"  30\tAlice",
		"  20\tBob",
		"   5\tCarol",
		"   4\tDave",
	}, nil).Once()

	data, err := BuildChartData(ctx, cfg, client, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", schema.OthersKey(2, 9)}, data.Keys)
	assert.Equal(t, []int{30, 20, 9}, data.Values)
	assert.Equal(t, "Alice (30)", data.Labels[0])
	client.AssertExpectations(t)
}

// TestBuildChartDataVersionOrder keeps the stdin tag order on the chart.
func TestBuildChartDataVersionOrder(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByVersion)
	cfg.Tags = []string{"v0.9", "v0.10"}
	client := new(contract.MockGitClient)

	client.On("CountCommitsInRange", ctx, "/repo", "", "v0.9").Return(3, nil).Once()
	client.On("CountCommitsInRange", ctx, "/repo", "v0.9", "v0.10").Return(7, nil).Once()

	data, err := BuildChartData(ctx, cfg, client, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"0.9", "0.10"}, data.Keys, "lexicographic sorting would flip these")
	client.AssertExpectations(t)
}

// TestCollectRecordsCacheHit serves records from the cache without
// touching git beyond the HEAD hash lookup.
func TestCollectRecordsCacheHit(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByYear)
	client := new(contract.MockGitClient)
	store := new(iocache.MockCacheStore)
	manager := new(iocache.MockCacheManager)

	client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil).Once()
	manager.On("GetQueryStore").Return(store).Once()
	store.On("Get", "abc123|dates-short").
		Return([]byte("2013-03-15\n2014-01-01"), 1, int64(0), nil).Once()

	lines, err := CollectRecords(ctx, cfg, client, manager)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2013-03-15", "2014-01-01"}, lines)
	client.AssertExpectations(t)
	store.AssertExpectations(t)
	manager.AssertExpectations(t)
}

// TestCollectRecordsCacheMiss fetches from git and writes the cache.
func TestCollectRecordsCacheMiss(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByYear)
	client := new(contract.MockGitClient)
	store := new(iocache.MockCacheStore)
	manager := new(iocache.MockCacheManager)

	client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)
	client.On("GetCommitDates", ctx, "/repo", schema.ShortDate, false).
		Return([]string{"2013-03-15"}, nil).Once()
	manager.On("GetQueryStore").Return(store)
	store.On("Get", "abc123|dates-short").
		Return(nil, 0, int64(0), sql.ErrNoRows).Once()
	store.On("Set", "abc123|dates-short", []byte("2013-03-15"), 1, mock.Anything).
		Return(nil).Once()

	lines, err := CollectRecords(ctx, cfg, client, manager)
	assert.NoError(t, err)
	assert.Equal(t, []string{"2013-03-15"}, lines)
	store.AssertExpectations(t)
}

// TestCollectRecordsNoMergesKey keeps merge-inclusive and merge-free
// results under different cache keys.
func TestCollectRecordsNoMergesKey(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByYear)
	cfg.NoMerges = true
	client := new(contract.MockGitClient)
	store := new(iocache.MockCacheStore)
	manager := new(iocache.MockCacheManager)

	client.On("GetRepoHash", ctx, "/repo").Return("abc123", nil)
	client.On("GetCommitDates", ctx, "/repo", schema.ShortDate, true).
		Return([]string{"2013-03-15"}, nil).Once()
	manager.On("GetQueryStore").Return(store)
	store.On("Get", "abc123|dates-short-nomerges").
		Return(nil, 0, int64(0), sql.ErrNoRows).Once()
	store.On("Set", "abc123|dates-short-nomerges", mock.Anything, 1, mock.Anything).
		Return(nil).Once()

	_, err := CollectRecords(ctx, cfg, client, manager)
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

// TestExecuteChartWritesSVG renders a chart to a file and checks it looks
// like SVG.
func TestExecuteChartWritesSVG(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.CommitsByDayOfWeek)
	cfg.OutputFile = filepath.Join(t.TempDir(), "weekdays.svg")
	client := new(contract.MockGitClient)

	client.On("GetCommitDates", ctx, "/repo", schema.RFCDate, false).Return([]string{
		"Fri, 15 Mar 2013 18:27:55 +0100",
		"Mon, 18 Mar 2013 09:00:00 +0100",
	}, nil).Once()

	err := ExecuteChart(ctx, cfg, client, nil)
	assert.NoError(t, err)

	content, err := os.ReadFile(cfg.OutputFile)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "<svg"), "output should be an SVG document")
	client.AssertExpectations(t)
}

// TestBuildChartDataParseErrorSurfaces keeps terminal errors terminal.
func TestBuildChartDataParseErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(schema.AuthorsChart)
	client := new(contract.MockGitClient)

	client.On("GetAuthorSummary", ctx, "/repo", false).Return([]string{"not a shortlog line"}, nil).Once()

	_, err := BuildChartData(ctx, cfg, client, nil)
	var parseErr *contract.ParseError
	assert.ErrorAs(t, err, &parseErr)
	client.AssertExpectations(t)
}
