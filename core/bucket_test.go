package core

import (
	"context"
	"regexp"
	"testing"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
	"github.com/stretchr/testify/assert"
)

var issuesRegex = regexp.MustCompile(contract.DefaultIssuesRegex)

// TestBucketHourOfDay covers the full hour-of-day flow on ISO timestamps:
// every hour of the day is present and commits land in their hour bucket.
func TestBucketHourOfDay(t *testing.T) {
	lines := []string{
		"2013-03-15 18:27:55 +0100",
		"2013-03-15 18:40:00 +0100",
		"2013-03-15 09:00:00 +0100",
	}

	table, err := ParseAndBucket(schema.CommitsByHourOfDay, lines, issuesRegex)
	assert.NoError(t, err)

	keys := table.Keys()
	assert.Len(t, keys, 24)
	assert.Equal(t, "00", keys[0])
	assert.Equal(t, "23", keys[23])
	assert.Equal(t, 2, table.Get("18"))
	assert.Equal(t, 1, table.Get("09"))
	assert.Equal(t, 0, table.Get("03"))
	assert.Equal(t, 3, table.Total())
}

// TestBucketHourOfDayMalformed ensures a bad timestamp is a ParseError.
func TestBucketHourOfDayMalformed(t *testing.T) {
	_, err := ParseAndBucket(schema.CommitsByHourOfDay, []string{"garbage"}, issuesRegex)
	var parseErr *contract.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

// TestBucketAuthors parses shortlog output and keeps its order.
func TestBucketAuthors(t *testing.T) {
	lines := []string{
		"   278\tJohn Doe",
		"    42\tJane Roe",
		"     1\tCI Bot",
	}

	table, err := ParseAndBucket(schema.AuthorsChart, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, []string{"John Doe", "Jane Roe", "CI Bot"}, table.Keys())
	assert.Equal(t, 278, table.Get("John Doe"))
	assert.Equal(t, 321, table.Total())
}

// TestBucketAuthorsMalformed ensures a line without the tab separator is
// rejected.
func TestBucketAuthorsMalformed(t *testing.T) {
	_, err := ParseAndBucket(schema.AuthorsChart, []string{"278 John Doe"}, issuesRegex)
	var parseErr *contract.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

// TestBucketTicketsByAuthor checks distinct ticket counting: repeated
// mentions of one ticket by the same author count once, and authors come
// out ordered by ticket count.
func TestBucketTicketsByAuthor(t *testing.T) {
	lines := []string{
		"Jane Roe,fixes #12 flaky timer",
		"Jane Roe,follow-up, closes #12",
		"Jane Roe,resolve #99 leak",
		"John Doe,fix #7 typo",
		"CI Bot,bump dependencies",
	}

	table, err := ParseAndBucket(schema.TicketsByAuthorChart, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Jane Roe", "John Doe"}, table.Keys(), "bot without ticket mentions is absent")
	assert.Equal(t, 2, table.Get("Jane Roe"))
	assert.Equal(t, 1, table.Get("John Doe"))
}

// TestBucketDayOfWeek verifies the fixed Mon..Sun order with zero seeds.
func TestBucketDayOfWeek(t *testing.T) {
	lines := []string{
		"Fri, 15 Mar 2013 18:27:55 +0100",
		"Fri, 22 Mar 2013 10:00:00 +0100",
		"Mon, 18 Mar 2013 08:30:00 +0100",
	}

	table, err := ParseAndBucket(schema.CommitsByDayOfWeek, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, schema.Weekdays, table.Keys())
	assert.Equal(t, 2, table.Get("Fri"))
	assert.Equal(t, 1, table.Get("Mon"))
	assert.Equal(t, 0, table.Get("Sun"))
}

// TestBucketMonthOfYear verifies the fixed Jan..Dec order.
func TestBucketMonthOfYear(t *testing.T) {
	lines := []string{"2013-03-15", "2013-03-16", "2013-12-01"}

	table, err := ParseAndBucket(schema.CommitsByMonthOfYear, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, schema.Months, table.Keys())
	assert.Equal(t, 2, table.Get("Mar"))
	assert.Equal(t, 1, table.Get("Dec"))
}

// TestBucketYearMonthGapFill ensures months without commits still appear,
// zero-filled, across year boundaries.
func TestBucketYearMonthGapFill(t *testing.T) {
	lines := []string{"2013-11-15", "2014-02-01", "2014-02-02"}

	table, err := ParseAndBucket(schema.CommitsByYearMonth, lines, issuesRegex)
	assert.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"2013-11", "2013-12", "2014-01", "2014-02"},
		table.Keys())
	assert.Equal(t, 1, table.Get("2013-11"))
	assert.Equal(t, 0, table.Get("2013-12"))
	assert.Equal(t, 0, table.Get("2014-01"))
	assert.Equal(t, 2, table.Get("2014-02"))
}

// TestBucketYear groups short dates by year.
func TestBucketYear(t *testing.T) {
	lines := []string{"2013-03-15", "2013-07-01", "2015-01-01"}

	table, err := ParseAndBucket(schema.CommitsByYear, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Get("2013"))
	assert.Equal(t, 1, table.Get("2015"))
	assert.False(t, table.Has("2014"), "year charts do not gap-fill")
}

// TestBucketFilesByType groups by extension with the no-extension bucket,
// most common extension first.
func TestBucketFilesByType(t *testing.T) {
	lines := []string{
		"src/main.go",
		"src/util.go",
		"src/util_test.go",
		"README.md",
		"Makefile",
		"docs/archive.tar.gz",
	}

	table, err := ParseAndBucket(schema.FilesByType, lines, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, 3, table.Get(".go"))
	assert.Equal(t, 1, table.Get(".md"))
	assert.Equal(t, 1, table.Get(".gz"), "only the last extension counts")
	assert.Equal(t, 1, table.Get(schema.NoExtensionKey))
	assert.Equal(t, ".go", table.Keys()[0])
}

// TestBucketHourOfWeek builds the weekday x hour matrix.
func TestBucketHourOfWeek(t *testing.T) {
	lines := []string{
		"Fri, 15 Mar 2013 18:27:55 +0100",
		"Fri, 15 Mar 2013 18:40:00 +0100",
		"Mon, 18 Mar 2013 09:00:00 +0100",
	}

	data, err := BucketHourOfWeek(lines)
	assert.NoError(t, err)
	assert.Equal(t, schema.Weekdays, data.SeriesKeys)
	assert.Len(t, data.Keys, 24)
	assert.Equal(t, 2, data.Series["Fri"][18])
	assert.Equal(t, 1, data.Series["Mon"][9])
	assert.Equal(t, 0, data.Series["Sun"][12])
}

// TestBucketVersions checks tag range counting and version normalization,
// preserving the incoming tag order.
func TestBucketVersions(t *testing.T) {
	ctx := context.Background()
	client := new(contract.MockGitClient)
	cfg := &contract.Config{
		RepoPath: "/repo",
		Kind:     schema.CommitsByVersion,
		Tags:     []string{"v0.1.0", "release-0-2-0"},
	}

	client.On("CountCommitsInRange", ctx, "/repo", "", "v0.1.0").Return(10, nil).Once()
	client.On("CountCommitsInRange", ctx, "/repo", "v0.1.0", "release-0-2-0").Return(4, nil).Once()

	table, err := BucketVersions(ctx, cfg, client)
	assert.NoError(t, err)
	assert.Equal(t, []string{"0.1.0", "0.2.0"}, table.Keys())
	assert.Equal(t, 10, table.Get("0.1.0"))
	assert.Equal(t, 4, table.Get("0.2.0"))
	client.AssertExpectations(t)
}

// TestBucketVersionsPropagatesError surfaces git failures untouched.
func TestBucketVersionsPropagatesError(t *testing.T) {
	ctx := context.Background()
	client := new(contract.MockGitClient)
	cfg := &contract.Config{
		RepoPath: "/repo",
		Kind:     schema.CommitsByVersion,
		Tags:     []string{"v1"},
	}

	collectorErr := &contract.CollectorError{Args: []string{"log"}}
	client.On("CountCommitsInRange", ctx, "/repo", "", "v1").Return(0, collectorErr).Once()

	_, err := BucketVersions(ctx, cfg, client)
	var ce *contract.CollectorError
	assert.ErrorAs(t, err, &ce)
	client.AssertExpectations(t)
}

// TestParseAndBucketSkipsEmptyLines ensures blank records never count.
func TestParseAndBucketSkipsEmptyLines(t *testing.T) {
	table, err := ParseAndBucket(schema.CommitsByDay, []string{"2013-03-15", "", "2013-03-15"}, issuesRegex)
	assert.NoError(t, err)
	assert.Equal(t, 2, table.Get("2013-03-15"))
	assert.Equal(t, 2, table.Total())
}
