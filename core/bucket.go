// Package core has the aggregation logic for chart generation.
package core

import (
	"context"
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/flashcode/gitchart/internal/contract"
	"github.com/flashcode/gitchart/schema"
)

// ParseAndBucket turns raw record lines into a category table using the
// kind-specific extraction rule. Lines whose shape does not match the rule
// produce a ParseError; empty lines are skipped.
func ParseAndBucket(kind schema.ChartKind, lines []string, issues *regexp.Regexp) (*schema.CategoryTable, error) {
	switch kind {
	case schema.AuthorsChart:
		return bucketAuthors(lines)
	case schema.TicketsByAuthorChart:
		return bucketTicketsByAuthor(lines, issues)
	case schema.CommitsByHourOfDay:
		return bucketHourOfDay(lines)
	case schema.CommitsByDay:
		return bucketDay(lines)
	case schema.CommitsByDayOfWeek:
		return bucketDayOfWeek(lines)
	case schema.CommitsByMonthOfYear:
		return bucketMonthOfYear(lines)
	case schema.CommitsByYear:
		return bucketYear(lines)
	case schema.CommitsByYearMonth:
		return bucketYearMonth(lines)
	case schema.FilesByType:
		return bucketFilesByType(lines)
	default:
		return nil, contract.NewConfigError("chart kind %q has no line bucketing rule", kind)
	}
}

// bucketAuthors parses shortlog lines of the form "  278\tJohn Doe".
// Shortlog already orders authors by commit count, so insertion order is
// the display order.
func bucketAuthors(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, &contract.ParseError{Kind: schema.AuthorsChart, Line: line}
		}
		count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || count < 0 {
			return nil, &contract.ParseError{Kind: schema.AuthorsChart, Line: line}
		}
		table.Add(strings.TrimSpace(parts[1]), count)
	}
	return table, nil
}

// bucketTicketsByAuthor counts distinct ticket ids per author. A commit
// only counts when the issue regex matches its subject; the first capture
// group is the ticket id, and the same id is never counted twice for one
// author.
func bucketTicketsByAuthor(lines []string, issues *regexp.Regexp) (*schema.CategoryTable, error) {
	ticketsByAuthor := make(map[string]map[string]struct{})
	var authors []string

	for _, line := range lines {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, &contract.ParseError{Kind: schema.TicketsByAuthorChart, Line: line}
		}
		author, subject := parts[0], parts[1]
		match := issues.FindStringSubmatch(subject)
		if match == nil || len(match) < 2 {
			continue
		}
		if _, ok := ticketsByAuthor[author]; !ok {
			ticketsByAuthor[author] = make(map[string]struct{})
			authors = append(authors, author)
		}
		ticketsByAuthor[author][match[1]] = struct{}{}
	}

	// Highest ticket counts first; ties keep first-seen order.
	sort.SliceStable(authors, func(i, j int) bool {
		return len(ticketsByAuthor[authors[i]]) > len(ticketsByAuthor[authors[j]])
	})

	table := schema.NewCategoryTable()
	for _, a := range authors {
		table.Add(a, len(ticketsByAuthor[a]))
	}
	return table, nil
}

// bucketHourOfDay parses ISO date lines like "2013-03-15 18:27:55 +0100".
// All 24 hours are pre-seeded with zero so quiet hours still appear.
func bucketHourOfDay(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	table.Seed(hourKeys()...)
	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields[1]) < 2 {
			return nil, &contract.ParseError{Kind: schema.CommitsByHourOfDay, Line: line}
		}
		hour := fields[1][:2]
		if !table.Has(hour) {
			return nil, &contract.ParseError{Kind: schema.CommitsByHourOfDay, Line: line}
		}
		table.Inc(hour)
	}
	return table, nil
}

// BucketHourOfWeek parses RFC date lines like "Fri, 15 Mar 2013 18:27:55 +0100"
// into a 7x24 matrix pre-seeded with zero, one series per weekday.
func BucketHourOfWeek(lines []string) (*schema.ChartData, error) {
	series := make(map[string][]int, len(schema.Weekdays))
	for _, day := range schema.Weekdays {
		series[day] = make([]int, 24)
	}

	for _, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 || len(fields[4]) < 2 {
			return nil, &contract.ParseError{Kind: schema.CommitsByHourOfWeek, Line: line}
		}
		day := strings.TrimSuffix(fields[0], ",")
		hour, err := strconv.Atoi(fields[4][:2])
		if err != nil || hour < 0 || hour > 23 {
			return nil, &contract.ParseError{Kind: schema.CommitsByHourOfWeek, Line: line}
		}
		row, ok := series[day]
		if !ok {
			return nil, &contract.ParseError{Kind: schema.CommitsByHourOfWeek, Line: line}
		}
		row[hour]++
	}

	hours := hourKeys()
	return &schema.ChartData{
		Kind:       schema.CommitsByHourOfWeek,
		Keys:       hours,
		Labels:     hours,
		SeriesKeys: append([]string(nil), schema.Weekdays...),
		Series:     series,
	}, nil
}

// bucketDay parses short date lines like "2013-03-15", one key per day.
func bucketDay(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	for _, line := range lines {
		if line == "" {
			continue
		}
		if _, _, err := splitShortDate(schema.CommitsByDay, line); err != nil {
			return nil, err
		}
		table.Inc(line)
	}
	return table, nil
}

// bucketDayOfWeek parses RFC date lines, keyed by weekday name in fixed
// Mon..Sun order.
func bucketDayOfWeek(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	table.Seed(schema.Weekdays...)
	for _, line := range lines {
		if line == "" {
			continue
		}
		day, _, found := strings.Cut(line, ",")
		if !found || !table.Has(day) {
			return nil, &contract.ParseError{Kind: schema.CommitsByDayOfWeek, Line: line}
		}
		table.Inc(day)
	}
	return table, nil
}

// bucketMonthOfYear parses short date lines, keyed by month name in fixed
// Jan..Dec order.
func bucketMonthOfYear(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	table.Seed(schema.Months...)
	for _, line := range lines {
		if line == "" {
			continue
		}
		_, month, err := splitShortDate(schema.CommitsByMonthOfYear, line)
		if err != nil {
			return nil, err
		}
		table.Inc(schema.Months[month-1])
	}
	return table, nil
}

// bucketYear parses short date lines, keyed by year.
func bucketYear(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	for _, line := range lines {
		if line == "" {
			continue
		}
		year, _, err := splitShortDate(schema.CommitsByYear, line)
		if err != nil {
			return nil, err
		}
		table.Inc(fmt.Sprintf("%04d", year))
	}
	return table, nil
}

// bucketYearMonth parses short date lines, keyed by "YYYY-MM". Every month
// between the earliest and latest observed is present, zero-filled if no
// commit landed in it, so the rendered range has no gaps.
func bucketYearMonth(lines []string) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	minDate, maxDate := 0, 0

	for _, line := range lines {
		if line == "" {
			continue
		}
		year, month, err := splitShortDate(schema.CommitsByYearMonth, line)
		if err != nil {
			return nil, err
		}
		date := year*100 + month
		if minDate == 0 || date < minDate {
			minDate = date
		}
		if date > maxDate {
			maxDate = date
		}
		table.Inc(fmt.Sprintf("%04d-%02d", year, month))
	}

	// Gap-fill the range. Keys land in arbitrary positions here; display
	// order comes from the lexicographic sort during normalization.
	for date := minDate; minDate != 0 && date <= maxDate; {
		table.Seed(fmt.Sprintf("%04d-%02d", date/100, date%100))
		if date%100 == 12 {
			// next year, for example: 201312 => 201401
			date += 89
		} else {
			date++
		}
	}
	return table, nil
}

// bucketFilesByType counts files per extension, highest counts first.
// Files without an extension share a single sentinel bucket.
func bucketFilesByType(lines []string) (*schema.CategoryTable, error) {
	counts := make(map[string]int)
	var exts []string
	for _, line := range lines {
		if line == "" {
			continue
		}
		ext := path.Ext(line)
		if ext == "" {
			ext = schema.NoExtensionKey
		}
		if _, ok := counts[ext]; !ok {
			exts = append(exts, ext)
		}
		counts[ext]++
	}

	sort.SliceStable(exts, func(i, j int) bool {
		return counts[exts[i]] > counts[exts[j]]
	})

	table := schema.NewCategoryTable()
	for _, ext := range exts {
		table.Add(ext, counts[ext])
	}
	return table, nil
}

// BucketVersions counts the commits in each tag-to-tag interval, keyed by
// the normalized version string. Tags arrive in the caller-supplied order
// (typically "git tag" output) and keep that order on the chart.
func BucketVersions(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.CategoryTable, error) {
	table := schema.NewCategoryTable()
	oldTag := ""
	for _, tag := range cfg.Tags {
		count, err := client.CountCommitsInRange(ctx, cfg.RepoPath, oldTag, tag)
		if err != nil {
			return nil, err
		}
		table.Add(schema.NormalizeVersion(tag), count)
		oldTag = tag
	}
	return table, nil
}

// hourKeys returns "00".."23".
func hourKeys() []string {
	keys := make([]string, 24)
	for h := range keys {
		keys[h] = fmt.Sprintf("%02d", h)
	}
	return keys
}

// splitShortDate validates a "YYYY-MM-DD" line and returns year and month.
func splitShortDate(kind schema.ChartKind, line string) (int, int, error) {
	parts := strings.SplitN(line, "-", 3)
	if len(parts) != 3 {
		return 0, 0, &contract.ParseError{Kind: kind, Line: line}
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	if errY != nil || errM != nil || month < 1 || month > 12 {
		return 0, 0, &contract.ParseError{Kind: kind, Line: line}
	}
	return year, month, nil
}
