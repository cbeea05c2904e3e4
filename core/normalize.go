package core

import (
	"sort"

	"github.com/flashcode/gitchart/schema"
)

// NormalizeOptions controls how a category table becomes displayable
// chart data. The zero value keeps insertion order with plain labels.
type NormalizeOptions struct {
	// SortKeys orders keys lexicographically before anything else.
	// Date-shaped keys sort chronologically this way.
	SortKeys bool

	// MaxKeys keeps only the last N keys of the lexicographic order,
	// the most recent ones for date-shaped keys. Zero keeps all.
	MaxKeys int

	// SortMax reorders by value and trims to the largest |N| entries.
	// Positive N sorts ascending (largest at the end), negative N sorts
	// descending (largest at the start). Ties keep their prior order.
	SortMax int

	// FoldLimit keeps the first N entries and folds the rest into a
	// single "N others (sum)" entry. Zero disables folding.
	FoldLimit int

	// CountLabels appends the value to each label, "key (count)".
	CountLabels bool

	// MaxXLabels blanks out labels beyond this count so dense axes stay
	// readable; every value still gets its bar. Zero disables thinning.
	MaxXLabels int
}

// Normalize orders, trims and labels a category table into chart data.
// The steps run in a fixed order so the knobs compose: lexicographic
// sort, recency cap, value sort, fold, labeling.
func Normalize(table *schema.CategoryTable, opts NormalizeOptions) *schema.ChartData {
	keys := table.Keys()

	if opts.SortKeys {
		sort.Strings(keys)
	}
	if opts.MaxKeys > 0 && len(keys) > opts.MaxKeys {
		keys = keys[len(keys)-opts.MaxKeys:]
	}
	keys = applySortMax(table, keys, opts.SortMax)

	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = table.Get(k)
	}
	keys, values = applyFold(keys, values, opts.FoldLimit)

	labels := make([]string, len(keys))
	for i, k := range keys {
		if opts.CountLabels && !isOthersEntry(opts.FoldLimit, len(keys), i) {
			labels[i] = schema.LabeledKey(k, values[i])
		} else {
			labels[i] = k
		}
	}
	thinLabels(labels, opts.MaxXLabels)

	return &schema.ChartData{
		Keys:   keys,
		Labels: labels,
		Values: values,
	}
}

// applySortMax reorders keys by value and keeps the largest |max|.
func applySortMax(table *schema.CategoryTable, keys []string, max int) []string {
	if max == 0 {
		return keys
	}
	if max > 0 {
		sort.SliceStable(keys, func(i, j int) bool {
			return table.Get(keys[i]) < table.Get(keys[j])
		})
		if len(keys) > max {
			keys = keys[len(keys)-max:]
		}
		return keys
	}
	sort.SliceStable(keys, func(i, j int) bool {
		return table.Get(keys[i]) > table.Get(keys[j])
	})
	if len(keys) > -max {
		keys = keys[:-max]
	}
	return keys
}

// applyFold collapses everything past the limit into one aggregate entry
// whose value is the exact sum of the folded values, so the chart total
// matches the unfolded total.
func applyFold(keys []string, values []int, limit int) ([]string, []int) {
	if limit <= 0 || len(keys) <= limit {
		return keys, values
	}
	folded := len(keys) - limit
	sum := 0
	for _, v := range values[limit:] {
		sum += v
	}
	keys = append(keys[:limit:limit], schema.OthersKey(folded, sum))
	values = append(values[:limit:limit], sum)
	return keys, values
}

// isOthersEntry reports whether index i is the folded aggregate entry.
// Its key already carries the sum, so no count label is appended.
func isOthersEntry(foldLimit, length, i int) bool {
	return foldLimit > 0 && length == foldLimit+1 && i == length-1
}

// thinLabels blanks labels on dense axes, keeping roughly every n-th one
// counting from the most recent end.
func thinLabels(labels []string, max int) {
	if max <= 0 || len(labels) <= max {
		return
	}
	num := (len(labels) / max) * 2
	if num < 2 {
		num = 2
	}
	for i := range labels {
		if (len(labels)-i-1)%num != 0 {
			labels[i] = ""
		}
	}
}
