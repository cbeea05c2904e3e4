// Package schema has the shared data model for gitchart.
package schema

import "time"

// CategoryTable is a frequency table mapping category keys to counts.
// It remembers insertion order so that sorts can tie-break deterministically
// and fixed-order charts keep their calendar ordering.
type CategoryTable struct {
	keys   []string
	counts map[string]int
}

// NewCategoryTable returns an empty category table.
func NewCategoryTable() *CategoryTable {
	return &CategoryTable{counts: make(map[string]int)}
}

// Seed inserts the given keys with a zero count, in order.
// Existing keys are left untouched.
func (t *CategoryTable) Seed(keys ...string) {
	for _, k := range keys {
		if _, ok := t.counts[k]; !ok {
			t.keys = append(t.keys, k)
			t.counts[k] = 0
		}
	}
}

// Add increases the count for key by n, inserting the key if absent.
func (t *CategoryTable) Add(key string, n int) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key] += n
}

// Inc increments the count for key by one.
func (t *CategoryTable) Inc(key string) {
	t.Add(key, 1)
}

// Get returns the count for key, or zero if the key is absent.
func (t *CategoryTable) Get(key string) int {
	return t.counts[key]
}

// Has reports whether key is present in the table.
func (t *CategoryTable) Has(key string) bool {
	_, ok := t.counts[key]
	return ok
}

// Keys returns all keys in insertion order.
func (t *CategoryTable) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of distinct keys.
func (t *CategoryTable) Len() int {
	return len(t.keys)
}

// Total returns the sum of all counts.
func (t *CategoryTable) Total() int {
	sum := 0
	for _, v := range t.counts {
		sum += v
	}
	return sum
}

// ChartData is the finished, ordered dataset handed to the renderer
// or to the data writers. Keys, Labels and Values are index-aligned;
// Labels may contain blanks where x-axis labels were thinned out.
type ChartData struct {
	Kind   ChartKind
	Title  string
	Keys   []string
	Labels []string
	Values []int

	// Series is only populated for matrix charts (commits_by_hour_of_week):
	// one row per series key, each row index-aligned with Keys.
	SeriesKeys []string
	Series     map[string][]int
}

// CacheStatus holds status information about the query cache.
type CacheStatus struct {
	Backend         string
	Connected       bool
	TotalEntries    int
	TableSizeBytes  int64
	LastEntryTime   time.Time
	OldestEntryTime time.Time
}
