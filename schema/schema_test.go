package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCategoryTableInsertionOrder ensures keys come back in the order they
// were first added, regardless of later increments.
func TestCategoryTableInsertionOrder(t *testing.T) {
	table := NewCategoryTable()
	table.Inc("b")
	table.Inc("a")
	table.Inc("c")
	table.Inc("a")

	assert.Equal(t, []string{"b", "a", "c"}, table.Keys())
	assert.Equal(t, 2, table.Get("a"))
	assert.Equal(t, 1, table.Get("b"))
	assert.Equal(t, 4, table.Total())
}

// TestCategoryTableSeed ensures seeding creates zero-valued keys without
// disturbing existing counts.
func TestCategoryTableSeed(t *testing.T) {
	table := NewCategoryTable()
	table.Add("x", 3)
	table.Seed("x", "y", "z")

	assert.Equal(t, []string{"x", "y", "z"}, table.Keys())
	assert.Equal(t, 3, table.Get("x"), "seeding must not reset existing counts")
	assert.Equal(t, 0, table.Get("y"))
	assert.True(t, table.Has("z"))
	assert.False(t, table.Has("w"))
}

// TestCategoryTableKeysCopy ensures mutating the returned slice does not
// corrupt the table.
func TestCategoryTableKeysCopy(t *testing.T) {
	table := NewCategoryTable()
	table.Inc("a")
	table.Inc("b")

	keys := table.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, table.Keys())
}

// TestNormalizeVersion covers the tag-to-version normalization rule: every
// run of non-digit characters collapses into a single dot, with no leading
// or trailing dots.
func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected string
	}{
		{
			name:     "semver with v prefix",
			tag:      "v0.3.0",
			expected: "0.3.0",
		},
		{
			name:     "dashed release tag",
			tag:      "release-0-0-1",
			expected: "0.0.1",
		},
		{
			name:     "plain version",
			tag:      "1.2.3",
			expected: "1.2.3",
		},
		{
			name:     "prefix and suffix noise",
			tag:      "rel_1_0_final",
			expected: "1.0",
		},
		{
			name:     "no digits at all",
			tag:      "snapshot",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeVersion(tt.tag))
		})
	}
}

// TestKeyHelpers checks the display key formats.
func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "7 others (123)", OthersKey(7, 123))
	assert.Equal(t, "John Doe (42)", LabeledKey("John Doe", 42))
}

// TestChartKindMetadata ensures every supported kind has a shape and a
// default title.
func TestChartKindMetadata(t *testing.T) {
	assert.Len(t, AllChartKinds, 11)
	for _, kind := range AllChartKinds {
		assert.Contains(t, ValidChartKinds, kind)
		assert.NotEmpty(t, kind.DefaultTitle(), "kind %s needs a default title", kind)
		assert.NotEmpty(t, kind.Shape(), "kind %s needs a shape", kind)
	}

	assert.Equal(t, PieShape, AuthorsChart.Shape())
	assert.Equal(t, DotShape, CommitsByHourOfWeek.Shape())
	assert.Equal(t, BarShape, CommitsByYear.Shape())
}

// TestCalendarOrders pins the fixed display orders.
func TestCalendarOrders(t *testing.T) {
	assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, Weekdays)
	assert.Len(t, Months, 12)
	assert.Equal(t, "Jan", Months[0])
	assert.Equal(t, "Dec", Months[11])
}
