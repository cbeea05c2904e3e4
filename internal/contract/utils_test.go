package contract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseBoolString covers all accepted spellings and a rejection.
func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{input: "yes", expected: true},
		{input: "YES", expected: true},
		{input: "true", expected: true},
		{input: "1", expected: true},
		{input: "no", expected: false},
		{input: "False", expected: false},
		{input: "0", expected: false},
		{input: "maybe", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

// TestTruncateKey keeps short keys intact and shortens long ones from the
// front.
func TestTruncateKey(t *testing.T) {
	assert.Equal(t, "short", TruncateKey("short", 20))
	long := strings.Repeat("a", 30) + "tail"
	got := TruncateKey(long, 10)
	assert.Len(t, got, 10)
	assert.True(t, strings.HasPrefix(got, "..."))
	assert.True(t, strings.HasSuffix(got, "tail"))
}

// TestGetPlainShare formats percentages with one decimal.
func TestGetPlainShare(t *testing.T) {
	assert.Equal(t, "12.5%", GetPlainShare(12.5))
	assert.Equal(t, "0.0%", GetPlainShare(0))
	assert.Equal(t, "100.0%", GetPlainShare(100))
}

// TestGetColorShare always contains the plain label, colored or not.
func TestGetColorShare(t *testing.T) {
	for _, pct := range []float64{0.1, 7.5, 25, 80} {
		assert.Contains(t, GetColorShare(pct), GetPlainShare(pct))
	}
}

// TestGetCacheDBFilePath returns a stable non-empty path.
func TestGetCacheDBFilePath(t *testing.T) {
	path := GetCacheDBFilePath()
	assert.NotEmpty(t, path)
	assert.True(t, strings.HasSuffix(path, ".gitchart_cache.db"))
}
