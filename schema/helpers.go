package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// nonDigitRuns matches every run of non-digit characters in a tag name.
var nonDigitRuns = regexp.MustCompile(`[^0-9]+`)

// NormalizeVersion reduces a tag name to its digits with single period
// separators, for example:
//
//	release-0-0-1  =>  0.0.1
//	v0.3.0         =>  0.3.0
func NormalizeVersion(tag string) string {
	spaced := nonDigitRuns.ReplaceAllString(tag, " ")
	return strings.ReplaceAll(strings.TrimSpace(spaced), " ", ".")
}

// OthersKey formats the fold-in label for entries beyond the display limit,
// for example "3 others (42)".
func OthersKey(count, sum int) string {
	return fmt.Sprintf("%d others (%d)", count, sum)
}

// LabeledKey formats a key with its count appended, for example
// "John Doe (278)". Pie chart legends carry the count in the label.
func LabeledKey(key string, count int) string {
	return fmt.Sprintf("%s (%d)", key, count)
}
