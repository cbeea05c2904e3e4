package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colors for share labels in table output.
var (
	MajorColor  = color.New(color.FgRed, color.Bold)    // half the total or more
	HighColor   = color.New(color.FgMagenta, color.Bold)
	MediumColor = color.New(color.FgYellow)
	MinorColor  = color.New(color.FgCyan)
)

// GetPlainShare formats a percentage share without color, for CSV and
// non-terminal output.
func GetPlainShare(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// GetColorShare returns the share label colored by weight for console output.
func GetColorShare(percent float64) string {
	label := GetPlainShare(percent)
	switch {
	case percent >= 50:
		return MajorColor.Sprint(label)
	case percent >= 20:
		return HighColor.Sprint(label)
	case percent >= 5:
		return MediumColor.Sprint(label)
	default:
		return MinorColor.Sprint(label)
	}
}

// GetMaxTableKeyWidth returns the width available for the key column in
// table output, from the detected terminal width.
func GetMaxTableKeyWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80 // narrow terminals and CI
	}

	// Rank, count and share columns plus borders and padding.
	available := termWidth - 40
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// TruncateKey shortens a key to fit the table, keeping the tail since the
// distinguishing part of long author names and paths is usually there.
func TruncateKey(key string, maxWidth int) string {
	if len(key) <= maxWidth || maxWidth <= 3 {
		return key
	}
	return "..." + key[len(key)-maxWidth+3:]
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" || filePath == StdoutTarget {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// GetCacheDBFilePath returns the path to the SQLite DB file for query cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitchart_cache.db"
	}
	return filepath.Join(homeDir, ".gitchart_cache.db")
}
