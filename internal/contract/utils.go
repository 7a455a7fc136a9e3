package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"ownerscope/schema"
)

// Color variables for console output.
var (
	OwnerColor   = color.New(color.FgCyan, color.Bold) // owner headings in the report
	UnknownColor = color.New(color.FgYellow)           // the sentinel owner, visually distinct
	SummaryColor = color.New(color.Bold)               // headline summary counts
)

// FormatOwnerHeading returns the heading text for one owner's table,
// colored for console output when enabled.
func FormatOwnerHeading(owner string, totalChanges int, useColors bool) string {
	text := fmt.Sprintf("Top changed files for %s (%d total changes)", owner, totalChanges)
	if !useColors {
		return text
	}
	if owner == schema.UnknownOwner {
		return UnknownColor.Sprint(text)
	}
	return OwnerColor.Sprint(text)
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncatePath truncates a file path to a maximum width with ellipsis prefix.
func TruncatePath(path string, maxWidth int) string {
	runes := []rune(path)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return path
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

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
