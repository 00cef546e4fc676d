package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	TitleColor = color.New(color.FgCyan, color.Bold) // group titles in text tables
	StatsColor = color.New(color.FgYellow)           // statistics rows in text tables
	HeadColor  = color.New(color.Bold)               // repeated headers in text tables
)

// reportFileLayout is the timestamp layout of default workbook names.
const reportFileLayout = "20060102_150405"

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// DefaultReportFileName returns the workbook name used when --output-file is empty.
func DefaultReportFileName(now time.Time) string {
	return fmt.Sprintf("帮会联赛数据_%s.xlsx", now.Format(reportFileLayout))
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

// LogHeader prints a concise 2-line header describing the match being processed.
func LogHeader(cfg *Config) {
	source := filepath.Base(cfg.SourcePath)
	if cfg.UseEmojis {
		fmt.Printf("📊 leaguestat: %s\n", source)
		fmt.Printf("⚔️  %s ↔ %s\n", cfg.HomeName, cfg.AwayName)
		return
	}
	fmt.Printf("leaguestat: %s\n", source)
	fmt.Printf("%s vs %s\n", cfg.HomeName, cfg.AwayName)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".leaguestat_history.db"
	}
	return filepath.Join(homeDir, ".leaguestat_history.db")
}

// TruncateText truncates s to a maximum display width with an ellipsis suffix.
// Requires maxWidth > 3 so the suffix leaves room for at least one rune.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
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
