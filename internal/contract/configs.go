package contract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/huangsam/leaguestat/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 10
	MaxResultLimit     = 1000
	AutoSplitLine      = -1 // detect the separator line from the export itself
)

// ErrMissingInput is returned when a command needs a CSV export but none was given.
var ErrMissingInput = errors.New("missing CSV export path")

// Config holds the runtime configuration for a command.
// This struct remains the "final, validated" config.
type Config struct {
	SourcePath  string
	Output      schema.OutputMode
	OutputFile  string
	ResultLimit int
	Roster      schema.RosterSelector
	Dimension   schema.Dimension
	HomeName    string
	AwayName    string
	SplitLine   int // 0-based separator line, AutoSplitLine to detect
	Width       int // Terminal width override (0 = auto-detect)

	HistoryBackend   schema.DatabaseBackend // empty disables history tracking
	HistoryDBConnect string                 // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored bars and titles in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// These are set manually by the command, so no tag
	SourcePathStr string
	DefaultOutput schema.OutputMode

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	HomeName         string `mapstructure:"home-name"`
	AwayName         string `mapstructure:"away-name"`
	SplitLine        int    `mapstructure:"split-line"`
	Width            int    `mapstructure:"width"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from view command flags ---
	Limit  int    `mapstructure:"limit"`
	Roster string `mapstructure:"roster"`
	By     string `mapstructure:"by"`
}

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// RosterName returns the label of the roster picked by sel.
func (c *Config) RosterName(sel schema.RosterSelector) string {
	if sel == schema.AwayRoster {
		return c.AwayName
	}
	return c.HomeName
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processRosterNames(cfg, input); err != nil {
		return err
	}
	if err := validateHistoryConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ProcessProfilingConfig enables profiling when a file prefix is given.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("history-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-roster fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.SourcePath = strings.TrimSpace(input.SourcePathStr)
	cfg.OutputFile = input.OutputFile

	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Output Validation ---
	output := strings.ToLower(strings.TrimSpace(input.Output))
	switch {
	case output != "":
		cfg.Output = schema.OutputMode(output)
	case input.DefaultOutput != "":
		cfg.Output = input.DefaultOutput
	default:
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet, xlsx", input.Output)
	}

	// --- 3. Roster and Dimension Validation ---
	cfg.Roster = schema.RosterSelector(strings.ToLower(input.Roster))
	if cfg.Roster == "" {
		cfg.Roster = schema.HomeRoster
	}
	if _, ok := schema.ValidRosterSelectors[cfg.Roster]; !ok {
		return fmt.Errorf("invalid roster '%s'. must be home, away, both", input.Roster)
	}

	cfg.Dimension = schema.Dimension(strings.ToLower(input.By))
	if cfg.Dimension == "" {
		cfg.Dimension = schema.ByRole
	}
	if _, ok := schema.ValidDimensions[cfg.Dimension]; !ok {
		return fmt.Errorf("invalid grouping '%s'. must be role, leader", input.By)
	}

	// --- 4. Layout Validation ---
	if input.SplitLine != AutoSplitLine && input.SplitLine < 1 {
		return fmt.Errorf("split-line must be %d (auto) or at least 1 (received %d)", AutoSplitLine, input.SplitLine)
	}
	cfg.SplitLine = input.SplitLine

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	return nil
}

// processRosterNames resolves the two roster labels, falling back to the defaults.
func processRosterNames(cfg *Config, input *ConfigRawInput) error {
	cfg.HomeName = strings.TrimSpace(input.HomeName)
	if cfg.HomeName == "" {
		cfg.HomeName = schema.DefaultHomeName
	}
	cfg.AwayName = strings.TrimSpace(input.AwayName)
	if cfg.AwayName == "" {
		cfg.AwayName = schema.DefaultAwayName
	}
	if cfg.HomeName == cfg.AwayName {
		return fmt.Errorf("home-name and away-name must differ (both are %q)", cfg.HomeName)
	}
	return nil
}

// validateHistoryConfig validates the history backend configuration.
func validateHistoryConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend == "" {
		return nil
	}
	if _, ok := schema.ValidHistoryBackends[cfg.HistoryBackend]; !ok {
		return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
	}
	cfg.HistoryDBConnect = input.HistoryDBConnect
	return ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect)
}

// RevalidateView applies per-request overrides of the roster, grouping and
// roster labels on an already validated config. Empty values keep the current setting.
func RevalidateView(cfg *Config, roster, by, homeName, awayName string) error {
	if roster != "" {
		sel := schema.RosterSelector(strings.ToLower(roster))
		if _, ok := schema.ValidRosterSelectors[sel]; !ok {
			return fmt.Errorf("invalid roster '%s'. must be home, away, both", roster)
		}
		cfg.Roster = sel
	}
	if by != "" {
		dim := schema.Dimension(strings.ToLower(by))
		if _, ok := schema.ValidDimensions[dim]; !ok {
			return fmt.Errorf("invalid grouping '%s'. must be role, leader", by)
		}
		cfg.Dimension = dim
	}
	if n := strings.TrimSpace(homeName); n != "" {
		cfg.HomeName = n
	}
	if n := strings.TrimSpace(awayName); n != "" {
		cfg.AwayName = n
	}
	if cfg.HomeName == cfg.AwayName {
		return fmt.Errorf("home-name and away-name must differ (both are %q)", cfg.HomeName)
	}
	return nil
}
