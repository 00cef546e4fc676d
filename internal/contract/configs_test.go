package contract

import (
	"testing"

	"github.com/huangsam/leaguestat/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns the raw input produced by the CLI defaults.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		SourcePathStr: "match.csv",
		DefaultOutput: schema.TextOut,
		Limit:         DefaultResultLimit,
		SplitLine:     AutoSplitLine,
		Emoji:         "no",
		Color:         "yes",
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError bool
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "invalid limit (zero)", mutate: func(in *ConfigRawInput) { in.Limit = 0 }, expectError: true},
		{name: "invalid limit (too large)", mutate: func(in *ConfigRawInput) { in.Limit = MaxResultLimit + 1 }, expectError: true},
		{name: "invalid output", mutate: func(in *ConfigRawInput) { in.Output = "pdf" }, expectError: true},
		{name: "invalid roster", mutate: func(in *ConfigRawInput) { in.Roster = "neutral" }, expectError: true},
		{name: "invalid grouping", mutate: func(in *ConfigRawInput) { in.By = "level" }, expectError: true},
		{name: "invalid emoji", mutate: func(in *ConfigRawInput) { in.Emoji = "maybe" }, expectError: true},
		{name: "invalid color", mutate: func(in *ConfigRawInput) { in.Color = "sometimes" }, expectError: true},
		{name: "split line on header", mutate: func(in *ConfigRawInput) { in.SplitLine = 0 }, expectError: true},
		{name: "explicit split line", mutate: func(in *ConfigRawInput) { in.SplitLine = 12 }},
		{name: "negative width", mutate: func(in *ConfigRawInput) { in.Width = -1 }, expectError: true},
		{name: "same roster names", mutate: func(in *ConfigRawInput) { in.HomeName, in.AwayName = "A", "A" }, expectError: true},
		{name: "invalid history backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "redis" }, expectError: true},
		{name: "sqlite history backend", mutate: func(in *ConfigRawInput) { in.HistoryBackend = "sqlite" }},
		{
			name: "mysql history without connection",
			mutate: func(in *ConfigRawInput) {
				in.HistoryBackend = "mysql"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}
			err := ProcessAndValidate(cfg, input)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestProcessAndValidate_Defaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validInput()))

	assert.Equal(t, "match.csv", cfg.SourcePath)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.HomeRoster, cfg.Roster)
	assert.Equal(t, schema.ByRole, cfg.Dimension)
	assert.Equal(t, schema.DefaultHomeName, cfg.HomeName)
	assert.Equal(t, schema.DefaultAwayName, cfg.AwayName)
	assert.Equal(t, AutoSplitLine, cfg.SplitLine)
	assert.Equal(t, schema.DatabaseBackend(""), cfg.HistoryBackend)
	assert.False(t, cfg.UseEmojis)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidate_OutputPrecedence(t *testing.T) {
	input := validInput()
	input.DefaultOutput = schema.XLSXOut
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.XLSXOut, cfg.Output)

	input.Output = "JSON"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, schema.JSONOut, cfg.Output)
}

func TestProcessAndValidate_RosterNames(t *testing.T) {
	input := validInput()
	input.HomeName = "  青龙会 "
	input.AwayName = "白虎堂"
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "青龙会", cfg.HomeName)
	assert.Equal(t, "白虎堂", cfg.AwayName)
	assert.Equal(t, "青龙会", cfg.RosterName(schema.HomeRoster))
	assert.Equal(t, "白虎堂", cfg.RosterName(schema.AwayRoster))
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	tests := []struct {
		name        string
		backend     schema.DatabaseBackend
		connStr     string
		expectError bool
	}{
		{"sqlite empty", schema.SQLiteBackend, "", false},
		{"none empty", schema.NoneBackend, "", false},
		{"mysql valid", schema.MySQLBackend, "user:pass@tcp(localhost:3306)/league", false},
		{"mysql empty", schema.MySQLBackend, "", true},
		{"mysql missing tcp", schema.MySQLBackend, "user:pass@localhost/league", true},
		{"postgres valid", schema.PostgreSQLBackend, "host=localhost port=5432 user=u password=p dbname=league", false},
		{"postgres missing host", schema.PostgreSQLBackend, "dbname=league", true},
		{"postgres missing dbname", schema.PostgreSQLBackend, "host=localhost", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDatabaseConnectionString(tt.backend, tt.connStr)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{HomeName: "A", AwayName: "B", ResultLimit: 5}
	clone := cfg.Clone()
	clone.ResultLimit = 20
	clone.HomeName = "C"

	assert.Equal(t, 5, cfg.ResultLimit)
	assert.Equal(t, "A", cfg.HomeName)
}

func TestRevalidateView(t *testing.T) {
	base := func() *Config {
		return &Config{
			Roster:    schema.HomeRoster,
			Dimension: schema.ByRole,
			HomeName:  schema.DefaultHomeName,
			AwayName:  schema.DefaultAwayName,
		}
	}

	t.Run("empty overrides keep settings", func(t *testing.T) {
		cfg := base()
		require.NoError(t, RevalidateView(cfg, "", "", "", ""))
		assert.Equal(t, base(), cfg)
	})

	t.Run("overrides applied", func(t *testing.T) {
		cfg := base()
		require.NoError(t, RevalidateView(cfg, "AWAY", "leader", " 红队 ", "蓝队"))
		assert.Equal(t, schema.AwayRoster, cfg.Roster)
		assert.Equal(t, schema.ByLeader, cfg.Dimension)
		assert.Equal(t, "红队", cfg.HomeName)
		assert.Equal(t, "蓝队", cfg.AwayName)
	})

	t.Run("invalid roster", func(t *testing.T) {
		assert.ErrorContains(t, RevalidateView(base(), "neutral", "", "", ""), "invalid roster")
	})

	t.Run("invalid grouping", func(t *testing.T) {
		assert.ErrorContains(t, RevalidateView(base(), "", "level", "", ""), "invalid grouping")
	})

	t.Run("same roster names", func(t *testing.T) {
		assert.ErrorContains(t, RevalidateView(base(), "", "", "A", "A"), "must differ")
	})
}

func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "leaguestat"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "leaguestat", profile.Prefix)
}
