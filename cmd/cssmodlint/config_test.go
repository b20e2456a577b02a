package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmodlint.yaml")
	configContent := `
verbose: true
color: true

lint:
  tsconfig: web/tsconfig.app.json
  gitignore: true
  bracket-access: false
  max-same-issues: 3
  exclude:
    - dist
    - "**/*.stories.tsx"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.True(t, k.Bool("color"))
	assert.Equal(t, "web/tsconfig.app.json", k.String("lint.tsconfig"))
	assert.True(t, k.Bool("lint.gitignore"))
	assert.False(t, k.Bool("lint.bracket-access"))
	assert.Equal(t, 3, k.Int("lint.max-same-issues"))
	assert.Equal(t, []string{"dist", "**/*.stories.tsx"}, k.Strings("lint.exclude"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config, should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.cssmodlint.yaml"))

	config := buildLintConfig("web")
	assert.Equal(t, "web", config.Root)
	assert.Empty(t, config.TSConfig)
	assert.True(t, config.BracketAccess)
}

func TestConfigFileMalformed(t *testing.T) {
	resetKoanf()

	configPath := filepath.Join(t.TempDir(), ".cssmodlint.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("lint: [unclosed"), 0644))

	err := loadConfigFromPath(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmodlint.yaml")
	configContent := `
lint:
  bracket-access: true
  output-format: text
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	// Set env vars that should override config file
	t.Setenv("CSSMODLINT_LINT_BRACKET_ACCESS", "false")
	t.Setenv("CSSMODLINT_LINT_OUTPUT_FORMAT", "json")
	t.Setenv("CSSMODLINT_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(configPath))

	assert.False(t, k.Bool("lint.bracket-access"))
	assert.Equal(t, "json", k.String("lint.output-format"))
	assert.True(t, k.Bool("verbose"))
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"CSSMODLINT_VERBOSE", "verbose"},
		{"CSSMODLINT_LINT_TSCONFIG", "lint.tsconfig"},
		{"CSSMODLINT_LINT_MAX_ISSUES_PER_LINTER", "lint.max-issues-per-linter"},
		{"CSSMODLINT_LINT_PRINT_LINTER_NAME", "lint.print-linter-name"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envKey(tt.env))
		})
	}
}

func TestBuildLintConfig_Defaults(t *testing.T) {
	resetKoanf()

	config := buildLintConfig(".")
	assert.Equal(t, ".", config.Root)
	assert.Empty(t, config.TSConfig)
	assert.Empty(t, config.Exclude)
	assert.False(t, config.RespectGitignore)
	assert.True(t, config.BracketAccess)
	assert.False(t, config.SkipSyntaxCheck)
	assert.Equal(t, 0, config.MaxIssuesPerLinter)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintLinterName)
	assert.False(t, config.UseColors)
	assert.Nil(t, config.Logger)
}

func TestBuildLintConfig_FromConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".cssmodlint.yaml")
	configContent := `
lint:
  exclude:
    - "src/**/*.test.tsx"
  skip-syntax-check: true
  max-issues-per-linter: 10
  print-lines: false
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	config := buildLintConfig(".")
	assert.Equal(t, []string{"src/**/*.test.tsx"}, config.Exclude)
	assert.True(t, config.SkipSyntaxCheck)
	assert.Equal(t, 10, config.MaxIssuesPerLinter)
	assert.False(t, config.PrintIssuedLines)
}

func TestBuildLintConfig_FlagKeyWins(t *testing.T) {
	resetKoanf()

	require.NoError(t, k.Set("lint.exclude", []string{"from-file"}))
	require.NoError(t, k.Set("exclude", []string{"from-flag"}))
	require.NoError(t, k.Set("lint.max-same-issues", 2))
	require.NoError(t, k.Set("max-same-issues", 5))

	config := buildLintConfig(".")
	assert.Equal(t, []string{"from-flag"}, config.Exclude)
	assert.Equal(t, 5, config.MaxSameIssues)
}

func TestNewLogger(t *testing.T) {
	resetKoanf()

	var buf bytes.Buffer
	logger := newLogger(&buf)
	logger.Debug("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown")

	require.NoError(t, k.Set("verbose", true))
	buf.Reset()
	newLogger(&buf).Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")
	assert.True(t, newLogger(&buf).Enabled(t.Context(), slog.LevelDebug))
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))

	require.NoError(t, k.Set("config.key", "from-config"))
	assert.Equal(t, "from-config", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))

	// An explicit false is not a missing value
	require.NoError(t, k.Set("flag-key", false))
	assert.False(t, getBoolWithFallback("flag-key", "config.key", true))
}

func TestGetIntWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, 42, getIntWithFallback("flag-key", "config.key", 42))
}
