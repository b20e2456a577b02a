package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/cssmodlint"
)

const (
	defaultConfigFile = ".cssmodlint.yaml"
	envPrefix         = "CSSMODLINT_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set)
	// Defaults stay out of koanf so the config file keys below them still apply.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CSSMODLINT_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to its config key:
//
//	CSSMODLINT_LINT_BRACKET_ACCESS -> lint.bracket-access
//	CSSMODLINT_VERBOSE             -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && section == "lint" {
		return section + "." + strings.ReplaceAll(rest, "_", "-")
	}
	return strings.ReplaceAll(key, "_", "-")
}

// addLintFlags registers the flags shared by `cssmodlint` and `cssmodlint lint`.
func addLintFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	addProjectFlags(f)
	f.StringSlice("exclude", nil, "Additional file or directory names and globs to skip")
	f.Bool("gitignore", false, "Also skip paths matched by the root .gitignore")
	f.Bool("skip-syntax-check", false, "Do not validate components with esbuild before analysis")
	f.String("output-format", "", "Output format: text|minified|issues|json")
	f.Bool("minify", false, "Shorthand for --output-format minified")
	f.Int("max-issues-per-linter", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues (issues format)")
	f.Bool("print-linter-name", true, "Show (cssmodlint) suffix on issues")
}

// addProjectFlags registers the flags that shape how a project is read.
func addProjectFlags(f *pflag.FlagSet) {
	f.String("tsconfig", "", "Path to tsconfig.json (default: <dir>/tsconfig.json)")
	f.Bool("bracket-access", true, `Count styles["name"] as a usage`)
}

// buildLintConfig constructs the library's LintConfig struct from koanf state.
func buildLintConfig(root string) cssmodlint.LintConfig {
	// Handle exclude: check flag key first, then config key
	var exclude []string
	if v := k.Strings("exclude"); len(v) > 0 {
		exclude = v
	} else if v := k.Strings("lint.exclude"); len(v) > 0 {
		exclude = v
	}

	return cssmodlint.LintConfig{
		Root:               root,
		TSConfig:           getStringWithFallback("tsconfig", "lint.tsconfig", ""),
		Exclude:            exclude,
		RespectGitignore:   getBoolWithFallback("gitignore", "lint.gitignore", false),
		BracketAccess:      getBoolWithFallback("bracket-access", "lint.bracket-access", true),
		SkipSyntaxCheck:    getBoolWithFallback("skip-syntax-check", "lint.skip-syntax-check", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// newLogger returns a text logger on w. --verbose enables debug output;
// otherwise only warnings and errors are written.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if getBoolWithFallback("verbose", "verbose", false) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
