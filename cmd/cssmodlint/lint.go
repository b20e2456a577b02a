package main

import (
	"github.com/spf13/cobra"

	"github.com/yacobolo/cssmodlint"
	"github.com/yacobolo/cssmodlint/internal/csslint"
)

var lintCmd = &cobra.Command{
	Use:   "lint [dir]",
	Short: "Report unused and undefined CSS module classes",
	Long: `Scan dir (default ".") for *.module.css stylesheets and .tsx/.jsx components.
Exits 1 when warnings were found and 2 when the project could not be read.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runLint,
}

func init() {
	addLintFlags(lintCmd)
}

// runLint is shared between `cssmodlint` and `cssmodlint lint`.
func runLint(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	lintConfig := buildLintConfig(root)
	lintConfig.Logger = newLogger(cmd.ErrOrStderr())

	lintResult, err := cssmodlint.Lint(cmd.Context(), lintConfig)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	minify := getBoolWithFallback("minify", "lint.minify", false)
	format := cssmodlint.DetermineOutputFormat(outputFormat, minify)

	if !quiet {
		if err := cssmodlint.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig); err != nil {
			return err
		}
		if getBoolWithFallback("verbose", "verbose", false) {
			cssmodlint.WriteStatistics(cmd.ErrOrStderr(), lintResult, csslint.ShouldUseColors(lintConfig.UseColors))
		}
	}

	if lintResult.HasDiagnostics() {
		return errDiagnostics
	}
	return nil
}
