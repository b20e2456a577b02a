package cssmodlint

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputText groups warnings under a header per file and ends with a summary line
	OutputText OutputFormat = "text"
	// OutputMinified prints one machine-readable line per warning (editor integrations)
	OutputMinified OutputFormat = "minified"
	// OutputIssues shows warnings in golangci-lint format with source lines (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the --output-format and
// --minify flags. --minify wins; unknown names fall back to text.
func DetermineOutputFormat(formatFlag string, minify bool) OutputFormat {
	if minify {
		return OutputMinified
	}

	switch formatFlag {
	case "minified", "min":
		return OutputMinified
	case "issues":
		return OutputIssues
	case "json":
		return OutputJSON
	default:
		return OutputText
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) error {
	reporter := csslint.NewReporter(w, csslint.ReporterOptions{
		UseColors:       config.UseColors,
		PrintLines:      config.PrintIssuedLines,
		PrintLinterName: config.PrintLinterName,
	})

	switch format {
	case OutputMinified:
		reporter.PrintMinified(result.Diagnostics)

	case OutputIssues:
		reporter.PrintIssues(result.Diagnostics)
		reporter.PrintIssuesSummary(result.Diagnostics)
		if result.TruncatedCount > 0 {
			fmt.Fprintf(w, "(%d more hidden by max-issues limits)\n", result.TruncatedCount)
		}

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	default:
		reporter.PrintText(result.Diagnostics)
		reporter.PrintSummary(result.Diagnostics)
	}

	return nil
}
