package cssmodlint

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// WriteStatistics writes the run's scan counters and non-fatal warnings.
// The CLI prints it to stderr with --verbose.
func WriteStatistics(w io.Writer, result *LintResult, useColors bool) {
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, csslint.RenderStyle(csslint.StyleCyan, "CSS Module Statistics", useColors))
	fmt.Fprintln(w, "---------------------")

	fmt.Fprintf(w, "Files Discovered:  %d\n", result.Stats.FilesDiscovered)
	fmt.Fprintf(w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(w, "  Stylesheets:     %d\n", result.Stylesheets)
	fmt.Fprintf(w, "  Components:      %d\n", result.Components)
	fmt.Fprintf(w, "Files Skipped:     %d\n", result.Stats.FilesSkipped)
	fmt.Fprintf(w, "Dirs Pruned:       %d\n", result.Stats.DirsPruned)
	fmt.Fprintf(w, "Unused Classes:    %d\n", result.UnusedCount)
	fmt.Fprintf(w, "Undefined Classes: %d\n", result.UndefinedCount)
	if result.TruncatedCount > 0 {
		fmt.Fprintf(w, "Hidden by Limits:  %d\n", result.TruncatedCount)
	}

	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, csslint.RenderStyle(csslint.StyleYellow, "Warnings", useColors))
	fmt.Fprintln(w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "• %s\n", warning)
	}
}
