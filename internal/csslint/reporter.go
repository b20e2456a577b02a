package csslint

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LinterName is the suffix printed after each issue in the issues format.
const LinterName = "cssmodlint"

// ReporterOptions controls the presentation of diagnostics.
type ReporterOptions struct {
	UseColors       bool // force colors; otherwise auto-detected
	PrintLines      bool // print the source line and a caret (issues format)
	PrintLinterName bool // append "(cssmodlint)" (issues format)
}

// Reporter writes diagnostics in the human-facing formats.
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       ShouldUseColors(opts.UseColors),
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(explicit bool) bool {
	if explicit {
		return true
	}

	// NO_COLOR wins over auto-detection
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// FORCE_COLOR is set by GitHub Actions and friends
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// PrintText prints one block per file: a header, then "line:column  Warn: message"
// entries, then a blank line. Diagnostics keep the order they are given in.
func (r *Reporter) PrintText(diags []Diagnostic) {
	files, byFile := GroupByFile(diags)
	for _, file := range files {
		fmt.Fprintln(r.w, RenderStyle(StyleBlue, file, r.useColors))
		for _, d := range byFile[file] {
			location := fmt.Sprintf("%d:%d", d.Line, d.Column)
			fmt.Fprintf(r.w, "%s  %s: %s\n",
				RenderStyle(StyleYellow, location, r.useColors),
				RenderStyle(StyleYellow, "Warn", r.useColors),
				d.Message())
		}
		fmt.Fprintln(r.w)
	}
}

// PrintMinified prints one line per diagnostic for editor integrations:
//
//	path:line:column:length:"name": Unused class found.
func (r *Reporter) PrintMinified(diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(r.w, "%s:%d:%d:%d:%q: %s\n", d.File, d.Line, d.Column, len(d.Name), d.Name, d.ShortMessage())
	}
}

// PrintIssues outputs diagnostics in golangci-lint format, sorted by position.
func (r *Reporter) PrintIssues(diags []Diagnostic) {
	sorted := append([]Diagnostic(nil), diags...)
	SortByPosition(sorted)
	for _, d := range sorted {
		r.printIssue(d)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(d Diagnostic) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", d.File, d.Line, d.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", LinterName)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		d.Message(),
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && d.Source != "" {
		fmt.Fprintf(r.w, "\t%s\n", d.Source)
		caret := r.buildCaretIndicator(d.Source, d.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in any tab width.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	// Columns count characters, not bytes.
	runes := []rune(sourceLine)
	prefixLen := column - 1
	if prefixLen > len(runes) {
		prefixLen = len(runes)
	}

	var padding strings.Builder
	for _, ch := range runes[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary prints the closing line of the text format.
func (r *Reporter) PrintSummary(diags []Diagnostic) {
	if len(diags) == 0 {
		fmt.Fprintf(r.w, "%s No CSS lint warnings found\n", RenderStyle(StyleGreen, "✔", r.useColors))
		return
	}

	files, _ := GroupByFile(diags)
	// Editor integrations match this line literally; it is never singularized.
	fmt.Fprintf(r.w, "Found %s in %d files\n",
		RenderStyle(StyleYellow, fmt.Sprintf("%d warnings", len(diags)), r.useColors),
		len(files))
}

// PrintIssuesSummary prints the golangci-style count breakdown.
func (r *Reporter) PrintIssuesSummary(diags []Diagnostic) {
	var unused, undefined int
	for _, d := range diags {
		switch d.Kind {
		case KindUnused:
			unused++
		case KindUndefined:
			undefined++
		}
	}

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(diags), "issue", "issues"))
	if unused > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", KindUnused, unused)
	}
	if undefined > 0 {
		fmt.Fprintf(r.w, "* %s: %d\n", KindUndefined, undefined)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
