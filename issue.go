package cssmodlint

import "github.com/yacobolo/cssmodlint/internal/csslint"

// Issue represents a single lint finding in golangci-lint's JSON shape
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "cssmodlint"
	Text        string   `json:"Text"`        // "Unused class `btn` found."
	Severity    string   `json:"Severity"`    // always "warning"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location

	Kind   string `json:"Kind"`   // "unused-class" | "undefined-class"
	Name   string `json:"Name"`   // "btn"
	Length int    `json:"Length"` // len(Name) in bytes, used by editors to underline
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/components/Button.module.css"
	Line     int    `json:"Line"`     // 1-based
	Column   int    `json:"Column"`   // 1-based, the '.' before the class name
}

// SeverityWarning is the severity of every issue; the linter has no errors.
const SeverityWarning = "warning"

// NewIssue converts a diagnostic into the golangci-lint shape.
func NewIssue(d csslint.Diagnostic) Issue {
	var lines []string
	if d.Source != "" {
		lines = []string{d.Source}
	}
	return Issue{
		FromLinter:  csslint.LinterName,
		Text:        d.Message(),
		Severity:    SeverityWarning,
		SourceLines: lines,
		Pos: IssuePos{
			Filename: d.File,
			Line:     d.Line,
			Column:   d.Column,
		},
		Kind:   string(d.Kind),
		Name:   d.Name,
		Length: len(d.Name),
	}
}
