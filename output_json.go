package cssmodlint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []Issue     `json:"issues"`
	Warnings  []string    `json:"warnings"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Unused       int `json:"unused"`
	Undefined    int `json:"undefined"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
	Stylesheets  int `json:"stylesheets"`
	Components   int `json:"components"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult, now time.Time) JSONOutput {
	issues := result.Issues
	if issues == nil {
		issues = []Issue{}
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Unused:       result.UnusedCount,
			Undefined:    result.UndefinedCount,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
			Stylesheets:  result.Stylesheets,
			Components:   result.Components,
		},
		Issues:   issues,
		Warnings: warnings,
	}
}
