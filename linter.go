package cssmodlint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// LintConfig holds linting configuration
type LintConfig struct {
	Root             string   // Project root; default "."
	TSConfig         string   // Path to tsconfig.json; default <Root>/tsconfig.json
	Exclude          []string // Added to the tsconfig "exclude" list
	RespectGitignore bool     // Prune paths matched by <Root>/.gitignore
	BracketAccess    bool     // Report styles["name"] as a usage
	SkipSyntaxCheck  bool     // Rely on tree-sitter alone to reject broken components

	// golangci-style output configuration
	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (cssmodlint) suffix (default: true)
	UseColors          bool // Force color output (default: auto-detect)

	// Logger receives progress and path resolution warnings. Nil discards.
	Logger *slog.Logger
}

// LintResult contains linting analysis results
type LintResult struct {
	// Diagnostics in report order: unused classes per stylesheet, then
	// undefined classes per component, files sorted by path.
	Diagnostics []csslint.Diagnostic
	// Issues are the same findings in golangci-lint's JSON shape.
	Issues []Issue

	UnusedCount    int
	UndefinedCount int
	TruncatedCount int // Diagnostics removed due to limits

	FilesScanned int
	Stylesheets  int
	Components   int
	Stats        ScanStats

	// Warnings are non-fatal problems, such as imports climbing above the root.
	Warnings []string
}

// HasDiagnostics reports whether the run found anything, including findings
// hidden by output limits. The CLI exits 1 when it does.
func (r *LintResult) HasDiagnostics() bool {
	return len(r.Diagnostics) > 0 || r.TruncatedCount > 0
}

// Lint lists the project, reads every stylesheet and component, and reports
// classes that are defined but unused and used but undefined.
func Lint(ctx context.Context, config LintConfig) (*LintResult, error) {
	frontend := csslint.NewTreeSitterFrontend(
		csslint.WithBracketAccess(config.BracketAccess),
		csslint.WithSyntaxCheck(!config.SkipSyntaxCheck),
	)
	return lintWith(ctx, config, frontend)
}

func lintWith(ctx context.Context, config LintConfig, frontend csslint.Frontend) (*LintResult, error) {
	proj, err := loadProject(ctx, config, frontend, nil)
	if err != nil {
		return nil, err
	}
	tables := proj.tables

	// Cross-reference
	unused := csslint.ComputeUnused(tables.Defined, tables.Used)
	undefined := csslint.ComputeUndefined(tables.Defined, tables.Used)

	result := &LintResult{
		Diagnostics:  csslint.Diagnostics(unused, undefined),
		FilesScanned: len(proj.files),
		Stylesheets:  tables.Stylesheets,
		Components:   tables.Components,
		Stats:        proj.stats,
	}
	for _, w := range tables.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}
	attachSourceLines(result.Diagnostics, proj.files)

	// Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Diagnostics, result.TruncatedCount = limitIssues(result.Diagnostics, config)
	}

	for _, d := range result.Diagnostics {
		switch d.Kind {
		case csslint.KindUnused:
			result.UnusedCount++
		case csslint.KindUndefined:
			result.UndefinedCount++
		}
		result.Issues = append(result.Issues, NewIssue(d))
	}

	proj.logger.Debug("lint finished", "unused", result.UnusedCount, "undefined", result.UndefinedCount)
	return result, nil
}

// project is a fully read and aggregated file set.
type project struct {
	tables *csslint.Tables
	files  []csslint.SourceFile
	stats  ScanStats
	logger *slog.Logger
}

// loadProject loads tsconfig, lists the root, reads every kept file and builds
// the symbol tables. keep narrows the listing; nil keeps everything listed.
func loadProject(ctx context.Context, config LintConfig, frontend csslint.Frontend, keep func(string) bool) (*project, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	root := rootOf(config)

	// Step 1: Load tsconfig.json (fatal when missing)
	tsconfig, err := csslint.LoadTSConfig(tsconfigPath(root, config.TSConfig))
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded tsconfig", "aliases", len(tsconfig.CompilerOptions.Paths), "exclude", tsconfig.Exclude)

	// Step 2: List files
	paths, stats, err := ListFiles(root, ListOptions{
		Exclude:          append(append([]string(nil), tsconfig.Exclude...), config.Exclude...),
		RespectGitignore: config.RespectGitignore,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}
	if keep != nil {
		kept := paths[:0]
		for _, p := range paths {
			if keep(p) {
				kept = append(kept, p)
			}
		}
		paths = kept
	}
	logger.Debug("listed files", "kept", len(paths), "skipped", stats.FilesSkipped, "pruned_dirs", stats.DirsPruned)

	// Step 3: Read everything before analysis starts
	files, err := readSourceFiles(root, paths)
	if err != nil {
		return nil, err
	}

	// Step 4: Aggregate definitions and usages
	resolver := csslint.NewResolver(tsconfig.CompilerOptions.Paths)
	tables, err := csslint.BuildTables(ctx, files, resolver, frontend, logger)
	if err != nil {
		return nil, err
	}

	return &project{tables: tables, files: files, stats: stats, logger: logger}, nil
}

func tsconfigPath(root, configured string) string {
	if configured != "" {
		return configured
	}
	return filepath.Join(root, csslint.TSConfigFile)
}

// readSourceFiles reads every listed file. Any failure is fatal and wraps csslint.ErrIO.
func readSourceFiles(root string, paths []string) ([]csslint.SourceFile, error) {
	files := make([]csslint.SourceFile, 0, len(paths))
	for _, p := range paths {
		content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", csslint.ErrIO, p, err)
		}
		files = append(files, csslint.SourceFile{Path: p, Content: content})
	}
	return files, nil
}

// attachSourceLines fills Diagnostic.Source from the file contents already in memory.
func attachSourceLines(diags []csslint.Diagnostic, files []csslint.SourceFile) {
	contents := make(map[string][]byte, len(files))
	for _, f := range files {
		contents[csslint.CanonicalKey(f.Path)] = f.Content
	}
	lines := make(map[string][]string)

	for i := range diags {
		d := &diags[i]
		fileLines, ok := lines[d.File]
		if !ok {
			content, known := contents[d.File]
			if !known {
				continue
			}
			fileLines = strings.Split(string(content), "\n")
			lines[d.File] = fileLines
		}
		if d.Line >= 1 && d.Line <= len(fileLines) {
			d.Source = strings.TrimRight(fileLines[d.Line-1], "\r")
		}
	}
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(diags []csslint.Diagnostic, config LintConfig) ([]csslint.Diagnostic, int) {
	originalCount := len(diags)

	// Apply max-issues-per-linter
	if config.MaxIssuesPerLinter > 0 && len(diags) > config.MaxIssuesPerLinter {
		diags = diags[:config.MaxIssuesPerLinter]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		diags = deduplicateSameIssues(diags, config.MaxSameIssues)
	}

	return diags, originalCount - len(diags)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(diags []csslint.Diagnostic, maxSame int) []csslint.Diagnostic {
	messageCounts := make(map[string]int)
	var filtered []csslint.Diagnostic

	for _, d := range diags {
		msg := d.Message()
		if messageCounts[msg] < maxSame {
			filtered = append(filtered, d)
			messageCounts[msg]++
		}
	}

	return filtered
}
