package cssmodlint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// ScanStats tracks file listing statistics
type ScanStats struct {
	FilesDiscovered int // Every regular file visited
	FilesScanned    int // Stylesheets and components kept for analysis
	FilesSkipped    int // Files dropped by exclude patterns or .gitignore
	DirsPruned      int // Hidden, excluded or ignored directories not descended into
}

// ListOptions controls ListFiles.
type ListOptions struct {
	// Exclude entries are matched against directory names and, as doublestar
	// globs, against root-relative paths.
	Exclude []string

	// RespectGitignore prunes paths matched by <root>/.gitignore.
	RespectGitignore bool

	Logger *slog.Logger
}

// ListFiles returns the root-relative, forward-slash paths of every stylesheet
// and component under root, in lexical order.
func ListFiles(root string, opts ListOptions) ([]string, ScanStats, error) {
	var stats ScanStats
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, fmt.Errorf("cannot open target dir %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("cannot open target dir %s: not a directory", root)
	}

	excludes := normalizeExcludes(opts.Exclude)

	var gi *ignore.GitIgnore
	if opts.RespectGitignore {
		gi = loadGitIgnore(root, logger)
	}

	var files []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if shouldPruneDir(rel, d.Name(), excludes, gi) {
				logger.Debug("pruning directory", "dir", rel)
				stats.DirsPruned++
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		stats.FilesDiscovered++
		if !csslint.IsStylesheet(rel) && !csslint.IsComponent(rel) {
			return nil
		}
		if shouldSkipFile(rel, excludes, gi) {
			stats.FilesSkipped++
			return nil
		}

		files = append(files, rel)
		stats.FilesScanned++
		return nil
	})
	if err != nil {
		return nil, stats, fmt.Errorf("listing %s: %w", root, err)
	}

	// WalkDir visits entries in lexical order already.
	return files, stats, nil
}

// normalizeExcludes strips "./" prefixes and trailing slashes so tsconfig
// entries like "./dist/" compare equal to directory paths.
func normalizeExcludes(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimPrefix(csslint.ToSlash(e), "./")
		e = strings.TrimRight(e, "/")
		if e != "" {
			out = append(out, e)
		}
	}
	return out
}

// shouldPruneDir reports whether a directory is skipped without being read.
//
// Two layers:
// 1. Name check (fast): hidden directories and exact exclude entries
// 2. Pattern check: exclude globs and .gitignore
func shouldPruneDir(rel, name string, excludes []string, gi *ignore.GitIgnore) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, e := range excludes {
		if name == e || rel == e {
			return true
		}
		if matchGlob(e, rel) {
			return true
		}
	}
	return gi != nil && (gi.MatchesPath(rel) || gi.MatchesPath(rel+"/"))
}

// shouldSkipFile reports whether a listed file is dropped by the exclude
// globs or .gitignore.
func shouldSkipFile(rel string, excludes []string, gi *ignore.GitIgnore) bool {
	for _, e := range excludes {
		if matchGlob(e, rel) {
			return true
		}
	}
	return gi != nil && gi.MatchesPath(rel)
}

func matchGlob(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, rel)
	return err == nil && ok
}

// loadGitIgnore compiles <root>/.gitignore. A missing file is not an error.
func loadGitIgnore(root string, logger *slog.Logger) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("ignoring unreadable .gitignore", "path", path, "error", err)
		}
		return nil
	}
	return gi
}
