package csslint

import (
	"fmt"
	"sort"
)

// Kind distinguishes the two diagnostics the linter produces.
type Kind string

const (
	KindUnused    Kind = "unused-class"
	KindUndefined Kind = "undefined-class"
)

// Diagnostic is one reported mismatch. Line and Column are 1-based and point at
// the '.' marker (stylesheets) or the access operator (components).
type Diagnostic struct {
	Kind   Kind
	File   string
	Line   int
	Column int
	Name   string
	Source string // offending source line, filled in when available
}

// Message is the human-readable text used by the text and issues formats.
func (d Diagnostic) Message() string {
	if d.Kind == KindUnused {
		return fmt.Sprintf("Unused class `%s` found.", d.Name)
	}
	return fmt.Sprintf("Undefined class `%s` was used.", d.Name)
}

// ShortMessage is the text used by the minified format.
func (d Diagnostic) ShortMessage() string {
	if d.Kind == KindUnused {
		return "Unused class found."
	}
	return "Undefined class was used."
}

// Diagnostics flattens both cross-reference results into reportable positions.
// Unused classes come first, files in path order, then undefined usages.
func Diagnostics(unused map[string][]DefinedClass, undefined map[string][]UsedClass) []Diagnostic {
	var out []Diagnostic
	for _, file := range SortedKeys(unused) {
		for _, c := range unused[file] {
			out = append(out, FromDefined(file, c))
		}
	}
	for _, file := range SortedKeys(undefined) {
		for _, u := range undefined[file] {
			out = append(out, FromUsed(u))
		}
	}
	return out
}

// FromDefined converts a definition, whose line is 0-based, into a diagnostic.
func FromDefined(file string, c DefinedClass) Diagnostic {
	return Diagnostic{
		Kind:   KindUnused,
		File:   file,
		Line:   c.Line + 1,
		Column: c.Column + 1,
		Name:   c.Name,
	}
}

// FromUsed converts a usage, whose line is already 1-based, into a diagnostic.
func FromUsed(u UsedClass) Diagnostic {
	return Diagnostic{
		Kind:   KindUndefined,
		File:   u.File,
		Line:   u.Line,
		Column: u.Column + 1,
		Name:   u.Name,
	}
}

// GroupByFile returns the diagnostics of each file, preserving order, and the
// file names in order of first appearance.
func GroupByFile(diags []Diagnostic) ([]string, map[string][]Diagnostic) {
	var files []string
	byFile := make(map[string][]Diagnostic)
	for _, d := range diags {
		if _, ok := byFile[d.File]; !ok {
			files = append(files, d.File)
		}
		byFile[d.File] = append(byFile[d.File], d)
	}
	return files, byFile
}

// SortByPosition orders diagnostics by file, line and column.
func SortByPosition(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].File != diags[j].File {
			return diags[i].File < diags[j].File
		}
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].Column < diags[j].Column
	})
}
