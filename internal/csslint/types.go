// Package csslint cross-references CSS module class definitions with their usages
// in TSX/JSX components.
package csslint

import (
	"sort"
	"strings"
)

// File naming conventions the engine keys off. Matching is case-sensitive.
const (
	StylesheetSuffix = ".module.css"
	TSXSuffix        = ".tsx"
	JSXSuffix        = ".jsx"
)

// DefinedClass is a class selector found in a stylesheet.
type DefinedClass struct {
	Name   string // "btn--primary"
	Line   int    // 0-based line index
	Column int    // 0-based character column of the '.' marker
}

// UsedClass is a property access on a binding that resolves to a stylesheet import.
type UsedClass struct {
	Name   string // "btnPrimary"
	File   string // owning component, forward-slash path
	Line   int    // 1-based, as reported by the front-end
	Column int    // 0-based character column of the access operator
}

// DefinedSet holds the distinct definitions of one stylesheet.
type DefinedSet map[DefinedClass]struct{}

// UsedSet holds the distinct usages that resolved to one stylesheet.
type UsedSet map[UsedClass]struct{}

// DefinedTable maps a stylesheet key to its definitions.
type DefinedTable map[string]DefinedSet

// UsedTable maps a stylesheet key to the usages that target it.
type UsedTable map[string]UsedSet

// AliasTable maps an import path pattern (optionally with one '*') to its
// candidate replacements. Only the first candidate is applied.
type AliasTable map[string][]string

// Add inserts classes into the set for key.
func (t DefinedTable) Add(key string, classes ...DefinedClass) {
	set, ok := t[key]
	if !ok {
		set = make(DefinedSet)
		t[key] = set
	}
	for _, c := range classes {
		set[c] = struct{}{}
	}
}

// Add inserts usages into the set for key.
func (t UsedTable) Add(key string, usages ...UsedClass) {
	set, ok := t[key]
	if !ok {
		set = make(UsedSet)
		t[key] = set
	}
	for _, u := range usages {
		set[u] = struct{}{}
	}
}

// Merge copies every entry of other into t.
func (t UsedTable) Merge(other UsedTable) {
	for key, set := range other {
		for u := range set {
			t.Add(key, u)
		}
	}
}

// Names returns the distinct class names in the set.
func (s DefinedSet) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(s))
	for c := range s {
		names[c.Name] = struct{}{}
	}
	return names
}

// Names returns the distinct class names in the set.
func (s UsedSet) Names() map[string]struct{} {
	names := make(map[string]struct{}, len(s))
	for u := range s {
		names[u.Name] = struct{}{}
	}
	return names
}

// Sorted returns the definitions ordered by line, column, then name.
func (s DefinedSet) Sorted() []DefinedClass {
	out := make([]DefinedClass, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sortDefined(out)
	return out
}

// Sorted returns the usages ordered by line, column, then name.
func (s UsedSet) Sorted() []UsedClass {
	out := make([]UsedClass, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sortUsed(out)
	return out
}

func sortDefined(classes []DefinedClass) {
	sort.Slice(classes, func(i, j int) bool {
		if classes[i].Line != classes[j].Line {
			return classes[i].Line < classes[j].Line
		}
		if classes[i].Column != classes[j].Column {
			return classes[i].Column < classes[j].Column
		}
		return classes[i].Name < classes[j].Name
	})
}

func sortUsed(usages []UsedClass) {
	sort.Slice(usages, func(i, j int) bool {
		if usages[i].File != usages[j].File {
			return usages[i].File < usages[j].File
		}
		if usages[i].Line != usages[j].Line {
			return usages[i].Line < usages[j].Line
		}
		if usages[i].Column != usages[j].Column {
			return usages[i].Column < usages[j].Column
		}
		return usages[i].Name < usages[j].Name
	})
}

// IsStylesheet reports whether path follows the CSS module naming convention.
func IsStylesheet(path string) bool {
	return strings.HasSuffix(path, StylesheetSuffix)
}

// IsComponent reports whether path is a TSX or JSX component.
func IsComponent(path string) bool {
	return strings.HasSuffix(path, TSXSuffix) || strings.HasSuffix(path, JSXSuffix)
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
