package csslint

// StyleImport is a default import of a CSS module: import styles from "./a.module.css".
type StyleImport struct {
	Path    string // as declared in the import statement
	Binding string // local name
}

// MemberAccess is a property access on an identifier, e.g. styles.btn.
type MemberAccess struct {
	Binding  string
	Property string
	Line     int // 1-based
	Column   int // 0-based character column of the access operator
}

// ComponentFacts is what a front-end reports about one component file.
type ComponentFacts struct {
	Imports  []StyleImport
	Accesses []MemberAccess
}

// ExtractUsages turns the facts of one component into usages keyed by the
// stylesheet each binding resolves to. Accesses on bindings that are not style
// imports are ignored. Resolution problems are returned as warnings; the
// best-effort key is still used.
func ExtractUsages(file string, facts *ComponentFacts, r *Resolver) (UsedTable, []error) {
	table := make(UsedTable)
	if facts == nil {
		return table, nil
	}

	owner := CanonicalKey(file)
	bindings := make(map[string][]string) // binding -> stylesheet keys
	var warnings []error

	for _, imp := range facts.Imports {
		key, err := r.Resolve(owner, imp.Path)
		if err != nil {
			warnings = append(warnings, err)
		}
		bindings[imp.Binding] = appendUnique(bindings[imp.Binding], key)
	}

	for _, acc := range facts.Accesses {
		for _, key := range bindings[acc.Binding] {
			table.Add(key, UsedClass{
				Name:   acc.Property,
				File:   owner,
				Line:   acc.Line,
				Column: acc.Column,
			})
		}
	}

	return table, warnings
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
