package csslint

// ComputeUnused returns, per stylesheet key, the definitions whose name is not
// used by any component that imports that stylesheet. Matching is by name only:
// one usage clears every definition of that name, duplicates included.
// Stylesheets without importers contribute all of their definitions. Keys whose
// result would be empty are omitted. The inputs are not modified.
func ComputeUnused(defined DefinedTable, used UsedTable) map[string][]DefinedClass {
	result := make(map[string][]DefinedClass)

	for key, defs := range defined {
		usedNames := used[key].Names()

		var unused []DefinedClass
		for c := range defs {
			if _, ok := usedNames[c.Name]; !ok {
				unused = append(unused, c)
			}
		}
		if len(unused) == 0 {
			continue
		}
		sortDefined(unused)
		result[key] = unused
	}

	return result
}

// ComputeUndefined returns, per owning component file, the usages whose name is
// not defined in the stylesheet they resolved to. Usages of stylesheets outside
// the scanned set are all undefined. The inputs are not modified.
func ComputeUndefined(defined DefinedTable, used UsedTable) map[string][]UsedClass {
	// Join index: stylesheet key -> usages. Collect survivors into a flat list,
	// then build the per-file index from it.
	var undefined []UsedClass
	for key, usages := range used {
		definedNames := defined[key].Names()
		for u := range usages {
			if _, ok := definedNames[u.Name]; !ok {
				undefined = append(undefined, u)
			}
		}
	}

	return groupByFile(undefined)
}

// groupByFile builds the report index keyed by owning file. A usage that reached
// the list through more than one stylesheet is reported once.
func groupByFile(usages []UsedClass) map[string][]UsedClass {
	byFile := make(map[string]UsedSet)
	for _, u := range usages {
		set, ok := byFile[u.File]
		if !ok {
			set = make(UsedSet)
			byFile[u.File] = set
		}
		set[u] = struct{}{}
	}

	result := make(map[string][]UsedClass, len(byFile))
	for file, set := range byFile {
		result[file] = set.Sorted()
	}
	return result
}
