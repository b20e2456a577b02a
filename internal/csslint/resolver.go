package csslint

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Resolver maps an import path declared in a component to a stylesheet key.
type Resolver struct {
	aliases []aliasRule
}

// aliasRule is an alias entry with its wildcard markers already stripped.
type aliasRule struct {
	from string
	to   string
}

// NewResolver prepares the alias table for repeated lookups.
func NewResolver(aliases AliasTable) *Resolver {
	return &Resolver{aliases: compileAliases(aliases)}
}

// Resolve applies relative-path collapsing, alias substitution and key
// canonicalization, in that order. A non-nil error wraps ErrPathEscapesRoot;
// the returned key is still the best-effort result and should be used.
func (r *Resolver) Resolve(importer, declared string) (string, error) {
	resolved, err := ResolveRelative(importer, declared)
	resolved = applyRules(resolved, r.aliases)
	return CanonicalKey(resolved), err
}

// ResolveRelative collapses a './' or '../' import against the importer's directory.
// Paths that do not start with '.' are returned unchanged.
func ResolveRelative(importer, declared string) (string, error) {
	if !strings.HasPrefix(declared, ".") {
		return declared, nil
	}

	dir := path.Dir(ToSlash(importer))
	var stack []string
	for _, seg := range strings.Split(dir, "/") {
		if seg != "" && seg != "." {
			stack = append(stack, seg)
		}
	}

	escaped := false
	for _, seg := range strings.Split(ToSlash(declared), "/") {
		switch seg {
		case "..":
			if len(stack) == 0 {
				escaped = true
				continue
			}
			stack = stack[:len(stack)-1]
		case ".", "":
		default:
			stack = append(stack, seg)
		}
	}

	resolved := strings.Join(stack, "/")
	if strings.HasPrefix(importer, "/") {
		resolved = "/" + resolved
	}
	if escaped {
		return resolved, fmt.Errorf("%s imports %q: %w", importer, declared, ErrPathEscapesRoot)
	}
	return resolved, nil
}

// ApplyAliases rewrites every alias pattern occurring in p with its first candidate.
func ApplyAliases(p string, aliases AliasTable) string {
	return applyRules(p, compileAliases(aliases))
}

func applyRules(p string, rules []aliasRule) string {
	for _, rule := range rules {
		p = strings.ReplaceAll(p, rule.from, rule.to)
	}
	return p
}

// compileAliases strips wildcards and orders entries longest pattern first so the
// outcome does not depend on map iteration order.
func compileAliases(aliases AliasTable) []aliasRule {
	rules := make([]aliasRule, 0, len(aliases))
	for pattern, candidates := range aliases {
		if len(candidates) == 0 {
			continue
		}
		from := strings.ReplaceAll(pattern, "*", "")
		if from == "" {
			// ReplaceAll with an empty pattern would splice the target between every byte.
			continue
		}
		rules = append(rules, aliasRule{
			from: from,
			to:   strings.ReplaceAll(candidates[0], "*", ""),
		})
	}
	sort.Slice(rules, func(i, j int) bool {
		if len(rules[i].from) != len(rules[j].from) {
			return len(rules[i].from) > len(rules[j].from)
		}
		return rules[i].from < rules[j].from
	})
	return rules
}

// CanonicalKey normalizes a stylesheet path: forward slashes, cleaned, no leading "./".
func CanonicalKey(p string) string {
	if p == "" {
		return p
	}
	p = path.Clean(ToSlash(p))
	return strings.TrimPrefix(p, "./")
}

// ToSlash converts Windows separators to forward slashes on every platform.
func ToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}
