package csslint

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DisableDirective is the comment header that suppresses the next selector line:
//
//	/* css-lint-disable-rule unused-class */
//	.only-used-from-global-css { ... }
const DisableDirective = "css-lint-disable-rule"

const (
	disabledRule = "unused-class"
	// directiveSpan covers the directive line and the selector line it annotates.
	directiveSpan = 2
	// forbiddenChars mark lines inside strings, attribute selectors or function
	// calls. This is a heuristic, not selector parsing.
	forbiddenChars = `'"=([`
)

// lineState is carried from one line to the next.
type lineState struct {
	inComment bool // inside an unterminated /* ... */
	skip      int  // lines still suppressed by a disable directive
}

// ExtractDefinedClasses returns the class selectors defined in a stylesheet,
// ordered by position. Lines and columns are 0-based; columns count characters
// up to the '.' marker, so non-ASCII text earlier on the line is one column each.
func ExtractDefinedClasses(css string) []DefinedClass {
	set := make(DefinedSet)
	var st lineState
	for idx, line := range strings.Split(css, "\n") {
		var found []DefinedClass
		st, found = scanLine(st, idx, line)
		for _, c := range found {
			set[c] = struct{}{}
		}
	}
	return set.Sorted()
}

// scanLine processes one line and returns the state for the next one.
func scanLine(st lineState, idx int, line string) (lineState, []DefinedClass) {
	stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
	indent := utf8.RuneCountInString(line[:len(line)-len(stripped)])

	if isDisableDirective(stripped) {
		st.skip = directiveSpan
	}

	var text string
	text, st.inComment = blankComments(stripped, st.inComment)

	if st.skip > 0 {
		st.skip--
		return st, nil
	}

	if !strings.Contains(text, ".") || strings.ContainsAny(text, forbiddenChars) {
		return st, nil
	}

	return st, tokenize(text, idx, indent)
}

// isDisableDirective reports whether a trimmed line is a disable comment for unused classes.
func isDisableDirective(stripped string) bool {
	if !strings.HasPrefix(stripped, "/*") {
		return false
	}
	content := stripped
	for strings.HasPrefix(content, "/*") {
		content = content[2:]
	}
	for strings.HasSuffix(content, "*/") {
		content = content[:len(content)-2]
	}
	content = strings.TrimSpace(content)

	rest, ok := strings.CutPrefix(content, DisableDirective+" ")
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.TrimLeftFunc(rest, unicode.IsSpace), disabledRule)
}

// blankComments replaces every character of a block comment span with one
// space so that the character columns of the remaining text are unchanged.
func blankComments(text string, inComment bool) (string, bool) {
	if !inComment && !strings.Contains(text, "/*") {
		return text, false
	}

	buf := []rune(text)
	for i := 0; i < len(buf); i++ {
		if inComment {
			if buf[i] == '*' && i+1 < len(buf) && buf[i+1] == '/' {
				buf[i], buf[i+1] = ' ', ' '
				i++
				inComment = false
				continue
			}
			buf[i] = ' '
			continue
		}
		if buf[i] == '/' && i+1 < len(buf) && buf[i+1] == '*' {
			buf[i], buf[i+1] = ' ', ' '
			i++
			inComment = true
		}
	}
	return string(buf), inComment
}

// tokenize scans a comment-free line for '.'-prefixed class tokens.
func tokenize(text string, idx, indent int) []DefinedClass {
	var (
		out    []DefinedClass
		buf    strings.Builder
		active bool
		start  int
	)

	flush := func() {
		if name := buf.String(); name != "" && !startsWithDigit(name) {
			out = append(out, DefinedClass{Name: name, Line: idx, Column: start + indent})
		}
		buf.Reset()
	}

	col := -1
	for _, r := range text {
		col++
		switch {
		case r == '.':
			flush()
			start = col
			active = true
		case active && isClassRune(r):
			buf.WriteRune(r)
		case buf.Len() > 0:
			flush()
			active = false
		}
	}
	flush()

	return out
}

func isClassRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_' || r == '-'
}

func startsWithDigit(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsNumber(r)
}
