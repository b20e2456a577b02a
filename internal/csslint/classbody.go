package csslint

import (
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ClassBody returns the source text of the first rule whose selector contains
// .className, from the '.' marker through the closing brace of its block.
// The second result is false when no such rule exists.
func ClassBody(content, className string) (string, bool) {
	input := parse.NewInputString(content)
	lexer := css.NewLexer(input)

	start := -1
	depth := 0
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			return "", false
		}

		if start < 0 {
			if tt == css.DelimToken && len(text) > 0 && text[0] == '.' {
				dot := input.Offset() - len(text)
				tt2, name := lexer.Next()
				if tt2 == css.IdentToken && string(name) == className {
					start = dot
				}
			}
			continue
		}

		switch tt {
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
			if depth == 0 {
				return strings.TrimSpace(content[start:input.Offset()]), true
			}
		case css.SemicolonToken:
			// ".foo;" outside a block is not a rule; keep looking.
			if depth == 0 {
				start = -1
			}
		}
	}
}
