package htmldoc

import (
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ValidateSelector rejects root selector input before any file work is done.
// The input is run through the CSS tokenizer; empty input and tokens that can
// never appear in a selector (at-keywords, semicolons, braces, broken
// strings) are refused. This is a plausibility check, not a full selector
// grammar.
func ValidateSelector(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("selector must not be empty")
	}

	l := css.NewLexer(parse.NewInputString(s))
	for {
		tt, _ := l.Next()
		switch tt {
		case css.ErrorToken:
			if err := l.Err(); err != nil && err != io.EOF {
				return fmt.Errorf("selector %q is not valid CSS: %w", s, err)
			}
			return nil
		case css.AtKeywordToken, css.SemicolonToken,
			css.LeftBraceToken, css.RightBraceToken,
			css.BadStringToken, css.BadURLToken:
			return fmt.Errorf("selector %q contains tokens not allowed in a selector", s)
		}
	}
}
