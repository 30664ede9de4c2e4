package syntax

import (
	"unicode/utf8"

	"ban/report"
)

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  For quote tokens this excludes the
	// surrounding quotes.
	Value string

	// The one-indexed position of the first character of the token.
	Line, Column int
}

// Position returns the position of the token.
func (t *Token) Position() report.TextPosition {
	return report.TextPosition{Line: t.Line, Column: t.Column}
}

// End returns the position immediately after the token's text.
func (t *Token) End() report.TextPosition {
	width := utf8.RuneCountInString(t.Value)
	if t.Kind == TOK_QUOTE {
		width += 2
	}

	return report.TextPosition{Line: t.Line, Column: t.Column + width}
}

// Enumeration of token kinds.
const (
	TOK_INTEGER = iota
	TOK_KEYWORD
	TOK_IDENT
	TOK_OPERATOR
	TOK_ENDING
	TOK_PUNCT
	TOK_QUOTE
)
