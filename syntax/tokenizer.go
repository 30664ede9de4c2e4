package syntax

import (
	"strings"

	"ban/common"
	"ban/report"
)

// Tokenizer is responsible for converting source text into tokens.  It makes
// one full pass over the text: it is not resumable.
type Tokenizer struct {
	// src is the cursor over the runes of the source text.
	src *Cursor[rune]

	// The one-indexed position of the next rune to be tokenized.
	line, col int

	tokens []*Token
}

// Tokenize converts the source text into its ordered sequence of tokens.  The
// first unexpected character aborts tokenization with a syntax error.
func Tokenize(src string) (tokens []*Token, err error) {
	defer report.CatchErrors(&err)

	t := &Tokenizer{
		src:  NewCursor([]rune(src)),
		line: 1,
		col:  1,
	}

	t.tokenize()
	return t.tokens, nil
}

// tokenize runs the main tokenization loop.
func (t *Tokenizer) tokenize() {
	// The candidates are tried in priority order: keywords must be attempted
	// before identifiers since both are made of the same characters.
	scanNext := FirstOf(
		t.scanKeyword,
		t.scanIdent,
		t.scanEnding,
		t.scanPunct,
		t.scanInteger,
		t.scanQuote,
	)

	for !t.src.EOF() {
		t.skipSpaces()

		if t.skipComment() {
			continue
		}

		c, ok := t.src.Peek()
		if !ok {
			break
		}

		if c == '\n' || c == '\r' {
			t.skipNewline()
			continue
		}

		start := t.src.Index()
		tok, ok := scanNext()
		if !ok {
			panic(report.Raise(t.pos(), "Չսպասված %c", c))
		}

		t.advance(t.src.Slice(start, t.src.Index()))
		t.tokens = append(t.tokens, tok)
	}
}

// -----------------------------------------------------------------------------

// skipSpaces skips a run of plain spaces.
func (t *Tokenizer) skipSpaces() {
	for c, ok := t.src.Peek(); ok && c == ' '; c, ok = t.src.Consume() {
		t.col++
	}
}

// skipNewline skips a single line break: `\n`, `\r` or `\r\n`.
func (t *Tokenizer) skipNewline() {
	if c, _ := t.src.Peek(); c == '\r' {
		if next, ok := t.src.Peek(1); ok && next == '\n' {
			t.src.Consume()
		}
	}

	t.src.Consume()
	t.line++
	t.col = 1
}

// skipComment skips a comment if the tokenizer is positioned at one.  It
// returns whether a comment was skipped.
func (t *Tokenizer) skipComment() bool {
	if c, ok := t.src.Peek(); !ok || c != common.SymCommentStart {
		return false
	}

	startPos := t.pos()
	start := t.src.Index()

	for c, ok := t.src.Peek(); c != common.SymCommentEnd; c, ok = t.src.Consume() {
		if !ok {
			panic(report.Raise(startPos, "Չփակված մեկնաբանություն"))
		}
	}

	t.src.Consume()
	t.advance(t.src.Slice(start, t.src.Index()))
	return true
}

// -----------------------------------------------------------------------------

// scanKeyword scans a keyword.  Keywords are made of the same characters as
// identifiers: a failed attempt restores the cursor so that the identifier
// scanner can retry the same text.
func (t *Tokenizer) scanKeyword() (*Token, bool) {
	return t.scanToken(TOK_KEYWORD, isArmenianChar, IsKeyword)
}

// scanIdent scans an identifier.
func (t *Tokenizer) scanIdent() (*Token, bool) {
	return t.scanToken(TOK_IDENT, isArmenianChar, IsArmenian)
}

// scanEnding scans a case ending.
func (t *Tokenizer) scanEnding() (*Token, bool) {
	return t.scanToken(TOK_ENDING, isEndingChar, IsEnding)
}

// scanPunct scans a punctuator.
func (t *Tokenizer) scanPunct() (*Token, bool) {
	return t.scanToken(
		TOK_PUNCT,
		func(c rune) bool { return c == common.SymComma },
		func(text string) bool { return text == string(common.SymComma) },
	)
}

// scanInteger scans an integer literal.
func (t *Tokenizer) scanInteger() (*Token, bool) {
	return t.scanToken(TOK_INTEGER, isDecimalDigit, IsNumber)
}

// scanQuote scans a quoted string.  Everything up to the closing quote is
// taken literally: there are no escape sequences.
func (t *Tokenizer) scanQuote() (*Token, bool) {
	if c, ok := t.src.Peek(); !ok || c != common.SymQuoteStart {
		return nil, false
	}

	start := t.src.Index()

	for c, ok := t.src.Consume(); c != common.SymQuoteEnd; c, ok = t.src.Consume() {
		if !ok {
			panic(report.Raise(t.pos(), "Չփակված մեջբերում"))
		}
	}

	t.src.Consume()

	value := string(t.src.Slice(start+1, t.src.Index()-1))
	return t.makeToken(TOK_QUOTE, value), true
}

// scanToken greedily consumes the runes accepted by validateChar and then
// checks the whole text with validate.  If the text is rejected, the cursor
// is restored to where it started and no token is produced.
func (t *Tokenizer) scanToken(kind int, validateChar func(rune) bool, validate func(string) bool) (*Token, bool) {
	comeBack := t.src.Memo()

	value := t.scan(validateChar)
	if value != "" && validate(value) {
		return t.makeToken(kind, value), true
	}

	comeBack()
	return nil, false
}

// scan consumes runes while they satisfy when and returns them.
func (t *Tokenizer) scan(when func(rune) bool) string {
	sb := strings.Builder{}

	for c, ok := t.src.Peek(); ok && when(c); c, ok = t.src.Consume() {
		sb.WriteRune(c)
	}

	return sb.String()
}

// -----------------------------------------------------------------------------

// makeToken produces a new token at the tokenizer's current position.
func (t *Tokenizer) makeToken(kind int, value string) *Token {
	return &Token{
		Kind:   kind,
		Value:  value,
		Line:   t.line,
		Column: t.col,
	}
}

// pos returns the tokenizer's current position.
func (t *Tokenizer) pos() report.TextPosition {
	return report.TextPosition{Line: t.line, Column: t.col}
}

// advance updates the tokenizer's position over consumed runes.
func (t *Tokenizer) advance(runes []rune) {
	for i, c := range runes {
		switch c {
		case '\n':
			t.line++
			t.col = 1
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				continue
			}

			t.line++
			t.col = 1
		default:
			t.col++
		}
	}
}
