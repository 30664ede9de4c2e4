package syntax

import (
	"ban/ast"
	"ban/common"
	"ban/report"
)

// NOTE: All parsing functions (that are not utility/API functions) are
// commented with the EBNF notation of the grammar they parse.

// Parser is the parser for a ban source file.  It is a recursive descent
// parser over a fully materialized token sequence.  All parsing functions
// assume that they begin with the parser centered on the first token of their
// production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.  Parsing is fail-fast: the
// first error is raised as a panic and recovered by `Parse`.
type Parser struct {
	// toks is the cursor over the tokens being parsed.
	toks *Cursor[*Token]
}

// Parse parses a token sequence into a program.  No partial program is
// returned on error.
func Parse(tokens []*Token) (prog *ast.Program, err error) {
	defer report.CatchErrors(&err)

	p := &Parser{toks: NewCursor(tokens)}
	return &ast.Program{Body: p.parseBody(false)}, nil
}

// body := {var_decl | func_decl | if_stmt | return_stmt | expr} ['ավարտ'] ;
func (p *Parser) parseBody(nested bool) []ast.Stmt {
	scanStmt := FirstOf(
		p.scanVariableDeclaration,
		p.scanFunctionDeclaration,
		p.scanConditionalStatement,
		p.scanReturnStatement,
	)

	var body []ast.Stmt
	for {
		tok, ok := p.toks.Peek()
		if !ok {
			// Nested bodies must be closed explicitly.
			if nested {
				p.checkEOF()
			}

			return body
		}

		if p.isKeyword(tok, common.KwEndBlock) {
			if !nested {
				p.reject(tok)
			}

			p.toks.Consume()
			return body
		}

		if stmt, ok := scanStmt(); ok {
			body = append(body, stmt)
			continue
		}

		body = append(body, &ast.ExpressionStatement{
			ASTBase:    ast.NewASTBaseAt(tok.Position()),
			Expression: p.expectExpression(),
		})
	}
}

// -----------------------------------------------------------------------------

// checkEOF raises an unexpected end of input error if there are no tokens
// left.  The error is placed immediately after the last token.
func (p *Parser) checkEOF() {
	if !p.toks.EOF() {
		return
	}

	pos := report.TextPosition{Line: 1, Column: 1}
	if last, ok := p.toks.Peek(-1); ok {
		pos = last.End()
	}

	panic(report.Raise(pos, "Անսպասելի ավարտ"))
}

// expectToken asserts that the parser is on a token of the given kind and
// consumes it along with the case ending that may follow it.  It returns the
// token and whether an ending was folded into it.
func (p *Parser) expectToken(kind int, msg string) (*Token, bool) {
	p.checkEOF()

	tok, _ := p.toks.Peek()
	if tok.Kind != kind {
		p.errorOn(tok, "%s", msg)
	}

	p.toks.Consume()

	hasEnding := false
	if next, ok := p.toks.Peek(); ok && next.Kind == TOK_ENDING {
		p.toks.Consume()
		hasEnding = true
	}

	return tok, hasEnding
}

// expectKeyword asserts that the parser is on the given keyword and consumes
// it.  msg is the error raised otherwise.
func (p *Parser) expectKeyword(word string, msg string, args ...interface{}) *Token {
	p.checkEOF()

	tok, _ := p.toks.Peek()
	if !p.isKeyword(tok, word) {
		p.errorOn(tok, msg, args...)
	}

	p.toks.Consume()
	return tok
}

// gotKeyword returns the current token if it is the given keyword.
func (p *Parser) gotKeyword(word string) (*Token, bool) {
	if tok, ok := p.toks.Peek(); ok && p.isKeyword(tok, word) {
		return tok, true
	}

	return nil, false
}

// isKeyword returns whether tok is the given keyword.
func (p *Parser) isKeyword(tok *Token, word string) bool {
	return tok.Kind == TOK_KEYWORD && tok.Value == word
}

// -----------------------------------------------------------------------------

// reject raises an unexpected token error on the given token.
func (p *Parser) reject(tok *Token) {
	p.errorOn(tok, "Չսպասված '%s'", tok.Value)
}

// errorOn raises an error on the given token.  The function takes a message
// and arguments to format into it.
func (p *Parser) errorOn(tok *Token, msg string, args ...interface{}) {
	panic(report.Raise(tok.Position(), msg, args...))
}
