package syntax

import (
	"ban/ast"
	"ban/common"
)

// expr := value_list ENDING_VALUE IDENTIFIER | IDENTIFIER value_list | value ;
//
// The two call forms are told apart by the token after the first one: when it
// is on the same line and is a case ending, the arguments come first and the
// callee last; when it is on the same line and is anything else that can
// follow a callee, the callee comes first.  Otherwise the expression is a
// single value.
func (p *Parser) expectExpression() ast.Expr {
	p.checkEOF()

	tok, _ := p.toks.Peek()
	if next, ok := p.toks.Peek(1); ok && next.Line == tok.Line && continuesCall(next) {
		var callee *ast.Identifier
		var args []ast.Value

		if next.Kind == TOK_ENDING {
			args = p.expectArgs()
			callee = p.expectIdentifier()
		} else {
			callee = p.expectIdentifier()
			args = p.expectArgs()
		}

		return &ast.FunctionCall{
			ASTBase: ast.NewASTBaseAt(tok.Position()),
			Callee:  callee,
			Args:    args,
		}
	}

	return p.expectValue()
}

// continuesCall returns whether tok can follow the first token of a call.
// Keywords and punctuators never start an argument nor end a value.
func continuesCall(tok *Token) bool {
	return tok.Kind != TOK_KEYWORD && tok.Kind != TOK_PUNCT
}

// value_list := value {'և' value} ;
func (p *Parser) expectArgs() []ast.Value {
	args := []ast.Value{p.expectValue()}

	for {
		// The conjunction is an ordinary word: it is matched on its value.
		if tok, ok := p.toks.Peek(); !ok || tok.Value != common.Conjunction {
			break
		}

		p.toks.Consume()
		args = append(args, p.expectValue())
	}

	return args
}

// value := IDENTIFIER [ENDING] | INTEGER [ENDING] | QUOTE [ENDING] ;
func (p *Parser) expectValue() ast.Value {
	p.checkEOF()

	tok, _ := p.toks.Peek()
	switch tok.Kind {
	case TOK_IDENT:
		return p.expectIdentifier()
	case TOK_QUOTE:
		return p.expectString()
	default:
		return p.expectLiteral()
	}
}

// expectIdentifier parses an identifier and its optional ending.
func (p *Parser) expectIdentifier() *ast.Identifier {
	tok, hasEnding := p.expectToken(TOK_IDENT, "Սպասվում է նույնացուցիչ")

	return &ast.Identifier{
		ASTBase:   ast.NewASTBaseAt(tok.Position()),
		Name:      tok.Value,
		HasEnding: hasEnding,
	}
}

// expectLiteral parses an integer literal and its optional ending.
func (p *Parser) expectLiteral() *ast.Literal {
	tok, hasEnding := p.expectToken(TOK_INTEGER, "Սպասվում էր բառացի արժեք")

	return &ast.Literal{
		ASTBase:   ast.NewASTBaseAt(tok.Position()),
		Value:     tok.Value,
		HasEnding: hasEnding,
	}
}

// expectString parses a quoted string and its optional ending.
func (p *Parser) expectString() *ast.StringLiteral {
	tok, hasEnding := p.expectToken(TOK_QUOTE, "Սպասվում էր մեջբերում")

	return &ast.StringLiteral{
		ASTBase:   ast.NewASTBaseAt(tok.Position()),
		Value:     tok.Value,
		HasEnding: hasEnding,
	}
}
