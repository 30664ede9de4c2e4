package syntax

import (
	"ban/ast"
	"ban/common"
)

// var_decl := 'սահմանիր' IDENTIFIER ',' 'որպես' expr ;
func (p *Parser) scanVariableDeclaration() (ast.Stmt, bool) {
	kwTok, ok := p.gotKeyword(common.KwVarDecl)
	if !ok {
		return nil, false
	}
	p.toks.Consume()

	ident := p.expectIdentifier()

	p.checkEOF()
	if tok, _ := p.toks.Peek(); tok.Kind != TOK_PUNCT || tok.Value != string(common.SymComma) {
		p.errorOn(tok, "Սպասվում է ստորակետ")
	}
	p.toks.Consume()

	p.expectKeyword(common.KwAs, "Սպասվում է '%s'", common.KwAs)

	return &ast.VariableDeclaration{
		ASTBase:    ast.NewASTBaseAt(kwTok.Position()),
		Identifier: ident,
		Init:       p.expectExpression(),
	}, true
}

// func_decl := 'գործառույթ' IDENTIFIER [[value_list] 'պարամետրերով'] body ;
//
// The parameter list is only recognized on the line of the keyword.
func (p *Parser) scanFunctionDeclaration() (ast.Stmt, bool) {
	kwTok, ok := p.gotKeyword(common.KwFuncDecl)
	if !ok {
		return nil, false
	}
	p.toks.Consume()

	ident := p.expectIdentifier()

	var args []ast.Value
	if tok, ok := p.toks.Peek(); ok && tok.Line == kwTok.Line {
		if !p.isKeyword(tok, common.KwWithParameters) {
			args = p.expectArgs()
		}

		p.expectKeyword(common.KwWithParameters, "Սպասվում է '%s'", common.KwWithParameters)
	}

	return &ast.FunctionDeclaration{
		ASTBase:    ast.NewASTBaseAt(kwTok.Position()),
		Identifier: ident,
		Args:       args,
		Body:       p.parseBody(true),
	}, true
}

// if_stmt := 'եթե' expr body ;
func (p *Parser) scanConditionalStatement() (ast.Stmt, bool) {
	kwTok, ok := p.gotKeyword(common.KwIf)
	if !ok {
		return nil, false
	}
	p.toks.Consume()

	cond := p.expectExpression()

	return &ast.ConditionalStatement{
		ASTBase:   ast.NewASTBaseAt(kwTok.Position()),
		Condition: cond,
		Body:      p.parseBody(true),
	}, true
}

// return_stmt := 'պատասխանիր' value ;
func (p *Parser) scanReturnStatement() (ast.Stmt, bool) {
	kwTok, ok := p.gotKeyword(common.KwReturn)
	if !ok {
		return nil, false
	}
	p.toks.Consume()

	return &ast.ReturnStatement{
		ASTBase: ast.NewASTBaseAt(kwTok.Position()),
		Value:   p.expectValue(),
	}, true
}
