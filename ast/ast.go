package ast

import "ban/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The position of the first token of the node.
	Position() report.TextPosition
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The position at which the AST node begins.
	pos report.TextPosition
}

// NewASTBaseAt creates a new AST base at the given position.
func NewASTBaseAt(pos report.TextPosition) ASTBase {
	return ASTBase{pos: pos}
}

func (ab ASTBase) Position() report.TextPosition {
	return ab.pos
}

// -----------------------------------------------------------------------------

// Program is the root of the AST: the top-level statements of a source file.
type Program struct {
	Body []Stmt
}
