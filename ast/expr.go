package ast

// Expr is an expression: either a plain value or a function call.  The set of
// expressions is closed: only types in this package implement it.
type Expr interface {
	ASTNode

	exprNode()
}

// Value is an expression that can appear as an argument or a parameter.  The
// set of values is closed: only types in this package implement it.
type Value interface {
	Expr

	valueNode()
}

// Identifier is a named value.
type Identifier struct {
	ASTBase

	Name string

	// HasEnding indicates whether a case ending was folded into the value.
	HasEnding bool
}

func (*Identifier) exprNode() {}
func (*Identifier) valueNode() {}

// Literal is an integer literal.  The value is the literal text verbatim.
type Literal struct {
	ASTBase

	Value     string
	HasEnding bool
}

func (*Literal) exprNode() {}
func (*Literal) valueNode() {}

// StringLiteral is a quoted string.  The value excludes the quotes.
type StringLiteral struct {
	ASTBase

	Value     string
	HasEnding bool
}

func (*StringLiteral) exprNode() {}
func (*StringLiteral) valueNode() {}

// FunctionCall is a call of a named function.  The arguments may precede or
// follow the callee in source text: the AST does not record which.
type FunctionCall struct {
	ASTBase

	Callee *Identifier
	Args   []Value
}

func (*FunctionCall) exprNode() {}
