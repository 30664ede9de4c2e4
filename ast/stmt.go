package ast

// Stmt is a statement.  The set of statements is closed: only types in this
// package implement it.
type Stmt interface {
	ASTNode

	stmtNode()
}

// VariableDeclaration binds a name to the value of an expression.
type VariableDeclaration struct {
	ASTBase

	Identifier *Identifier
	Init       Expr
}

// FunctionDeclaration declares a named function.
type FunctionDeclaration struct {
	ASTBase

	Identifier *Identifier
	Args       []Value
	Body       []Stmt
}

// ConditionalStatement executes its body when its condition holds.
type ConditionalStatement struct {
	ASTBase

	Condition Expr
	Body      []Stmt
}

// ReturnStatement returns a single value from the enclosing function.
type ReturnStatement struct {
	ASTBase

	Value Value
}

// ExpressionStatement evaluates an expression for its effects.
type ExpressionStatement struct {
	ASTBase

	Expression Expr
}

func (*VariableDeclaration) stmtNode()  {}
func (*FunctionDeclaration) stmtNode()  {}
func (*ConditionalStatement) stmtNode() {}
func (*ReturnStatement) stmtNode()      {}
func (*ExpressionStatement) stmtNode()  {}
