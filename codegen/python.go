package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"ban/ast"
	"ban/report"
	"ban/util"
)

// PythonBackend lowers programs into Python source text.  Nested bodies are
// indented by four spaces per level and empty bodies become `pass`.
type PythonBackend struct{}

func (PythonBackend) Name() string {
	return "python"
}

func (PythonBackend) Lower(prog *ast.Program) (string, error) {
	g := &pyGenerator{}
	g.sb.WriteString(pythonPrelude)

	if err := g.genStmts(prog.Body); err != nil {
		return "", err
	}

	return g.sb.String(), nil
}

// -----------------------------------------------------------------------------

// pyGenerator is the state of a single Python lowering.
type pyGenerator struct {
	sb strings.Builder

	// indent is the current nesting depth.
	indent int
}

// line writes one indented line of output.
func (g *pyGenerator) line(format string, args ...interface{}) {
	g.sb.WriteString(strings.Repeat("    ", g.indent))
	fmt.Fprintf(&g.sb, format, args...)
	g.sb.WriteByte('\n')
}

// genBlock lowers a nested body one level deeper than the current one.
func (g *pyGenerator) genBlock(body []ast.Stmt) error {
	g.indent++
	defer func() { g.indent-- }()

	if len(body) == 0 {
		g.line("pass")
		return nil
	}

	return g.genStmts(body)
}

// genStmts lowers a sequence of statements at the current depth.
func (g *pyGenerator) genStmts(body []ast.Stmt) error {
	for _, stmt := range body {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}

	return nil
}

// genStmt lowers a single statement.
func (g *pyGenerator) genStmt(stmt ast.Stmt) error {
	switch v := stmt.(type) {
	case *ast.VariableDeclaration:
		init, err := g.genExpr(v.Init)
		if err != nil {
			return err
		}

		g.line("%s = %s", v.Identifier.Name, init)
	case *ast.ExpressionStatement:
		expr, err := g.genExpr(v.Expression)
		if err != nil {
			return err
		}

		g.line("%s", expr)
	case *ast.FunctionDeclaration:
		params, err := util.MapErr(v.Args, g.genValue)
		if err != nil {
			return err
		}

		g.line("def %s(%s):", v.Identifier.Name, strings.Join(params, ", "))
		return g.genBlock(v.Body)
	case *ast.ReturnStatement:
		value, err := g.genValue(v.Value)
		if err != nil {
			return err
		}

		g.line("return %s", value)
	case *ast.ConditionalStatement:
		cond, err := g.genExpr(v.Condition)
		if err != nil {
			return err
		}

		g.line("if %s:", cond)
		return g.genBlock(v.Body)
	default:
		return report.ICE("unexpected statement kind %T", stmt)
	}

	return nil
}

// genExpr lowers an expression.
func (g *pyGenerator) genExpr(expr ast.Expr) (string, error) {
	switch v := expr.(type) {
	case *ast.FunctionCall:
		args, err := util.MapErr(v.Args, g.genValue)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s(%s)", v.Callee.Name, strings.Join(args, ", ")), nil
	case ast.Value:
		return g.genValue(v)
	default:
		return "", report.ICE("unexpected expression kind %T", expr)
	}
}

// genValue lowers a value.  Only values can be arguments: calls nested as
// arguments are not supported.
func (g *pyGenerator) genValue(value ast.Value) (string, error) {
	switch v := value.(type) {
	case *ast.Identifier:
		return v.Name, nil
	case *ast.Literal:
		return v.Value, nil
	case *ast.StringLiteral:
		return strconv.Quote(v.Value), nil
	default:
		return "", report.ICE("value with kind %T not implemented yet", value)
	}
}
