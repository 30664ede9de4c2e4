package codegen

import (
	"fmt"
	"strconv"
	"strings"

	"ban/ast"
	"ban/report"
	"ban/util"
)

// JavaScriptBackend lowers programs into JavaScript source text.  Bindings are
// `const` and every statement is terminated by a semicolon and a newline.
type JavaScriptBackend struct{}

func (JavaScriptBackend) Name() string {
	return "javascript"
}

func (JavaScriptBackend) Lower(prog *ast.Program) (string, error) {
	body, err := genJSBody(prog.Body)
	if err != nil {
		return "", err
	}

	return javaScriptPrelude + body, nil
}

// genJSBody lowers a sequence of statements.
func genJSBody(body []ast.Stmt) (string, error) {
	chunks, err := util.MapErr(body, genJSStmt)
	if err != nil {
		return "", err
	}

	return strings.Join(chunks, ""), nil
}

// genJSStmt lowers a single statement.
func genJSStmt(stmt ast.Stmt) (string, error) {
	switch v := stmt.(type) {
	case *ast.VariableDeclaration:
		init, err := genJSExpr(v.Init)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("const %s = %s;\n", v.Identifier.Name, init), nil
	case *ast.ExpressionStatement:
		expr, err := genJSExpr(v.Expression)
		if err != nil {
			return "", err
		}

		return expr + ";\n", nil
	case *ast.FunctionDeclaration:
		params, err := util.MapErr(v.Args, genJSValue)
		if err != nil {
			return "", err
		}

		body, err := genJSBody(v.Body)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("function %s(%s){\n%s};\n", v.Identifier.Name, strings.Join(params, ", "), body), nil
	case *ast.ReturnStatement:
		value, err := genJSValue(v.Value)
		if err != nil {
			return "", err
		}

		return "return " + value + "\n", nil
	case *ast.ConditionalStatement:
		cond, err := genJSExpr(v.Condition)
		if err != nil {
			return "", err
		}

		body, err := genJSBody(v.Body)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("if (%s){\n%s};\n", cond, body), nil
	default:
		return "", report.ICE("unexpected statement kind %T", stmt)
	}
}

// genJSExpr lowers an expression.
func genJSExpr(expr ast.Expr) (string, error) {
	switch v := expr.(type) {
	case *ast.FunctionCall:
		args, err := util.MapErr(v.Args, genJSValue)
		if err != nil {
			return "", err
		}

		return fmt.Sprintf("%s(%s)", v.Callee.Name, strings.Join(args, ", ")), nil
	case ast.Value:
		return genJSValue(v)
	default:
		return "", report.ICE("unexpected expression kind %T", expr)
	}
}

// genJSValue lowers a value.
func genJSValue(value ast.Value) (string, error) {
	switch v := value.(type) {
	case *ast.Identifier:
		return v.Name, nil
	case *ast.Literal:
		return v.Value, nil
	case *ast.StringLiteral:
		return quoteJS(v.Value), nil
	default:
		return "", report.ICE("value with kind %T not implemented yet", value)
	}
}

// quoteJS renders a JavaScript string literal.  Printable runes are kept
// verbatim and the others are written as `\u` escapes, using the braced form
// above the Basic Multilingual Plane.
func quoteJS(s string) string {
	sb := strings.Builder{}
	sb.WriteByte('"')

	for _, r := range s {
		switch {
		case r == '"' || r == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case strconv.IsPrint(r):
			sb.WriteRune(r)
		case r < 0x10000:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\u{%x}`, r)
		}
	}

	sb.WriteByte('"')
	return sb.String()
}
