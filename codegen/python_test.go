package codegen

import (
	"strings"
	"testing"

	"ban/ast"
	"ban/report"
)

func id(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func lit(value string) *ast.Literal {
	return &ast.Literal{Value: value}
}

func call(callee string, args ...ast.Value) *ast.FunctionCall {
	return &ast.FunctionCall{Callee: id(callee), Args: args}
}

// lowerBody lowers a program and strips the prelude from the result.
func lowerBody(t *testing.T, b Backend, body ...ast.Stmt) string {
	t.Helper()

	out, err := b.Lower(&ast.Program{Body: body})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	prelude := pythonPrelude
	if b.Name() == "javascript" {
		prelude = javaScriptPrelude
	}

	if !strings.HasPrefix(out, prelude) {
		t.Fatalf("output does not begin with the prelude:\n%s", out)
	}

	return strings.TrimPrefix(out, prelude)
}

func TestPythonDeclarationAndCall(t *testing.T) {
	got := lowerBody(t, PythonBackend{},
		&ast.VariableDeclaration{Identifier: id("թիվ"), Init: lit("5")},
		&ast.ExpressionStatement{Expression: call("տպիր", id("թիվ"))},
	)

	if want := "թիվ = 5\nտպիր(թիվ)\n"; got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestPythonNestedBodies(t *testing.T) {
	got := lowerBody(t, PythonBackend{},
		&ast.FunctionDeclaration{
			Identifier: id("ֆ"),
			Args:       []ast.Value{id("ա"), id("բ")},
			Body: []ast.Stmt{
				&ast.ConditionalStatement{
					Condition: call("հավասար", id("ա"), id("բ")),
					Body: []ast.Stmt{
						&ast.ReturnStatement{Value: lit("1")},
					},
				},
				&ast.ConditionalStatement{Condition: id("ա")},
				&ast.ReturnStatement{Value: &ast.StringLiteral{Value: "ոչ"}},
			},
		},
		&ast.FunctionDeclaration{Identifier: id("դատարկ")},
		&ast.ExpressionStatement{Expression: call("ֆ", lit("1"), lit("2"))},
	)

	want := "def ֆ(ա, բ):\n" +
		"    if հավասար(ա, բ):\n" +
		"        return 1\n" +
		"    if ա:\n" +
		"        pass\n" +
		"    return \"ոչ\"\n" +
		"def դատարկ():\n" +
		"    pass\n" +
		"ֆ(1, 2)\n"

	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPythonPrelude(t *testing.T) {
	out, err := PythonBackend{}.Lower(&ast.Program{})
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range preludeNames {
		if !strings.Contains(out, name) {
			t.Errorf("prelude does not define %s", name)
		}
	}

	if !strings.HasSuffix(out, "տպիր = տպել\n\n") {
		t.Errorf("prelude should end with the print alias, got:\n%s", out)
	}
}

// fakeValue is a value kind no backend knows how to lower.
type fakeValue struct {
	*ast.Identifier
}

// fakeStmt is a statement kind no backend knows how to lower.
type fakeStmt struct {
	*ast.ExpressionStatement
}

func TestLowerInternalErrors(t *testing.T) {
	progs := map[string]*ast.Program{
		"Value": {Body: []ast.Stmt{
			&ast.ExpressionStatement{Expression: call("տպիր", fakeValue{id("ա")})},
		}},
		"NestedValue": {Body: []ast.Stmt{
			&ast.FunctionDeclaration{
				Identifier: id("ֆ"),
				Body:       []ast.Stmt{&ast.ReturnStatement{Value: fakeValue{id("ա")}}},
			},
		}},
		"Stmt": {Body: []ast.Stmt{
			fakeStmt{&ast.ExpressionStatement{Expression: id("ա")}},
		}},
	}

	for _, b := range []Backend{PythonBackend{}, JavaScriptBackend{}} {
		for name, prog := range progs {
			t.Run(b.Name()+"/"+name, func(t *testing.T) {
				out, err := b.Lower(prog)
				if out != "" {
					t.Errorf("no output should be produced on error, got %q", out)
				}

				if _, ok := err.(*report.InternalError); !ok {
					t.Errorf("expected an internal error, got %v", err)
				}
			})
		}
	}
}

func TestShadowedPrelude(t *testing.T) {
	params := id("տպիր")
	inner := id("գումար")
	outer := id("ոչինչ")

	prog := &ast.Program{Body: []ast.Stmt{
		&ast.VariableDeclaration{Identifier: id("թիվ"), Init: lit("5")},
		&ast.FunctionDeclaration{
			Identifier: id("ֆ"),
			Args:       []ast.Value{params, lit("1")},
			Body: []ast.Stmt{
				&ast.ConditionalStatement{
					Condition: id("ա"),
					Body: []ast.Stmt{
						&ast.VariableDeclaration{Identifier: inner, Init: lit("1")},
					},
				},
			},
		},
		&ast.VariableDeclaration{Identifier: outer, Init: lit("2")},
		&ast.ExpressionStatement{Expression: call("տպել", id("թիվ"))},
	}}

	got := ShadowedPrelude(prog)
	want := []*ast.Identifier{params, inner, outer}

	if len(got) != len(want) {
		t.Fatalf("ShadowedPrelude() returned %d identifiers; want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("identifier %d = %s; want %s", i, got[i].Name, want[i].Name)
		}
	}

	if len(ShadowedPrelude(&ast.Program{})) != 0 {
		t.Error("an empty program shadows nothing")
	}
}
