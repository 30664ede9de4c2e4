package codegen

import (
	"testing"

	"ban/ast"
)

func TestJavaScriptLowering(t *testing.T) {
	got := lowerBody(t, JavaScriptBackend{},
		&ast.VariableDeclaration{Identifier: id("թիվ"), Init: call("գումար", lit("2"), lit("3"))},
		&ast.FunctionDeclaration{
			Identifier: id("ֆ"),
			Args:       []ast.Value{id("ա")},
			Body: []ast.Stmt{
				&ast.ConditionalStatement{
					Condition: id("ա"),
					Body:      []ast.Stmt{&ast.ReturnStatement{Value: id("ա")}},
				},
			},
		},
		&ast.ExpressionStatement{Expression: call("տպիր", &ast.StringLiteral{Value: "բարև"})},
	)

	want := "const թիվ = գումար(2, 3);\n" +
		"function ֆ(ա){\n" +
		"if (ա){\n" +
		"return ա\n" +
		"};\n" +
		"};\n" +
		"տպիր(\"բարև\");\n"

	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestBackendLookup(t *testing.T) {
	targets := Targets()
	if len(targets) != 2 || targets[0] != "javascript" || targets[1] != "python" {
		t.Errorf("Targets() = %v; want [javascript python]", targets)
	}

	for _, name := range targets {
		b, ok := Lookup(name)
		if !ok || b.Name() != name {
			t.Errorf("Lookup(%q) returned %v, %v", name, b, ok)
		}
	}

	if _, ok := Lookup("llvm"); ok {
		t.Error("Lookup(\"llvm\") should fail")
	}

	out, err := Lower(&ast.Program{})
	if err != nil {
		t.Fatal(err)
	}

	if out != pythonPrelude {
		t.Error("Lower should use the python backend by default")
	}
}

func TestQuoteJS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"բարև", `"բարև"`},
		{"ա\"բ\\", `"ա\"բ\\"`},
		{"ա\nբ\tգ\r", `"ա\nբ\tգ\r"`},
		{"\x01", `"\u0001"`},
		{"\u2028", `"\u2028"`},
		{"\U000E0001", `"\u{e0001}"`},
		{"😀", `"😀"`},
	}

	for _, tc := range tests {
		if got := quoteJS(tc.input); got != tc.want {
			t.Errorf("quoteJS(%q) = %s; want %s", tc.input, got, tc.want)
		}
	}
}
