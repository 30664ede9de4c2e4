package codegen

import (
	"fmt"

	"ban/ast"
	"ban/common"
	"ban/util"
)

// pythonPreludeTemplate defines the standard library primitives in Python.
// The verbs are, in order: call, print, add, difference, multiply, equal,
// null, the print alias and the printed forms of true and false.
const pythonPreludeTemplate = `def %[1]s(function, *args):
    return function(*args)

def %[2]s(value):
    if value is True:
        print(%[9]q)
    elif value is False:
        print(%[10]q)
    elif value is None:
        print(%[7]q)
    else:
        print(value)

def %[3]s(x, offset):
    return x + offset

def %[4]s(x, offset):
    return x - offset

def %[5]s(multiple, multiplier):
    return multiple * multiplier

def %[6]s(a, b):
    return a == b

%[7]s = None
%[8]s = %[2]s

`

// javaScriptPreludeTemplate defines the standard library primitives in
// JavaScript.  The verbs are the same as the Python template's.
const javaScriptPreludeTemplate = `
function %[1]s(functionName, ...args) {
	return functionName(...args);
}
function %[2]s(value) {
	if (value === true) {
		console.log(%[9]q);
	} else if (value === false) {
		console.log(%[10]q);
	} else if (value === null) {
		console.log(%[7]q);
	} else {
		console.log(value);
	}
}
function %[3]s(x, offset) {
	return x + offset;
}
function %[4]s(x, offset) {
	return x - offset;
}
function %[5]s(multiple, multiplier) {
	return multiple * multiplier;
}
function %[6]s(a, b) {
	return a === b;
}
const %[7]s = null;
const %[8]s = %[2]s;
`

// pythonPrelude and javaScriptPrelude are the rendered preludes.
var (
	pythonPrelude     = renderPrelude(pythonPreludeTemplate)
	javaScriptPrelude = renderPrelude(javaScriptPreludeTemplate)
)

// renderPrelude fills a prelude template with the standard library names.
func renderPrelude(tmpl string) string {
	return fmt.Sprintf(
		tmpl,
		common.StdCall,
		common.StdPrint,
		common.StdAdd,
		common.StdDifference,
		common.StdMultiply,
		common.StdEqual,
		common.StdNull,
		common.StdPrintAlias,
		common.TrueWord,
		common.FalseWord,
	)
}

// preludeNames lists the names defined by every prelude.
var preludeNames = []string{
	common.StdCall,
	common.StdPrint,
	common.StdAdd,
	common.StdDifference,
	common.StdMultiply,
	common.StdEqual,
	common.StdNull,
	common.StdPrintAlias,
}

// ShadowedPrelude returns the identifiers declared by the program, as
// variables, functions or parameters, whose names are also defined by the
// prelude.  Such declarations replace the primitive for the rest of the
// program.  Identifiers are returned in source order.
func ShadowedPrelude(prog *ast.Program) []*ast.Identifier {
	var shadowed []*ast.Identifier
	collectShadowed(prog.Body, &shadowed)
	return shadowed
}

// collectShadowed walks a body for declarations of prelude names.
func collectShadowed(body []ast.Stmt, shadowed *[]*ast.Identifier) {
	check := func(ident *ast.Identifier) {
		if util.Contains(preludeNames, ident.Name) {
			*shadowed = append(*shadowed, ident)
		}
	}

	for _, stmt := range body {
		switch v := stmt.(type) {
		case *ast.VariableDeclaration:
			check(v.Identifier)
		case *ast.FunctionDeclaration:
			check(v.Identifier)

			for _, arg := range v.Args {
				if ident, ok := arg.(*ast.Identifier); ok {
					check(ident)
				}
			}

			collectShadowed(v.Body, shadowed)
		case *ast.ConditionalStatement:
			collectShadowed(v.Body, shadowed)
		}
	}
}
