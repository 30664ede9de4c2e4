package codegen

import (
	"sort"

	"ban/ast"
)

// Backend lowers a program into the executable text of one host environment.
// Backends never see tokens: the tokenizer and parser do not depend on them.
type Backend interface {
	// Name is the target name used to select the backend.
	Name() string

	// Lower produces the executable text of the program: the backend's
	// prelude followed by the lowering of the program body.  It only fails
	// with an `*report.InternalError`.
	Lower(prog *ast.Program) (string, error)
}

// DefaultTarget is the name of the backend used when none is selected.
const DefaultTarget = "python"

// backends maps target names to their backends.
var backends = map[string]Backend{
	"python":     PythonBackend{},
	"javascript": JavaScriptBackend{},
}

// Lookup returns the backend for the given target name.
func Lookup(target string) (Backend, bool) {
	b, ok := backends[target]
	return b, ok
}

// Targets returns the names of all available targets in sorted order.
func Targets() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Lower lowers a program using the default backend.
func Lower(prog *ast.Program) (string, error) {
	return backends[DefaultTarget].Lower(prog)
}
