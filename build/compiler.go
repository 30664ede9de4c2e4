package build

import (
	"fmt"

	"ban/ast"
	"ban/codegen"
	"ban/host"
	"ban/report"
	"ban/syntax"
)

// Compiler runs the compilation pipeline: text to tokens to AST to executable
// text.  Each stage runs to completion before the next begins and the first
// error aborts the pipeline.
type Compiler struct {
	cfg *Config

	backend codegen.Backend
}

// NewCompiler creates a new compiler for the given configuration.
func NewCompiler(cfg *Config) (*Compiler, error) {
	backend, ok := codegen.Lookup(cfg.Target)
	if !ok {
		return nil, fmt.Errorf("`%s` is not a supported target", cfg.Target)
	}

	if cfg.Verify && backend.Name() != codegen.DefaultTarget {
		report.ReportWarning("Config", fmt.Sprintf("verification is only available for python output: ignored for `%s`", cfg.Target))
	}

	return &Compiler{cfg: cfg, backend: backend}, nil
}

// Compile compiles source text with the backend of the given target.  Syntax
// errors are returned as `*report.SyntaxError` and internal errors as
// `*report.InternalError`.
func Compile(src, target string) (string, error) {
	cfg := DefaultConfig()
	cfg.Target = target

	c, err := NewCompiler(cfg)
	if err != nil {
		return "", err
	}

	return c.Compile(src)
}

// Compile compiles source text into the executable text of the compiler's
// backend.  Progress is reported per phase.
func (c *Compiler) Compile(src string) (string, error) {
	tokens, err := phase("Tokenizing", func() ([]*syntax.Token, error) {
		return syntax.Tokenize(src)
	})
	if err != nil {
		return "", err
	}

	prog, err := phase("Parsing", func() (*ast.Program, error) {
		return syntax.Parse(tokens)
	})
	if err != nil {
		return "", err
	}

	for _, ident := range codegen.ShadowedPrelude(prog) {
		pos := ident.Position()
		report.ReportWarning("Shadowing", fmt.Sprintf(
			"`%s` at %d:%d replaces the standard library definition", ident.Name, pos.Line, pos.Column,
		))
	}

	return phase("Generating", func() (string, error) {
		out, err := c.backend.Lower(prog)
		if err != nil {
			return "", err
		}

		if c.cfg.Verify && c.backend.Name() == codegen.DefaultTarget {
			if err := host.Check(out, "<generated>"); err != nil {
				return "", err
			}
		}

		return out, nil
	})
}

// Run compiles source text and executes it in the gpython host.  Only the
// Python target can be run in-process.
func (c *Compiler) Run(src, desc string) error {
	if c.backend.Name() != "python" {
		return fmt.Errorf("target `%s` cannot be run: only python output has a host", c.backend.Name())
	}

	out, err := c.Compile(src)
	if err != nil {
		return err
	}

	_, err = phase("Running", func() (struct{}, error) {
		return struct{}{}, host.Run(out, desc)
	})
	return err
}

// phase runs a single phase of compilation between its begin and end reports.
func phase[T any](name string, f func() (T, error)) (T, error) {
	report.ReportBeginPhase(name)

	result, err := f()
	if err == nil {
		report.ReportEndPhase()
	}

	return result, err
}
