package host

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	// Registers the builtins and the context implementation.
	_ "github.com/go-python/gpython/stdlib"
)

// Run executes Python source text in a fresh gpython context.  The text is
// opaque to this package: errors raised while running it are the host's and
// are returned wrapped.  desc names the text in host tracebacks.
func Run(src, desc string) error {
	ctx := py.NewContext(py.DefaultContextOpts())
	defer ctx.Close()

	// The text is compiled as a module of any number of statements.
	code, err := py.Compile(src, desc, py.ExecMode, 0, true)
	if err != nil {
		return fmt.Errorf("host error in %s: %w", desc, err)
	}

	if _, err := py.RunCode(ctx, code, desc, nil); err != nil {
		return fmt.Errorf("host error in %s: %w", desc, err)
	}

	return nil
}

// Check parses Python source text without running it.
func Check(src, desc string) error {
	if _, err := parser.Parse(strings.NewReader(src), desc, py.ExecMode); err != nil {
		return fmt.Errorf("generated text of %s rejected by host: %w", desc, err)
	}

	return nil
}
