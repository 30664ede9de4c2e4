package build

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"ban/report"
)

func TestCompileGolden(t *testing.T) {
	prelude, err := Compile("", "python")
	if err != nil {
		t.Fatal(err)
	}

	paths, err := filepath.Glob(filepath.Join("testdata", "*.ban"))
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) == 0 {
		t.Fatal("no test sources found")
	}

	for _, path := range paths {
		_, filename := filepath.Split(path)
		testName := filename[:len(filename)-len(filepath.Ext(path))]

		t.Run(testName, func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatal("error reading test source file:", err)
			}

			want, err := os.ReadFile(filepath.Join("testdata", testName+".py"))
			if err != nil {
				t.Fatal("error reading golden file:", err)
			}

			out, err := Compile(string(source), "python")
			if err != nil {
				t.Fatal(err)
			}

			if !strings.HasPrefix(out, prelude) {
				t.Fatal("output does not begin with the prelude")
			}

			if got := strings.TrimPrefix(out, prelude); got != string(want) {
				t.Errorf("expected output to be %s, got %s", strconv.Quote(string(want)), strconv.Quote(got))
			}
		})
	}
}

func TestCompileJavaScript(t *testing.T) {
	prelude, err := Compile("", "javascript")
	if err != nil {
		t.Fatal(err)
	}

	out, err := Compile("սահմանիր թիվ, որպես 5\nտպիր թիվ", "javascript")
	if err != nil {
		t.Fatal(err)
	}

	want := "const թիվ = 5;\nտպիր(թիվ);\n"
	if got := strings.TrimPrefix(out, prelude); got != want {
		t.Errorf("expected output to be %s, got %s", strconv.Quote(want), strconv.Quote(got))
	}
}

func TestCompileErrors(t *testing.T) {
	// Tokenizer errors surface before any parsing takes place.
	if _, err := Compile("տպիր 5 @", "python"); err == nil {
		t.Error("expected a syntax error")
	} else if serr, ok := err.(*report.SyntaxError); !ok || serr.Column != 8 {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := Compile("ավարտ", "python"); err == nil {
		t.Error("expected a syntax error")
	} else if _, ok := err.(*report.SyntaxError); !ok {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := Compile("տպիր 5", "llvm"); err == nil {
		t.Error("expected an unsupported target error")
	}
}

func TestRunRequiresPython(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = "javascript"

	c, err := NewCompiler(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Run("տպիր 5", "test.ban"); err == nil {
		t.Error("running javascript output should fail")
	}
}

// goldenSources returns the test sources under testdata.
func goldenSources(t *testing.T) []string {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join("testdata", "*.ban"))
	if err != nil {
		t.Fatal(err)
	}

	if len(paths) == 0 {
		t.Fatal("no test sources found")
	}

	return paths
}

func TestRunGolden(t *testing.T) {
	for _, path := range goldenSources(t) {
		t.Run(filepath.Base(path), func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatal("error reading test source file:", err)
			}

			c, err := NewCompiler(DefaultConfig())
			if err != nil {
				t.Fatal(err)
			}

			if err := c.Run(string(source), filepath.Base(path)); err != nil {
				t.Errorf("compiled program failed in the host: %s", err)
			}
		})
	}
}

func TestCompileVerify(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify = true

	c, err := NewCompiler(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range goldenSources(t) {
		t.Run(filepath.Base(path), func(t *testing.T) {
			source, err := os.ReadFile(path)
			if err != nil {
				t.Fatal("error reading test source file:", err)
			}

			verified, err := c.Compile(string(source))
			if err != nil {
				t.Fatalf("verified compile failed: %s", err)
			}

			plain, err := Compile(string(source), "python")
			if err != nil {
				t.Fatal(err)
			}

			if verified != plain {
				t.Error("verification must not change the generated text")
			}
		})
	}
}

func TestVerifyIgnoredForJavaScript(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Target = "javascript"
	cfg.Verify = true

	c, err := NewCompiler(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Compile("սահմանիր թիվ, որպես 5\nտպիր թիվ"); err != nil {
		t.Errorf("javascript output should compile without verification: %s", err)
	}
}

func TestRunShadowedPrelude(t *testing.T) {
	c, err := NewCompiler(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	src := "գործառույթ գումար ա և բ պարամետրերով\nպատասխանիր ա\nավարտ\nսահմանիր թիվ, որպես գումար 2 և 3\n"
	if err := c.Run(src, "shadow.ban"); err != nil {
		t.Errorf("a program redefining a primitive should still run: %s", err)
	}
}
