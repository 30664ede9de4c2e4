package build

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ban/codegen"
	"ban/common"
	"ban/report"

	"github.com/pelletier/go-toml"
)

// tomlConfigFile represents the project file as it is encoded in TOML.
type tomlConfigFile struct {
	Build *tomlBuild `toml:"build"`
}

// tomlBuild represents the build table of the project file.
type tomlBuild struct {
	Target   string `toml:"target"`
	Output   string `toml:"output,omitempty"`
	LogLevel string `toml:"log-level"`
	Verify   bool   `toml:"verify"`
}

// Config is the build configuration: the project file merged with the
// command line.
type Config struct {
	// Target is the name of the selected backend.
	Target string

	// OutputPath is where the generated text is written.  It is empty when
	// the text should be written to standard output.
	OutputPath string

	// LogLevel is one of the enumerated report log levels.
	LogLevel int

	// Verify indicates whether generated Python should be checked with the
	// host's parser before it is written.
	Verify bool
}

// DefaultConfig returns the configuration used in absence of a project file.
func DefaultConfig() *Config {
	return &Config{
		Target:   codegen.DefaultTarget,
		LogLevel: report.LogLevelVerbose,
	}
}

// LoadConfig loads the project file in the given directory.  A missing file
// is not an error: the default configuration is returned instead.  A relative
// output path is taken relative to dir.
func LoadConfig(dir string) (*Config, error) {
	buff, err := os.ReadFile(filepath.Join(dir, common.BanConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}

		return nil, err
	}

	tcf := &tomlConfigFile{}
	if err := toml.Unmarshal(buff, tcf); err != nil {
		return nil, fmt.Errorf("error parsing %s: %s", common.BanConfigFileName, err)
	}

	cfg := DefaultConfig()
	if tcf.Build == nil {
		return cfg, nil
	}

	if err := convertBuild(cfg, tcf.Build); err != nil {
		return nil, fmt.Errorf("%s in %s", err, common.BanConfigFileName)
	}

	if cfg.OutputPath != "" && !filepath.IsAbs(cfg.OutputPath) {
		cfg.OutputPath = filepath.Join(dir, cfg.OutputPath)
	}

	return cfg, nil
}

// convertBuild validates a TOML build table and applies it to cfg.  Empty
// fields keep their defaults.
func convertBuild(cfg *Config, tb *tomlBuild) error {
	if tb.Target != "" {
		if err := cfg.SetTarget(tb.Target); err != nil {
			return err
		}
	}

	if tb.LogLevel != "" {
		if err := cfg.SetLogLevel(tb.LogLevel); err != nil {
			return err
		}
	}

	cfg.OutputPath = tb.Output
	cfg.Verify = tb.Verify
	return nil
}

// SetTarget selects the backend by name.
func (c *Config) SetTarget(target string) error {
	if _, ok := codegen.Lookup(target); !ok {
		return fmt.Errorf("`%s` is not a supported target", target)
	}

	c.Target = target
	return nil
}

// SetLogLevel selects the log level by name.
func (c *Config) SetLogLevel(name string) error {
	level, err := report.ParseLogLevel(name)
	if err != nil {
		return err
	}

	c.LogLevel = level
	return nil
}

// Write encodes the configuration as a project file.
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(&tomlConfigFile{
		Build: &tomlBuild{
			Target:   c.Target,
			Output:   c.OutputPath,
			LogLevel: report.LogLevelNames[c.LogLevel],
			Verify:   c.Verify,
		},
	})
}
