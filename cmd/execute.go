package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ban/build"
	"ban/codegen"
	"ban/common"
	"ban/report"

	"github.com/ComedicChimera/olive"
)

// Enumeration of process exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitInternal = -1
)

// Execute is the main entry point for the `ban` CLI utility.  It never
// returns: the process exits with a code reflecting the outcome.
func Execute() {
	// set up the argument parser and all its extended commands and arguments
	cli := olive.NewCLI("ban", "ban compiles and runs programs written in ban", true)
	cli.AddSelectorArg("loglevel", "ll", "the compiler log level", false, report.LogLevelNames)

	buildCmd := cli.AddSubcommand("build", "compile a source file", true)
	buildCmd.AddPrimaryArg("source-path", "the path to the source file", true)
	buildCmd.AddSelectorArg("target", "t", "the target representation", false, codegen.Targets())
	buildCmd.AddStringArg("output", "o", "the path to write the generated text to", false)
	buildCmd.AddFlag("verify", "v", "check generated python with the host parser")

	runCmd := cli.AddSubcommand("run", "compile and run a source file", true)
	runCmd.AddPrimaryArg("source-path", "the path to the source file", true)

	initCmd := cli.AddSubcommand("init", "write a default project file", true)
	initCmd.AddPrimaryArg("project-dir", "the directory to write the project file to", true)

	cli.AddSubcommand("version", "print the ban version", false)

	// run the argument parser
	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.InitReporter(report.LogLevelError)
		report.ReportFatal("CLI Usage", err)
		os.Exit(exitError)
	}

	var logLevelName string
	if llArgVal, ok := result.Arguments["loglevel"]; ok {
		logLevelName = llArgVal.(string)
	}

	// process the inputed command line
	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "build":
		os.Exit(execBuildCommand(subResult, logLevelName))
	case "run":
		os.Exit(execRunCommand(subResult, logLevelName))
	case "init":
		os.Exit(execInitCommand(subResult))
	case "version":
		report.ReportInfo("ban Version", common.BanVersion)
	}

	os.Exit(exitOK)
}

// execBuildCommand executes the build subcommand and handles all errors.
func execBuildCommand(result *olive.ArgParseResult, logLevelName string) int {
	srcPath, src, cfg, ok := loadSource(result, logLevelName)
	if !ok {
		return exitError
	}

	if targetArgVal, ok := result.Arguments["target"]; ok {
		if err := cfg.SetTarget(targetArgVal.(string)); err != nil {
			return fatal("Config", err)
		}
	}

	if outArgVal, ok := result.Arguments["output"]; ok {
		outPath, err := filepath.Abs(outArgVal.(string))
		if err != nil {
			return fatal("Path", err)
		}

		cfg.OutputPath = outPath
	}

	if result.HasFlag("verify") {
		cfg.Verify = true
	}

	// The generated text is the only thing that should reach standard output
	// when no output file is given.
	if cfg.OutputPath == "" && cfg.LogLevel == report.LogLevelVerbose {
		cfg.LogLevel = report.LogLevelWarn
	}
	report.InitReporter(cfg.LogLevel)

	report.ReportCompileHeader(cfg.Target)

	c, err := build.NewCompiler(cfg)
	if err != nil {
		return fatal("Config", err)
	}

	out, err := c.Compile(src)
	if err != nil {
		return reportCompileError(srcPath, src, err)
	}

	if cfg.OutputPath == "" {
		os.Stdout.WriteString(out)
	} else if err := os.WriteFile(cfg.OutputPath, []byte(out), 0644); err != nil {
		return fatal("Output", err)
	}

	report.ReportCompilationFinished(cfg.OutputPath)
	return exitOK
}

// execRunCommand executes the run subcommand and handles all errors.
func execRunCommand(result *olive.ArgParseResult, logLevelName string) int {
	srcPath, src, cfg, ok := loadSource(result, logLevelName)
	if !ok {
		return exitError
	}

	// The program's own output must not be interleaved with phase reports.
	if cfg.LogLevel == report.LogLevelVerbose {
		cfg.LogLevel = report.LogLevelWarn
	}
	report.InitReporter(cfg.LogLevel)

	useRunnableTarget(cfg)

	c, err := build.NewCompiler(cfg)
	if err != nil {
		return fatal("Config", err)
	}

	if err := c.Run(src, filepath.Base(srcPath)); err != nil {
		return reportCompileError(srcPath, src, err)
	}

	return exitOK
}

// execInitCommand executes the init subcommand: it writes the default project
// file to the given directory unless one already exists.
func execInitCommand(result *olive.ArgParseResult) int {
	report.InitReporter(report.LogLevelVerbose)

	dirArg, _ := result.PrimaryArg()
	dir, err := filepath.Abs(dirArg)
	if err != nil {
		return fatal("Path", err)
	}

	cfgPath := filepath.Join(dir, common.BanConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fatal("Init", errors.New(common.BanConfigFileName+" already exists"))
	}

	f, err := os.Create(cfgPath)
	if err != nil {
		return fatal("Init", err)
	}
	defer f.Close()

	if err := build.DefaultConfig().Write(f); err != nil {
		return fatal("Init", err)
	}

	report.ReportInfo("Created", cfgPath)
	return exitOK
}

// -----------------------------------------------------------------------------

// loadSource reads the source file named by the primary argument and the
// project file next to it, applying the log level argument if one is given.
func loadSource(result *olive.ArgParseResult, logLevelName string) (string, string, *build.Config, bool) {
	report.InitReporter(report.LogLevelError)

	srcArg, _ := result.PrimaryArg()
	srcPath, err := filepath.Abs(srcArg)
	if err != nil {
		fatal("Path", err)
		return "", "", nil, false
	}

	if filepath.Ext(srcPath) != common.BanFileExt {
		report.ReportWarning("Path", "source files should have the "+common.BanFileExt+" extension")
	}

	buff, err := os.ReadFile(srcPath)
	if err != nil {
		fatal("Path", err)
		return "", "", nil, false
	}

	cfg, err := build.LoadConfig(filepath.Dir(srcPath))
	if err != nil {
		fatal("Config", err)
		return "", "", nil, false
	}

	if logLevelName != "" {
		if err := cfg.SetLogLevel(logLevelName); err != nil {
			fatal("CLI Usage", err)
			return "", "", nil, false
		}
	}

	return srcPath, string(buff), cfg, true
}

// useRunnableTarget switches the configuration to the only target with an
// in-process host, warning if another target was selected.  It returns whether
// the target was changed.
func useRunnableTarget(cfg *build.Config) bool {
	if cfg.Target == codegen.DefaultTarget {
		return false
	}

	report.ReportWarning("Config", fmt.Sprintf(
		"target `%s` cannot be run: running as `%s` instead", cfg.Target, codegen.DefaultTarget,
	))
	cfg.Target = codegen.DefaultTarget
	return true
}

// fatal reports a fatal error and returns the matching exit code.
func fatal(kind string, err error) int {
	report.ReportFatal(kind, err)
	return exitError
}

// reportCompileError reports an error returned by the compiler and returns the
// matching exit code: internal errors are distinguished from user errors.
func reportCompileError(srcPath, src string, err error) int {
	report.ReportError(srcPath, src, err)
	report.ReportCompilationFinished("")

	var ierr *report.InternalError
	if errors.As(err, &ierr) {
		return exitInternal
	}

	return exitError
}
