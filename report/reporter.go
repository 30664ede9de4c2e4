package report

import (
	"fmt"
	"sync"
)

// Reporter is responsible for reporting errors and other kinds of messages to
// the user during program execution.  The reporter respects the set log level
// and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different report calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors reported so far.
	errorCount int
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// logLevelNames maps the textual log levels to their enumerated values.
var logLevelNames = map[string]int{
	"silent":  LogLevelSilent,
	"error":   LogLevelError,
	"warn":    LogLevelWarn,
	"verbose": LogLevelVerbose,
}

// LogLevelNames lists the accepted log level names in ascending order.
var LogLevelNames = []string{"silent", "error", "warn", "verbose"}

// ParseLogLevel converts a log level name into its enumerated value.
func ParseLogLevel(name string) (int, error) {
	if level, ok := logLevelNames[name]; ok {
		return level, nil
	}

	return 0, fmt.Errorf("invalid log level: `%s`", name)
}

// rep is the global reporter instance.  It stays silent until initialized so
// that library use of the compiler displays nothing.
var rep = &Reporter{m: &sync.Mutex{}, logLevel: LogLevelSilent}

// InitReporter (re)initializes the global reporter to the given log level.
func InitReporter(logLevel int) {
	rep = &Reporter{
		m:        &sync.Mutex{},
		logLevel: logLevel,
	}
}

// LogLevel returns the log level of the global reporter.
func LogLevel() int {
	return rep.logLevel
}

// AnyErrors returns whether or not any errors were reported.
func AnyErrors() bool {
	return rep.errorCount > 0
}

// -----------------------------------------------------------------------------

// ReportError reports an error returned by a compilation stage.  Syntax errors
// are displayed with the offending source text; internal errors are displayed
// as such.  The path is only used for display and src may be empty.
func ReportError(path, src string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	switch v := err.(type) {
	case *InternalError:
		// Internal errors are always displayed regardless of log level.
		displayEndPhase(false)
		displayICE(v.Message)
	case *SyntaxError:
		if rep.logLevel > LogLevelSilent {
			displayEndPhase(false)
			displaySyntaxError(path, src, v)
		}
	default:
		if rep.logLevel > LogLevelSilent {
			displayEndPhase(false)
			displayStdError(path, err)
		}
	}
}

// ReportFatal reports a fatal error: an expected error that results from an
// invalid configuration or command line.  The caller decides how to exit.
func ReportFatal(kind string, err error) {
	rep.m.Lock()
	defer rep.m.Unlock()

	rep.errorCount++

	if rep.logLevel > LogLevelSilent {
		displayEndPhase(false)
		displayFatal(kind, err)
	}
}

// ReportWarning reports a non-fatal warning.
func ReportWarning(kind, msg string) {
	if rep.logLevel >= LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(kind, msg)
	}
}

// ReportInfo displays an informational message regardless of log level.
func ReportInfo(tag, msg string) {
	rep.m.Lock()
	defer rep.m.Unlock()

	displayInfo(tag, msg)
}

// -----------------------------------------------------------------------------
// Below are all the "aesthetic" reporting functions that will only run if the
// log level is verbose.

// ReportCompileHeader reports the compiler version and selected target.
func ReportCompileHeader(target string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompileHeader(target)
	}
}

// ReportBeginPhase reports the beginning of a compilation phase.
func ReportBeginPhase(phase string) {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayBeginPhase(phase)
	}
}

// ReportEndPhase reports the successful end of the current phase.
func ReportEndPhase() {
	if rep.logLevel == LogLevelVerbose {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayEndPhase(true)
	}
}

// ReportCompilationFinished reports the concluding message for compilation.
func ReportCompilationFinished(outputPath string) {
	if rep.logLevel == LogLevelVerbose {
		displayCompilationFinished(!AnyErrors(), outputPath)
	}
}
