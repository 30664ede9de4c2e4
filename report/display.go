package report

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ban/common"

	"github.com/pterm/pterm"
)

// The palette used for all terminal output.  Foregrounds color message text
// and styles color the label preceding it.
var (
	okFG      = pterm.FgLightGreen
	okStyle   = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	warnFG    = pterm.FgYellow
	warnStyle = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	errFG     = pterm.FgRed
	errStyle  = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

// displayICE displays an internal compiler error message.
func displayICE(message string) {
	fmt.Print("\n")
	errStyle.Print("Internal Compiler Error")
	errFG.Println(" " + message)
	okFG.Println("This error was not supposed to happen: this is a bug in the compiler.")
}

// displayFatal displays a fatal configuration or usage error.
func displayFatal(kind string, err error) {
	errStyle.Print(kind + " Error")
	errFG.Println(" " + err.Error())
}

// displayStdError displays a standard Go error.
func displayStdError(path string, err error) {
	errStyle.Print("Error")
	errFG.Printf(" %s: %s\n", filepath.Base(path), err)
}

// displayWarning displays a warning message.
func displayWarning(kind, msg string) {
	warnStyle.Print(kind + " Warning")
	warnFG.Println(" " + msg)
}

// displayInfo displays an informational message.
func displayInfo(tag, msg string) {
	okStyle.Print(tag)
	okFG.Println(" " + msg)
}

// -----------------------------------------------------------------------------

// displaySyntaxError displays a syntax error with a banner, its localized
// message and the source line the error occurs on.
func displaySyntaxError(path string, src string, serr *SyntaxError) {
	fileName := filepath.Base(path)

	fmt.Print("\n-- ")
	errStyle.Print("Syntax Error")
	fmt.Print(" ")

	width := pterm.GetTerminalWidth()/2 - len(fileName) - len("Syntax Error") - 1
	if width > 40 {
		width = 40
	} else if width < 2 {
		width = 2
	}

	fmt.Print(strings.Repeat("-", width), " ")
	okFG.Println(fileName)

	fmt.Println(serr.Error())

	if line, ok := sourceLine(src, serr.Line); ok {
		displaySourceLine(line, serr.Line, serr.Column)
	}

	fmt.Println()
}

// sourceLine returns the one-indexed line of src.
func sourceLine(src string, lineNumber int) (string, bool) {
	if src == "" || lineNumber < 1 {
		return "", false
	}

	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(strings.ReplaceAll(src, "\r", "\n"), "\n")
	if lineNumber > len(lines) {
		return "", false
	}

	return lines[lineNumber-1], true
}

// displaySourceLine displays a single source line with a carret underneath
// the erroneous column.
func displaySourceLine(line string, lineNumber, column int) {
	runes := []rune(strings.ReplaceAll(line, "\t", " "))

	// Trim the leading indentation but keep the carret aligned.
	indent := 0
	for indent < len(runes) && runes[indent] == ' ' {
		indent++
	}

	lineNumStr := strconv.Itoa(lineNumber)

	fmt.Println()
	okFG.Print(lineNumStr + " ")
	fmt.Print("|  ")
	fmt.Println(string(runes[indent:]))

	carretPrefixCount := column - 1 - indent
	if carretPrefixCount < 0 {
		carretPrefixCount = 0
	}

	fmt.Print(strings.Repeat(" ", len(lineNumStr)+1), "|  ")
	fmt.Print(strings.Repeat(" ", carretPrefixCount))
	errFG.Println("^")
}

// -----------------------------------------------------------------------------

// displayCompileHeader displays all the compiler information before starting
// compilation.
func displayCompileHeader(target string) {
	fmt.Print("ban ")
	okFG.Print("v" + common.BanVersion)
	fmt.Print(" -- target: ")
	okFG.Println(target)
}

// phase is the compilation phase currently displayed by a spinner.
type phase struct {
	name    string
	spinner *pterm.SpinnerPrinter
	start   time.Time
}

// activePhase is nil when no phase is running.
var activePhase *phase

// phaseColumnWidth aligns the timings of all phases.
const phaseColumnWidth = len("Tokenizing") + 2

// label returns the phase name padded to the phase column.
func (ph *phase) label(suffix string) string {
	pad := phaseColumnWidth - len(ph.name)
	if pad < 0 {
		pad = 0
	}

	return ph.name + suffix + strings.Repeat(" ", pad)
}

// prefixPrinter creates the printer of a finished phase's label.
func prefixPrinter(text string, style *pterm.Style) *pterm.PrefixPrinter {
	return &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix:       pterm.Prefix{Style: style, Text: text},
	}
}

// displayBeginPhase starts a spinner for a compilation phase.
func displayBeginPhase(name string) {
	ph := &phase{
		name:    name,
		spinner: pterm.DefaultSpinner.WithStyle(pterm.NewStyle(okFG)),
	}

	ph.spinner.SuccessPrinter = prefixPrinter("Done", okStyle)
	ph.spinner.FailPrinter = prefixPrinter("Fail", errStyle)

	ph.spinner.Start(ph.label("..."))
	ph.start = time.Now()
	activePhase = ph
}

// displayEndPhase stops the spinner of the running phase if there is one.
func displayEndPhase(success bool) {
	if activePhase == nil {
		return
	}

	if success {
		elapsed := time.Since(activePhase.start).Seconds()
		activePhase.spinner.Success(activePhase.label(""), fmt.Sprintf("(%.3fs)", elapsed))
	} else {
		activePhase.spinner.Fail(activePhase.label(""))
	}

	activePhase = nil
}

// displayCompilationFinished displays a compilation finished message.
func displayCompilationFinished(success bool, outputPath string) {
	fmt.Print("\n")

	if success {
		okFG.Print("Compiled. ")
		if outputPath != "" {
			fmt.Print("(output: ")
			okFG.Print(outputPath)
			fmt.Print(")")
		}
		fmt.Println()
	} else {
		errFG.Println("Compilation failed.")
	}
}
