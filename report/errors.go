package report

import (
	"fmt"
)

// TextPosition is a position in source text.  Both fields are one-indexed.
type TextPosition struct {
	Line, Column int
}

// -----------------------------------------------------------------------------

// syntaxErrorLabel prefixes every rendered syntax error.
const syntaxErrorLabel = "Կետադրական սխալ՝"

// SyntaxError is the single kind of user-facing compilation error: raised by
// the tokenizer on an unexpected character and by the parser on an unexpected
// token or end of input.  The message is already localized.
type SyntaxError struct {
	// The localized error message.
	Message string

	// The one-indexed position at which the error occurs.
	Line, Column int
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("%s %s %d-րդ տողի %d-րդ սյունում։", syntaxErrorLabel, se.Message, se.Line, se.Column)
}

// Position returns the position of the error.
func (se *SyntaxError) Position() TextPosition {
	return TextPosition{Line: se.Line, Column: se.Column}
}

// Raise creates a new syntax error at the given position.
func Raise(pos TextPosition, msg string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Message: fmt.Sprintf(msg, args...),
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// -----------------------------------------------------------------------------

// InternalError is an internal compiler error: a condition the compiler itself
// should never reach.  It is never localized since it is not the user's fault.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal compiler error: " + ie.Message
}

// ICE creates a new internal compiler error.
func ICE(msg string, args ...interface{}) *InternalError {
	return &InternalError{Message: fmt.Sprintf(msg, args...)}
}

// -----------------------------------------------------------------------------

// CatchErrors catches a syntax error thrown by a `panic` during a stage of
// compilation and stores it in err.  Any other panic keeps unwinding.
// NB: This function must ALWAYS be deferred.
func CatchErrors(err *error) {
	if x := recover(); x != nil {
		if serr, ok := x.(*SyntaxError); ok {
			*err = serr
		} else {
			panic(x)
		}
	}
}
