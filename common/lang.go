package common

// Enumeration of the language keywords.
const (
	KwVarDecl        = "սահմանիր"
	KwAs             = "որպես"
	KwFuncDecl       = "գործառույթ"
	KwWithParameters = "պարամետրերով"
	KwEndBlock       = "ավարտ"
	KwIf             = "եթե"
	KwReturn         = "պատասխանիր"
)

// Keywords is the set of all reserved words.
var Keywords = map[string]struct{}{
	KwVarDecl:        {},
	KwAs:             {},
	KwFuncDecl:       {},
	KwWithParameters: {},
	KwEndBlock:       {},
	KwIf:             {},
	KwReturn:         {},
}

// Conjunction separates the values of an argument list.  It is matched on the
// raw token value: it is lexed as an ordinary identifier.
const Conjunction = "և"

// Enumeration of punctuation and delimiter symbols.
const (
	SymComma        = ','
	SymCommentStart = '('
	SymCommentEnd   = ')'
	SymQuoteStart   = '«'
	SymQuoteEnd     = '»'
	SymEndingMark   = '-'
)

// EndingLetters are the letters that may follow the ending mark.
const EndingLetters = "նըի"

// Names of the standard library primitives defined by every prelude.  User
// definitions with the same names shadow them.
const (
	StdCall       = "կանչիր"
	StdPrint      = "տպել"
	StdAdd        = "գումար"
	StdNull       = "ոչինչ"
	StdMultiply   = "արտադրյալ"
	StdDifference = "տարբերություն"
	StdEqual      = "հավասար"

	// StdPrintAlias is the imperative spelling of print.
	StdPrintAlias = "տպիր"
)

// The printed forms of boolean values.
const (
	TrueWord  = "ճշմարիտ"
	FalseWord = "կեղծ"
)
