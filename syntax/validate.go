package syntax

import (
	"ban/common"
	"ban/util"
)

// IsNumber returns whether text is a non-empty run of decimal digits.
func IsNumber(text string) bool {
	return text != "" && all(text, isDecimalDigit)
}

// IsArmenian returns whether text is a non-empty run of characters from the
// Armenian block.
func IsArmenian(text string) bool {
	return text != "" && all(text, isArmenianChar)
}

// IsEnding returns whether text is a case ending: the ending mark followed by
// one or more ending letters.
func IsEnding(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 || runes[0] != common.SymEndingMark {
		return false
	}

	for _, c := range runes[1:] {
		if !util.Contains(endingLetters, c) {
			return false
		}
	}

	return true
}

// IsKeyword returns whether text is a reserved word.
func IsKeyword(text string) bool {
	_, ok := common.Keywords[text]
	return ok
}

// -----------------------------------------------------------------------------

var endingLetters = []rune(common.EndingLetters)

// all returns whether every rune of text satisfies pred.
func all(text string, pred func(rune) bool) bool {
	for _, c := range text {
		if !pred(c) {
			return false
		}
	}

	return true
}

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isArmenianChar returns whether c lies in the Armenian Unicode block.
func isArmenianChar(c rune) bool {
	return 0x0530 <= c && c <= 0x058F
}

// isEndingChar returns whether c may appear in a case ending.
func isEndingChar(c rune) bool {
	return c == common.SymEndingMark || util.Contains(endingLetters, c)
}
