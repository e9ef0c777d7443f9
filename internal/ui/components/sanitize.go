package components

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscPattern  = regexp.MustCompile(`\x1b\][^\x07\x1b]*(\x07|\x1b\\)`)
)

var bidiControls = map[rune]struct{}{
	'‪': {},
	'‫': {},
	'‬': {},
	'‭': {},
	'‮': {},
	'⁦': {},
	'⁧': {},
	'⁨': {},
	'⁩': {},
	'‎': {},
	'‏': {},
}

// SanitizeText strips control characters and escape sequences from display
// strings. Operator names come straight from the API.
func SanitizeText(input string) string {
	if input == "" {
		return input
	}
	cleaned := oscPattern.ReplaceAllString(input, "")
	cleaned = ansiPattern.ReplaceAllString(cleaned, "")
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if _, ok := bidiControls[r]; ok {
			return -1
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
}

// SanitizeOneLine is SanitizeText with newlines and tabs folded into spaces.
func SanitizeOneLine(input string) string {
	cleaned := SanitizeText(input)
	cleaned = strings.NewReplacer("\r\n", " ", "\n", " ", "\t", " ").Replace(cleaned)
	return cleaned
}
