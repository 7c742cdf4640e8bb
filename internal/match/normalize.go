package match

import (
	"strings"
	"unicode"
)

// Normalize lower-cases a class name and drops word separators, so naming
// conventions do not count as edits.
func Normalize(name string) string {
	return strings.Join(Words(name), "")
}

// Words splits a class name into lower-case words at separators and at
// CamelCase boundaries.
//
//   - "DATE_TIME" -> [date time]
//   - "CodedText" -> [coded text]
//   - "XMLSchema" -> [xml schema]
func Words(name string) []string {
	var (
		words   []string
		current []rune
	)

	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(name)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordStart(runes, i) {
			flush()
		}

		current = append(current, r)
	}

	flush()

	return words
}

// wordStart reports whether runes[i] begins a CamelCase word: a capital
// after a lower-case rune, or the last capital of an acronym followed by a
// lower-case rune.
func wordStart(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
