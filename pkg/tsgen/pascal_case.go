package tsgen

import (
	"strings"
	"unicode"
)

// convertToPascalCase makes a route name safe to use as a TypeScript
// identifier: illegal characters become word boundaries, words are
// capitalized, and a leading digit gets an underscore prepended.
func convertToPascalCase(input string) string {
	startsWithDigit := len(input) > 0 && unicode.IsDigit(rune(input[0]))

	var words []string
	var current strings.Builder
	for _, r := range input {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	var b strings.Builder
	if startsWithDigit {
		b.WriteByte('_')
	}
	for _, w := range words {
		runes := []rune(w)
		b.WriteRune(unicode.ToUpper(runes[0]))
		b.WriteString(string(runes[1:]))
	}
	return b.String()
}
