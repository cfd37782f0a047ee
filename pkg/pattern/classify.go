package pattern

import "strings"

// Bytes that terminate a parameter name. Braces are included so a name
// stops where an optional segment begins.
const nameTerminators = "(/-.#:?+*{}"

// Plain delimiters: bytes that can legally follow a parameter (or its
// '?' modifier) without being part of it.
const plainDelimiters = "/-.#:{}"

func paramNameEnd(s string) int {
	if i := strings.IndexAny(s, nameTerminators); i >= 0 {
		return i
	}
	return len(s)
}

func isDelimiter(b byte) bool {
	return strings.IndexByte(plainDelimiters, b) >= 0
}

// A paramRule classifies the text immediately following a ':' sigil.
// Every rule receives the full remaining text s and the index of the
// first name-terminating byte, and reports the parameter's contribution
// plus how many bytes of s the parameter occupies. Returning both from
// one place keeps classification and suffix advancement in lockstep:
// they can never disagree about where a parameter ends.
//
// Separators stay unconsumed so that a following consecutive parameter
// (":from-:to") is still visible to the next dispatch pass.
type paramRule struct {
	name  string
	match func(s string, end int) (Param, int, bool)
}

// The rule order is a documented contract: most specific first, first
// match wins. Reordering silently changes behavior on ambiguous input.
var paramRules = []paramRule{
	{"regex-constrained", matchConstrained},
	{"consecutive", matchConsecutive},
	{"optional-delimited", matchOptionalDelimited},
	{"required-delimited", matchRequiredDelimited},
	{"repeating", matchRepeating},
	{"trailing-optional", matchTrailingOptional},
	{"bare", matchBare},
}

// classifyParam runs the ordered rule list over the text after a ':'
// sigil. Total over all inputs: text no rule recognizes contributes a
// zero Param (the dispatcher drops empty names) but still advances, so
// the scan always makes progress.
func classifyParam(s string) (Param, int) {
	end := paramNameEnd(s)
	for _, rule := range paramRules {
		if p, n, ok := rule.match(s, end); ok {
			return p, n
		}
	}
	// Nothing matched. Swallow the name and the unrecognized marker.
	n := end + 1
	if n > len(s) {
		n = len(s)
	}
	return Param{}, n
}

// Rule 1: name(constraint). The constraint text is opaque and may
// contain bytes that look like delimiters or modifiers, which is why
// this rule runs before all of them. Contributes a required single
// string; the constraint never affects the inferred type.
func matchConstrained(s string, end int) (Param, int, bool) {
	if end == len(s) || s[end] != '(' {
		return Param{}, 0, false
	}
	n := len(s) // unclosed constraint swallows the rest
	if close := strings.IndexByte(s[end:], ')'); close >= 0 {
		n = end + close + 1
	}
	return Param{Name: s[:end], Type: ValueTypes.Single}, n, true
}

// Rule 2: name-:next or name.:next. Classifies only this parameter; the
// separator is left in the suffix so the next pass finds ":next".
func matchConsecutive(s string, end int) (Param, int, bool) {
	if end+1 >= len(s) || (s[end] != '-' && s[end] != '.') || s[end+1] != ':' {
		return Param{}, 0, false
	}
	return Param{Name: s[:end], Type: ValueTypes.Single}, end, true
}

// Rule 3: name? followed by a delimiter.
func matchOptionalDelimited(s string, end int) (Param, int, bool) {
	if end+1 >= len(s) || s[end] != '?' || !isDelimiter(s[end+1]) {
		return Param{}, 0, false
	}
	return Param{Name: s[:end], Type: ValueTypes.OptionalSingle}, end + 1, true
}

// Rule 4: name followed by a plain delimiter. The '-' and '.' cases not
// captured by rule 2 land here.
func matchRequiredDelimited(s string, end int) (Param, int, bool) {
	if end == len(s) || !isDelimiter(s[end]) {
		return Param{}, 0, false
	}
	return Param{Name: s[:end], Type: ValueTypes.Single}, end, true
}

// Rule 5: repeating modifiers. '+' captures one-or-more segments, '*'
// zero-or-more.
func matchRepeating(s string, end int) (Param, int, bool) {
	if end == len(s) {
		return Param{}, 0, false
	}
	switch s[end] {
	case '+':
		return Param{Name: s[:end], Type: ValueTypes.Multi}, end + 1, true
	case '*':
		return Param{Name: s[:end], Type: ValueTypes.OptionalMulti}, end + 1, true
	}
	return Param{}, 0, false
}

// Rule 6: '?' at the absolute end of the remaining text.
func matchTrailingOptional(s string, end int) (Param, int, bool) {
	if end != len(s)-1 || s[end] != '?' {
		return Param{}, 0, false
	}
	return Param{Name: s[:end], Type: ValueTypes.OptionalSingle}, end + 1, true
}

// Rule 7: bare name with no trailing marker at all.
func matchBare(s string, end int) (Param, int, bool) {
	if end != len(s) {
		return Param{}, 0, false
	}
	return Param{Name: s, Type: ValueTypes.Single}, end, true
}
