// Package pattern infers the parameter shape of a route-pattern string.
//
// Given a template like "/users/:id/books/:bookId?", Infer derives the
// mapping of parameter name to value type that a router's params bag will
// hold for a matched request: which keys are required vs optional, which
// capture a single segment vs a slice of segments, and the numeric keys
// assigned to anonymous wildcard captures.
//
// The scan is a single left-to-right pass with no backtracking. Each
// syntactic form is resolved by a fixed-priority ordered rule list, so
// every input string maps to some deterministic result. Malformed text
// never fails; it just contributes nothing. This package performs no
// runtime path matching whatsoever. It only answers "for pattern P,
// what is the parameter map?"
package pattern

import "strings"

/////////////////////////////////////////////////////////////////////
/////// PUBLIC API
/////////////////////////////////////////////////////////////////////

type (
	ValueType string

	// Param describes one parameter occurrence: its name (or numeric
	// index, for anonymous wildcards) and the value type it captures.
	Param struct {
		Name string
		Type ValueType
	}

	ParamMap = map[string]ValueType

	// Map is the inferred parameter map for a pattern. When Open is
	// true, the pattern was not known ahead of time: parameters exist,
	// but their names are unknowable, so the map degrades to an open
	// string-to-string bag and Params is nil.
	Map struct {
		Params ParamMap
		Open   bool
	}
)

var ValueTypes = struct {
	Single         ValueType // exactly one string
	OptionalSingle ValueType // one string, possibly absent
	Multi          ValueType // a slice of strings (at-least-one is a runtime contract, not enforced here)
	OptionalMulti  ValueType // a slice of strings, possibly absent
}{
	Single:         "single",
	OptionalSingle: "optional",
	Multi:          "multi",
	OptionalMulti:  "optional-multi",
}

// Infer returns the parameter map for a pattern known at registration
// time. Evaluation is pure: the same pattern always yields an equal map.
func Infer(pat string) Map {
	descriptors := Descriptors(pat)
	params := make(ParamMap, len(descriptors))
	for _, p := range descriptors {
		params[p.Name] = p.Type
	}
	return Map{Params: params}
}

// Unknown returns the fallback map for a pattern that is not known ahead
// of time.
func Unknown() Map {
	return Map{Open: true}
}

/////////////////////////////////////////////////////////////////////
/////// DISPATCHER / COMPOSER
/////////////////////////////////////////////////////////////////////

// Descriptors returns every parameter in the pattern, in order of
// appearance. On a duplicate name, the earliest occurrence wins.
//
// The dispatch loop finds the leftmost syntactic marker in the remaining
// suffix (a brace-wrapped optional segment, a ':' parameter sigil, or a
// '*' wildcard), hands it to the matching classifier, and continues on
// whatever the classifier left unconsumed. Every iteration strictly
// shortens the suffix, so the loop always terminates.
func Descriptors(pat string) []Param {
	var out []Param
	seen := make(map[string]bool)

	add := func(p Param) {
		if p.Name == "" || seen[p.Name] {
			return
		}
		seen[p.Name] = true
		out = append(out, p)
	}

	rest := pat
	for {
		i := strings.IndexAny(rest, "{:*")
		if i < 0 {
			return out
		}

		// Offset of the marker within the original pattern. rest is
		// always a true suffix of pat, never a rewrite.
		at := len(pat) - len(rest) + i

		switch rest[i] {
		case '{':
			end := strings.IndexByte(rest[i:], '}')
			if end < 0 {
				// Unclosed brace: literal text, keep scanning past it.
				rest = rest[i+1:]
				continue
			}
			for _, p := range classifyOptionalSegment(rest[i+1 : i+end]) {
				add(p)
			}
			rest = rest[i+end+1:]
		case ':':
			p, n := classifyParam(rest[i+1:])
			add(p)
			rest = rest[i+1+n:]
		case '*':
			name, n := wildcardName(rest[i+1:])
			if name != "" {
				add(Param{Name: name, Type: ValueTypes.Multi})
			} else {
				add(Param{Name: wildcardIndex(pat[:at]), Type: ValueTypes.Single})
			}
			rest = rest[i+1+n:]
		}
	}
}
