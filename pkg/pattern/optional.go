package pattern

import "strings"

// classifyOptionalSegment parses the inner content of a brace-wrapped
// segment. Everything inside is optional no matter how it is written:
// single parameters become optional singles, repeating parameters and
// named wildcards become optional slices. Any literal text around the
// parameters ("/", ".", or arbitrary prefixes) is skipped. An anonymous
// wildcard has no name to key on and contributes nothing.
func classifyOptionalSegment(inner string) []Param {
	var out []Param
	rest := inner
	for {
		i := strings.IndexAny(rest, ":*")
		if i < 0 {
			return out
		}
		switch rest[i] {
		case ':':
			p, n := classifyParam(rest[i+1:])
			if p.Name != "" {
				p.Type = forceOptional(p.Type)
				out = append(out, p)
			}
			rest = rest[i+1+n:]
		case '*':
			name, n := wildcardName(rest[i+1:])
			if name != "" {
				out = append(out, Param{Name: name, Type: ValueTypes.OptionalMulti})
			}
			rest = rest[i+1+n:]
		}
	}
}

func forceOptional(t ValueType) ValueType {
	switch t {
	case ValueTypes.Single:
		return ValueTypes.OptionalSingle
	case ValueTypes.Multi:
		return ValueTypes.OptionalMulti
	}
	return t
}
