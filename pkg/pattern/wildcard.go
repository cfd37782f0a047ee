package pattern

import (
	"strconv"
	"strings"
)

// maxWildcardIndex is the counter ceiling. Every anonymous wildcard past
// the tenth shares this index; a defined approximation, not a failure.
const maxWildcardIndex = 10

// wildcardIndex assigns the numeric key for an anonymous wildcard by
// counting the '*' bytes in the already-consumed prefix of the pattern.
// The count is literal: stars spent on named wildcards and repeating
// modifiers shift later indices too.
func wildcardIndex(prefix string) string {
	n := strings.Count(prefix, "*")
	if n > maxWildcardIndex {
		n = maxWildcardIndex
	}
	return strconv.Itoa(n)
}

// wildcardName extracts the name following a '*' marker, if any. An
// empty name means the wildcard is anonymous.
func wildcardName(s string) (string, int) {
	end := paramNameEnd(s)
	return s[:end], end
}
