package mux

import (
	"strconv"
	"strings"
)

// A chiPattern is one registration variant: the chi-syntax pattern and,
// when the variant ends in chi's catch-all, the params-bag key the
// catch-all capture belongs under (the wildcard's name, or its numeric
// index for anonymous wildcards). Chi reports the capture as "*"; the
// key restores the name the inferred shape promises.
type chiPattern struct {
	pattern  string
	wildcard string
}

// toChiPatterns translates a route template into the chi patterns that
// must be registered for it. Brace segments and trailing-'?' parameters
// double the variants (with and without); trailing repeats and
// wildcards become chi's catch-all. This is registration glue only:
// chi owns all matching, and templates chi cannot express exactly are
// approximated (a mid-pattern wildcard registers as a one-segment
// param named by its index).
func toChiPatterns(pat string) []chiPattern {
	var expanded []string
	for _, v := range expandBraces(pat) {
		expanded = append(expanded, expandOptionalParams(v)...)
	}

	seen := make(map[string]bool, len(expanded))
	out := make([]chiPattern, 0, len(expanded))
	for _, v := range expanded {
		cp := translate(v)
		if cp.pattern == "" {
			cp.pattern = "/"
		}
		if !seen[cp.pattern] {
			seen[cp.pattern] = true
			out = append(out, cp)
		}
	}
	return out
}

// expandBraces replaces each {…} optional segment with its two
// variants: absent, and present with the braces stripped.
func expandBraces(pat string) []string {
	i := strings.IndexByte(pat, '{')
	if i < 0 {
		return []string{pat}
	}
	j := strings.IndexByte(pat[i:], '}')
	if j < 0 {
		return []string{pat}
	}
	without := pat[:i] + pat[i+j+1:]
	with := pat[:i] + pat[i+1:i+j] + pat[i+j+1:]
	return append(expandBraces(without), expandBraces(with)...)
}

// expandOptionalParams splits on segments that are a single optional or
// zero-or-more parameter (":month?", ":terms*"): one variant keeps the
// segment, the other drops it.
func expandOptionalParams(pat string) []string {
	return expandOptionalFrom(pat, 0)
}

// expandOptionalFrom scans segments from index start. The kept variant
// of a ":terms*" segment still contains the segment that triggered the
// split, so recursion must resume past it or it would re-split the
// same segment forever.
func expandOptionalFrom(pat string, start int) []string {
	segs := strings.Split(pat, "/")
	for i := start; i < len(segs); i++ {
		seg := segs[i]
		if len(seg) < 3 || seg[0] != ':' {
			continue
		}
		last := seg[len(seg)-1]
		if last != '?' && last != '*' {
			continue
		}
		if strings.ContainsAny(seg[1:len(seg)-1], "?*()") {
			continue
		}

		without := make([]string, 0, len(segs)-1)
		without = append(without, segs[:i]...)
		without = append(without, segs[i+1:]...)

		with := make([]string, len(segs))
		copy(with, segs)
		if last == '?' {
			with[i] = seg[:len(seg)-1]
		}

		out := expandOptionalFrom(strings.Join(without, "/"), i)
		return append(out, expandOptionalFrom(strings.Join(with, "/"), i+1)...)
	}
	return []string{pat}
}

func translate(pat string) chiPattern {
	segs := strings.Split(pat, "/")
	stars := 0
	wildcard := ""
	for i, seg := range segs {
		translated, key := translateSegment(seg, i == len(segs)-1, stars)
		if key != "" {
			wildcard = key
		}
		stars += strings.Count(seg, "*")
		segs[i] = translated
	}
	return chiPattern{pattern: strings.Join(segs, "/"), wildcard: wildcard}
}

// translateSegment returns the chi form of one segment and, when that
// form is the catch-all "*", the params-bag key its capture belongs
// under.
func translateSegment(seg string, last bool, stars int) (string, string) {
	if seg == "" {
		return seg, ""
	}

	if seg[0] == '*' {
		name := seg[1:]
		if stars > 10 {
			stars = 10
		}
		switch {
		case last && name != "":
			return "*", name
		case last:
			return "*", strconv.Itoa(stars)
		case name != "":
			return "{" + name + "}", ""
		default:
			return "{" + strconv.Itoa(stars) + "}", ""
		}
	}

	var b strings.Builder
	rest := seg
	for {
		i := strings.IndexByte(rest, ':')
		if i < 0 {
			b.WriteString(rest)
			break
		}
		b.WriteString(rest[:i])
		rest = rest[i+1:]

		end := strings.IndexAny(rest, "(-.?+*#:")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]

		switch {
		case strings.HasPrefix(rest, "("):
			if j := strings.IndexByte(rest, ')'); j >= 0 {
				if name != "" {
					b.WriteString("{" + name + ":" + rest[1:j] + "}")
				}
				rest = rest[j+1:]
			} else {
				if name != "" {
					b.WriteString("{" + name + "}")
				}
				rest = ""
			}
		case rest == "+" || rest == "*":
			if name != "" {
				if last && b.Len() == 0 {
					return "*", name
				}
				b.WriteString("{" + name + "}")
			}
			rest = ""
		case strings.HasPrefix(rest, "+"), strings.HasPrefix(rest, "*"), strings.HasPrefix(rest, "?"):
			if name != "" {
				b.WriteString("{" + name + "}")
			}
			rest = rest[1:]
		default:
			if name != "" {
				b.WriteString("{" + name + "}")
			}
		}
	}
	return b.String(), ""
}
