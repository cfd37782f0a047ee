package pattern

import "testing"

func TestClassifyParam(t *testing.T) {
	tests := []struct {
		name string
		in   string // text immediately after the ':' sigil
		p    Param
		n    int
	}{
		{"bare", "userId", Param{Name: "userId", Type: ValueTypes.Single}, 6},
		{"slash delimited", "userId/books", Param{Name: "userId", Type: ValueTypes.Single}, 6},
		{"hash delimited", "page#section", Param{Name: "page", Type: ValueTypes.Single}, 4},
		{"consecutive dash", "from-:to", Param{Name: "from", Type: ValueTypes.Single}, 4},
		{"consecutive dot", "genus.:species", Param{Name: "genus", Type: ValueTypes.Single}, 5},
		{"dash not consecutive", "from-to", Param{Name: "from", Type: ValueTypes.Single}, 4},
		{"constraint", `id(\d+)`, Param{Name: "id", Type: ValueTypes.Single}, 7},
		{"constraint with modifiers inside", `id(a+b*c?)`, Param{Name: "id", Type: ValueTypes.Single}, 10},
		{"constraint then more pattern", `id(\d+)/x`, Param{Name: "id", Type: ValueTypes.Single}, 7},
		{"unclosed constraint swallows rest", "id(oops", Param{Name: "id", Type: ValueTypes.Single}, 7},
		{"trailing optional", "month?", Param{Name: "month", Type: ValueTypes.OptionalSingle}, 6},
		{"optional before delimiter", "month?/day", Param{Name: "month", Type: ValueTypes.OptionalSingle}, 6},
		{"optional before dot", "v?.json", Param{Name: "v", Type: ValueTypes.OptionalSingle}, 2},
		{"one or more", "path+", Param{Name: "path", Type: ValueTypes.Multi}, 5},
		{"one or more then delimiter", "path+/x", Param{Name: "path", Type: ValueTypes.Multi}, 5},
		{"zero or more", "terms*", Param{Name: "terms", Type: ValueTypes.OptionalMulti}, 6},
		{"brace terminates name", "file{.:ext}", Param{Name: "file", Type: ValueTypes.Single}, 4},
		{"empty input", "", Param{Name: "", Type: ValueTypes.Single}, 0},
		{"empty name before delimiter", "/x", Param{Name: "", Type: ValueTypes.Single}, 0},
		{"question mark then junk", "a?x", Param{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, n := classifyParam(tt.in)
			if p != tt.p || n != tt.n {
				t.Errorf("classifyParam(%q) = (%v, %d), want (%v, %d)", tt.in, p, n, tt.p, tt.n)
			}
		})
	}
}

// The consecutive-parameter rule only works if the advancer leaves the
// separator in place for the next pass. Walk a three-way chain and make
// sure every link survives.
func TestClassifyParamChain(t *testing.T) {
	got := Infer("/d/:a-:b-:c")
	expected := ParamMap{
		"a": ValueTypes.Single,
		"b": ValueTypes.Single,
		"c": ValueTypes.Single,
	}
	if len(got.Params) != len(expected) {
		t.Fatalf("Infer(/d/:a-:b-:c) = %v, want %v", got.Params, expected)
	}
	for k, v := range expected {
		if got.Params[k] != v {
			t.Errorf("param %q = %v, want %v", k, got.Params[k], v)
		}
	}
}

// Rule order is a contract (most specific first, first match wins).
// Guard against accidental reordering.
func TestParamRuleOrder(t *testing.T) {
	expected := []string{
		"regex-constrained",
		"consecutive",
		"optional-delimited",
		"required-delimited",
		"repeating",
		"trailing-optional",
		"bare",
	}
	if len(paramRules) != len(expected) {
		t.Fatalf("have %d rules, want %d", len(paramRules), len(expected))
	}
	for i, rule := range paramRules {
		if rule.name != expected[i] {
			t.Errorf("rule %d = %q, want %q", i, rule.name, expected[i])
		}
	}
}
