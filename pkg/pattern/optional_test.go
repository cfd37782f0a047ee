package pattern

import (
	"reflect"
	"testing"
)

func TestClassifyOptionalSegment(t *testing.T) {
	tests := []struct {
		name     string
		inner    string // content between the braces
		expected []Param
	}{
		{"slash param", "/:version", []Param{
			{Name: "version", Type: ValueTypes.OptionalSingle},
		}},
		{"dot param", ".:ext", []Param{
			{Name: "ext", Type: ValueTypes.OptionalSingle},
		}},
		{"bare param with literal prefix", "rev-:sha", []Param{
			{Name: "sha", Type: ValueTypes.OptionalSingle},
		}},
		{"named wildcard", "*rest", []Param{
			{Name: "rest", Type: ValueTypes.OptionalMulti},
		}},
		{"slash named wildcard", "/*rest", []Param{
			{Name: "rest", Type: ValueTypes.OptionalMulti},
		}},
		{"question mark adds nothing extra", "/:version?", []Param{
			{Name: "version", Type: ValueTypes.OptionalSingle},
		}},
		{"repeat forced to optional slice", "/:ids+", []Param{
			{Name: "ids", Type: ValueTypes.OptionalMulti},
		}},
		{"two params", "/:major.:minor", []Param{
			{Name: "major", Type: ValueTypes.OptionalSingle},
			{Name: "minor", Type: ValueTypes.OptionalSingle},
		}},
		{"anonymous wildcard contributes nothing", "/*", nil},
		{"plain literal contributes nothing", "/v2", nil},
		{"empty contributes nothing", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyOptionalSegment(tt.inner)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("classifyOptionalSegment(%q) = %v, want %v", tt.inner, got, tt.expected)
			}
		})
	}
}
