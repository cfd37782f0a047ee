package tsgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParamsTypeLiteral(t *testing.T) {
	tests := []struct {
		name     string
		def      RouteDef
		expected string
	}{
		{"required and optional", RouteDef{Pattern: "/users/:userId/books/:bookId?"},
			"{\n\tuserId: string;\n\tbookId?: string;\n}"},
		{"repeats", RouteDef{Pattern: "/files/:path+/search/:terms*"},
			"{\n\tpath: string[];\n\tterms?: string[];\n}"},
		{"wildcard keys quoted", RouteDef{Pattern: "/a/*/b/*"},
			"{\n\t\"0\": string;\n\t\"1\": string;\n}"},
		{"brace optional", RouteDef{Pattern: "/api{/:version}/users"},
			"{\n\tversion?: string;\n}"},
		{"no params", RouteDef{Pattern: "/health"},
			"Record<string, never>"},
		{"unknown pattern", RouteDef{Pattern: "/ignored", PatternUnknown: true},
			"Record<string, string>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParamsTypeLiteral(tt.def); got != tt.expected {
				t.Errorf("ParamsTypeLiteral(%q) = %q, want %q", tt.def.Pattern, got, tt.expected)
			}
		})
	}
}

func TestParamsTypeLiteralIsDeterministic(t *testing.T) {
	def := RouteDef{Pattern: "/assets{/:version}/:filename.:ext"}
	first := ParamsTypeLiteral(def)
	for i := 0; i < 20; i++ {
		if got := ParamsTypeLiteral(def); got != first {
			t.Fatalf("output changed between runs: %q then %q", first, got)
		}
	}
}

func TestConvertToPascalCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"list books", "ListBooks"},
		{"list-books", "ListBooks"},
		{"listBooks", "ListBooks"},
		{"2fa-setup", "_2faSetup"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := convertToPascalCase(tt.in); got != tt.expected {
			t.Errorf("convertToPascalCase(%q) = %q, want %q", tt.in, got, tt.expected)
		}
	}
}

type testInput struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

type testOutput struct {
	Results []string `json:"results"`
}

func TestGenerateTypeScript(t *testing.T) {
	dir := t.TempDir()
	err := GenerateTypeScript(Opts{
		OutDest: dir,
		RouteDefs: []RouteDef{
			{
				Name:    "search books",
				Method:  "GET",
				Pattern: "/books/:shelf/search/:terms*",
				Input:   testInput{},
				Output:  testOutput{},
			},
			{
				Name:    "health",
				Method:  "GET",
				Pattern: "/health",
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, outFileName))
	if err != nil {
		t.Fatal(err)
	}
	ts := string(raw)

	for _, want := range []string{
		"This file is auto-generated",
		"export type SearchBooksParams = {\n\tshelf: string;\n\tterms?: string[];\n};",
		"query: string;",
		"limit: number;",
		"results: string[];",
		"export type HealthParams = Record<string, never>;",
		"export type HealthInput = undefined;",
		"export type HealthOutput = undefined;",
		"export const ROUTE_DEFS = [SearchBooks, Health] as const;",
		`pattern: "/books/:shelf/search/:terms*",`,
		"export type RouteParams<T extends RouteName> = Extract<",
	} {
		if !strings.Contains(ts, want) {
			t.Errorf("generated file missing %q\n---\n%s", want, ts)
		}
	}
}
