// Package tsgen generates a TypeScript declaration file for a set of
// route definitions, so a type-checked client sees the exact parameter
// shapes inferred on the Go side. Params types come straight from
// pattern inference; input and output types are converted from the Go
// structs attached to each definition.
package tsgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/routeshape/routeshape/pkg/pattern"
)

type RouteDef struct {
	Name    string
	Method  string
	Pattern string

	// PatternUnknown marks a definition whose pattern is computed at
	// runtime (mounted routers, proxied prefixes). Its params type
	// degrades to an open Record<string, string>.
	PatternUnknown bool

	Input  any
	Output any
}

type Opts struct {
	OutDest   string
	RouteDefs []RouteDef
}

const outFileName = "api-routes.ts"

// GenerateTypeScript writes one declaration file containing, for each
// route def, its Params / Input / Output types and a const route table
// with lookup helper types. Output is deterministic for a given Opts.
func GenerateTypeScript(opts Opts) error {
	if err := os.MkdirAll(opts.OutDest, os.ModePerm); err != nil {
		return errors.New("failed to ensure out dest dir: " + err.Error())
	}

	ts := ""
	routeNames := make([]string, 0, len(opts.RouteDefs))

	for _, routeDef := range opts.RouteDefs {
		tsName := convertToPascalCase(routeDef.Name)
		routeNames = append(routeNames, tsName)

		ts += "export type " + tsName + "Params = " + ParamsTypeLiteral(routeDef) + ";\n"

		inputStr, err := structTypeLiteral(routeDef.Input)
		if err != nil {
			return errors.New("failed to convert input to ts: " + err.Error())
		}
		ts += "export type " + tsName + "Input = " + inputStr + ";\n"

		outputStr, err := structTypeLiteral(routeDef.Output)
		if err != nil {
			return errors.New("failed to convert output to ts: " + err.Error())
		}
		ts += "export type " + tsName + "Output = " + outputStr + ";\n"

		ts += "const " + tsName + " = " + toTsRouteDef(tsName, routeDef) + "\n"
	}

	ts += "\nexport const ROUTE_DEFS = [" + strings.Join(routeNames, ", ") + "] as const;\n"
	ts += extraCode
	ts = "/*\n * This file is auto-generated. Do not edit.\n */\n" + ts

	if err := os.WriteFile(filepath.Join(opts.OutDest, outFileName), []byte(ts), os.ModePerm); err != nil {
		return errors.New("failed to write ts file: " + err.Error())
	}
	return nil
}

// ParamsTypeLiteral renders the inferred parameter map of a route def
// as a TypeScript object type, keys in pattern order.
func ParamsTypeLiteral(def RouteDef) string {
	if def.PatternUnknown {
		return "Record<string, string>"
	}
	descriptors := pattern.Descriptors(def.Pattern)
	if len(descriptors) == 0 {
		return "Record<string, never>"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, p := range descriptors {
		b.WriteString("\t")
		b.WriteString(tsKey(p.Name))
		switch p.Type {
		case pattern.ValueTypes.Single:
			b.WriteString(": string;\n")
		case pattern.ValueTypes.OptionalSingle:
			b.WriteString("?: string;\n")
		case pattern.ValueTypes.Multi:
			b.WriteString(": string[];\n")
		case pattern.ValueTypes.OptionalMulti:
			b.WriteString("?: string[];\n")
		}
	}
	b.WriteString("}")
	return b.String()
}

// tsKey quotes keys that are not valid TS identifiers (the numeric
// wildcard keys, mainly).
func tsKey(name string) string {
	for i, r := range name {
		identChar := r == '_' || r == '$' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(i > 0 && r >= '0' && r <= '9')
		if !identChar {
			return `"` + name + `"`
		}
	}
	if name == "" {
		return `""`
	}
	return name
}

func toTsRouteDef(tsName string, routeDef RouteDef) string {
	return fmt.Sprintf(
		"{\n\tname: \"%s\",\n\tmethod: \"%s\",\n\tpattern: \"%s\",\n\tparams: \"\" as unknown as %sParams,\n\tinput: \"\" as unknown as %sInput,\n\toutput: \"\" as unknown as %sOutput,\n} as const;",
		tsName, routeDef.Method, routeDef.Pattern, tsName, tsName, tsName,
	)
}

var extraCode = `
export type Route = (typeof ROUTE_DEFS)[number];
export type RouteName = Route["name"];

export type Routes = {
	[K in RouteName]: Extract<Route, { name: K }>;
};

export const ROUTES = Object.fromEntries(
	ROUTE_DEFS.map((r) => [r.name, r]),
) as Routes;

export type RouteParams<T extends RouteName> = Extract<
	Route,
	{ name: T }
>["params"];

export type RouteInput<T extends RouteName> = Extract<
	Route,
	{ name: T }
>["input"];

export type RouteOutput<T extends RouteName> = Extract<
	Route,
	{ name: T }
>["output"];
`
