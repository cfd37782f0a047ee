package tsgen

import (
	"errors"
	"os"
	"strings"

	"github.com/tkrajina/typescriptify-golang-structs/typescriptify"
)

// structTypeLiteral converts a Go struct value to an inline TS object
// type. A nil value renders as undefined.
func structTypeLiteral(v any) (string, error) {
	if v == nil {
		return "undefined", nil
	}

	converter := newConverter()
	converter.Add(v)

	// quiet typescriptify logs
	oldStdout := os.Stdout
	null, _ := os.Open(os.DevNull)
	os.Stdout = null
	converted, err := converter.Convert(make(map[string]string))
	null.Close()
	os.Stdout = oldStdout

	if err != nil {
		return "", errors.New("failed to convert to ts: " + err.Error())
	}

	// The converter emits "export interface Name { ... }" blocks; the
	// last block is the type we asked for. Re-shape its body into an
	// inline object literal.
	idx := strings.LastIndex(converted, "export interface ")
	if idx < 0 {
		return "undefined", nil
	}
	block := converted[idx:]
	brace := strings.IndexByte(block, '{')
	if brace < 0 {
		return "undefined", nil
	}
	return "{" + strings.TrimRight(block[brace+1:], " \t\n"), nil
}

func newConverter() *typescriptify.TypeScriptify {
	converter := typescriptify.New()
	converter.CreateInterface = true
	return converter
}
