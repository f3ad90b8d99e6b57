//go:build js && wasm
// +build js,wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/MattSimmons1/unicat/scan"
)

func main() {
	fmt.Println("Hello wasm")
	js.Global().Get("wasm").Set("scan", js.FuncOf(WASMScan))
	js.Global().Get("wasm").Set("syntax", js.FuncOf(WASMSyntax))

	select {} // don't exit
}

// WASMScan is called from JavaScript as scan(primitive, mode, input),
// e.g. scan("alpha1", "streaming", "abc ").
func WASMScan(this js.Value, p []js.Value) interface{} {
	if len(p) < 3 {
		return js.ValueOf(map[string]interface{}{"outcome": "failed", "error": "expected (primitive, mode, input)"})
	}
	mode, err := scan.ParseMode(p[1].String())
	if err != nil {
		return js.ValueOf(map[string]interface{}{"outcome": "failed", "error": err.Error()})
	}
	parser, err := scan.Lookup(p[0].String(), mode)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"outcome": "failed", "error": err.Error()})
	}
	res := scan.Apply(parser, p[2].String())
	return js.ValueOf(map[string]interface{}{
		"outcome": res.Outcome.String(),
		"match":   res.Match,
		"rest":    res.Rest,
		"error":   res.Error,
	})
}

func WASMSyntax(this js.Value, p []js.Value) interface{} {
	if len(p) < 1 {
		return js.ValueOf(map[string]interface{}{"items": []interface{}{}})
	}
	return js.ValueOf(scan.Syntax(p[0].String()))
}
