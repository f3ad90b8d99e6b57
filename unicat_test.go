//go:build !js || !wasm
// +build !js !wasm

package main

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"
)

func TestUnitTest(t *testing.T) {
	var buf bytes.Buffer
	if err := UnitTest(&buf); err != nil {
		t.Fatalf("%s\n%s", err, buf.String())
	}
	if strings.Contains(buf.String(), "FAIL") {
		t.Errorf("output reports a failure:\n%s", buf.String())
	}
}

func TestTokens(t *testing.T) {
	var buf bytes.Buffer
	if err := Tokens(&buf, strings.NewReader("ab 1"), 1, "json"); err != nil {
		t.Fatal(err)
	}
	want := `{"class":"word","line":1,"pos":0,"value":"ab"}
{"class":"space","line":1,"pos":2,"value":" "}
{"class":"number","line":1,"pos":3,"value":"1"}
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestTokensYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Tokens(&buf, strings.NewReader("x"), 0, "yaml"); err != nil {
		t.Fatal(err)
	}
	want := "---\nclass: word\nline: 1\npos: 0\nvalue: x\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWrite(t *testing.T) {
	if err := write(ioutil.Discard, "xml", 1); err == nil {
		t.Error("unknown format should fail")
	}
	var buf bytes.Buffer
	if err := write(&buf, "json", map[string]int{"a": 1}); err != nil || buf.String() != "{\"a\":1}\n" {
		t.Errorf("got %q, %v", buf.String(), err)
	}
}

func TestUnescape(t *testing.T) {
	if got := unescape(`a\nb\tc\r`); got != "a\nb\tc\r" {
		t.Errorf("got %q", got)
	}
}
