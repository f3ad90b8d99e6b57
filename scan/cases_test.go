package scan

import (
	"strings"
	"testing"
)

func TestCases(t *testing.T) {
	cases, err := Cases()
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases")
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Check(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestParseCases(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string // substring of the error, "" for none
	}{
		{"valid", "- name: x\n  primitive: digit1\n  mode: complete\n  input: \"1\"\n  outcome: success\n  match: \"1\"\n", ""},
		{"unknown field", "- name: x\n  expect: success\n", "expect"},
		{"unknown outcome", "- name: x\n  outcome: maybe\n", "maybe"},
		{"not a list", "name: x\n", "parsing cases"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCases([]byte(tt.yaml))
			switch {
			case tt.err == "" && err != nil:
				t.Fatalf("unexpected error: %s", err)
			case tt.err != "" && err == nil:
				t.Fatalf("expected an error containing %q", tt.err)
			case tt.err != "" && !strings.Contains(err.Error(), tt.err):
				t.Fatalf("error %q does not mention %q", err, tt.err)
			}
		})
	}
}

func TestCheckReportsMismatch(t *testing.T) {
	tests := []struct {
		name string
		c    Case
		err  string
	}{
		{"wrong match", Case{Name: "a", Primitive: "alpha0", Mode: "complete", Input: "ab1", Outcome: Success, Match: "a", Rest: "b1"}, `gave ("1", "ab")`},
		{"wrong outcome", Case{Name: "b", Primitive: "alpha0", Mode: "streaming", Input: "ab", Outcome: Success}, "gave need-more-data"},
		{"bad mode", Case{Name: "c", Primitive: "alpha0", Mode: "lazy"}, "unknown mode"},
		{"bad primitive", Case{Name: "d", Primitive: "letter0", Mode: "complete"}, "unknown category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Check()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.err) {
				t.Errorf("error %q does not mention %q", err, tt.err)
			}
		})
	}
}
