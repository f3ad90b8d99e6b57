package scan

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"

	"gopkg.in/yaml.v2"
)

func TestOutcomeOf(t *testing.T) {
	tests := []struct {
		err  error
		want Outcome
	}{
		{nil, Success},
		{&Error{Input: "x", Expected: "alpha"}, NoMatch},
		{&Incomplete{Needed: 1}, NeedMoreData},
		{fmt.Errorf("reading: %w", &Incomplete{Needed: 1}), NeedMoreData},
		{fmt.Errorf("word: %w", &Error{}), NoMatch},
		{io.ErrUnexpectedEOF, Failed},
	}
	for _, tt := range tests {
		if got := OutcomeOf(tt.err); got != tt.want {
			t.Errorf("OutcomeOf(%v) = %s, want %s", tt.err, got, tt.want)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&Error{Input: "123", Expected: "alpha"}, `expected alpha at "123"`},
		{&Error{Input: "0123456789abc", Expected: "alpha"}, `expected alpha at "0123456789"...`},
		{&Incomplete{Needed: 1}, "need 1 more byte(s)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	if errors.Is(&Error{}, ErrIncomplete) || errors.Is(&Incomplete{}, ErrNoMatch) {
		t.Error("error kinds must not match each other's sentinel")
	}
}

func TestApply(t *testing.T) {
	got := Apply(Primitive(Alpha, Complete, OneOrMore), "123")
	want := Result{Outcome: NoMatch, Rest: "123", Error: `expected alpha at "123"`}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = Apply(Primitive(Alpha, Complete, OneOrMore), "hello123")
	want = Result{Outcome: Success, Match: "hello", Rest: "123"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestResultEncoding(t *testing.T) {
	res := Apply(Primitive(Alpha, Streaming, ZeroOrMore), "hello")

	j, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"outcome":"need-more-data","match":"","rest":"hello","error":"need 1 more byte(s)"}`; string(j) != want {
		t.Errorf("json: got %s, want %s", j, want)
	}

	y, err := Encode(res)
	if err != nil {
		t.Fatal(err)
	}
	var back Result
	if err := yaml.Unmarshal([]byte(y), &back); err != nil {
		t.Fatalf("decoding %q: %s", y, err)
	}
	if back != res {
		t.Errorf("yaml: got %+v, want %+v", back, res)
	}

	var o Outcome
	if err := yaml.Unmarshal([]byte("maybe"), &o); err == nil {
		t.Error("unknown outcome should not decode")
	}
	if err := json.Unmarshal([]byte(`"no-match"`), &o); err != nil || o != NoMatch {
		t.Errorf("json outcome: got %s, %v", o, err)
	}
}
