package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is matched by every *Error.
	ErrNoMatch = errors.New("no match")
	// ErrIncomplete is matched by every *Incomplete.
	ErrIncomplete = errors.New("need more data")
)

// Error is returned by a one-or-more primitive that found no matching
// codepoint at the start of its input. It is recoverable: alternation can
// try another parser on the same input.
type Error struct {
	Input    string // the input the primitive was given
	Expected string // class name, e.g. "alpha"
}

func (e *Error) Error() string {
	if len(e.Input) > 10 {
		return fmt.Sprintf("expected %s at %.10q...", e.Expected, e.Input)
	}
	return fmt.Sprintf("expected %s at %q", e.Expected, e.Input)
}

func (e *Error) Is(target error) bool {
	return target == ErrNoMatch
}

// Incomplete is returned by a streaming primitive whose run reached the
// end of the buffer. Retry with at least Needed more bytes.
type Incomplete struct {
	Needed int
}

func (e *Incomplete) Error() string {
	return fmt.Sprintf("need %d more byte(s)", e.Needed)
}

func (e *Incomplete) Is(target error) bool {
	return target == ErrIncomplete
}

// Outcome is the terminal state of a single primitive call.
type Outcome int

const (
	Success Outcome = iota
	NoMatch
	NeedMoreData
	Failed // any error that is neither a no-match nor incomplete
)

var outcomeNames = []string{
	"success",
	"no-match",
	"need-more-data",
	"failed",
}

func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// ParseOutcome is the inverse of Outcome.String.
func ParseOutcome(name string) (Outcome, error) {
	for i, n := range outcomeNames {
		if n == name {
			return Outcome(i), nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q", name)
}

// OutcomeOf classifies the error returned by a Parser.
func OutcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrIncomplete):
		return NeedMoreData
	case errors.Is(err, ErrNoMatch):
		return NoMatch
	}
	return Failed
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(text []byte) error {
	v, err := ParseOutcome(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Outcome) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Outcome) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return o.UnmarshalText([]byte(name))
}

// Result is a Parser call flattened into a value, for printing.
type Result struct {
	Outcome Outcome `json:"outcome" yaml:"outcome"`
	Match   string  `json:"match" yaml:"match"`
	Rest    string  `json:"rest" yaml:"rest"`
	Error   string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Apply runs p on input and records what happened.
func Apply(p Parser, input string) Result {
	rest, match, err := p(input)
	res := Result{Outcome: OutcomeOf(err), Match: match, Rest: rest}
	if err != nil {
		res.Rest = input
		res.Error = err.Error()
	}
	return res
}
