// Package scan provides Unicode-aware character-class scanning primitives
// for parser combinators.
//
// A primitive consumes the longest leading run of one Unicode category
// (alphabetic, numeric, alphanumeric, whitespace) and returns the remainder
// and the consumed prefix, both slices of the input. Primitives come in two
// modes. Complete treats the end of the input as final; Streaming reports
// *Incomplete when the run reaches the end of the buffer, because the next
// chunk might extend it. The "1" primitives reject an empty run with an
// *Error, the "0" primitives accept it.
//
// The named primitives live in packages complete and streaming. Reader
// drives the streaming primitives over an io.Reader.
package scan

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parser consumes a prefix of input. On success it returns the unconsumed
// remainder and the consumed prefix, both slices of input. On failure rest
// and match are empty and err is an *Error or *Incomplete.
type Parser func(input string) (rest, match string, err error)

// Mode says whether the end of the buffer is the end of input.
type Mode int

const (
	// Complete treats the end of the buffer as the end of input.
	Complete Mode = iota
	// Streaming treats the end of the buffer as possibly artificial: a run
	// that reaches it is undecided and reported as *Incomplete.
	Streaming
)

var modeNames = []string{"complete", "streaming"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode with the given name.
func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// Cardinality says whether an empty run is a match.
type Cardinality int

const (
	ZeroOrMore Cardinality = iota
	OneOrMore
)

func (c Cardinality) String() string {
	if c == OneOrMore {
		return "1"
	}
	return "0"
}

// run walks whole codepoints of input while pred holds. It returns the byte
// offset of the first codepoint that failed pred, or len(input), and
// whether the walk stopped because the buffer ran out. A trailing partial
// UTF-8 sequence counts as running out: more bytes may complete it.
func run(input string, pred func(rune) bool) (end int, exhausted bool) {
	for end < len(input) {
		r, width := rune(input[end]), 1
		if r >= utf8.RuneSelf {
			if !utf8.FullRuneInString(input[end:]) {
				return end, true
			}
			r, width = utf8.DecodeRuneInString(input[end:])
		}
		if !pred(r) {
			return end, false
		}
		end += width
	}
	return end, true
}

// settle applies the mode policy to the run found by run.
func (m Mode) settle(exhausted bool) error {
	if m == Streaming && exhausted {
		return &Incomplete{Needed: 1}
	}
	return nil
}

// TakeWhile builds a Parser that consumes the longest leading run of
// codepoints satisfying pred. name is reported in *Error.
func TakeWhile(name string, pred func(rune) bool, mode Mode, card Cardinality) Parser {
	return func(input string) (string, string, error) {
		end, exhausted := run(input, pred)
		if err := mode.settle(exhausted); err != nil {
			return "", "", err
		}
		if card == OneOrMore && end == 0 {
			return "", "", &Error{Input: input, Expected: name}
		}
		return input[end:], input[:end], nil
	}
}

// Primitive returns the scanning primitive for one category, mode and
// cardinality.
func Primitive(c Category, mode Mode, card Cardinality) Parser {
	return TakeWhile(c.String(), c.Is, mode, card)
}

// Lookup resolves a primitive name such as "alpha0" or "multispace1".
func Lookup(name string, mode Mode) (Parser, error) {
	c, card, err := ParsePrimitive(name)
	if err != nil {
		return nil, err
	}
	return Primitive(c, mode, card), nil
}

// ParsePrimitive splits a primitive name into its category and cardinality.
func ParsePrimitive(name string) (Category, Cardinality, error) {
	var card Cardinality
	switch {
	case strings.HasSuffix(name, "0"):
		card = ZeroOrMore
	case strings.HasSuffix(name, "1"):
		card = OneOrMore
	default:
		return 0, 0, fmt.Errorf("primitive %q must end in 0 or 1", name)
	}
	c, err := ParseCategory(name[:len(name)-1])
	if err != nil {
		return 0, 0, fmt.Errorf("primitive %q: %w", name, err)
	}
	return c, card, nil
}
