// Package streaming provides the Unicode scanning primitives for input that
// arrives in chunks. A run that reaches the end of the buffer yields a
// *scan.Incomplete, since the next chunk may extend it; callers read more
// and retry, or switch to package complete once the source is exhausted.
//
// Each primitive consumes the longest leading run of its class and returns
// (rest, match, err). The "0" variants accept an empty run; the "1" variants
// fail with a *scan.Error when the run is empty.
package streaming

import "github.com/MattSimmons1/unicat/scan"

var (
	alpha0        = scan.Primitive(scan.Alpha, scan.Streaming, scan.ZeroOrMore)
	alpha1        = scan.Primitive(scan.Alpha, scan.Streaming, scan.OneOrMore)
	digit0        = scan.Primitive(scan.Digit, scan.Streaming, scan.ZeroOrMore)
	digit1        = scan.Primitive(scan.Digit, scan.Streaming, scan.OneOrMore)
	alphaNumeric0 = scan.Primitive(scan.AlphaNumeric, scan.Streaming, scan.ZeroOrMore)
	alphaNumeric1 = scan.Primitive(scan.AlphaNumeric, scan.Streaming, scan.OneOrMore)
	space0        = scan.Primitive(scan.Space, scan.Streaming, scan.ZeroOrMore)
	space1        = scan.Primitive(scan.Space, scan.Streaming, scan.OneOrMore)
	multispace0   = scan.Primitive(scan.Multispace, scan.Streaming, scan.ZeroOrMore)
	multispace1   = scan.Primitive(scan.Multispace, scan.Streaming, scan.OneOrMore)
)

// Alpha0 consumes alphabetic codepoints. "abc" gives *scan.Incomplete,
// "abc1" gives ("1", "abc").
func Alpha0(input string) (string, string, error) { return alpha0(input) }

// Alpha1 is Alpha0 but fails on an empty run that ends before the buffer does.
func Alpha1(input string) (string, string, error) { return alpha1(input) }

// Digit0 consumes numeric codepoints, in any script.
func Digit0(input string) (string, string, error) { return digit0(input) }

// Digit1 consumes at least one numeric codepoint.
func Digit1(input string) (string, string, error) { return digit1(input) }

// AlphaNumeric0 consumes alphabetic or numeric codepoints.
func AlphaNumeric0(input string) (string, string, error) { return alphaNumeric0(input) }

// AlphaNumeric1 consumes at least one alphabetic or numeric codepoint.
func AlphaNumeric1(input string) (string, string, error) { return alphaNumeric1(input) }

// Space0 consumes whitespace other than line breaks.
func Space0(input string) (string, string, error) { return space0(input) }

// Space1 consumes at least one whitespace codepoint other than a line break.
func Space1(input string) (string, string, error) { return space1(input) }

// Multispace0 consumes any whitespace, line breaks included.
func Multispace0(input string) (string, string, error) { return multispace0(input) }

// Multispace1 consumes at least one whitespace codepoint.
func Multispace1(input string) (string, string, error) { return multispace1(input) }
