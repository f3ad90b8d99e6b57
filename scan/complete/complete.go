// Package complete provides the Unicode scanning primitives for input held
// entirely in memory: the end of the buffer is the end of input.
//
// Each primitive consumes the longest leading run of its class and returns
// (rest, match, err). The "0" variants accept an empty run; the "1" variants
// fail with a *scan.Error when the run is empty.
package complete

import "github.com/MattSimmons1/unicat/scan"

var (
	alpha0        = scan.Primitive(scan.Alpha, scan.Complete, scan.ZeroOrMore)
	alpha1        = scan.Primitive(scan.Alpha, scan.Complete, scan.OneOrMore)
	digit0        = scan.Primitive(scan.Digit, scan.Complete, scan.ZeroOrMore)
	digit1        = scan.Primitive(scan.Digit, scan.Complete, scan.OneOrMore)
	alphaNumeric0 = scan.Primitive(scan.AlphaNumeric, scan.Complete, scan.ZeroOrMore)
	alphaNumeric1 = scan.Primitive(scan.AlphaNumeric, scan.Complete, scan.OneOrMore)
	space0        = scan.Primitive(scan.Space, scan.Complete, scan.ZeroOrMore)
	space1        = scan.Primitive(scan.Space, scan.Complete, scan.OneOrMore)
	multispace0   = scan.Primitive(scan.Multispace, scan.Complete, scan.ZeroOrMore)
	multispace1   = scan.Primitive(scan.Multispace, scan.Complete, scan.OneOrMore)
)

// Alpha0 consumes alphabetic codepoints, in any script.
//
//	Alpha0("erfüllen!") // "!", "erfüllen", nil
func Alpha0(input string) (string, string, error) { return alpha0(input) }

// Alpha1 consumes at least one alphabetic codepoint.
func Alpha1(input string) (string, string, error) { return alpha1(input) }

// Digit0 consumes numeric codepoints, in any script.
func Digit0(input string) (string, string, error) { return digit0(input) }

// Digit1 consumes at least one numeric codepoint.
func Digit1(input string) (string, string, error) { return digit1(input) }

// AlphaNumeric0 consumes alphabetic or numeric codepoints.
func AlphaNumeric0(input string) (string, string, error) { return alphaNumeric0(input) }

// AlphaNumeric1 consumes at least one alphabetic or numeric codepoint.
func AlphaNumeric1(input string) (string, string, error) { return alphaNumeric1(input) }

// Space0 consumes whitespace, stopping at CR, LF and U+2028/U+2029.
func Space0(input string) (string, string, error) { return space0(input) }

// Space1 consumes at least one whitespace codepoint other than a line break.
func Space1(input string) (string, string, error) { return space1(input) }

// Multispace0 consumes whitespace, line breaks included.
func Multispace0(input string) (string, string, error) { return multispace0(input) }

// Multispace1 consumes at least one whitespace codepoint.
func Multispace1(input string) (string, string, error) { return multispace1(input) }
