package scan

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Category identifies a fixed, locale-independent Unicode class.
type Category int

const (
	Alpha        Category = iota // Unicode Alphabetic property
	Digit                        // numeric codepoints (Nd, Nl, No) in any script
	AlphaNumeric                 // Alpha or Digit
	Space                        // whitespace, excluding CR, LF and line/paragraph separators
	Multispace                   // any Unicode whitespace
)

var categoryNames = []string{
	"alpha",
	"digit",
	"alphanumeric",
	"space",
	"multispace",
}

// Categories lists every category in declaration order.
var Categories = []Category{Alpha, Digit, AlphaNumeric, Space, Multispace}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// ParseCategory returns the category with the given name, e.g. "alpha".
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Is reports whether r belongs to the category.
func (c Category) Is(r rune) bool {
	switch c {
	case Alpha:
		return IsAlpha(r)
	case Digit:
		return IsDigit(r)
	case AlphaNumeric:
		return IsAlphaNumeric(r)
	case Space:
		return IsSpace(r)
	case Multispace:
		return IsMultispace(r)
	}
	return false
}

// alphabetic is the derived Alphabetic property: letters, letter numbers
// and Other_Alphabetic marks.
var alphabetic = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_Alphabetic}

// IsAlpha reports whether r is alphabetic.
func IsAlpha(r rune) bool {
	if r < 0x80 {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}
	return unicode.IsOneOf(alphabetic, r)
}

// IsDigit reports whether r is numeric in any script.
func IsDigit(r rune) bool {
	if r < 0x80 {
		return '0' <= r && r <= '9'
	}
	return unicode.IsNumber(r)
}

func IsAlphaNumeric(r rune) bool {
	return IsAlpha(r) || IsDigit(r)
}

// IsMultispace reports whether r has the White_Space property,
// newlines included.
func IsMultispace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}

// IsSpace is IsMultispace without '\r', '\n', U+2028 and U+2029.
func IsSpace(r rune) bool {
	return !isNewline(r) && IsMultispace(r)
}

func isNewline(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}

// Codepoint is one decoded codepoint of an input and the categories it
// belongs to.
type Codepoint struct {
	Offset     int      `json:"offset" yaml:"offset"`
	Rune       string   `json:"rune" yaml:"rune"`
	Code       string   `json:"code" yaml:"code"`
	Size       int      `json:"size" yaml:"size"`
	Categories []string `json:"categories" yaml:"categories,flow"`
}

// Classify decodes input and lists the categories of every codepoint.
// Invalid UTF-8 bytes are reported one at a time as U+FFFD.
func Classify(input string) []Codepoint {
	cps := make([]Codepoint, 0, len(input))
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		cp := Codepoint{
			Offset:     i,
			Rune:       string(r),
			Code:       fmt.Sprintf("U+%04X", r),
			Size:       size,
			Categories: []string{},
		}
		for _, c := range Categories {
			if c.Is(r) {
				cp.Categories = append(cp.Categories, c.String())
			}
		}
		cps = append(cps, cp)
		i += size
	}
	return cps
}
