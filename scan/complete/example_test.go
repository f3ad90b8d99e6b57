package complete_test

import (
	"fmt"

	"github.com/MattSimmons1/unicat/scan/complete"
)

func ExampleAlpha1() {
	rest, match, err := complete.Alpha1("erfüllen 42")
	fmt.Printf("%q %q %v\n", match, rest, err)

	_, _, err = complete.Alpha1("42")
	fmt.Println(err)
	// Output:
	// "erfüllen" " 42" <nil>
	// expected alpha at "42"
}

// Primitives compose by hand: a word, the space after it, then a number.
func ExampleMultispace0() {
	input := "Größe \n 42"
	rest, word, _ := complete.Alpha1(input)
	rest, _, _ = complete.Multispace0(rest)
	rest, number, _ := complete.Digit1(rest)
	fmt.Printf("%q %q %q\n", word, number, rest)
	// Output: "Größe" "42" ""
}
