package scan

import (
	"fmt"
	"io"
	"strings"
)

// https://en.wikipedia.org/wiki/ANSI_escape_code#3-bit_and_4-bit
var itemColours = map[ItemType]string{
	ItemError:   "91",
	ItemSpace:   "90",
	ItemNewline: "90",
	ItemNumber:  "96",
	ItemWord:    "92",
	ItemSymbol:  "95",
}

// Preview writes input to w with every item coloured by its class.
func Preview(w io.Writer, input string) {
	l := lexString(input)
	defer l.drain()
	for {
		item := l.nextItem()
		if item.Type == ItemEOF {
			return
		}
		fmt.Fprint(w, "\033[", itemColours[item.Type], "m", item.Val, "\033[0m")
		if item.Type == ItemError {
			return
		}
	}
}

// Debug writes one line per item of input: its class, position and text.
func Debug(w io.Writer, input string) {
	for _, item := range Items(strings.NewReader(input), 0) {
		switch item.Type {
		case ItemEOF:
			fmt.Fprintf(w, "\033[90m%d:%d EOF\033[0m\n", item.Line, item.Pos)
		case ItemSpace, ItemNewline:
			fmt.Fprintf(w, "\033[90m%d:%d %s %q\033[0m\n", item.Line, item.Pos, item.Type, item.Val)
		default:
			fmt.Fprintf(w, "%d:%d %s \033[%sm%s\033[0m\n", item.Line, item.Pos, item.Type, itemColours[item.Type], item.Val)
		}
	}
}

// Syntax returns all items of input and their classes as a JSON-able object.
func Syntax(input string) map[string]interface{} {
	output := make([]interface{}, 0)
	for _, item := range Items(strings.NewReader(input), 0) {
		switch item.Type {
		case ItemEOF:
			// do nothing
		case ItemError:
			output = append(output, map[string]interface{}{"class": "error", "value": item.Val, "pos": item.Pos})
		default:
			output = append(output, map[string]interface{}{"class": item.Type.String(), "value": item.Val, "pos": item.Pos, "line": item.Line})
		}
	}
	return map[string]interface{}{"items": output}
}
