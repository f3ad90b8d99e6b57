package scan

import (
	"fmt"
	"strings"
)

var verbose = false

// SetVerbose turns on tracing of the lexer and reader to stdout.
// Call it before scanning starts.
func SetVerbose() {
	verbose = true
}

func log(message string) {
	if verbose {
		if message == "lexText" {
			fmt.Print("\n", "\033[92m", message, "\033[0m")
		} else if strings.HasPrefix(message, "lex") {
			fmt.Print("/", "\033[92m", message, "\033[0m")
		} else {
			fmt.Print("/", message)
		}
	}
}
