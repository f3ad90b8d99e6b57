// unicat lexer
// Structured like https://github.com/golang/go/tree/master/src/text/template/parse
// but every run is decided by the scanning primitives, through a Reader.

package scan

import (
	"io"
	"strings"
)

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner.
type lexer struct {
	name  string    // the name of the input; used only for error reports
	rd    *Reader   // the input being scanned
	items chan Item // channel of scanned items
}

// emit passes an item back to the client.
func (l *lexer) emit(i Item) {
	l.items <- i
}

// nextItem returns the next item from the input.
// Called by the consumer, not in the lexing goroutine.
func (l *lexer) nextItem() Item {
	return <-l.items
}

// drain drains the output so the lexing goroutine will exit.
// Called by the consumer, not in the lexing goroutine.
func (l *lexer) drain() {
	for range l.items {
	}
}

// lex creates a new scanner for r.
func lex(name string, r io.Reader, chunkSize int) *lexer {
	l := &lexer{
		name:  name,
		rd:    NewReader(r, chunkSize),
		items: make(chan Item),
	}
	go l.run()
	return l
}

// lexString creates a new scanner for an in-memory input.
func lexString(input string) *lexer {
	return lex("input", strings.NewReader(input), len(input))
}

// run runs the state machine for the lexer.
func (l *lexer) run() {
	for state := lexText; state != nil; {
		state = state(l)
	}
	close(l.items)
}

// state functions

// lexText scans the next item of any class.
func lexText(l *lexer) stateFn {
	log("lexText")
	i, err := l.rd.Next()
	switch {
	case err == io.EOF:
		l.emit(i)
		return nil
	case err != nil:
		return l.errorf(i)
	}
	log(i.Type.String())
	l.emit(i)
	return lexText
}

// errorf emits an error item and terminates the scan by passing back a nil
// pointer that will be the next state.
func (l *lexer) errorf(i Item) stateFn {
	log("lexError: " + l.name + ": " + i.Val)
	l.emit(i)
	return nil
}

// Items scans all of r and returns its items, ending with an ItemEOF or
// ItemError item.
func Items(r io.Reader, chunkSize int) []Item {
	l := lex("input", r, chunkSize)
	var items []Item
	for i := range l.items {
		items = append(items, i)
	}
	return items
}
