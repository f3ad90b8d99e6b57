package scan

import (
	"errors"
	"io"
	"unicode/utf8"
)

// DefaultChunkSize is the number of bytes a Reader asks for per read.
const DefaultChunkSize = 4096

// maxEmptyReads is how many (0, nil) reads fill tolerates in a row.
const maxEmptyReads = 100

// ItemType identifies the class of a scanned item.
type ItemType int

const (
	ItemError   ItemType = iota // read error; Val is the error text
	ItemEOF                     // end of input
	ItemSpace                   // run of non-newline whitespace
	ItemNewline                 // line break plus any whitespace after it
	ItemNumber                  // run of numeric codepoints
	ItemWord                    // alphabetic codepoint followed by alphanumerics
	ItemSymbol                  // any other single codepoint
)

var itemNames = []string{
	"error",
	"EOF",
	"space",
	"newline",
	"number",
	"word",
	"symbol",
}

func (t ItemType) String() string {
	if t < 0 || int(t) >= len(itemNames) {
		return "item"
	}
	return itemNames[t]
}

// Item is a run of input of a single class. Lines break at LF, CR, CRLF,
// U+2028 and U+2029, the codepoints Space leaves out.
type Item struct {
	Type ItemType
	Pos  int    // byte offset of the item in the whole input
	Val  string // the text of the item
	Line int    // line number at the start of the item, from 1
}

// itemClasses are tried in order by Reader.Next. Space comes before
// Multispace so a Multispace match always starts with a line break.
var itemClasses = []struct {
	typ   ItemType
	class Category
}{
	{ItemSpace, Space},
	{ItemNewline, Multispace},
	{ItemNumber, Digit},
	{ItemWord, AlphaNumeric},
}

// Reader applies the scanning primitives to input that arrives in chunks.
// While the source has more to give, a streaming primitive decides each
// run; an undecided run makes the Reader read another chunk and retry. Once
// the source reports io.EOF the complete primitive settles what is left.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	r     io.Reader
	chunk []byte
	buf   []byte // unconsumed input
	eof   bool   // r has reported io.EOF
	pos   int    // bytes consumed so far
	cr    bool   // last consumed byte was '\r'
	line  int
}

// NewReader returns a Reader that reads chunkSize bytes at a time.
// A chunkSize below one uses DefaultChunkSize.
func NewReader(r io.Reader, chunkSize int) *Reader {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Reader{r: r, chunk: make([]byte, chunkSize), line: 1}
}

// fill appends one chunk to the buffer. A source that keeps returning
// no data and no error fails with io.ErrNoProgress.
func (rd *Reader) fill() error {
	for i := 0; !rd.eof; i++ {
		if i == maxEmptyReads {
			return io.ErrNoProgress
		}
		n, err := rd.r.Read(rd.chunk)
		rd.buf = append(rd.buf, rd.chunk[:n]...)
		if err == io.EOF {
			log("EOF")
			rd.eof = true
			return nil
		}
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
	}
	return nil
}

// advance drops n consumed bytes from the front of the buffer.
func (rd *Reader) advance(n int) string {
	s := string(rd.buf[:n])
	rd.buf = rd.buf[n:]
	rd.pos += n
	rd.countLines(s)
	return s
}

func (rd *Reader) countLines(s string) {
	for i, r := range s {
		switch r {
		case '\n':
			if i == 0 && rd.cr || i > 0 && s[i-1] == '\r' {
				continue
			}
			rd.line++
		case '\r', '\u2028', '\u2029':
			rd.line++
		}
	}
	if s != "" {
		rd.cr = s[len(s)-1] == '\r'
	}
}

// TakeWhile consumes the run of codepoints satisfying pred and returns it.
// With OneOrMore it returns an *Error when the run is empty; the input is
// left untouched in that case.
//
// While the source has more to give the run is scanned in streaming mode;
// each retry resumes where the previous attempt stopped, so only the newly
// read bytes are scanned.
func (rd *Reader) TakeWhile(name string, pred func(rune) bool, card Cardinality) (string, error) {
	from := 0
	for {
		mode := Streaming
		if rd.eof {
			mode = Complete
		}
		end, exhausted := run(string(rd.buf[from:]), pred)
		end += from
		if err := mode.settle(exhausted); err != nil {
			log("need more data for " + name)
			from = end
			if err := rd.fill(); err != nil {
				return "", err
			}
			continue
		}
		if card == OneOrMore && end == 0 {
			return "", &Error{Input: string(rd.buf), Expected: name}
		}
		return rd.advance(end), nil
	}
}

// Take consumes the run of category c.
func (rd *Reader) Take(c Category, card Cardinality) (string, error) {
	return rd.TakeWhile(c.String(), c.Is, card)
}

// ReadRune consumes one codepoint. Invalid UTF-8 is consumed a byte at a
// time and reported as utf8.RuneError. It returns io.EOF at the end.
func (rd *Reader) ReadRune() (r rune, size int, err error) {
	s, err := rd.readRune()
	if err != nil {
		return 0, 0, err
	}
	r, size = utf8.DecodeRuneInString(s)
	return r, size, nil
}

// readRune is ReadRune returning the raw bytes consumed.
func (rd *Reader) readRune() (string, error) {
	for !rd.eof && !utf8.FullRune(rd.buf) {
		if err := rd.fill(); err != nil {
			return "", err
		}
	}
	if len(rd.buf) == 0 {
		return "", io.EOF
	}
	_, size := utf8.DecodeRune(rd.buf)
	return rd.advance(size), nil
}

// Next returns the next item of input, or an item of type ItemEOF and
// io.EOF once the input is exhausted.
func (rd *Reader) Next() (Item, error) {
	pos, line := rd.pos, rd.line
	for _, c := range itemClasses {
		match, err := rd.Take(c.class, OneOrMore)
		if errors.Is(err, ErrNoMatch) {
			continue
		}
		if err != nil {
			return Item{ItemError, pos, err.Error(), line}, err
		}
		return Item{c.typ, pos, match, line}, nil
	}
	s, err := rd.readRune()
	if err == io.EOF {
		return Item{ItemEOF, pos, "", line}, io.EOF
	}
	if err != nil {
		return Item{ItemError, pos, err.Error(), line}, err
	}
	return Item{ItemSymbol, pos, s, line}, nil
}

// Offset returns the number of bytes consumed so far.
func (rd *Reader) Offset() int {
	return rd.pos
}
