package lexer

import (
	"bufio"
	"io"
)

// Reader is the byte source consumed by Lex.
type Reader interface {
	// Current returns the byte under the cursor without consuming it.
	Current() (byte, bool)
	// Next consumes the byte under the cursor and returns it.
	Next() (byte, bool)
	// Offset is the number of bytes consumed so far.
	Offset() int
}

// SliceReader reads from an in-memory buffer.
type SliceReader struct {
	src []byte
	off int
}

// NewSliceReader creates a reader over src.
func NewSliceReader(src []byte) *SliceReader {
	return &SliceReader{src: src}
}

// Reset re-initializes the reader with new source for reuse.
func (r *SliceReader) Reset(src []byte) {
	r.src = src
	r.off = 0
}

func (r *SliceReader) Current() (byte, bool) {
	if r.off >= len(r.src) {
		return 0, false
	}
	return r.src[r.off], true
}

func (r *SliceReader) Next() (byte, bool) {
	if r.off >= len(r.src) {
		return 0, false
	}
	c := r.src[r.off]
	r.off++
	return c, true
}

func (r *SliceReader) Offset() int {
	return r.off
}

// StreamReader adapts an io.Reader. A read error ends the input; Err
// reports it afterwards. Callers parsing from a StreamReader must check
// Err before trusting an end-of-input parse error, since a failed read
// looks like a short program to the parser. parser.ParseReader does this.
type StreamReader struct {
	br  *bufio.Reader
	cur byte
	has bool
	off int
	err error
}

// NewStreamReader wraps rd in a buffered reader and primes the first byte.
func NewStreamReader(rd io.Reader) *StreamReader {
	r := &StreamReader{br: bufio.NewReader(rd)}
	r.fill()
	return r
}

func (r *StreamReader) fill() {
	c, err := r.br.ReadByte()
	if err != nil {
		r.has = false
		if err != io.EOF {
			r.err = err
		}
		return
	}
	r.cur, r.has = c, true
}

func (r *StreamReader) Current() (byte, bool) {
	return r.cur, r.has
}

func (r *StreamReader) Next() (byte, bool) {
	if !r.has {
		return 0, false
	}
	c := r.cur
	r.off++
	r.fill()
	return c, true
}

func (r *StreamReader) Offset() int {
	return r.off
}

// Err returns the first non-EOF error hit by the underlying reader.
func (r *StreamReader) Err() error {
	return r.err
}
