// Package combinator is an alternate front end built from small parsing
// functions over an immutable cursor. Every parser returns one of three
// outcomes: matched (value plus remaining input), no match (the caller may
// try another alternative), or failed (abort everything).
package combinator

import "github.com/agenthands/tlang/pkg/compiler/lexer"

// Cursor is a position in an in-memory buffer. It is a value: advancing
// returns a new cursor, so abandoned alternatives leave nothing to undo.
type Cursor struct {
	src []byte
	off int
}

func NewCursor(src []byte) Cursor {
	return Cursor{src: src}
}

func (c Cursor) Offset() int { return c.off }
func (c Cursor) AtEnd() bool { return c.off >= len(c.src) }

// Next returns the byte under the cursor and the cursor after it.
func (c Cursor) Next() (byte, Cursor, bool) {
	if c.AtEnd() {
		return 0, c, false
	}
	return c.src[c.off], Cursor{src: c.src, off: c.off + 1}, true
}

type Status uint8

const (
	NoMatch Status = iota
	Matched
	Failed
)

// Result is the tagged outcome of a parser. Value, Rest and Pos are valid
// only when Status is Matched; Err only when Failed.
type Result[T any] struct {
	Status Status
	Value  T
	Rest   Cursor
	Pos    lexer.Pos
	Err    error
}

func Match[T any](v T, rest Cursor, pos lexer.Pos) Result[T] {
	return Result[T]{Status: Matched, Value: v, Rest: rest, Pos: pos}
}

func Miss[T any]() Result[T] {
	return Result[T]{Status: NoMatch}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{Status: Failed, Err: err}
}

// Parser consumes a prefix of the input at a cursor.
type Parser[T any] func(Cursor) Result[T]

// Pair is the value of a sequence.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Any matches a single byte.
func Any(c Cursor) Result[byte] {
	b, rest, ok := c.Next()
	if !ok {
		return Miss[byte]()
	}
	return Match(b, rest, lexer.Pos{Start: c.off, End: rest.off})
}

// Filter keeps p's match only if f accepts the value.
func Filter[T any](p Parser[T], f func(T) bool) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if r.Status == Matched && !f(r.Value) {
			return Miss[T]()
		}
		return r
	}
}

// Map transforms the value of a match.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		switch r.Status {
		case Matched:
			return Match(f(r.Value), r.Rest, r.Pos)
		case Failed:
			return Fail[U](r.Err)
		}
		return Miss[U]()
	}
}

// Fold applies p until it stops matching, accumulating values with f.
// Zero repetitions is a match with an empty range at the cursor.
func Fold[T, A any](p Parser[T], init func() A, f func(A, T) A) Parser[A] {
	return func(c Cursor) Result[A] {
		acc := init()
		pos := lexer.Pos{Start: c.off, End: c.off}
		first := true
		for {
			r := p(c)
			switch r.Status {
			case Failed:
				return Fail[A](r.Err)
			case NoMatch:
				return Match(acc, c, pos)
			}
			if first {
				pos.Start = r.Pos.Start
				first = false
			}
			pos.End = r.Pos.End
			acc = f(acc, r.Value)
			c = r.Rest
		}
	}
}

// And matches l then r.
func And[L, R any](l Parser[L], r Parser[R]) Parser[Pair[L, R]] {
	return func(c Cursor) Result[Pair[L, R]] {
		lr := l(c)
		switch lr.Status {
		case Failed:
			return Fail[Pair[L, R]](lr.Err)
		case NoMatch:
			return Miss[Pair[L, R]]()
		}
		rr := r(lr.Rest)
		switch rr.Status {
		case Failed:
			return Fail[Pair[L, R]](rr.Err)
		case NoMatch:
			return Miss[Pair[L, R]]()
		}
		return Match(Pair[L, R]{lr.Value, rr.Value}, rr.Rest, lexer.Merge(lr.Pos, rr.Pos))
	}
}

// Or tries l, and r from the same cursor only if l did not match.
// A failure in l is returned as is.
func Or[T any](l, r Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if lr := l(c); lr.Status != NoMatch {
			return lr
		}
		return r(c)
	}
}

// Cut turns a NoMatch of p into a failure built by onMiss.
func Cut[T any](p Parser[T], onMiss func(Cursor) error) Parser[T] {
	return func(c Cursor) Result[T] {
		r := p(c)
		if r.Status == NoMatch {
			return Fail[T](onMiss(c))
		}
		return r
	}
}
