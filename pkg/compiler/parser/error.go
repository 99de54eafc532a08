package parser

import (
	"errors"
	"fmt"

	"github.com/agenthands/tlang/pkg/compiler/lexer"
)

var (
	ErrUnknownCharacter = errors.New("parser: unknown character")
	ErrUnexpectedEnd    = errors.New("parser: unexpected end of code")
	ErrUnexpectedToken  = errors.New("parser: unexpected token")
	ErrTrailingInput    = errors.New("parser: expected end of code")
	ErrRead             = errors.New("parser: cannot read source")
)

// Error is a syntax error at a byte range of the source.
type Error struct {
	Kind error // one of the Err* sentinels
	Msg  string
	Pos  lexer.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %v", e.Msg, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, tok lexer.Token, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Pos: tok.Pos}
}
