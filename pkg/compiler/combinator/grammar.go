package combinator

import (
	"fmt"

	"github.com/agenthands/tlang/pkg/compiler/ast"
	"github.com/agenthands/tlang/pkg/compiler/lexer"
	"github.com/agenthands/tlang/pkg/compiler/parser"
)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// Digit matches one decimal digit and yields its value.
func Digit() Parser[int64] {
	return Map(Filter[byte](Any, isDigit), func(b byte) int64 { return int64(b - '0') })
}

// Sym matches exactly the byte ch.
func Sym(ch byte) Parser[byte] {
	return Filter[byte](Any, func(b byte) bool { return b == ch })
}

func integer() Parser[ast.Expr] {
	digit := Digit()
	return func(c Cursor) Result[ast.Expr] {
		r := digit(c)
		switch r.Status {
		case Failed:
			return Fail[ast.Expr](r.Err)
		case NoMatch:
			return Miss[ast.Expr]()
		}
		return Match[ast.Expr](&ast.Integer{Value: r.Value, Span: r.Pos}, r.Rest, r.Pos)
	}
}

func operator() Parser[ast.Operator] {
	return Map(Or(Sym('+'), Sym('-')), func(b byte) ast.Operator {
		if b == '-' {
			return ast.OpSubtract
		}
		return ast.OpAdd
	})
}

func missing(c Cursor) error {
	pos := lexer.Pos{Start: c.Offset(), End: c.Offset() + 1}
	b, _, ok := c.Next()
	if !ok {
		return &parser.Error{Kind: parser.ErrUnexpectedEnd, Msg: "Expected primary value but reached end of code.", Pos: pos}
	}
	return &parser.Error{Kind: parser.ErrUnexpectedToken, Msg: fmt.Sprintf("Unexpected character '%c'.", b), Pos: pos}
}

// Binary is digit (('+' | '-') digit)*. An operator must be followed by
// a digit; anything else is a failure rather than a shorter match.
func Binary() Parser[ast.Expr] {
	other := And(operator(), Cut(integer(), missing))
	others := Fold(other,
		func() []ast.Operand { return nil },
		func(acc []ast.Operand, p Pair[ast.Operator, ast.Expr]) []ast.Operand {
			return append(acc, ast.Operand{Op: p.Left, Expr: p.Right})
		})
	return Map(And(integer(), others), func(p Pair[ast.Expr, []ast.Operand]) ast.Expr {
		return ast.NewBinary(p.Left, p.Right)
	})
}

// Parse runs Binary over the whole of src. Unlike the token parser it
// does not skip whitespace.
func Parse(src []byte) (ast.Expr, error) {
	c := NewCursor(src)
	r := Cut(Binary(), missing)(c)
	if r.Status == Failed {
		return nil, r.Err
	}
	if !r.Rest.AtEnd() {
		off := r.Rest.Offset()
		return nil, &parser.Error{Kind: parser.ErrTrailingInput, Msg: "Expected end of code.", Pos: lexer.Pos{Start: off, End: off + 1}}
	}
	return r.Value, nil
}
