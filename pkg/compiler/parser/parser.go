package parser

import (
	"fmt"
	"io"

	"github.com/agenthands/tlang/pkg/compiler/ast"
	"github.com/agenthands/tlang/pkg/compiler/lexer"
)

// TokenStream is a forward-only token source: peek the current token or
// consume it. *lexer.Scanner implements it.
type TokenStream interface {
	Current() lexer.Token
	Next() lexer.Token
}

// Parser is a recursive-descent parser for
//
//	program := term End
//	term    := primary ( ('+' | '-') primary )*
//	primary := Integer
//
// The first error aborts parsing.
type Parser struct {
	stream TokenStream
}

func NewParser(s TokenStream) *Parser {
	return &Parser{stream: s}
}

// ParseBytes parses an in-memory source.
func ParseBytes(src []byte) (ast.Expr, error) {
	return NewParser(lexer.FromBytes(src)).Parse()
}

// ParseReader parses a program read from rd. A read failure is reported
// as ErrRead wrapping the cause, in place of whatever the truncated input
// parsed to.
func ParseReader(rd io.Reader) (ast.Expr, error) {
	sr := lexer.NewStreamReader(rd)
	expr, err := NewParser(lexer.NewScanner(sr)).Parse()
	if rerr := sr.Err(); rerr != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, rerr)
	}
	return expr, err
}

// Parse parses a whole program and requires the input to end after it.
func (p *Parser) Parse() (ast.Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	tok := p.stream.Next()
	if tok.Kind != lexer.KindEnd {
		return nil, newError(ErrTrailingInput, tok, "Expected end of code.")
	}
	return expr, nil
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	first, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	var others []ast.Operand
	for {
		op, ok := operatorOf(p.stream.Current())
		if !ok {
			break
		}
		p.stream.Next() // skip operator

		expr, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		others = append(others, ast.Operand{Op: op, Expr: expr})
	}

	return ast.NewBinary(first, others), nil
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.stream.Next()
	switch tok.Kind {
	case lexer.KindInteger:
		return &ast.Integer{Value: tok.Int, Span: tok.Pos}, nil
	case lexer.KindUnknown:
		return nil, newError(ErrUnknownCharacter, tok, fmt.Sprintf("Unknown character '%c'.", tok.Char))
	case lexer.KindEnd:
		return nil, newError(ErrUnexpectedEnd, tok, "Expected primary value but reached end of code.")
	default:
		return nil, newError(ErrUnexpectedToken, tok, "Unexpected token.")
	}
}

func operatorOf(tok lexer.Token) (ast.Operator, bool) {
	if tok.Kind != lexer.KindSymbol {
		return 0, false
	}
	switch tok.Char {
	case '+':
		return ast.OpAdd, true
	case '-':
		return ast.OpSubtract, true
	}
	return 0, false
}
