package ast

import "github.com/agenthands/tlang/pkg/compiler/lexer"

// Operator is a binary arithmetic operator.
type Operator uint8

const (
	OpAdd Operator = iota
	OpSubtract
)

// Symbol returns the source character of the operator.
func (o Operator) Symbol() byte {
	if o == OpSubtract {
		return '-'
	}
	return '+'
}

func (o Operator) String() string {
	return string(o.Symbol())
}

// Node represents any node in the Abstract Syntax Tree.
type Node interface {
	Pos() lexer.Pos
}

// Expr represents an expression that yields a value.
type Expr interface {
	Node
	// Compile feeds the expression to c depth-first. It does not emit End;
	// use the package-level Compile for a terminated program.
	Compile(c Compiler) error
	exprNode()
}

// Integer: a literal operand.
type Integer struct {
	Value int64
	Span  lexer.Pos
}

func (i *Integer) Pos() lexer.Pos { return i.Span }
func (i *Integer) exprNode()      {}

func (i *Integer) Compile(c Compiler) error {
	return c.Integer(i.Value)
}

// Operand is one (operator, right-hand side) step of a Binary chain.
type Operand struct {
	Op   Operator
	Expr Expr
}

// Binary: First (Op Expr)*, evaluated left to right.
// Others is never empty.
type Binary struct {
	First  Expr
	Others []Operand
}

// NewBinary builds a chain. With no operands it returns first itself, so a
// lone value is never wrapped.
func NewBinary(first Expr, others []Operand) Expr {
	if len(others) == 0 {
		return first
	}
	return &Binary{First: first, Others: others}
}

func (b *Binary) Pos() lexer.Pos {
	return lexer.Merge(b.First.Pos(), b.Others[len(b.Others)-1].Expr.Pos())
}

func (b *Binary) exprNode() {}

func (b *Binary) Compile(c Compiler) error {
	if err := b.First.Compile(c); err != nil {
		return err
	}
	for _, o := range b.Others {
		if err := c.Binary(); err != nil {
			return err
		}
		if err := o.Expr.Compile(c); err != nil {
			return err
		}
		if err := c.Operator(o.Op); err != nil {
			return err
		}
	}
	return nil
}
