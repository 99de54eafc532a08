package printer

import (
	"errors"
	"strconv"

	"github.com/agenthands/tlang/pkg/compiler/ast"
)

var errUnbalanced = errors.New("printer: unbalanced operator")

// Printer renders an expression as fully parenthesised infix text, e.g.
// `2+2-1` becomes `((2 + 2) - 1)`. It implements ast.Compiler.
type Printer struct {
	pending []string // left operands saved by Binary
	cur     string
	done    bool
}

func New() *Printer {
	return &Printer{}
}

// Print renders e.
func Print(e ast.Expr) (string, error) {
	p := New()
	if err := ast.Compile(e, p); err != nil {
		return "", err
	}
	return p.String(), nil
}

func (p *Printer) Integer(v int64) error {
	p.cur = strconv.FormatInt(v, 10)
	return nil
}

func (p *Printer) Binary() error {
	p.pending = append(p.pending, p.cur)
	return nil
}

func (p *Printer) Operator(op ast.Operator) error {
	n := len(p.pending)
	if n == 0 {
		return errUnbalanced
	}
	left := p.pending[n-1]
	p.pending = p.pending[:n-1]
	p.cur = "(" + left + " " + op.String() + " " + p.cur + ")"
	return nil
}

func (p *Printer) End() error {
	p.done = true
	return nil
}

// String returns the rendered text once End has been reached.
func (p *Printer) String() string {
	if !p.done {
		return ""
	}
	return p.cur
}
