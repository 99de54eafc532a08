// Package interp evaluates an AST directly, without producing bytecode.
// It follows the same push-before-right-operand discipline as the VM, so
// the two must always agree.
package interp

import (
	"errors"

	"github.com/agenthands/tlang/pkg/compiler/ast"
	"github.com/agenthands/tlang/pkg/core/value"
)

var ErrUnbalanced = errors.New("interp: operator without saved left operand")

// Evaluator implements ast.Compiler by computing as it is driven.
type Evaluator struct {
	saved []value.Value
	acc   value.Value
	ended bool
}

func New() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates e with wrapping int64 arithmetic.
func Eval(e ast.Expr) (value.Value, error) {
	ev := New()
	if err := ast.Compile(e, ev); err != nil {
		return value.Void, err
	}
	return ev.Result(), nil
}

func (ev *Evaluator) Integer(v int64) error {
	ev.acc = value.Integer(v)
	return nil
}

func (ev *Evaluator) Binary() error {
	ev.saved = append(ev.saved, ev.acc)
	return nil
}

func (ev *Evaluator) Operator(op ast.Operator) error {
	n := len(ev.saved)
	if n == 0 {
		return ErrUnbalanced
	}
	l := ev.saved[n-1]
	ev.saved = ev.saved[:n-1]

	switch op {
	case ast.OpAdd:
		ev.acc = value.Integer(l.Int() + ev.acc.Int())
	case ast.OpSubtract:
		ev.acc = value.Integer(l.Int() - ev.acc.Int())
	}
	return nil
}

func (ev *Evaluator) End() error {
	ev.ended = true
	return nil
}

// Result is the value after End, or Void before it.
func (ev *Evaluator) Result() value.Value {
	if !ev.ended {
		return value.Void
	}
	return ev.acc
}
