package emitter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/agenthands/tlang/pkg/compiler/ast"
	"github.com/agenthands/tlang/pkg/vm"
)

var ErrIO = errors.New("emitter: write failed")

// Emitter serializes an AST into VM bytecode. It implements ast.Compiler.
type Emitter struct {
	w   io.Writer
	buf [1 + vm.OperandSize]byte
}

func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// CompileBytes compiles e into a fresh END-terminated buffer.
func CompileBytes(e ast.Expr) ([]byte, error) {
	var out bytes.Buffer
	if err := ast.Compile(e, NewEmitter(&out)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (e *Emitter) Integer(v int64) error {
	e.buf[0] = vm.OP_LDI
	operand := vm.EncodeInt(v)
	copy(e.buf[1:], operand[:])
	return e.write(e.buf[:])
}

func (e *Emitter) Binary() error {
	return e.emitOp(vm.OP_PSH)
}

func (e *Emitter) Operator(op ast.Operator) error {
	switch op {
	case ast.OpAdd:
		return e.emitOp(vm.OP_ADD)
	case ast.OpSubtract:
		return e.emitOp(vm.OP_SUB)
	}
	return fmt.Errorf("emitter: unknown operator %d", op)
}

func (e *Emitter) End() error {
	return e.emitOp(vm.OP_END)
}

func (e *Emitter) emitOp(op uint8) error {
	e.buf[0] = op
	return e.write(e.buf[:1])
}

func (e *Emitter) write(p []byte) error {
	if _, err := e.w.Write(p); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
