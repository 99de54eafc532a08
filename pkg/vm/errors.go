package vm

import (
	"errors"
	"fmt"

	"github.com/agenthands/tlang/pkg/core/value"
)

var (
	ErrIO                 = errors.New("vm: io error")
	ErrStackOverflow      = errors.New("vm: stack overflow")
	ErrStackUnderflow     = errors.New("vm: stack underflow")
	ErrUnknownInstruction = errors.New("vm: unknown instruction")
	ErrBinary             = errors.New("vm: invalid binary operands")
)

// UnknownInstructionError reports an opcode byte the VM does not know.
type UnknownInstructionError struct {
	Opcode uint8
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("vm: Unknown instruction 0x%02X", e.Opcode)
}

func (e *UnknownInstructionError) Is(target error) bool {
	return target == ErrUnknownInstruction
}

// BinaryError reports an arithmetic instruction applied to a non-integer.
type BinaryError struct {
	Op          byte // '+' or '-'
	Left, Right value.Value
}

func (e *BinaryError) Error() string {
	return fmt.Sprintf("vm: Unable to use '%c' operator for %v and %v values", e.Op, e.Left, e.Right)
}

func (e *BinaryError) Is(target error) bool {
	return target == ErrBinary
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}
