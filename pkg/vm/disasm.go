package vm

import (
	"bytes"
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of code, one instruction
// per line prefixed with its byte offset. It stops at the first END and
// reports malformed input with the same errors Run would.
func Disassemble(code []byte) (string, error) {
	var sb strings.Builder
	r := bytes.NewReader(code)
	d := newDecoder(r)

	for {
		offset := len(code) - r.Len()
		op, err := d.opcode()
		if err != nil {
			return sb.String(), err
		}

		name := OpName(op)
		if name == "" {
			return sb.String(), &UnknownInstructionError{Opcode: op}
		}

		if op == OP_LDI {
			v, err := d.operand()
			if err != nil {
				return sb.String(), err
			}
			fmt.Fprintf(&sb, "%04d  %s %d\n", offset, name, v)
		} else {
			fmt.Fprintf(&sb, "%04d  %s\n", offset, name)
		}

		if op == OP_END {
			return sb.String(), nil
		}
	}
}
