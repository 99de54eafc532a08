package vm

import (
	"bytes"
	"io"

	"github.com/agenthands/tlang/pkg/core/value"
)

// decoder pulls opcodes and operands off the instruction stream without
// reading past the END byte.
type decoder struct {
	r   io.Reader
	br  io.ByteReader // r itself when it supports single-byte reads
	buf [OperandSize]byte
}

func newDecoder(r io.Reader) *decoder {
	d := &decoder{r: r}
	d.br, _ = r.(io.ByteReader)
	return d
}

func (d *decoder) opcode() (uint8, error) {
	if d.br != nil {
		op, err := d.br.ReadByte()
		if err != nil {
			return 0, ioError(err)
		}
		return op, nil
	}
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return 0, ioError(err)
	}
	return d.buf[0], nil
}

func (d *decoder) operand() (int64, error) {
	if _, err := io.ReadFull(d.r, d.buf[:]); err != nil {
		return 0, ioError(err)
	}
	return DecodeInt(d.buf), nil
}

// Run executes instructions from r against st until END or the first
// error. The stream is trusted to come from the emitter: the VM checks
// only what stack and opcode handling require.
func Run(r io.Reader, st *State) (value.Value, error) {
	d := newDecoder(r)
	for {
		halt, err := step(d, st)
		if err != nil {
			return value.Void, err
		}
		if halt {
			return st.Accumulator, nil
		}
	}
}

// RunBytes executes an in-memory program. code is not modified, so the
// same buffer can be run repeatedly.
func RunBytes(code []byte, st *State) (value.Value, error) {
	return Run(bytes.NewReader(code), st)
}

func step(d *decoder, st *State) (halt bool, err error) {
	op, err := d.opcode()
	if err != nil {
		return false, err
	}

	switch op {
	case OP_END:
		return true, nil

	case OP_LDI:
		v, err := d.operand()
		if err != nil {
			return false, err
		}
		st.Load(v)

	case OP_PSH:
		err = st.Push()

	case OP_ADD:
		err = st.Add()

	case OP_SUB:
		err = st.Subtract()

	default:
		err = &UnknownInstructionError{Opcode: op}
	}
	return false, err
}
