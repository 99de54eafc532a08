package vm

const (
	OP_END uint8 = 0x00 // halt, result is the accumulator
	OP_LDI uint8 = 0x01 // load 8-byte big-endian i64 into the accumulator
	OP_PSH uint8 = 0x02 // push the accumulator
	OP_ADD uint8 = 0x03 // acc = pop + acc
	OP_SUB uint8 = 0x04 // acc = pop - acc
)

// OpName returns the mnemonic for op, or "" if op is not an instruction.
func OpName(op uint8) string {
	switch op {
	case OP_END:
		return "END"
	case OP_LDI:
		return "LDI"
	case OP_PSH:
		return "PSH"
	case OP_ADD:
		return "ADD"
	case OP_SUB:
		return "SUB"
	}
	return ""
}
