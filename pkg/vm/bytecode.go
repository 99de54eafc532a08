package vm

import "encoding/binary"

// OperandSize is the width of the LDI operand.
const OperandSize = 8

// EncodeInt returns the big-endian operand bytes for v.
func EncodeInt(v int64) [OperandSize]byte {
	var b [OperandSize]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	return b
}

// DecodeInt is the inverse of EncodeInt.
func DecodeInt(b [OperandSize]byte) int64 {
	return int64(binary.BigEndian.Uint64(b[:]))
}
