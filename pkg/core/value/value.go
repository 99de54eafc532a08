package value

import "strconv"

// Type represents the tag in the Value tagged union.
type Type uint8

const (
	TypeVoid Type = iota
	TypeInt
)

// Value is a tagged union. The zero Value is Void.
type Value struct {
	Type Type
	Data uint64 // int64 bits when Type is TypeInt
}

// Void is the initial accumulator state of the VM.
var Void = Value{}

// Integer wraps an int64.
func Integer(i int64) Value {
	return Value{Type: TypeInt, Data: uint64(i)}
}

// Int returns the value as int64.
func (v Value) Int() int64 {
	return int64(v.Data)
}

// SetInt stores an int64.
func (v *Value) SetInt(i int64) {
	v.Type = TypeInt
	v.Data = uint64(i)
}

// IsInt reports whether the value holds an integer.
func (v Value) IsInt() bool {
	return v.Type == TypeInt
}

// String renders the value with its tag, e.g. "Integer(6)" or "Void".
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return "Integer(" + strconv.FormatInt(v.Int(), 10) + ")"
	case TypeVoid:
		return "Void"
	default:
		return "Unknown(" + strconv.FormatUint(v.Data, 10) + ")"
	}
}

// Format returns the plain representation used for printing results.
func (v Value) Format() string {
	if v.Type == TypeInt {
		return strconv.FormatInt(v.Int(), 10)
	}
	return "void"
}
