package ast

// Compiler is a compilation backend. The AST drives it without knowing
// what it produces.
//
// For a chain `a + b` the call order is Integer(a), Binary(), Integer(b),
// Operator(OpAdd): Binary comes before the right operand so a stack
// backend can save the left value first.
type Compiler interface {
	Integer(v int64) error
	Binary() error
	Operator(op Operator) error
	End() error
}

// Compile feeds e to c and terminates the output with exactly one End call.
func Compile(e Expr, c Compiler) error {
	if err := e.Compile(c); err != nil {
		return err
	}
	return c.End()
}
