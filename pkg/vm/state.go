package vm

import "github.com/agenthands/tlang/pkg/core/value"

// State is the execution context of one run: a bounded stack and the
// accumulator register. It is not safe for concurrent use.
type State struct {
	stack       *Stack
	Accumulator value.Value
}

// NewState creates a state with a Void accumulator.
func NewState(stack *Stack) *State {
	return &State{stack: stack}
}

// NewFixedState creates a state over freshly allocated storage of depth slots.
func NewFixedState(depth int) *State {
	return NewState(NewStack(NewFixed(depth)))
}

// Stack exposes the state's stack for inspection.
func (st *State) Stack() *Stack {
	return st.stack
}

// Reset clears the state for reuse by an unrelated program.
func (st *State) Reset() {
	st.stack.Reset()
	st.Accumulator = value.Void
}

// Load sets the accumulator to an integer.
func (st *State) Load(i int64) {
	st.Accumulator = value.Integer(i)
}

// Push saves the accumulator on the stack.
func (st *State) Push() error {
	return st.stack.Push(st.Accumulator)
}

// Add pops the left operand and stores left + acc, wrapping on overflow.
func (st *State) Add() error {
	return st.binary('+', func(l, r int64) int64 { return l + r })
}

// Subtract pops the left operand and stores left - acc, wrapping on overflow.
func (st *State) Subtract() error {
	return st.binary('-', func(l, r int64) int64 { return l - r })
}

func (st *State) binary(op byte, fn func(l, r int64) int64) error {
	l, err := st.stack.Pop()
	if err != nil {
		return err
	}
	r := st.Accumulator
	if !l.IsInt() || !r.IsInt() {
		return &BinaryError{Op: op, Left: l, Right: r}
	}
	st.Accumulator = value.Integer(fn(l.Int(), r.Int()))
	return nil
}
