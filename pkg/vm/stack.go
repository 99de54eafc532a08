package vm

import "github.com/agenthands/tlang/pkg/core/value"

// DefaultStackDepth is the capacity used by GetState and the runner
// when nothing else is configured.
const DefaultStackDepth = 256

// MaxStackDepth bounds capacities read from configuration and images.
const MaxStackDepth = 1 << 16

// Storage is fixed-size indexable backing memory for a Stack.
type Storage interface {
	Get(i int) value.Value
	Set(i int, v value.Value)
	Len() int
}

// Fixed is slice-backed Storage whose length never changes.
type Fixed []value.Value

// NewFixed allocates storage for n values.
func NewFixed(n int) Fixed {
	return make(Fixed, n)
}

func (f Fixed) Get(i int) value.Value    { return f[i] }
func (f Fixed) Set(i int, v value.Value) { f[i] = v }
func (f Fixed) Len() int                 { return len(f) }

// Stack is a bounded value stack over caller-supplied storage.
type Stack struct {
	data   Storage
	height int
}

// NewStack creates an empty stack whose capacity is data.Len().
func NewStack(data Storage) *Stack {
	return &Stack{data: data}
}

// Push adds a value to the stack.
func (s *Stack) Push(v value.Value) error {
	if s.height >= s.data.Len() {
		return ErrStackOverflow
	}
	s.data.Set(s.height, v)
	s.height++
	return nil
}

// Pop removes and returns the top value from the stack.
func (s *Stack) Pop() (value.Value, error) {
	if s.height == 0 {
		return value.Void, ErrStackUnderflow
	}
	s.height--
	return s.data.Get(s.height), nil
}

// Height is the number of values currently on the stack.
func (s *Stack) Height() int {
	return s.height
}

// Cap is the storage capacity.
func (s *Stack) Cap() int {
	return s.data.Len()
}

// Reset empties the stack and zeroes the used slots.
func (s *Stack) Reset() {
	for i := 0; i < s.height; i++ {
		s.data.Set(i, value.Void)
	}
	s.height = 0
}
