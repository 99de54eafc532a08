package vm_test

import (
	"testing"

	"github.com/agenthands/tlang/pkg/vm"
)

func FuzzRunVM(f *testing.F) {
	f.Add(code(ldi(1), op(vm.OP_END)))
	f.Add(code(ldi(2), op(vm.OP_PSH), ldi(3), op(vm.OP_SUB), op(vm.OP_END)))
	f.Add([]byte{vm.OP_ADD, vm.OP_PSH, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		st := vm.GetState()
		defer vm.PutState(st)

		// Any input must end in a value or an error, never a panic.
		_, _ = vm.RunBytes(data, st)
		_, _ = vm.Disassemble(data)
	})
}
