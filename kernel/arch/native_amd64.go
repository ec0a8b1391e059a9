package arch

import (
	"github.com/Rih0z/os/kernel/arch/amd64"
	"github.com/Rih0z/os/kernel/cpu"
)

// NativeContext is the register snapshot type of the build architecture.
type NativeContext = amd64.StackFrame

// NativeInterruptController is the interrupt controller of the build
// architecture.
type NativeInterruptController = amd64.UnimplementedInterruptController

var (
	// Native provides the CPU operations of the build architecture.
	Native CpuOps = amd64.CPU{}

	_ Context             = (*NativeContext)(nil)
	_ InterruptController = NativeInterruptController{}
)

// NewContext returns a context that resumes at entry with the given stack.
func NewContext(entry, stack uint64) NativeContext {
	return amd64.NewContext(entry, stack)
}

// Halt stops the CPU. It never returns.
func Halt() {
	cpu.Halt()
}
