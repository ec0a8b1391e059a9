// Package arch defines the capability contracts every supported CPU
// architecture must satisfy so that architecture-independent kernel code
// (process management, scheduling) runs unmodified.
//
// Each architecture lives in its own sub-package; the native_$GOARCH.go file
// binds the build architecture's implementations to the NativeContext type,
// the NewContext constructor and the Native CPU operations. Kernel code uses
// those concrete names, so calls are statically dispatched.
package arch

import "github.com/Rih0z/os/kernel"

// Context is the saved CPU state of a process that is not running. A value
// returned by NewContext(entry, stack), once loaded onto the CPU, resumes
// execution at entry using stack.
//
// Reads return the last value set and are unaffected by changes to any other
// register.
type Context interface {
	SetInstructionPointer(addr uint64)
	SetStackPointer(addr uint64)
	InstructionPointer() uint64
	StackPointer() uint64
}

// CpuOps groups the privileged per-CPU operations.
type CpuOps interface {
	// EnableInterrupts and DisableInterrupts toggle the single global
	// interrupt mask. They are not nesting-safe.
	EnableInterrupts()
	DisableInterrupts()

	// CPUID returns the logical id of the calling core.
	CPUID() uint32
}

// InterruptController manages individual interrupt lines.
//
// Enable makes future IsPending calls observe hardware events on the line.
// Disable suppresses delivery but keeps any pending status. Clear resets the
// pending status and is idempotent. Implementations without hardware support
// must fail every call instead of reporting success.
type InterruptController interface {
	Enable(line uint32) *kernel.Error
	Disable(line uint32) *kernel.Error
	IsPending(line uint32) (bool, *kernel.Error)
	Clear(line uint32) *kernel.Error
}
