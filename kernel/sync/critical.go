package sync

import (
	"github.com/Rih0z/os/kernel"
	"github.com/Rih0z/os/kernel/arch"
	"github.com/Rih0z/os/kernel/kfmt"
)

var (
	// panicFn is mocked by tests.
	panicFn = kfmt.Panic

	// ErrUnbalancedCriticalSection is raised when Exit is called more times
	// than Enter.
	ErrUnbalancedCriticalSection = &kernel.Error{Module: "sync", Message: "critical section exit without matching enter"}
)

// CriticalSection is a depth-counted interrupt guard for a single CPU.
// Interrupts are disabled by the outermost Enter and re-enabled by the
// matching Exit, so critical sections may nest.
//
// The guard assumes interrupts are enabled when the outermost Enter runs.
type CriticalSection struct {
	ops   arch.CpuOps
	depth uint32
}

// NewCriticalSection returns a guard that toggles interrupts through ops.
func NewCriticalSection(ops arch.CpuOps) CriticalSection {
	return CriticalSection{ops: ops}
}

// Enter disables interrupts if this is the outermost critical section.
func (cs *CriticalSection) Enter() {
	if cs.depth == 0 {
		cs.ops.DisableInterrupts()
	}
	cs.depth++
}

// Exit leaves the current critical section and re-enables interrupts when
// the outermost one is left. An Exit without a matching Enter is fatal.
func (cs *CriticalSection) Exit() {
	if cs.depth == 0 {
		panicFn(ErrUnbalancedCriticalSection)
		return
	}

	cs.depth--
	if cs.depth == 0 {
		cs.ops.EnableInterrupts()
	}
}

// Depth returns the current nesting depth.
func (cs *CriticalSection) Depth() uint32 {
	return cs.depth
}
