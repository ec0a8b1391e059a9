package amd64

import "github.com/Rih0z/os/kernel/cpu"

var (
	// The following functions are mocked by tests.
	enableInterruptsFn  = cpu.EnableInterrupts
	disableInterruptsFn = cpu.DisableInterrupts
	apicIDFn            = cpu.APICID
)

// CPU implements the CPU operations for x86-64. The interrupt flag it
// toggles is a single global mask: calls do not nest. Use
// sync.CriticalSection for nested critical sections.
type CPU struct{}

// EnableInterrupts sets the interrupt flag (STI).
func (CPU) EnableInterrupts() { enableInterruptsFn() }

// DisableInterrupts clears the interrupt flag (CLI).
func (CPU) DisableInterrupts() { disableInterruptsFn() }

// CPUID returns the local APIC id of the calling core. On a single-core
// system this is the bootstrap processor id.
func (CPU) CPUID() uint32 { return apicIDFn() }
