package cpu

var (
	cpuidFn = ID
)

// EnableInterrupts enables interrupt handling (STI).
func EnableInterrupts()

// DisableInterrupts disables interrupt handling (CLI).
func DisableInterrupts()

// Halt disables interrupts and stops instruction execution. Halt never
// returns; if the CPU is woken up by an NMI it halts again.
func Halt()

// ID returns information about the CPU and its features. It
// is implemented as a CPUID instruction with EAX=leaf and
// returns the values in EAX, EBX, ECX and EDX.
func ID(leaf uint32) (eax, ebx, ecx, edx uint32)

// APICID returns the initial local APIC id of the calling core, reported in
// bits 24-31 of EBX by CPUID leaf 1. CPUs whose highest basic leaf is 0
// report 0.
func APICID() uint32 {
	if maxLeaf, _, _, _ := cpuidFn(0); maxLeaf < 1 {
		return 0
	}

	_, ebx, _, _ := cpuidFn(1)
	return ebx >> 24
}
