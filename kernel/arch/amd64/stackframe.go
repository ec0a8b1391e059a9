// Package amd64 provides the x86-64 implementation of the architecture
// capability contracts: the saved register snapshot used for context
// switches, the CPU operations and the interrupt controller stub.
package amd64

import (
	"io"

	"github.com/Rih0z/os/kernel/kfmt"
)

//go:generate go run ../../../tools/offsets -o stackframe_amd64.h

// RFlagsDefault is the RFLAGS value of a freshly created context: the
// interrupt flag (bit 9) and the always-one reserved bit 1.
const RFlagsDefault = 0x202

// StackFrame is the register snapshot saved for a process that is not
// running. Its layout is shared with the trap and context-switch assembly so
// the field order and the Size must not change. The Offset constants and
// stackframe_amd64.h describe it to the assembly.
type StackFrame struct {
	RAX uint64
	RBX uint64
	RCX uint64
	RDX uint64
	RSI uint64
	RDI uint64
	RBP uint64
	R8  uint64
	R9  uint64
	R10 uint64
	R11 uint64
	R12 uint64
	R13 uint64
	R14 uint64
	R15 uint64

	RFlags uint64
	RIP    uint64
	RSP    uint64
}

// Binary layout of StackFrame.
const (
	OffsetRAX    = 0
	OffsetRBX    = 8
	OffsetRCX    = 16
	OffsetRDX    = 24
	OffsetRSI    = 32
	OffsetRDI    = 40
	OffsetRBP    = 48
	OffsetR8     = 56
	OffsetR9     = 64
	OffsetR10    = 72
	OffsetR11    = 80
	OffsetR12    = 88
	OffsetR13    = 96
	OffsetR14    = 104
	OffsetR15    = 112
	OffsetRFlags = 120
	OffsetRIP    = 128
	OffsetRSP    = 136

	// Size is the size of a StackFrame in bytes.
	Size = 144
)

// NewContext returns a frame that resumes execution at entry with the stack
// pointer set to stack and interrupts enabled. All other registers are zero.
func NewContext(entry, stack uint64) StackFrame {
	return StackFrame{
		RFlags: RFlagsDefault,
		RIP:    entry,
		RSP:    stack,
	}
}

// SetInstructionPointer sets the address execution resumes at.
func (f *StackFrame) SetInstructionPointer(addr uint64) { f.RIP = addr }

// SetStackPointer sets the stack pointer restored on resume.
func (f *StackFrame) SetStackPointer(addr uint64) { f.RSP = addr }

// InstructionPointer returns the saved instruction pointer.
func (f *StackFrame) InstructionPointer() uint64 { return f.RIP }

// StackPointer returns the saved stack pointer.
func (f *StackFrame) StackPointer() uint64 { return f.RSP }

// DumpTo outputs the register contents to w.
func (f *StackFrame) DumpTo(w io.Writer) {
	kfmt.Fprintf(w, "RAX = %16x RBX = %16x\n", f.RAX, f.RBX)
	kfmt.Fprintf(w, "RCX = %16x RDX = %16x\n", f.RCX, f.RDX)
	kfmt.Fprintf(w, "RSI = %16x RDI = %16x\n", f.RSI, f.RDI)
	kfmt.Fprintf(w, "RBP = %16x\n", f.RBP)
	kfmt.Fprintf(w, "R8  = %16x R9  = %16x\n", f.R8, f.R9)
	kfmt.Fprintf(w, "R10 = %16x R11 = %16x\n", f.R10, f.R11)
	kfmt.Fprintf(w, "R12 = %16x R13 = %16x\n", f.R12, f.R13)
	kfmt.Fprintf(w, "R14 = %16x R15 = %16x\n", f.R14, f.R15)
	kfmt.Fprintf(w, "RIP = %16x RSP = %16x\n", f.RIP, f.RSP)
	kfmt.Fprintf(w, "RFL = %16x\n", f.RFlags)
}
