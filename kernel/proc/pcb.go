// Package proc implements the process control block and the fixed-size
// process table.
//
// PCBs kept in a Table are accessed through Table.With, which runs a callback
// while holding the slot lock, or copied out with Table.Get. Slot.Acquire and
// Slot.Release expose the lock directly for longer critical sections.
package proc

import (
	"github.com/Rih0z/os/kernel"
	"github.com/Rih0z/os/kernel/arch"
)

// ProcessID identifies a process. Negative ids denote kernel tasks and
// positive ids user processes.
type ProcessID int32

// NoProcess is the id of a PCB that is not assigned to any process. It can
// only be set through New or Reset.
const NoProcess ProcessID = 0

// ErrReservedID is returned when NoProcess is used as a process id.
var ErrReservedID = &kernel.Error{Module: "proc", Message: "process id 0 is reserved"}

// PCB is a process control block.
type PCB struct {
	registers arch.NativeContext

	id    ProcessID
	flags Flags

	priority Priority

	// maxPriority is the ceiling for priority inheritance: while this
	// process blocks a higher priority one, priority may be raised up to
	// maxPriority and is restored when the block ends. Nothing raises it
	// yet.
	maxPriority Priority

	ticksLeft   Quantum
	quantumSize Quantum

	name Name
}

// New returns a PCB for id with zeroed registers, no flags set, UserQ
// priority and the default quantum.
func New(id ProcessID) PCB {
	return PCB{
		id:          id,
		priority:    UserQ,
		maxPriority: UserQ,
		ticksLeft:   DefaultQuantum,
		quantumSize: DefaultQuantum,
	}
}

// Reset reinitializes p in place as New(id) would.
func (p *PCB) Reset(id ProcessID) {
	*p = New(id)
}

// ID returns the process id.
func (p *PCB) ID() ProcessID { return p.id }

// SetID assigns a process id. NoProcess is rejected.
func (p *PCB) SetID(id ProcessID) *kernel.Error {
	if id == NoProcess {
		return ErrReservedID
	}

	p.id = id
	return nil
}

// Flags returns the scheduling flags.
func (p *PCB) Flags() Flags { return p.flags }

// SetFlag sets the bits in f.
func (p *PCB) SetFlag(f Flags) { p.flags.Set(f) }

// ClearFlag clears the bits in f.
func (p *PCB) ClearFlag(f Flags) { p.flags.Clear(f) }

// IsRunnable returns true if no scheduling flag is set.
func (p *PCB) IsRunnable() bool { return p.flags.IsRunnable() }

// Priority returns the current scheduling priority.
func (p *PCB) Priority() Priority { return p.priority }

// SetPriority sets the current scheduling priority.
func (p *PCB) SetPriority(prio Priority) { p.priority = prio }

// MaxPriority returns the priority inheritance ceiling.
func (p *PCB) MaxPriority() Priority { return p.maxPriority }

// SetMaxPriority sets the priority inheritance ceiling.
func (p *PCB) SetMaxPriority(prio Priority) { p.maxPriority = prio }

// TicksLeft returns the ticks remaining in the current quantum.
func (p *PCB) TicksLeft() Quantum { return p.ticksLeft }

// QuantumSize returns the full quantum size.
func (p *PCB) QuantumSize() Quantum { return p.quantumSize }

// SetQuantum sets the quantum size and refills the remaining ticks.
func (p *PCB) SetQuantum(q Quantum) {
	p.quantumSize = q
	p.ticksLeft = q
}

// Tick consumes one tick of the current quantum and returns true once the
// quantum is exhausted. Refilling it is up to the scheduler.
func (p *PCB) Tick() bool {
	if p.ticksLeft > 0 {
		p.ticksLeft--
	}
	return p.ticksLeft == 0
}

// Registers returns the saved register snapshot.
func (p *PCB) Registers() *arch.NativeContext { return &p.registers }

// Name returns the process name.
func (p *PCB) Name() string { return p.name.String() }

// SetName sets the process name, silently truncating it to NameCapacity-1
// bytes.
func (p *PCB) SetName(name string) { p.name.Set(name) }
