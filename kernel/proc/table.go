package proc

import (
	"io"

	"github.com/Rih0z/os/kernel"
	"github.com/Rih0z/os/kernel/kfmt"
	"github.com/Rih0z/os/kernel/sync"
)

const (
	// MaxProcesses is the number of slots in the process table.
	MaxProcesses = 16

	// ReservedSlot is not free by default: an unassigned id does not make it
	// allocatable, only an explicit SlotFree flag does.
	ReservedSlot = 0
)

var (
	// ErrSlotOutOfRange is returned for indices outside [0, MaxProcesses).
	ErrSlotOutOfRange = &kernel.Error{Module: "proc", Message: "slot index out of range"}

	// ErrTableFull is returned when no slot is free.
	ErrTableFull = &kernel.Error{Module: "proc", Message: "process table full"}

	// ErrReservedSlot is returned when Free is called on ReservedSlot.
	ErrReservedSlot = &kernel.Error{Module: "proc", Message: "slot 0 is reserved"}
)

// Slot is a process table entry. Prefer Table.With and Table.Get, which
// bound the access to the PCB by the slot lock. Acquire and Release are for
// callers that need to hold the lock across several operations.
type Slot struct {
	lock sync.Spinlock

	// ready is false until the slot's PCB has been set to New(NoProcess).
	// It lets an all-zero Table be placed in the data segment.
	ready bool
	pcb   PCB
}

// Acquire locks the slot and returns its PCB. The pointer must not be used
// after Release.
func (s *Slot) Acquire() *PCB {
	s.lock.Acquire()
	if !s.ready {
		s.pcb = New(NoProcess)
		s.ready = true
	}
	return &s.pcb
}

// Release unlocks the slot.
func (s *Slot) Release() {
	s.lock.Release()
}

// free reports whether the slot at index can be allocated. An unassigned
// id only makes a slot free outside ReservedSlot; ReservedSlot is free only
// when its SlotFree flag is set. The caller must hold the slot lock.
func (s *Slot) free(index int) bool {
	return s.pcb.flags.IsSet(SlotFree) || (index != ReservedSlot && s.pcb.id == NoProcess)
}

// assigned reports whether the slot holds a process. The caller must hold
// the slot lock.
func (s *Slot) assigned() bool {
	return !s.pcb.flags.IsSet(SlotFree) && s.pcb.id != NoProcess
}

// Table is the fixed-size process table. Each slot has its own lock so
// operations on different processes do not serialize.
//
// The zero value is ready to use and needs no initialization code, so a
// Table can be declared as a package-level variable in code that runs before
// the Go runtime is initialized. Every slot of a zero Table reads as
// New(NoProcess).
type Table struct {
	slots [MaxProcesses]Slot
}

// NewTable returns a table whose slots all hold New(NoProcess). It is
// equivalent to the zero Table.
func NewTable() *Table {
	t := &Table{}
	for i := range t.slots {
		t.slots[i].pcb = New(NoProcess)
		t.slots[i].ready = true
	}
	return t
}

// Slot returns the slot at index, or ErrSlotOutOfRange.
func (t *Table) Slot(index int) (*Slot, *kernel.Error) {
	if index < 0 || index >= MaxProcesses {
		return nil, ErrSlotOutOfRange
	}

	return &t.slots[index], nil
}

// With runs fn with the PCB at index while holding the slot lock.
func (t *Table) With(index int, fn func(*PCB)) *kernel.Error {
	s, err := t.Slot(index)
	if err != nil {
		return err
	}

	fn(s.Acquire())
	s.Release()
	return nil
}

// Get returns a copy of the PCB at index.
func (t *Table) Get(index int) (PCB, *kernel.Error) {
	var p PCB
	err := t.With(index, func(pcb *PCB) { p = *pcb })
	return p, err
}

// FindFreeSlot returns the lowest free slot index. A slot is free if its
// SlotFree flag is set, or if no process is assigned to it and it is not
// ReservedSlot.
func (t *Table) FindFreeSlot() (int, bool) {
	for i := range t.slots {
		s := &t.slots[i]
		s.Acquire()
		free := s.free(i)
		s.Release()

		if free {
			return i, true
		}
	}

	return -1, false
}

// Allocate claims the lowest free slot for a new process with the given id
// and name and returns its index. The PCB is initialized as New(id) would.
func (t *Table) Allocate(id ProcessID, name string) (int, *kernel.Error) {
	if id == NoProcess {
		return -1, ErrReservedID
	}

	for i := range t.slots {
		s := &t.slots[i]
		p := s.Acquire()
		if !s.free(i) {
			s.Release()
			continue
		}

		p.Reset(id)
		p.SetName(name)
		s.Release()
		return i, nil
	}

	return -1, ErrTableFull
}

// Free releases the slot at index: its PCB is reset and marked SlotFree.
func (t *Table) Free(index int) *kernel.Error {
	if index == ReservedSlot {
		return ErrReservedSlot
	}

	return t.With(index, func(p *PCB) {
		p.Reset(NoProcess)
		p.SetFlag(SlotFree)
	})
}

// Find returns the index of the slot assigned to id.
func (t *Table) Find(id ProcessID) (int, bool) {
	if id == NoProcess {
		return -1, false
	}

	for i := range t.slots {
		s := &t.slots[i]
		p := s.Acquire()
		found := s.assigned() && p.id == id
		s.Release()

		if found {
			return i, true
		}
	}

	return -1, false
}

// Dump writes one line per assigned slot to w.
func (t *Table) Dump(w io.Writer) {
	for i := range t.slots {
		s := &t.slots[i]
		p := s.Acquire()
		if s.assigned() {
			kfmt.Fprintf(w, "slot %2d pid %5d prio %2d flags %2x ticks %d/%d %s\n",
				i, int32(p.id), uint8(p.priority), uint8(p.flags),
				uint8(p.ticksLeft), uint8(p.quantumSize), p.Name())
		}
		s.Release()
	}
}
