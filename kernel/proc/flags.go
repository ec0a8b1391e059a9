package proc

// Flags is the scheduling state bitset of a process. A process is runnable
// iff no flag is set.
type Flags uint8

// Active flags.
const (
	// SlotFree marks a process table slot as unused.
	SlotFree Flags = 0x01

	// Sending is set while the process is blocked sending a message.
	Sending Flags = 0x04

	// Receiving is set while the process is blocked waiting for a message.
	Receiving Flags = 0x08
)

// Reserved flags. Nothing sets them yet.
const (
	NoMap      Flags = 0x02 // memory map not yet set up (after fork)
	Signaled   Flags = 0x10 // signal received
	SigPending Flags = 0x20 // signal handling in progress
	Stopped    Flags = 0x40 // stopped by a debugger
	NoPriv     Flags = 0x80 // no privilege structure
)

// Set sets the bits in f.
func (fl *Flags) Set(f Flags) { *fl |= f }

// Clear clears the bits in f.
func (fl *Flags) Clear(f Flags) { *fl &^= f }

// IsSet returns true if any bit in f is set.
func (fl Flags) IsSet(f Flags) bool { return fl&f != 0 }

// IsRunnable returns true if no flag is set.
func (fl Flags) IsRunnable() bool { return fl == 0 }
