// Package irq provides interrupt controller implementations that do not
// depend on hardware.
package irq

import (
	"github.com/Rih0z/os/kernel"
	"github.com/Rih0z/os/kernel/arch"
	"github.com/Rih0z/os/kernel/sync"
)

// NumLines is the number of lines supported by SoftController, matching a
// pair of cascaded 8259 PICs.
const NumLines = 16

// ErrLineOutOfRange is returned for lines >= NumLines.
var ErrLineOutOfRange = &kernel.Error{Module: "irq", Message: "interrupt line out of range"}

// SoftController is a software model of an interrupt controller with an
// interrupt request register (pending lines) and an enable mask. Requests are
// latched whether or not their line is enabled, but a pending line is only
// reported while it is enabled. All lines start disabled.
//
// SoftController lets code that depends on arch.InterruptController run
// before a hardware driver exists; Raise stands in for the device.
type SoftController struct {
	lock    sync.Spinlock
	pending uint16
	enabled uint16
}

var _ arch.InterruptController = (*SoftController)(nil)

// Enable unmasks line.
func (c *SoftController) Enable(line uint32) *kernel.Error {
	return c.update(line, func(bit uint16) { c.enabled |= bit })
}

// Disable masks line. Its pending status is kept.
func (c *SoftController) Disable(line uint32) *kernel.Error {
	return c.update(line, func(bit uint16) { c.enabled &^= bit })
}

// Clear resets the pending status of line. Clearing a line that is not
// pending has no effect.
func (c *SoftController) Clear(line uint32) *kernel.Error {
	return c.update(line, func(bit uint16) { c.pending &^= bit })
}

// Raise latches a request on line, as the device wired to it would.
func (c *SoftController) Raise(line uint32) *kernel.Error {
	return c.update(line, func(bit uint16) { c.pending |= bit })
}

// IsPending reports whether line has a latched request and is enabled.
func (c *SoftController) IsPending(line uint32) (bool, *kernel.Error) {
	if line >= NumLines {
		return false, ErrLineOutOfRange
	}

	c.lock.Acquire()
	defer c.lock.Release()

	bit := uint16(1) << line
	return c.pending&c.enabled&bit != 0, nil
}

// Next returns the lowest-numbered enabled line with a pending request. Like
// the 8259, lower line numbers have higher priority.
func (c *SoftController) Next() (uint32, bool) {
	c.lock.Acquire()
	defer c.lock.Release()

	ready := c.pending & c.enabled
	for line := uint32(0); line < NumLines; line++ {
		if ready&(1<<line) != 0 {
			return line, true
		}
	}

	return 0, false
}

func (c *SoftController) update(line uint32, fn func(bit uint16)) *kernel.Error {
	if line >= NumLines {
		return ErrLineOutOfRange
	}

	c.lock.Acquire()
	fn(uint16(1) << line)
	c.lock.Release()
	return nil
}
