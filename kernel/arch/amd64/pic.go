package amd64

import "github.com/Rih0z/os/kernel"

// ErrNotImplemented is returned by capability operations that have no
// backing implementation on this architecture yet.
var ErrNotImplemented = &kernel.Error{Module: "amd64", Message: "operation not implemented"}

// UnimplementedInterruptController is the x86-64 interrupt controller
// placeholder. Programming the 8259 PIC or the local/IO APIC is not
// supported yet, so every operation fails with ErrNotImplemented instead of
// pretending to succeed.
type UnimplementedInterruptController struct{}

// Enable always returns ErrNotImplemented.
func (UnimplementedInterruptController) Enable(line uint32) *kernel.Error {
	return ErrNotImplemented
}

// Disable always returns ErrNotImplemented.
func (UnimplementedInterruptController) Disable(line uint32) *kernel.Error {
	return ErrNotImplemented
}

// IsPending always returns ErrNotImplemented.
func (UnimplementedInterruptController) IsPending(line uint32) (bool, *kernel.Error) {
	return false, ErrNotImplemented
}

// Clear always returns ErrNotImplemented.
func (UnimplementedInterruptController) Clear(line uint32) *kernel.Error {
	return ErrNotImplemented
}
