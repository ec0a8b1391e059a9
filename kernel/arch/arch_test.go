package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	ctx := NewContext(0x100000, 0x9000)

	var c Context = &ctx
	assert.Equal(t, uint64(0x100000), c.InstructionPointer())
	assert.Equal(t, uint64(0x9000), c.StackPointer())

	c.SetInstructionPointer(0x200000)
	assert.Equal(t, uint64(0x200000), c.InstructionPointer())
	assert.Equal(t, uint64(0x9000), c.StackPointer())

	c.SetStackPointer(0x8000)
	assert.Equal(t, uint64(0x8000), ctx.StackPointer())
	assert.Equal(t, uint64(0x200000), ctx.InstructionPointer())
}

func TestNativeInterruptControllerNeverSucceeds(t *testing.T) {
	var ic InterruptController = NativeInterruptController{}

	assert.NotNil(t, ic.Enable(0))
	assert.NotNil(t, ic.Disable(0))
	assert.NotNil(t, ic.Clear(0))

	_, err := ic.IsPending(0)
	assert.NotNil(t, err)
}
