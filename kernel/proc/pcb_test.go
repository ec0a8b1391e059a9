package proc

import (
	"testing"

	"github.com/Rih0z/os/kernel/arch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p := New(42)

	assert.Equal(t, ProcessID(42), p.ID())
	assert.Equal(t, Flags(0), p.Flags())
	assert.True(t, p.IsRunnable())
	assert.Equal(t, UserQ, p.Priority())
	assert.Equal(t, UserQ, p.MaxPriority())
	assert.Equal(t, DefaultQuantum, p.TicksLeft())
	assert.Equal(t, DefaultQuantum, p.QuantumSize())
	assert.Equal(t, "", p.Name())
	assert.Equal(t, arch.NativeContext{}, *p.Registers())
}

func TestPCBSetID(t *testing.T) {
	p := New(NoProcess)

	require.Nil(t, p.SetID(-4))
	assert.Equal(t, ProcessID(-4), p.ID())

	assert.Equal(t, ErrReservedID, p.SetID(NoProcess))
	assert.Equal(t, ProcessID(-4), p.ID(), "rejected SetID must not change the id")
}

func TestPCBFlags(t *testing.T) {
	p := New(1)

	p.SetFlag(Receiving)
	assert.False(t, p.IsRunnable())
	assert.True(t, p.Flags().IsSet(Receiving))

	p.ClearFlag(Receiving)
	assert.True(t, p.IsRunnable())
}

func TestPCBName(t *testing.T) {
	p := New(1)

	p.SetName("init")
	assert.Equal(t, "init", p.Name())

	p.SetName("a-much-too-long-process-name")
	assert.Equal(t, "a-much-too-long", p.Name())
	assert.Len(t, p.Name(), NameCapacity-1)
}

func TestPCBQuantum(t *testing.T) {
	p := New(1)
	p.SetQuantum(3)

	assert.Equal(t, Quantum(3), p.QuantumSize())
	assert.Equal(t, Quantum(3), p.TicksLeft())

	assert.False(t, p.Tick())
	assert.False(t, p.Tick())
	assert.True(t, p.Tick())
	assert.True(t, p.Tick(), "exhausted quantum must stay exhausted")
	assert.Equal(t, Quantum(0), p.TicksLeft())
	assert.Equal(t, Quantum(3), p.QuantumSize())
}

func TestPCBRegisters(t *testing.T) {
	p := New(1)

	*p.Registers() = arch.NewContext(0x400000, 0x7000)
	p.Registers().SetInstructionPointer(0x400010)

	assert.Equal(t, uint64(0x400010), p.Registers().InstructionPointer())
	assert.Equal(t, uint64(0x7000), p.Registers().StackPointer())
}

func TestPCBReset(t *testing.T) {
	p := New(1)
	p.SetName("shell")
	p.SetFlag(Sending)
	p.SetPriority(TaskQ)
	p.SetMaxPriority(TaskQ)
	p.Tick()
	p.Registers().RAX = 0xff

	p.Reset(2)
	assert.Equal(t, New(2), p)
}
