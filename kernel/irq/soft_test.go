package irq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPending(t *testing.T, c *SoftController, line uint32) bool {
	t.Helper()
	pending, err := c.IsPending(line)
	require.Nil(t, err)
	return pending
}

func TestSoftControllerEnableObservesEvents(t *testing.T) {
	var c SoftController

	require.Nil(t, c.Raise(1))
	assert.False(t, isPending(t, &c, 1), "disabled line should not report pending")

	require.Nil(t, c.Enable(1))
	assert.True(t, isPending(t, &c, 1))
	assert.False(t, isPending(t, &c, 2))
}

func TestSoftControllerDisableKeepsPending(t *testing.T) {
	var c SoftController

	require.Nil(t, c.Enable(4))
	require.Nil(t, c.Raise(4))
	require.Nil(t, c.Disable(4))
	assert.False(t, isPending(t, &c, 4))

	require.Nil(t, c.Enable(4))
	assert.True(t, isPending(t, &c, 4), "pending status lost across disable/enable")
}

func TestSoftControllerClearIsIdempotent(t *testing.T) {
	var c SoftController

	require.Nil(t, c.Enable(0))
	require.Nil(t, c.Raise(0))
	require.Nil(t, c.Clear(0))
	assert.False(t, isPending(t, &c, 0))

	require.Nil(t, c.Clear(0))
	assert.False(t, isPending(t, &c, 0))
	assert.True(t, isEnabled(&c, 0), "clear must not change the enable mask")
}

func TestSoftControllerNext(t *testing.T) {
	var c SoftController

	_, ok := c.Next()
	assert.False(t, ok)

	for _, line := range []uint32{3, 7, 12} {
		require.Nil(t, c.Raise(line))
	}
	require.Nil(t, c.Enable(7))
	require.Nil(t, c.Enable(12))

	line, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, uint32(7), line)

	require.Nil(t, c.Enable(3))
	line, _ = c.Next()
	assert.Equal(t, uint32(3), line)
}

func TestSoftControllerLineOutOfRange(t *testing.T) {
	var c SoftController

	assert.Equal(t, ErrLineOutOfRange, c.Enable(NumLines))
	assert.Equal(t, ErrLineOutOfRange, c.Disable(NumLines))
	assert.Equal(t, ErrLineOutOfRange, c.Clear(NumLines))
	assert.Equal(t, ErrLineOutOfRange, c.Raise(NumLines+1))

	pending, err := c.IsPending(100)
	assert.False(t, pending)
	assert.Equal(t, ErrLineOutOfRange, err)
}

func isEnabled(c *SoftController, line uint32) bool {
	return c.enabled&(1<<line) != 0
}
