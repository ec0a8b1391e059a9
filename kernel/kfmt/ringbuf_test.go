package kfmt

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingBuffer(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var rb ringBuffer
		n, err := rb.Read(make([]byte, 4))
		assert.Equal(t, 0, n)
		assert.Equal(t, io.EOF, err)
	})

	t.Run("write then read", func(t *testing.T) {
		var rb ringBuffer
		n, err := rb.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, 5, n)

		var out bytes.Buffer
		_, err = io.Copy(&out, &rb)
		require.NoError(t, err)
		assert.Equal(t, "hello", out.String())
	})

	t.Run("short reads", func(t *testing.T) {
		var rb ringBuffer
		rb.Write([]byte("abcdef"))

		p := make([]byte, 4)
		n, _ := rb.Read(p)
		assert.Equal(t, "abcd", string(p[:n]))
		n, _ = rb.Read(p)
		assert.Equal(t, "ef", string(p[:n]))
	})

	t.Run("overflow keeps newest bytes", func(t *testing.T) {
		var rb ringBuffer
		rb.Write(bytes.Repeat([]byte{'a'}, ringBufferSize))
		rb.Write([]byte("tail"))

		var out bytes.Buffer
		_, err := io.Copy(&out, &rb)
		require.NoError(t, err)

		got := out.Bytes()
		require.Len(t, got, ringBufferSize-1)
		assert.Equal(t, "tail", string(got[len(got)-4:]))
	})
}
