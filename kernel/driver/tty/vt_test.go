package tty

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/Rih0z/os/kernel/driver/video/console"
	"github.com/stretchr/testify/assert"
)

func mockConsole(width, height uint16) (*console.Ega, []byte) {
	fb := make([]byte, int(width)*int(height)*2)
	cons := &console.Ega{}
	cons.Init(width, height, uintptr(unsafe.Pointer(&fb[0])))
	return cons, fb
}

// screen returns the console characters, one line per row with trailing
// blanks and NULs removed.
func screen(fb []byte, width, height int) []string {
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		var line []byte
		for x := 0; x < width; x++ {
			line = append(line, fb[(y*width+x)*2])
		}
		lines[y] = string(bytes.TrimRight(line, " \x00"))
	}
	return lines
}

func TestVtWrite(t *testing.T) {
	cons, fb := mockConsole(8, 3)

	var vt Vt
	vt.AttachTo(cons)
	vt.Clear()

	n, err := vt.Write([]byte("hello\nworld"))
	assert.NoError(t, err)
	assert.Equal(t, 11, n)
	assert.Equal(t, []string{"hello", "world", ""}, screen(fb, 8, 3))

	x, y := vt.Position()
	assert.Equal(t, uint16(5), x)
	assert.Equal(t, uint16(1), y)

	assert.Equal(t, byte(console.DefaultAttr), fb[1], "cells use the default attribute")
}

func TestVtCarriageReturn(t *testing.T) {
	cons, fb := mockConsole(8, 3)

	var vt Vt
	vt.AttachTo(cons)
	vt.Write([]byte("xxxx\rab"))

	assert.Equal(t, []string{"abxx", "", ""}, screen(fb, 8, 3))
}

func TestVtWrapAndScroll(t *testing.T) {
	cons, fb := mockConsole(4, 2)

	var vt Vt
	vt.AttachTo(cons)
	vt.Clear()

	vt.Write([]byte("abcdef"))
	assert.Equal(t, []string{"abcd", "ef"}, screen(fb, 4, 2))

	vt.Write([]byte("\nxy"))
	assert.Equal(t, []string{"ef", "xy"}, screen(fb, 4, 2))

	x, y := vt.Position()
	assert.Equal(t, uint16(2), x)
	assert.Equal(t, uint16(1), y)
}

func TestVtSetAttr(t *testing.T) {
	cons, fb := mockConsole(4, 1)

	var vt Vt
	vt.AttachTo(cons)
	vt.SetAttr(console.MakeAttr(console.LightRed, console.Black))
	vt.Write([]byte("!"))

	assert.Equal(t, []byte{'!', 0x0c}, fb[0:2])
}
