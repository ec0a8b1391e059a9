// Package tty implements a minimal terminal on top of a text console.
package tty

import (
	"github.com/Rih0z/os/kernel/driver/video/console"
	"github.com/Rih0z/os/kernel/sync"
)

// Vt implements a simple terminal that can process LF and CR characters. The
// terminal uses a console device for its output and scrolls when the cursor
// moves past the last line.
type Vt struct {
	lock sync.Spinlock

	// Interfaces are not usable before memory allocation works, so the
	// console is referenced by its concrete type.
	cons *console.Ega

	width  uint16
	height uint16

	curX    uint16
	curY    uint16
	curAttr console.Attr
}

// AttachTo connects the terminal to cons and moves the cursor to the top
// left corner.
func (t *Vt) AttachTo(cons *console.Ega) {
	t.cons = cons
	t.width, t.height = cons.Dimensions()
	t.curX, t.curY = 0, 0
	t.curAttr = console.DefaultAttr
}

// SetAttr sets the attribute used for subsequent writes.
func (t *Vt) SetAttr(attr console.Attr) {
	t.lock.Acquire()
	t.curAttr = attr
	t.lock.Release()
}

// Clear blanks the terminal and homes the cursor.
func (t *Vt) Clear() {
	t.lock.Acquire()
	defer t.lock.Release()

	t.cons.Clear(0, 0, t.width, t.height, t.curAttr)
	t.curX, t.curY = 0, 0
}

// Position returns the current cursor position (x, y).
func (t *Vt) Position() (uint16, uint16) {
	t.lock.Acquire()
	defer t.lock.Release()

	return t.curX, t.curY
}

// Write implements io.Writer.
func (t *Vt) Write(data []byte) (int, error) {
	t.lock.Acquire()
	defer t.lock.Release()

	for _, b := range data {
		switch b {
		case '\r':
			t.curX = 0
		case '\n':
			t.curX = 0
			t.lf()
		default:
			t.cons.Write(b, t.curAttr, t.curX, t.curY)
			t.curX++
			if t.curX == t.width {
				t.curX = 0
				t.lf()
			}
		}
	}

	return len(data), nil
}

// lf advances the cursor by one line, scrolling the terminal contents if the
// cursor is on the last line.
func (t *Vt) lf() {
	if t.curY+1 < t.height {
		t.curY++
		return
	}

	t.cons.Scroll(console.Up, 1)
	t.cons.Clear(0, t.height-1, t.width, 1, t.curAttr)
}
