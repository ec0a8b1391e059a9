// Package console drives the EGA-compatible text mode frame buffer that the
// boot loader leaves active.
package console

import "unsafe"

const (
	// PhysAddr is the physical address of the text mode frame buffer.
	PhysAddr = uintptr(0xb8000)

	// Width and Height are the text mode dimensions in characters.
	Width  = 80
	Height = 25

	clearChar = byte(' ')
)

// Attr is a cell attribute: background color in the high nibble and
// foreground color in the low nibble.
type Attr uint8

// The EGA palette.
const (
	Black Attr = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGrey
	Grey
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	LightBrown
	White
)

// DefaultAttr (0x0f) is bright light grey text on black.
const DefaultAttr = Attr(Black<<4 | White)

// MakeAttr combines a foreground and background color.
func MakeAttr(fg, bg Attr) Attr {
	return (bg << 4) | (fg & 0xf)
}

// ScrollDir defines a scroll direction.
type ScrollDir uint8

// The supported list of scroll directions for Scroll.
const (
	Up ScrollDir = iota
	Down
)

// Ega is a text console whose cells are two bytes each, the character
// followed by its attribute.
type Ega struct {
	width  uint16
	height uint16

	fb []uint16
}

// Init attaches the console to a width*height frame buffer at fbPhysAddr.
func (cons *Ega) Init(width, height uint16, fbPhysAddr uintptr) {
	cons.width = width
	cons.height = height
	cons.fb = unsafe.Slice((*uint16)(unsafe.Pointer(fbPhysAddr)), int(width)*int(height))
}

// Dimensions returns the console width and height in characters.
func (cons *Ega) Dimensions() (uint16, uint16) {
	return cons.width, cons.height
}

// Clear fills the rectangular region at (x, y) with blanks using attr. The
// region is clipped to the console.
func (cons *Ega) Clear(x, y, width, height uint16, attr Attr) {
	if x >= cons.width || y >= cons.height {
		return
	}
	if x+width > cons.width {
		width = cons.width - x
	}
	if y+height > cons.height {
		height = cons.height - y
	}

	cell := uint16(attr)<<8 | uint16(clearChar)
	for row := y; row < y+height; row++ {
		line := cons.fb[int(row)*int(cons.width):]
		for col := x; col < x+width; col++ {
			line[col] = cell
		}
	}
}

// Scroll moves the console contents by lines in the given direction. The
// caller is responsible for clearing the lines that were scrolled in.
func (cons *Ega) Scroll(dir ScrollDir, lines uint16) {
	if lines == 0 || lines > cons.height {
		return
	}

	offset := int(lines) * int(cons.width)
	switch dir {
	case Up:
		copy(cons.fb, cons.fb[offset:])
	case Down:
		copy(cons.fb[offset:], cons.fb)
	}
}

// Write a char to the specified location. Writes outside the console are
// ignored.
func (cons *Ega) Write(ch byte, attr Attr, x, y uint16) {
	if x >= cons.width || y >= cons.height {
		return
	}

	cons.fb[int(y)*int(cons.width)+int(x)] = uint16(attr)<<8 | uint16(ch)
}
