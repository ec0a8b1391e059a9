package proc

import "unicode/utf8"

// NameCapacity is the size of a process name including its NUL terminator.
const NameCapacity = 16

// Name is a NUL-terminated process name of at most NameCapacity-1 bytes.
// The zero value is the empty name.
type Name struct {
	buf [NameCapacity]byte
}

// Set stores the first NameCapacity-1 bytes of s. Longer input is truncated.
func (n *Name) Set(s string) {
	l := copy(n.buf[:NameCapacity-1], s)
	for i := l; i < NameCapacity; i++ {
		n.buf[i] = 0
	}
}

// Len returns the number of bytes before the NUL terminator.
func (n Name) Len() int {
	for i, b := range n.buf {
		if b == 0 {
			return i
		}
	}
	return NameCapacity
}

// String returns the name. A name that is not valid UTF-8, for example one
// truncated in the middle of a multi-byte character, is returned as "".
func (n Name) String() string {
	b := n.buf[:n.Len()]
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}
