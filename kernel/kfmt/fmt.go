// Package kfmt implements allocation-free formatted output for code that runs
// before (or without) the Go allocator, along with the kernel panic handler.
package kfmt

import (
	"io"
	"unsafe"
)

// numBufSize is the size of the scratch buffer used for formatting integers;
// it fits a 64-bit value in base 8 plus a sign.
const numBufSize = 24

var (
	errMissingArg   = []byte("(MISSING)")
	errWrongArgType = []byte("%!(WRONGTYPE)")
	errNoVerb       = []byte("%!(NOVERB)")
	errExtraArg     = []byte("%!(EXTRA)")
	trueValue       = []byte("true")
	falseValue      = []byte("false")

	numBuf     [numBufSize]byte
	singleByte = []byte(" ")

	// earlyBuf captures output emitted before an output sink is attached.
	earlyBuf ringBuffer

	// outputSink receives Printf output. When nil, output goes to earlyBuf.
	outputSink io.Writer
)

// SetOutputSink redirects Printf output to w and replays any output that
// was buffered while no sink was attached.
func SetOutputSink(w io.Writer) {
	outputSink = w
	if w != nil {
		io.Copy(w, &earlyBuf)
	}
}

// OutputSink returns the writer currently receiving Printf output. A nil
// value indicates that output is being buffered.
func OutputSink() io.Writer {
	return outputSink
}

// Printf writes formatted output to the active output sink. It supports the
// following verbs, each with an optional decimal width:
//
//	%s  string or []byte, left-padded with spaces
//	%d  integer in base 10, left-padded with spaces
//	%x  integer in base 16 (lower-case), left-padded with zeroes
//	%t  bool
//	%%  a literal percent sign
//
// Printf never allocates and never consults fmt.Stringer, so it is safe to
// call from early boot code and from the panic path.
func Printf(format string, args ...interface{}) {
	Fprintf(outputSink, format, args...)
}

// Fprintf behaves like Printf but writes to w.
func Fprintf(w io.Writer, format string, args ...interface{}) {
	var (
		argIndex int
		width    int
		i        = 0
	)

	for i < len(format) {
		if format[i] != '%' {
			writeByte(w, format[i])
			i++
			continue
		}

		width = 0
		i++
		for ; i < len(format) && format[i] >= '0' && format[i] <= '9'; i++ {
			width = width*10 + int(format[i]-'0')
		}

		if i == len(format) {
			doWrite(w, errNoVerb)
			break
		}

		verb := format[i]
		i++

		switch verb {
		case '%':
			writeByte(w, '%')
			continue
		case 's', 'd', 'x', 't':
		default:
			doWrite(w, errNoVerb)
			continue
		}

		if argIndex >= len(args) {
			doWrite(w, errMissingArg)
			continue
		}

		arg := args[argIndex]
		argIndex++
		switch verb {
		case 's':
			fmtString(w, arg, width)
		case 'd':
			fmtInt(w, arg, 10, width)
		case 'x':
			fmtInt(w, arg, 16, width)
		case 't':
			fmtBool(w, arg)
		}
	}

	for ; argIndex < len(args); argIndex++ {
		doWrite(w, errExtraArg)
	}
}

func fmtBool(w io.Writer, v interface{}) {
	b, ok := v.(bool)
	switch {
	case !ok:
		doWrite(w, errWrongArgType)
	case b:
		doWrite(w, trueValue)
	default:
		doWrite(w, falseValue)
	}
}

func fmtString(w io.Writer, v interface{}, width int) {
	switch s := v.(type) {
	case string:
		pad(w, ' ', width-len(s))
		// string to []byte conversions allocate; copy one byte at a time.
		for i := 0; i < len(s); i++ {
			writeByte(w, s[i])
		}
	case []byte:
		pad(w, ' ', width-len(s))
		doWrite(w, s)
	default:
		doWrite(w, errWrongArgType)
	}
}

// fmtInt formats any built-in integer type in base 10 or 16.
func fmtInt(w io.Writer, v interface{}, base uint64, width int) {
	var (
		mag uint64
		neg bool
	)

	switch n := v.(type) {
	case uint8:
		mag = uint64(n)
	case uint16:
		mag = uint64(n)
	case uint32:
		mag = uint64(n)
	case uint64:
		mag = n
	case uint:
		mag = uint64(n)
	case uintptr:
		mag = uint64(n)
	case int8:
		mag, neg = abs(int64(n))
	case int16:
		mag, neg = abs(int64(n))
	case int32:
		mag, neg = abs(int64(n))
	case int64:
		mag, neg = abs(n)
	case int:
		mag, neg = abs(int64(n))
	default:
		doWrite(w, errWrongArgType)
		return
	}

	// Digits are produced right-to-left into the tail of numBuf.
	pos := numBufSize
	for {
		digit := mag % base
		pos--
		if digit < 10 {
			numBuf[pos] = byte(digit) + '0'
		} else {
			numBuf[pos] = byte(digit-10) + 'a'
		}

		mag /= base
		if mag == 0 {
			break
		}
	}

	if width > numBufSize-1 {
		width = numBufSize - 1
	}

	digits := numBufSize - pos
	if neg {
		digits++
	}

	if base == 16 {
		if neg {
			writeByte(w, '-')
		}
		pad(w, '0', width-digits)
	} else {
		pad(w, ' ', width-digits)
		if neg {
			writeByte(w, '-')
		}
	}

	doWrite(w, numBuf[pos:])
}

func abs(n int64) (uint64, bool) {
	if n < 0 {
		return uint64(-n), true
	}
	return uint64(n), false
}

func pad(w io.Writer, ch byte, count int) {
	for ; count > 0; count-- {
		writeByte(w, ch)
	}
}

func writeByte(w io.Writer, ch byte) {
	singleByte[0] = ch
	doWrite(w, singleByte)
}

// doWrite hides p from escape analysis. The call to an unknown io.Writer
// otherwise makes the compiler move every Printf argument slice to the heap.
func doWrite(w io.Writer, p []byte) {
	doRealWrite(w, noEscape(unsafe.Pointer(&p)))
}

func doRealWrite(w io.Writer, bufPtr unsafe.Pointer) {
	p := *(*[]byte)(bufPtr)
	if w != nil {
		w.Write(p)
		return
	}

	earlyBuf.Write(p)
}

// noEscape hides a pointer from escape analysis (see runtime/stubs.go).
//
//go:nosplit
func noEscape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}
