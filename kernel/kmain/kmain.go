// Package kmain contains the kernel entry point and owns the top-level kernel
// state.
package kmain

import (
	"io"

	"github.com/Rih0z/os/kernel"
	"github.com/Rih0z/os/kernel/arch"
	"github.com/Rih0z/os/kernel/driver/tty"
	"github.com/Rih0z/os/kernel/driver/video/console"
	"github.com/Rih0z/os/kernel/kfmt"
	"github.com/Rih0z/os/kernel/proc"
	"github.com/Rih0z/os/kernel/sync"
)

// Banner is printed on the first line of the screen.
const Banner = "Hello, Learning OS!"

// IdleTask is the id of the kernel task that occupies proc.ReservedSlot.
const IdleTask proc.ProcessID = -4

// timerLine is the interrupt line of the PIT.
const timerLine = 0

var (
	// The following are mocked by tests.
	haltFn     = arch.Halt
	panicFn    = kfmt.Panic
	cpuOps     = arch.Native
	fbPhysAddr = console.PhysAddr

	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}

	egaConsole console.Ega
	vt         tty.Vt

	// k is statically allocated: all of its fields are usable as zero
	// values until Kmain fills them in.
	k Kernel
)

// Kernel is the top-level kernel state. Subsystems receive the parts they
// need by reference; nothing reaches them through package globals.
type Kernel struct {
	Procs proc.Table

	CPU        arch.CpuOps
	IRQ        sync.CriticalSection
	Interrupts arch.InterruptController
}

// Kmain is the only Go symbol that is visible (exported) from the rt0
// initialization code. The rt0 code sets up a minimal stack and calls Kmain
// without initializing the Go runtime.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain() {
	egaConsole.Init(console.Width, console.Height, fbPhysAddr)
	vt.AttachTo(&egaConsole)
	vt.Clear()
	kfmt.SetOutputSink(&vt)

	k.Boot(cpuOps, arch.NativeInterruptController{}, &vt)

	// There is nothing to schedule yet.
	haltFn()

	// Use kfmt.Panic instead of panic to prevent the compiler from
	// treating it as dead-code and eliminating it.
	panicFn(errKmainReturned)
}

// Boot initializes k and logs the state of each subsystem to w.
func (k *Kernel) Boot(ops arch.CpuOps, ic arch.InterruptController, w io.Writer) {
	kfmt.Fprintf(w, "%s\n", Banner)

	k.CPU = ops
	k.IRQ = sync.NewCriticalSection(ops)
	k.Interrupts = ic

	log := kfmt.PrefixWriter{Sink: w, Prefix: []byte("[arch] ")}
	kfmt.Fprintf(&log, "cpu %d\n", k.CPU.CPUID())
	if err := k.Interrupts.Enable(timerLine); err != nil {
		kfmt.Fprintf(&log, "timer irq %d: %s\n", timerLine, err.Message)
	}

	log.Prefix = []byte("[proc] ")
	k.Procs.With(proc.ReservedSlot, func(p *proc.PCB) {
		p.Reset(IdleTask)
		p.SetName("idle")
		p.SetPriority(proc.IdleQ)
		p.SetMaxPriority(proc.IdleQ)
	})

	if free, ok := k.Procs.FindFreeSlot(); ok {
		kfmt.Fprintf(&log, "%d slots, first free slot %d\n", proc.MaxProcesses, free)
	} else {
		kfmt.Fprintf(&log, "%d slots, table full\n", proc.MaxProcesses)
	}
	k.Procs.Dump(&log)
}
