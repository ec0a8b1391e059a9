// Package sync provides the kernel's synchronization primitives: a spinlock
// and a depth-counted interrupt critical section.
package sync

import "sync/atomic"

// spinAttempts is the number of failed acquisition attempts after which
// Acquire yields.
const spinAttempts = 64

var (
	// TODO: replace with the scheduler's yield once context switching is
	// implemented.
	yieldFn func()
)

// Spinlock implements a lock where each task trying to acquire it busy-waits
// till the lock becomes available. The zero value is an unlocked lock.
type Spinlock struct {
	state uint32
}

// Acquire blocks until the lock can be acquired by the currently active task.
// Any attempt to re-acquire a lock already held by the current task will cause
// a deadlock.
func (l *Spinlock) Acquire() {
	for {
		for i := 0; i < spinAttempts; i++ {
			if atomic.LoadUint32(&l.state) == 0 && atomic.SwapUint32(&l.state, 1) == 0 {
				return
			}
		}

		if yieldFn != nil {
			yieldFn()
		}
	}
}

// TryToAcquire attempts to acquire the lock and returns true if the lock could
// be acquired or false otherwise.
func (l *Spinlock) TryToAcquire() bool {
	return atomic.SwapUint32(&l.state, 1) == 0
}

// Release relinquishes a held lock allowing other tasks to acquire it. Calling
// Release while the lock is free has no effect.
func (l *Spinlock) Release() {
	atomic.StoreUint32(&l.state, 0)
}
