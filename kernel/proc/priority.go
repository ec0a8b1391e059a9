package proc

// Priority is a scheduling queue index. Lower values are scheduled first.
type Priority uint8

// Named priority levels.
const (
	TaskQ Priority = 0  // kernel tasks
	UserQ Priority = 7  // default for user processes
	IdleQ Priority = 15 // idle process
)

// Higher returns true if p is scheduled before other.
func (p Priority) Higher(other Priority) bool { return p < other }

// Valid returns true if p is within [TaskQ, IdleQ].
func (p Priority) Valid() bool { return p <= IdleQ }

// Quantum is a number of timer ticks.
type Quantum uint8

// DefaultQuantum is the quantum assigned to new processes.
const DefaultQuantum Quantum = 8
