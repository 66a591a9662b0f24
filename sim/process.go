// Defines the Process record that models an individual process in the simulation.
// Tracks identity, priority, total execution time, and remaining execution time.

package sim

import (
	"fmt"
)

// Process models a single schedulable process.
// Each process has:
// - a caller-assigned id (unique among simultaneously live processes)
// - a priority number (lower = more urgent)
// - a fixed total execution time in ticks
// - a remaining execution time, decremented while the process occupies a unit
//
// A process is live while Remaining > 0; the tick loop removes it from the
// ready list the instant Remaining reaches 0.
type Process struct {
	ID        int   // Caller-assigned identifier from the input stream
	Priority  int   // Scheduling priority; lower number = more urgent
	ExecTime  int64 // Total ticks of execution required, constant after admission
	Remaining int64 // Ticks left; 0 <= Remaining <= ExecTime

	ArrivalTime int64 // Tick at which the process was admitted (metrics only)
}

// NewProcess creates a Process with Remaining initialized to execTime.
func NewProcess(id, priority int, execTime int64) *Process {
	return &Process{
		ID:        id,
		Priority:  priority,
		ExecTime:  execTime,
		Remaining: execTime,
	}
}

// Executed returns how many ticks of execution the process has received so far.
func (p *Process) Executed() int64 {
	return p.ExecTime - p.Remaining
}

// Live reports whether the process still has work left.
func (p *Process) Live() bool {
	return p.Remaining > 0
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, Priority: %d, ExecTime: %d, Remaining: %d)", p.ID, p.Priority, p.ExecTime, p.Remaining)
}

// Arrival is one input record: a timestamp plus the processes admitted at
// that tick. A record with no processes is valid and admits nothing.
type Arrival struct {
	Time  int64
	Procs []*Process
}
