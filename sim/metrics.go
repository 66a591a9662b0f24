// Tracks simulation-wide and per-process performance metrics such as:
// turnaround time, waiting time, and per-unit utilization.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for evaluating policy behavior and debugging accounting over time.
//
// Admissions and completions are keyed by *Process rather than id because
// ids may be reused across the run once a process completes.
type Metrics struct {
	CompletedProcesses int                // Number of processes that ran to completion
	TotalTurnaround    int64              // Sum of turnaround times (completion - admission)
	TotalWaiting       int64              // Sum of waiting times (turnaround - execution)
	BusyTicks          []int64            // Per-unit count of non-idle ticks
	TotalBusy          int64              // Busy ticks summed over all units
	ProcessBusy        map[*Process]int64 // Ticks each process actually held a unit
}

// NewMetrics creates a Metrics tracker for unitCount execution units.
func NewMetrics(unitCount int) *Metrics {
	return &Metrics{
		BusyTicks:   make([]int64, unitCount),
		ProcessBusy: make(map[*Process]int64),
	}
}

// RecordBusy charges one tick of execution on the given unit to p.
func (m *Metrics) RecordBusy(unit int, p *Process) {
	m.BusyTicks[unit]++
	m.TotalBusy++
	m.ProcessBusy[p]++
}

// RecordCompletion finalizes a process that just reached zero remaining
// time during the tick at clock.
func (m *Metrics) RecordCompletion(p *Process, clock int64) {
	m.CompletedProcesses++
	turnaround := clock + 1 - p.ArrivalTime // completes at the end of this tick
	m.TotalTurnaround += turnaround
	m.TotalWaiting += turnaround - p.ExecTime
}

// Print writes the aggregated metrics at the end of the simulation.
func (m *Metrics) Print(w io.Writer, totalTicks int64) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Simulated Ticks      : %d\n", totalTicks)
	fmt.Fprintf(w, "Completed Processes  : %d\n", m.CompletedProcesses)
	if m.CompletedProcesses > 0 {
		avgTurnaround := float64(m.TotalTurnaround) / float64(m.CompletedProcesses)
		avgWaiting := float64(m.TotalWaiting) / float64(m.CompletedProcesses)
		fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", avgTurnaround)
		fmt.Fprintf(w, "Average Waiting      : %.2f ticks\n", avgWaiting)
	}
	if totalTicks > 0 {
		for unit, busy := range m.BusyTicks {
			fmt.Fprintf(w, "Unit %d Utilization   : %.2f%%\n", unit, 100*float64(busy)/float64(totalTicks))
		}
	}
}
