package sim

import (
	"fmt"
	"sort"
	"strconv"
)

// Method identifies one of the built-in scheduling policies. The numeric
// values are the public method ids accepted on the command line.
type Method int

const (
	MethodFCFS              Method = 0 // First Come First Serve
	MethodSJF               Method = 1 // Shortest Job First (non-preemptive)
	MethodSRTF              Method = 2 // Shortest Remaining Time First (preemptive)
	MethodRoundRobin        Method = 3 // Round Robin with a fixed time slice
	MethodPriorityFCFS      Method = 4 // Preemptive priority, FCFS among equals
	MethodPrioritySRTF      Method = 5 // Preemptive priority, SRTF among equals
	MethodPriorityNoPreempt Method = 6 // Non-preemptive priority, FCFS among equals
)

// methodNames maps each method to its canonical name, accepted as an
// alternative spelling in config files.
var methodNames = map[Method]string{
	MethodFCFS:              "fcfs",
	MethodSJF:               "sjf",
	MethodSRTF:              "srtf",
	MethodRoundRobin:        "rr",
	MethodPriorityFCFS:      "priority-fcfs",
	MethodPrioritySRTF:      "priority-srtf",
	MethodPriorityNoPreempt: "priority-nonpreemptive",
}

// Valid reports whether m is one of the seven recognized method ids.
func (m Method) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod resolves a method id ("0".."6") or canonical name ("fcfs",
// "rr", ...) into a Method.
func ParseMethod(s string) (Method, error) {
	if n, err := strconv.Atoi(s); err == nil {
		m := Method(n)
		if !m.Valid() {
			return 0, fmt.Errorf("unknown schedule method %d (valid: 0-6)", n)
		}
		return m, nil
	}
	for m, name := range methodNames {
		if s == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown schedule method %q", s)
}

// Policy reorders the ready list before unit assignment.
// Called once per tick with the previous tick's unit state, so
// non-preemptive policies can tell who is already executing.
// Implementations sort the slice in-place using sort.SliceStable:
// stability is part of the contract, it is what makes arrival order
// the tie-break for every key-based policy.
type Policy interface {
	Order(rl *ReadyList, units *UnitState)
}

// FCFSPolicy preserves First-Come-First-Served order (no-op).
// The ready list is already in arrival order.
type FCFSPolicy struct{}

func (FCFSPolicy) Order(_ *ReadyList, _ *UnitState) {
	// No-op: arrival order preserved from enqueue order
}

// SJFPolicy sorts by total execution time, ascending, without preempting:
// processes already on a unit keep their position at the front of the list
// and only the suffix past the running cut is sorted.
type SJFPolicy struct{}

func (SJFPolicy) Order(rl *ReadyList, units *UnitState) {
	cut := runningCut(rl, units)
	rl.Reorder(func(procs []*Process) {
		tail := procs[cut:]
		sort.SliceStable(tail, func(i, j int) bool {
			return tail[i].ExecTime < tail[j].ExecTime
		})
	})
}

// SRTFPolicy sorts the whole list by remaining time, ascending, every tick.
// A newly admitted short process preempts a long one immediately.
type SRTFPolicy struct{}

func (SRTFPolicy) Order(rl *ReadyList, _ *UnitState) {
	rl.Reorder(func(procs []*Process) {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].Remaining < procs[j].Remaining
		})
	})
}

// PriorityFCFSPolicy sorts the whole list by priority number, ascending
// (lower = more urgent). Equal priorities stay in arrival order.
type PriorityFCFSPolicy struct{}

func (PriorityFCFSPolicy) Order(rl *ReadyList, _ *UnitState) {
	rl.Reorder(func(procs []*Process) {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].Priority < procs[j].Priority
		})
	})
}

// PrioritySRTFPolicy sorts by remaining time first, then stably by priority,
// so within a priority level remaining-time order is the tie-break.
type PrioritySRTFPolicy struct{}

func (PrioritySRTFPolicy) Order(rl *ReadyList, _ *UnitState) {
	rl.Reorder(func(procs []*Process) {
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].Remaining < procs[j].Remaining
		})
		sort.SliceStable(procs, func(i, j int) bool {
			return procs[i].Priority < procs[j].Priority
		})
	})
}

// PriorityNoPreemptPolicy sorts the suffix past the running cut by priority
// number, ascending. Processes already on a unit keep their position.
type PriorityNoPreemptPolicy struct{}

func (PriorityNoPreemptPolicy) Order(rl *ReadyList, units *UnitState) {
	cut := runningCut(rl, units)
	rl.Reorder(func(procs []*Process) {
		tail := procs[cut:]
		sort.SliceStable(tail, func(i, j int) bool {
			return tail[i].Priority < tail[j].Priority
		})
	})
}

// runningCut computes the length of the ready-list prefix holding the
// processes currently assigned to units. The prefix property holds because
// last tick's assignment took the first N list entries, completions only
// shrink that prefix, and admissions append at the back.
//
// The scan walks units in canonical order (idle slots are always last, so
// the first idle ends it) and advances the cut at most once per unit. An
// occupant no longer in the list simply finished last tick and is skipped;
// that is normal here, unlike in the decrement phase where a missing
// occupant is an invariant violation.
func runningCut(rl *ReadyList, units *UnitState) int {
	cut := 0
	for _, id := range units.Slots() {
		if id == Idle {
			break
		}
		if cut >= rl.Len() {
			break
		}
		if rl.IndexOf(id) >= 0 {
			cut++
		}
	}
	return cut
}

// NewPolicy creates the Policy for a validated method id. sliceLength is
// only meaningful for MethodRoundRobin and must be positive there.
// Panics on method ids that Config.Validate would have rejected.
func NewPolicy(m Method, sliceLength int64) Policy {
	switch m {
	case MethodFCFS:
		return FCFSPolicy{}
	case MethodSJF:
		return SJFPolicy{}
	case MethodSRTF:
		return SRTFPolicy{}
	case MethodRoundRobin:
		if sliceLength < 1 {
			panic(fmt.Sprintf("round robin requires a positive slice length, got %d", sliceLength))
		}
		return &RoundRobinPolicy{SliceLength: sliceLength}
	case MethodPriorityFCFS:
		return PriorityFCFSPolicy{}
	case MethodPrioritySRTF:
		return PrioritySRTFPolicy{}
	case MethodPriorityNoPreempt:
		return PriorityNoPreemptPolicy{}
	default:
		panic(fmt.Sprintf("unknown schedule method %d", int(m)))
	}
}
