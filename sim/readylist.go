// Implements the ReadyList, which holds all live processes eligible for
// scheduling. Processes are enqueued on admission and removed on completion.

package sim

import (
	"fmt"
	"strings"
)

// ReadyList is the ordered sequence of live processes threaded through every
// tick. It is insertion-order-stable except where a Policy reorders it, and
// it is exclusively owned by the tick loop: policies receive it by reference
// for in-place reordering, nothing else mutates it.
type ReadyList struct {
	procs []*Process
}

// Enqueue appends a process to the back of the ready list.
func (rl *ReadyList) Enqueue(p *Process) {
	if p == nil {
		panic("Enqueue: p must not be nil")
	}
	rl.procs = append(rl.procs, p)
}

// Len returns the number of live processes in the list.
func (rl *ReadyList) Len() int {
	return len(rl.procs)
}

// Items returns the list contents for iteration.
// The returned slice is the list's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (rl *ReadyList) Items() []*Process {
	return rl.procs
}

// Reorder applies fn to the list contents, allowing in-place reordering.
// Policy.Order is the primary consumer:
//
//	rl.Reorder(func(procs []*Process) {
//	    sort.SliceStable(procs, ...)
//	})
//
// fn receives the underlying slice and may sort it in-place.
// fn MUST NOT change the slice length (no append/delete).
func (rl *ReadyList) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rl.procs)
	fn(rl.procs)
	if len(rl.procs) != n {
		panic(fmt.Sprintf("Reorder: fn changed list length from %d to %d", n, len(rl.procs)))
	}
}

// IndexOf returns the position of the first live process with the given id,
// or -1 if no such process is in the list.
func (rl *ReadyList) IndexOf(id int) int {
	for i, p := range rl.procs {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// MoveToBack removes the process at position i and appends it to the back of
// the list, preserving the relative order of everything else. Used by the
// round-robin slice tracker to requeue a process whose slice expired.
func (rl *ReadyList) MoveToBack(i int) {
	p := rl.procs[i]
	rl.procs = append(rl.procs[:i], rl.procs[i+1:]...)
	rl.procs = append(rl.procs, p)
}

// RemoveAt removes and returns the process at position i.
func (rl *ReadyList) RemoveAt(i int) *Process {
	p := rl.procs[i]
	rl.procs = append(rl.procs[:i], rl.procs[i+1:]...)
	return p
}

func (rl *ReadyList) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rl.procs {
		sb.WriteString(fmt.Sprint(p))
		if i < len(rl.procs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
