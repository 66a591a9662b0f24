// Implements the UnitState, the fixed-size array of execution units.
// Recomputed in full every tick from the ready list; never partially updated.

package sim

import (
	"sort"
)

// Idle is the sentinel occupant id for a unit with nothing to run.
const Idle = -1

// UnitState holds the occupant id of each of the N execution units, in the
// canonical display order: occupied slots ascending by process id, idle
// slots pushed to the end. The canonical order is also what the
// non-preemptive policies and the round-robin slice tracker scan when they
// look at "who ran last tick", so idle slots always terminate the scan.
type UnitState struct {
	slots []int
}

// NewUnitState creates a UnitState with n units, all idle.
func NewUnitState(n int) *UnitState {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = Idle
	}
	return &UnitState{slots: slots}
}

// Len returns the number of execution units.
func (u *UnitState) Len() int {
	return len(u.slots)
}

// Slots returns the unit occupants in canonical order.
// The returned slice is the internal storage -- callers may read it but
// MUST NOT modify it; Assign recomputes it every tick.
func (u *UnitState) Slots() []int {
	return u.slots
}

// Assign maps the (policy-ordered) ready list onto the units: the first
// min(N, len(procs)) processes occupy units in order, remaining units go
// idle. The result is then canonicalized for display with a stable sort so
// units holding equal content keep their relative slot order. The ready
// list itself is never touched.
func (u *UnitState) Assign(procs []*Process) {
	for i := range u.slots {
		if i < len(procs) {
			u.slots[i] = procs[i].ID
		} else {
			u.slots[i] = Idle
		}
	}
	// occupied slots ascend by id, idle slots sink to the end
	sort.SliceStable(u.slots, func(i, j int) bool {
		a, b := u.slots[i], u.slots[j]
		if a >= 0 && b >= 0 {
			return a < b
		}
		return a > b
	})
}

// AllIdle reports whether every unit is idle.
func (u *UnitState) AllIdle() bool {
	for _, id := range u.slots {
		if id != Idle {
			return false
		}
	}
	return true
}
