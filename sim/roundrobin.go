// Implements the Round Robin policy: FCFS ordering augmented with a
// time-slice expiry rule that requeues a process to the back of the list.

package sim

// RoundRobinPolicy requeues any currently-executing process whose time
// slice just expired, then leaves the rest of the list in FCFS order.
//
// A slice expires when the process has executed a positive multiple of
// SliceLength ticks since admission: executed > 0 && executed % SliceLength
// == 0. A process that has not yet executed is never requeued, so a fresh
// arrival always gets at least one full slice before rotating out.
type RoundRobinPolicy struct {
	SliceLength int64
}

func (p *RoundRobinPolicy) Order(rl *ReadyList, units *UnitState) {
	for _, id := range units.Slots() {
		if id == Idle {
			break
		}
		i := rl.IndexOf(id)
		if i < 0 {
			// occupant finished last tick, nothing to rotate
			continue
		}
		executed := rl.Items()[i].Executed()
		if executed > 0 && executed%p.SliceLength == 0 {
			rl.MoveToBack(i)
		}
	}
}
