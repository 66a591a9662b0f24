package sim

// Shared helpers for sim package tests.

// procIDs extracts the ids of a process slice in order.
func procIDs(procs []*Process) []int {
	ids := make([]int, len(procs))
	for i, p := range procs {
		ids[i] = p.ID
	}
	return ids
}

// listOf builds a ReadyList from processes in the given order.
func listOf(procs ...*Process) *ReadyList {
	rl := &ReadyList{}
	for _, p := range procs {
		rl.Enqueue(p)
	}
	return rl
}

// unitsRunning builds a UnitState with n units occupied by the given
// processes, exactly as an assignment at the end of a previous tick would
// leave it.
func unitsRunning(n int, procs ...*Process) *UnitState {
	u := NewUnitState(n)
	u.Assign(procs)
	return u
}

// sliceSource feeds a fixed record sequence to a Simulator in tests.
type sliceSource struct {
	records []*Arrival
}

func (s *sliceSource) Next() (*Arrival, error) {
	if len(s.records) == 0 {
		return nil, nil
	}
	rec := s.records[0]
	s.records = s.records[1:]
	return rec, nil
}

// tickRecord is one captured output line.
type tickRecord struct {
	Time  int64
	Slots []int
}

// captureWriter collects tick records instead of formatting them.
type captureWriter struct {
	ticks []tickRecord
}

func (cw *captureWriter) WriteTick(t int64, slots []int) error {
	cw.ticks = append(cw.ticks, tickRecord{Time: t, Slots: append([]int(nil), slots...)})
	return nil
}
