package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobin_RequeuesOnSliceExpiry(t *testing.T) {
	a := NewProcess(1, 0, 6)
	a.Remaining = 4 // executed 2 ticks, slice of 2 just expired
	b := NewProcess(2, 0, 3)
	rl := listOf(a, b)
	units := unitsRunning(1, a)

	(&RoundRobinPolicy{SliceLength: 2}).Order(rl, units)

	assert.Equal(t, []int{2, 1}, procIDs(rl.Items()))
}

func TestRoundRobin_MidSliceKeepsPosition(t *testing.T) {
	a := NewProcess(1, 0, 6)
	a.Remaining = 3 // executed 3 ticks, slice of 2 not at a boundary
	b := NewProcess(2, 0, 3)
	rl := listOf(a, b)
	units := unitsRunning(1, a)

	(&RoundRobinPolicy{SliceLength: 2}).Order(rl, units)

	assert.Equal(t, []int{1, 2}, procIDs(rl.Items()))
}

func TestRoundRobin_FreshProcessNeverRequeued(t *testing.T) {
	// executedSoFar == 0: a process that has not run yet keeps its slot
	// even though 0 mod slice == 0
	a := NewProcess(1, 0, 6)
	b := NewProcess(2, 0, 3)
	rl := listOf(a, b)
	units := unitsRunning(1, a)

	(&RoundRobinPolicy{SliceLength: 1}).Order(rl, units)

	assert.Equal(t, []int{1, 2}, procIDs(rl.Items()))
}

func TestRoundRobin_CompletedOccupantSkipped(t *testing.T) {
	a := NewProcess(1, 0, 2)
	b := NewProcess(2, 0, 3)
	units := unitsRunning(2, a, b)

	// a finished last tick and is gone; b executed 2 of slice 2
	b.Remaining = 1
	c := NewProcess(3, 0, 4)
	rl := listOf(b, c)

	(&RoundRobinPolicy{SliceLength: 2}).Order(rl, units)

	assert.Equal(t, []int{3, 2}, procIDs(rl.Items()))
}

func TestRoundRobin_RotatesAllExpiredOccupants(t *testing.T) {
	a := NewProcess(1, 0, 9)
	a.Remaining = 6
	b := NewProcess(2, 0, 9)
	b.Remaining = 6
	c := NewProcess(3, 0, 9)
	rl := listOf(a, b, c)
	units := unitsRunning(2, a, b)

	(&RoundRobinPolicy{SliceLength: 3}).Order(rl, units)

	// both occupants hit the boundary and rotate in unit order
	assert.Equal(t, []int{3, 1, 2}, procIDs(rl.Items()))
}
