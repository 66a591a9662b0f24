package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProcess_RemainingInitializedToExecTime(t *testing.T) {
	p := NewProcess(7, 2, 5)
	assert.Equal(t, int64(5), p.Remaining)
	assert.Equal(t, int64(0), p.Executed())
	assert.True(t, p.Live())
}

func TestProcess_LivenessBoundary(t *testing.T) {
	p := NewProcess(1, 0, 1)
	p.Remaining--
	assert.False(t, p.Live())
	assert.Equal(t, int64(1), p.Executed())
}

func TestProcess_String(t *testing.T) {
	p := NewProcess(3, 1, 4)
	assert.Equal(t, "Process: (ID: 3, Priority: 1, ExecTime: 4, Remaining: 4)", p.String())
}
