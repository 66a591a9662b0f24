package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsPrint_Aggregates(t *testing.T) {
	m := NewMetrics(2)
	p := NewProcess(1, 0, 3)
	p.ArrivalTime = 0
	for i := 0; i < 3; i++ {
		m.RecordBusy(0, p)
	}
	m.RecordCompletion(p, 4) // finished at the end of tick 4: turnaround 5

	var buf bytes.Buffer
	m.Print(&buf, 5)
	out := buf.String()

	assert.Contains(t, out, "Simulated Ticks      : 5")
	assert.Contains(t, out, "Completed Processes  : 1")
	assert.Contains(t, out, "Average Turnaround   : 5.00 ticks")
	assert.Contains(t, out, "Average Waiting      : 2.00 ticks")
	assert.Contains(t, out, "Unit 0 Utilization   : 60.00%")
	assert.Contains(t, out, "Unit 1 Utilization   : 0.00%")
}

func TestMetricsPrint_NoCompletions(t *testing.T) {
	m := NewMetrics(1)
	var buf bytes.Buffer
	m.Print(&buf, 0)

	require.Contains(t, buf.String(), "Completed Processes  : 0")
	assert.NotContains(t, buf.String(), "Average Turnaround")
}
