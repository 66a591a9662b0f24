package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGenConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:            42,
		ProcessCount:    20,
		MaxInterarrival: 3,
		MaxExecTime:     8,
		MaxPriority:     3,
		MaxPerRecord:    4,
	}
}

func TestGenerate_CountAndBounds(t *testing.T) {
	records, err := Generate(defaultGenConfig())
	require.NoError(t, err)

	total := 0
	lastTime := int64(0)
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.Time, lastTime, "timestamps must be non-decreasing")
		lastTime = rec.Time
		for _, p := range rec.Procs {
			total++
			assert.Equal(t, total, p.ID, "ids are sequential")
			assert.GreaterOrEqual(t, p.ExecTime, int64(1))
			assert.LessOrEqual(t, p.ExecTime, int64(8))
			assert.GreaterOrEqual(t, p.Priority, 0)
			assert.LessOrEqual(t, p.Priority, 3)
			assert.Equal(t, p.ExecTime, p.Remaining)
		}
	}
	assert.Equal(t, 20, total)
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a, err := Generate(defaultGenConfig())
	require.NoError(t, err)
	b, err := Generate(defaultGenConfig())
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Time, b[i].Time)
		require.Equal(t, len(a[i].Procs), len(b[i].Procs))
		for j := range a[i].Procs {
			assert.Equal(t, *a[i].Procs[j], *b[i].Procs[j])
		}
	}
}

func TestGenerate_RejectsBadConfig(t *testing.T) {
	cfg := defaultGenConfig()
	cfg.ProcessCount = 0
	_, err := Generate(cfg)
	assert.Error(t, err)

	cfg = defaultGenConfig()
	cfg.MaxExecTime = 0
	_, err = Generate(cfg)
	assert.Error(t, err)

	cfg = defaultGenConfig()
	cfg.MaxPerRecord = 0
	_, err = Generate(cfg)
	assert.Error(t, err)
}

func TestSliceSource_DrainsInOrder(t *testing.T) {
	records, err := Generate(defaultGenConfig())
	require.NoError(t, err)

	src := NewSliceSource(records)
	for _, want := range records {
		rec, err := src.Next()
		require.NoError(t, err)
		assert.Equal(t, want, rec)
	}
	rec, err := src.Next()
	require.NoError(t, err)
	assert.Nil(t, rec)
}
