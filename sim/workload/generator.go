package workload

import (
	"fmt"
	"math/rand"

	"github.com/schedsim/schedsim/sim"
)

// GeneratorConfig bounds a synthetic workload. Deterministic given the same
// config and seed.
type GeneratorConfig struct {
	Seed            int64
	ProcessCount    int   // total processes to generate (must be > 0)
	MaxInterarrival int64 // max gap in ticks between consecutive records (>= 0)
	MaxExecTime     int64 // execution times drawn from [1, MaxExecTime]
	MaxPriority     int   // priorities drawn from [0, MaxPriority]
	MaxPerRecord    int   // processes per record drawn from [1, MaxPerRecord]
}

// Validate checks the generator bounds.
func (cfg GeneratorConfig) Validate() error {
	if cfg.ProcessCount < 1 {
		return fmt.Errorf("process count must be positive, got %d", cfg.ProcessCount)
	}
	if cfg.MaxInterarrival < 0 {
		return fmt.Errorf("max interarrival must be non-negative, got %d", cfg.MaxInterarrival)
	}
	if cfg.MaxExecTime < 1 {
		return fmt.Errorf("max execution time must be positive, got %d", cfg.MaxExecTime)
	}
	if cfg.MaxPriority < 0 {
		return fmt.Errorf("max priority must be non-negative, got %d", cfg.MaxPriority)
	}
	if cfg.MaxPerRecord < 1 {
		return fmt.Errorf("max processes per record must be positive, got %d", cfg.MaxPerRecord)
	}
	return nil
}

// Generate creates a synthetic arrival sequence with sequential process ids
// and non-decreasing record timestamps.
func Generate(cfg GeneratorConfig) ([]*sim.Arrival, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	var records []*sim.Arrival
	clock := int64(0)
	nextID := 1
	for nextID <= cfg.ProcessCount {
		rec := &sim.Arrival{Time: clock}
		batch := 1 + rng.Intn(cfg.MaxPerRecord)
		for b := 0; b < batch && nextID <= cfg.ProcessCount; b++ {
			rec.Procs = append(rec.Procs, sim.NewProcess(
				nextID,
				rng.Intn(cfg.MaxPriority+1),
				1+rng.Int63n(cfg.MaxExecTime),
			))
			nextID++
		}
		records = append(records, rec)
		if cfg.MaxInterarrival > 0 {
			clock += rng.Int63n(cfg.MaxInterarrival + 1)
		}
	}
	return records, nil
}

// SliceSource adapts a pre-built record slice into a sim.Source.
// Used with Generate to feed a simulator without a text stream.
type SliceSource struct {
	records []*sim.Arrival
}

// NewSliceSource creates a SliceSource over records.
func NewSliceSource(records []*sim.Arrival) *SliceSource {
	return &SliceSource{records: records}
}

// Next pops the next record, or (nil, nil) once all are consumed.
func (s *SliceSource) Next() (*sim.Arrival, error) {
	if len(s.records) == 0 {
		return nil, nil
	}
	rec := s.records[0]
	s.records = s.records[1:]
	return rec, nil
}
