// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

// Source yields arrival records in input order. Next returns (nil, nil)
// once the stream is exhausted; exhaustion is terminal. sim/workload
// implements Source over a line-oriented text stream.
type Source interface {
	Next() (*Arrival, error)
}

// TickWriter receives one record per simulated tick. sim/trace implements
// it over an io.Writer.
type TickWriter interface {
	WriteTick(t int64, slots []int) error
}

// Simulator is the core object that holds simulation time, system state,
// and the tick loop. All state is owned here and threaded explicitly
// through each phase, so a single tick can be driven in isolation by tests.
type Simulator struct {
	Clock int64
	// Ready holds every live process, in the order the policy last left it
	Ready *ReadyList
	// Units holds the occupant of each execution unit, canonical order
	Units   *UnitState
	Policy  Policy
	Metrics *Metrics

	source     Source
	sourceDone bool
	// pending buffers records read from the source whose timestamp has not
	// been reached yet; admitted once the clock catches up
	pending deque.Deque[*Arrival]
	out     TickWriter
}

// NewSimulator builds a Simulator for the given configuration.
// source and out may be nil in tests that drive admission directly.
func NewSimulator(cfg Config, source Source, out TickWriter) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Simulator{
		Ready:   &ReadyList{},
		Units:   NewUnitState(cfg.UnitCount),
		Policy:  NewPolicy(cfg.Method, cfg.SliceLength),
		Metrics: NewMetrics(cfg.UnitCount),
		source:  source,
	}
	s.out = out
	if source == nil {
		s.sourceDone = true
	}
	return s, nil
}

// Run ticks the simulator until input is exhausted and every unit is idle.
func (s *Simulator) Run() error {
	for !s.Done() {
		if err := s.Tick(); err != nil {
			return err
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", s.Clock)
	return nil
}

// Done reports the termination condition: no further input remains (stream
// exhausted, nothing pending) and every unit is idle. Idle units only occur
// when the ready list has fewer live entries than units, so this implies an
// empty ready list.
func (s *Simulator) Done() bool {
	return s.sourceDone && s.pending.Len() == 0 && s.Units.AllIdle()
}

// Tick advances the simulation by one tick:
// admit arrivals due now, order the ready list, assign units, charge one
// tick of execution to every occupant, emit the tick record, advance the
// clock by 1.
func (s *Simulator) Tick() error {
	if err := s.admit(); err != nil {
		return err
	}
	s.Policy.Order(s.Ready, s.Units)
	s.Units.Assign(s.Ready.Items())
	if err := s.account(); err != nil {
		return err
	}
	if s.out != nil {
		if err := s.out.WriteTick(s.Clock, s.Units.Slots()); err != nil {
			return fmt.Errorf("writing tick %d: %w", s.Clock, err)
		}
	}
	s.Clock++
	return nil
}

// admit reads at most one record from the source, then enqueues every
// pending record whose timestamp is due. Records stamped before the current
// tick are admitted immediately with a warning; the clock itself never
// jumps.
func (s *Simulator) admit() error {
	if !s.sourceDone {
		rec, err := s.source.Next()
		if err != nil {
			return fmt.Errorf("reading input at tick %d: %w", s.Clock, err)
		}
		if rec == nil {
			s.sourceDone = true
			logrus.Infof("[tick %07d] Input exhausted", s.Clock)
		} else {
			s.pending.PushBack(rec)
		}
	}
	for s.pending.Len() > 0 && s.pending.Front().Time <= s.Clock {
		rec := s.pending.PopFront()
		if rec.Time < s.Clock {
			logrus.Warnf("[tick %07d] Record stamped %d arrived late, admitting now", s.Clock, rec.Time)
		}
		for _, p := range rec.Procs {
			s.EnqueueProcess(p)
		}
	}
	return nil
}

// EnqueueProcess admits a process to the back of the ready list.
func (s *Simulator) EnqueueProcess(p *Process) {
	p.ArrivalTime = s.Clock
	s.Ready.Enqueue(p)
	logrus.Infof("<< Arrival: process %d (prio %d, exec %d) at %d ticks", p.ID, p.Priority, p.ExecTime, s.Clock)
}

// account charges one tick of execution to every unit occupant and removes
// processes whose remaining time reaches zero. A unit occupant missing from
// the ready list here means the assignment and the list disagree -- an
// internal invariant violation, surfaced rather than skipped so a scheduler
// bug cannot be masked.
func (s *Simulator) account() error {
	for unit, id := range s.Units.Slots() {
		if id == Idle {
			continue
		}
		i := s.Ready.IndexOf(id)
		if i < 0 {
			return fmt.Errorf("bookkeeping inconsistency at tick %d: unit %d occupant %d not in ready list", s.Clock, unit, id)
		}
		p := s.Ready.Items()[i]
		p.Remaining--
		s.Metrics.RecordBusy(unit, p)
		if !p.Live() {
			s.Ready.RemoveAt(i)
			s.Metrics.RecordCompletion(p, s.Clock)
			logrus.Infof(">> Completion: process %d at %d ticks", p.ID, s.Clock)
		}
	}
	return nil
}
