// Package workload provides the input side of the simulator: parsing
// arrival records from a line-oriented text stream and generating
// synthetic workloads for tests and experiments.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Reader parses arrival records from a line-oriented stream and implements
// sim.Source. Each non-blank line is
//
//	t (id prio exec_t)*
//
// a tick timestamp followed by zero or more whitespace-separated process
// triples. A blank line or end of stream signals that no more admissions
// follow.
//
// Malformed content is recoverable: a truncated or non-numeric tuple is
// discarded with a warning and the rest of the line is kept. Only stream
// read failures surface as errors.
type Reader struct {
	sc   *bufio.Scanner
	done bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

// Next returns the next arrival record, or (nil, nil) once the stream is
// exhausted. Lines whose timestamp cannot be parsed are skipped with a
// warning.
func (r *Reader) Next() (*sim.Arrival, error) {
	for !r.done {
		if !r.sc.Scan() {
			r.done = true
			if err := r.sc.Err(); err != nil {
				return nil, fmt.Errorf("reading input stream: %w", err)
			}
			return nil, nil
		}
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			// trailing blank line: end of admissions
			r.done = true
			return nil, nil
		}
		rec, ok := parseRecord(line)
		if !ok {
			continue
		}
		return rec, nil
	}
	return nil, nil
}

// parseRecord parses one input line. Returns ok=false when the timestamp is
// unusable; tuple-level faults only drop the offending tuple.
func parseRecord(line string) (*sim.Arrival, bool) {
	fields := strings.Fields(line)
	t, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || t < 0 {
		logrus.Warnf("discarding record with bad timestamp %q", fields[0])
		return nil, false
	}
	rec := &sim.Arrival{Time: t}
	rest := fields[1:]
	for len(rest) > 0 {
		if len(rest) < 3 {
			logrus.Warnf("discarding truncated tuple %v at timestamp %d", rest, t)
			break
		}
		p, err := parseTuple(rest[0], rest[1], rest[2])
		if err != nil {
			logrus.Warnf("discarding tuple %v at timestamp %d: %v", rest[:3], t, err)
		} else {
			rec.Procs = append(rec.Procs, p)
		}
		rest = rest[3:]
	}
	return rec, true
}

func parseTuple(idField, prioField, execField string) (*sim.Process, error) {
	id, err := strconv.Atoi(idField)
	if err != nil {
		return nil, fmt.Errorf("bad process id %q", idField)
	}
	prio, err := strconv.Atoi(prioField)
	if err != nil {
		return nil, fmt.Errorf("bad priority %q", prioField)
	}
	execTime, err := strconv.ParseInt(execField, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad execution time %q", execField)
	}
	if execTime < 1 {
		return nil, fmt.Errorf("execution time must be positive, got %d", execTime)
	}
	return sim.NewProcess(id, prio, execTime), nil
}
