// Package trace provides the output side of the simulator: per-tick record
// formatting and the end-of-run summary. This package has no dependencies
// on sim/ -- it works on plain tick numbers and unit-slot slices.
package trace

import (
	"io"
	"strconv"
	"strings"
)

// Writer emits one line per simulated tick in the wire format
//
//	t s1 s2 ... sN
//
// where t is the tick index and each si is the occupying process id or -1
// for an idle unit. Writer implements sim.TickWriter.
type Writer struct {
	w io.Writer
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteTick formats and writes a single tick record.
func (tw *Writer) WriteTick(t int64, slots []int) error {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(t, 10))
	for _, s := range slots {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(s))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(tw.w, sb.String())
	return err
}
