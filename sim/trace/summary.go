package trace

import (
	"fmt"

	"github.com/rs/xid"
)

// Summary captures end-of-run aggregates for logging. Each run gets a
// globally unique id so output from repeated experiments can be correlated.
type Summary struct {
	RunID     string
	Method    string
	Ticks     int64
	Completed int
}

// NewSummary creates a Summary for the given policy name with a fresh run id.
func NewSummary(method string) *Summary {
	return &Summary{
		RunID:  xid.New().String(),
		Method: method,
	}
}

func (s *Summary) String() string {
	return fmt.Sprintf("run %s: method=%s ticks=%d completed=%d", s.RunID, s.Method, s.Ticks, s.Completed)
}
