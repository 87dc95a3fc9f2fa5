package booking

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

const idPrefix = "B-"

// Sequence issues booking identifiers B-0001, B-0002, ... from a monotonic
// counter. Identifiers are never reused: cancellations do not shrink the
// counter, and Seed raises it past the highest identifier restored from disk
// so restarts cannot collide with ids issued before the restart.
type Sequence struct {
	n atomic.Uint64
}

func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns a fresh identifier, unique for the lifetime of the process.
func (s *Sequence) Next() string {
	return fmt.Sprintf("%s%04d", idPrefix, s.n.Add(1))
}

// Seed raises the counter floor to n. Calls with a lower value are no-ops.
func (s *Sequence) Seed(n uint64) {
	for {
		cur := s.n.Load()
		if cur >= n || s.n.CompareAndSwap(cur, n) {
			return
		}
	}
}

// ParseID extracts the numeric part of a booking identifier. It reports
// false for identifiers that were not issued by a Sequence.
func ParseID(id string) (uint64, bool) {
	raw, ok := strings.CutPrefix(id, idPrefix)
	if !ok {
		return 0, false
	}

	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}
