package tail

import (
	"time"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Session is the state of one tail run. It lives for a single invocation
// and is never persisted.
type Session struct {
	Started   time.Time
	Now       time.Time
	FirstPoll bool
	Backfill  int // initial lines still to print
	Seen      *SeenWindow

	Polls       int
	Emitted     int
	GapWarnings int
}

// NewSession creates session state starting at start
func NewSession(start time.Time, backfill, capacity int) *Session {
	return &Session{
		Started:   start,
		Now:       start,
		FirstPoll: true,
		Backfill:  backfill,
		Seen:      NewSeenWindow(capacity),
	}
}

// Elapsed returns the session age as of the last observed time.
func (s *Session) Elapsed() time.Duration {
	return s.Now.Sub(s.Started)
}

// Observe filters one poll response and advances the session past its first poll.
func (s *Session) Observe(records []domain.LogRecord, maxRecords int) Batch {
	b := Select(records, s.Seen, s.FirstPoll, s.Backfill, maxRecords)
	if s.FirstPoll {
		s.FirstPoll = false
		s.Backfill = 0
	}
	s.Polls++
	if b.Gap {
		s.GapWarnings++
	}
	return b
}

// Summary builds the end-of-tail event for reason
func (s *Session) Summary(tailID, reason string) *domain.TailSummary {
	return &domain.TailSummary{
		Type:         "tail_end",
		TailID:       tailID,
		Reason:       reason,
		Polls:        s.Polls,
		Emitted:      s.Emitted,
		GapWarnings:  s.GapWarnings,
		DurationSecs: int(s.Elapsed().Seconds()),
	}
}
