package tail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionObserve(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	s := NewSession(start, 2, 0)

	assert.True(t, s.FirstPoll)
	assert.Equal(t, DefaultSeenCapacity, s.Seen.Cap())

	b := s.Observe(newestFirst(10, 5), 5)
	assert.Len(t, b.Display, 2)
	assert.False(t, s.FirstPoll)
	assert.Zero(t, s.Backfill)
	assert.Equal(t, 1, s.Polls)

	b = s.Observe(newestFirst(20, 5), 5)
	assert.True(t, b.Gap)
	assert.Equal(t, 2, s.Polls)
	assert.Equal(t, 1, s.GapWarnings)
}

func TestSessionSummary(t *testing.T) {
	start := time.Unix(1_700_000_000, 0)
	s := NewSession(start, 10, 0)
	s.Now = start.Add(90 * time.Second)
	s.Polls = 9
	s.Emitted = 42
	s.GapWarnings = 1

	sum := s.Summary("abc", "expired")
	assert.Equal(t, "tail_end", sum.Type)
	assert.Equal(t, "abc", sum.TailID)
	assert.Equal(t, "expired", sum.Reason)
	assert.Equal(t, 9, sum.Polls)
	assert.Equal(t, 42, sum.Emitted)
	assert.Equal(t, 1, sum.GapWarnings)
	assert.Equal(t, 90, sum.DurationSecs)
	assert.Equal(t, 90*time.Second, s.Elapsed())
}
