package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeverityLetter(t *testing.T) {
	t.Run("maps the seven ordinal severities", func(t *testing.T) {
		var got string
		for s := SeverityFinest; s <= SeverityFatal; s++ {
			got += s.Letter()
		}
		assert.Equal(t, "LKJIWEF", got)
	})

	t.Run("out of range falls back instead of panicking", func(t *testing.T) {
		assert.Equal(t, "?", Severity(7).Letter())
		assert.Equal(t, "?", Severity(-3).Letter())
		assert.Equal(t, "?", SeverityUnknown.Letter())
		assert.Equal(t, "unknown", Severity(42).String())
	})
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity("Warning")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, s)

	s, err = ParseSeverity("e")
	require.NoError(t, err)
	assert.Equal(t, SeverityError, s)

	_, err = ParseSeverity("loud")
	assert.Error(t, err)
}

func TestLogRecord(t *testing.T) {
	rec := LogRecord{
		Timestamp: 1700000000123456789,
		Session:   "sess-1",
		Severity:  SeverityInfo,
		Message:   "hello world \n\t",
		Attributes: map[string]any{
			"zeta":  1.0,
			"alpha": "a",
			"mid":   true,
		},
	}

	t.Run("key is timestamp plus session", func(t *testing.T) {
		assert.Equal(t, RecordKey{Timestamp: 1700000000123456789, Session: "sess-1"}, rec.Key())
	})

	t.Run("trailing whitespace is dropped", func(t *testing.T) {
		assert.Equal(t, "hello world", rec.TrimmedMessage())
	})

	t.Run("attribute keys are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, rec.AttributeKeys())
	})

	t.Run("field resolves record fields before attributes", func(t *testing.T) {
		v, ok := rec.Field("message")
		require.True(t, ok)
		assert.Equal(t, "hello world", v)

		v, ok = rec.Field("alpha")
		require.True(t, ok)
		assert.Equal(t, "a", v)

		_, ok = rec.Field("missing")
		assert.False(t, ok)

		_, ok = (&LogRecord{Severity: SeverityUnknown}).Field("severity")
		assert.False(t, ok)
	})

	t.Run("time converts nanoseconds", func(t *testing.T) {
		assert.Equal(t, int64(1700000000123456789), rec.Time().UnixNano())
	})
}

func TestSessionInfoLabel(t *testing.T) {
	assert.Equal(t, "web-1 /var/log/app.log", SessionInfo{ServerHost: "web-1", LogFile: "/var/log/app.log"}.Label())
	assert.Equal(t, "web-1", SessionInfo{ServerHost: "web-1"}.Label())
	assert.Equal(t, "/var/log/app.log", SessionInfo{LogFile: "/var/log/app.log"}.Label())
	assert.Equal(t, "", SessionInfo{}.Label())
}
