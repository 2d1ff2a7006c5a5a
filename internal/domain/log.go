package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Severity is the server's ordinal log severity (0 = finest, 6 = fatal)
type Severity int

const (
	SeverityFinest Severity = iota
	SeverityFiner
	SeverityFine
	SeverityInfo
	SeverityWarning
	SeverityError
	SeverityFatal

	// SeverityUnknown marks a record the server sent without a severity.
	SeverityUnknown Severity = -1
)

var severityLetters = [...]string{"L", "K", "J", "I", "W", "E", "F"}

var severityNames = [...]string{"finest", "finer", "fine", "info", "warning", "error", "fatal"}

// Valid reports whether s is one of the seven ordinal severities.
func (s Severity) Valid() bool {
	return s >= SeverityFinest && s <= SeverityFatal
}

// Letter returns the single-letter indicator used by text output.
// Out-of-range values map to "?".
func (s Severity) Letter() string {
	if !s.Valid() {
		return "?"
	}
	return severityLetters[s]
}

// String returns the lower-case severity name, or "unknown".
func (s Severity) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity converts a severity name or letter to Severity
func ParseSeverity(s string) (Severity, error) {
	s = strings.TrimSpace(s)
	for i, name := range severityNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, severityLetters[i]) {
			return Severity(i), nil
		}
	}
	return SeverityUnknown, fmt.Errorf("unknown severity %q", s)
}

// RecordKey identifies a record for deduplication. Distinct sessions may
// share a timestamp, so it is not a sort key.
type RecordKey struct {
	Timestamp int64
	Session   string
}

// LogRecord is one event reported by the query API
type LogRecord struct {
	Timestamp  int64          `json:"timestamp"` // ns since epoch
	Session    string         `json:"session"`
	Severity   Severity       `json:"severity"`
	Message    string         `json:"message,omitempty"`
	Thread     string         `json:"thread,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Key returns the dedup key of the record.
func (r *LogRecord) Key() RecordKey {
	return RecordKey{Timestamp: r.Timestamp, Session: r.Session}
}

// Time converts the nanosecond timestamp to a time.Time
func (r *LogRecord) Time() time.Time {
	return time.Unix(0, r.Timestamp)
}

// TrimmedMessage returns the message without trailing whitespace.
func (r *LogRecord) TrimmedMessage() string {
	return strings.TrimRight(r.Message, " \t\r\n")
}

// AttributeKeys returns attribute names in lexicographic order.
func (r *LogRecord) AttributeKeys() []string {
	keys := make([]string, 0, len(r.Attributes))
	for k := range r.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Field looks up a column by name: the well-known record fields first,
// then the attributes. The second return is false when nothing matched.
func (r *LogRecord) Field(name string) (any, bool) {
	switch name {
	case "timestamp":
		return r.Timestamp, true
	case "session":
		return r.Session, r.Session != ""
	case "severity":
		if r.Severity == SeverityUnknown {
			return nil, false
		}
		return int(r.Severity), true
	case "message":
		return r.TrimmedMessage(), true
	case "thread":
		return r.Thread, r.Thread != ""
	}
	v, ok := r.Attributes[name]
	return v, ok
}
