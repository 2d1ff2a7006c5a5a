package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// NDJSONWriter writes records and events as NDJSON
type NDJSONWriter struct {
	w       io.Writer
	encoder *json.Encoder
}

// NewNDJSONWriter creates a new NDJSON writer
func NewNDJSONWriter(w io.Writer) *NDJSONWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep log messages unescaped
	return &NDJSONWriter{
		w:       w,
		encoder: enc,
	}
}

// OutputRecord is the NDJSON form of a log record
type OutputRecord struct {
	Type          string         `json:"type"` // Always "log"
	SchemaVersion int            `json:"schemaVersion"`
	Timestamp     string         `json:"timestamp"`
	TimestampNS   int64          `json:"timestamp_ns"`
	Severity      string         `json:"severity"`
	Session       string         `json:"session"`
	Thread        string         `json:"thread,omitempty"`
	Message       string         `json:"message"`
	Attributes    map[string]any `json:"attributes,omitempty"`
	TailID        string         `json:"tail_id,omitempty"`
}

// WarningOutput represents a warning message
type WarningOutput struct {
	Type          string `json:"type"` // Always "warning"
	SchemaVersion int    `json:"schemaVersion"`
	Message       string `json:"message"`
	TailID        string `json:"tail_id,omitempty"`
}

// Write outputs a single log record
func (w *NDJSONWriter) Write(rec domain.LogRecord, tailID string) error {
	return w.encoder.Encode(OutputRecord{
		Type:          "log",
		SchemaVersion: SchemaVersion,
		Timestamp:     rec.Time().UTC().Format(time.RFC3339Nano),
		TimestampNS:   rec.Timestamp,
		Severity:      rec.Severity.String(),
		Session:       rec.Session,
		Thread:        rec.Thread,
		Message:       rec.TrimmedMessage(),
		Attributes:    rec.Attributes,
		TailID:        tailID,
	})
}

// WriteWarning outputs a warning message
func (w *NDJSONWriter) WriteWarning(message, tailID string) error {
	return w.encoder.Encode(&WarningOutput{
		Type:          "warning",
		SchemaVersion: SchemaVersion,
		Message:       message,
		TailID:        tailID,
	})
}

// WriteError outputs an error
func (w *NDJSONWriter) WriteError(code, message, hint, tailID string) error {
	err := domain.NewErrorOutput(code, message)
	err.Hint = hint
	err.TailID = tailID
	err.SchemaVersion = SchemaVersion
	return w.encoder.Encode(err)
}

// WriteTailEnd outputs the end-of-tail summary
func (w *NDJSONWriter) WriteTailEnd(summary *domain.TailSummary) error {
	summary.SchemaVersion = SchemaVersion
	return w.encoder.Encode(summary)
}
