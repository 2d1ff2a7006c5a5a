package output

import (
	"io"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Emitter wraps NDJSONWriter and tags every line with one tail ID.
type Emitter struct {
	w      *NDJSONWriter
	tailID string
}

func NewEmitter(w io.Writer, tailID string) *Emitter {
	return &Emitter{w: NewNDJSONWriter(w), tailID: tailID}
}

func (e *Emitter) TailID() string                    { return e.tailID }
func (e *Emitter) Record(rec domain.LogRecord) error { return e.w.Write(rec, e.tailID) }
func (e *Emitter) Warning(msg string) error          { return e.w.WriteWarning(msg, e.tailID) }
func (e *Emitter) Error(code, msg, hint string) error {
	return e.w.WriteError(code, msg, hint, e.tailID)
}
func (e *Emitter) TailEnd(s *domain.TailSummary) error {
	s.TailID = e.tailID
	return e.w.WriteTailEnd(s)
}
