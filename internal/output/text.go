package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vburojevic/scalyr-tool/internal/domain"
)

// Text layouts for log records
const (
	ModeMultiline   = "multiline"
	ModeSingleline  = "singleline"
	ModeMessageOnly = "messageonly"
)

// TimestampLayout is used for record timestamps in text output.
const TimestampLayout = "2006-01-02 15:04:05.000"

// TextWriter writes log records as human-readable text
type TextWriter struct {
	w        io.Writer
	mode     string
	loc      *time.Location
	paint    Painter
	sessions map[string]domain.SessionInfo
}

// TextOption configures a TextWriter
type TextOption func(*TextWriter)

// WithLocation sets the zone timestamps are printed in (default: local).
func WithLocation(loc *time.Location) TextOption {
	return func(t *TextWriter) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithColor enables lipgloss styling.
func WithColor(enabled bool) TextOption {
	return func(t *TextWriter) { t.paint.Enabled = enabled }
}

// WithSessions supplies session metadata used to label records.
func WithSessions(sessions map[string]domain.SessionInfo) TextOption {
	return func(t *TextWriter) { t.sessions = sessions }
}

// NewTextWriter creates a new text writer. Unknown modes fall back to multiline.
func NewTextWriter(w io.Writer, mode string, opts ...TextOption) *TextWriter {
	switch mode {
	case ModeMultiline, ModeSingleline, ModeMessageOnly:
	default:
		mode = ModeMultiline
	}
	t := &TextWriter{w: w, mode: mode, loc: time.Local}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Write outputs a single record in the configured layout
func (t *TextWriter) Write(rec domain.LogRecord) error {
	var line string
	switch t.mode {
	case ModeMessageOnly:
		line = rec.TrimmedMessage() + "\n"
	case ModeSingleline:
		line = t.singleline(rec)
	default:
		line = t.multiline(rec)
	}
	_, err := io.WriteString(t.w, line)
	return err
}

// WriteAll outputs records in order, stopping at the first write error.
func (t *TextWriter) WriteAll(recs []domain.LogRecord) error {
	for _, rec := range recs {
		if err := t.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (t *TextWriter) prefix(rec domain.LogRecord) string {
	ts := t.paint.Paint(Styles.Timestamp, rec.Time().In(t.loc).Format(TimestampLayout))
	sev := t.paint.Paint(SeverityStyle(rec.Severity), rec.Severity.Letter())
	return ts + " " + sev
}

func (t *TextWriter) singleline(rec domain.LogRecord) string {
	var b strings.Builder
	b.WriteString(t.prefix(rec))
	b.WriteString(" ")
	b.WriteString(t.paint.Paint(SeverityStyle(rec.Severity), rec.TrimmedMessage()))
	for _, k := range rec.AttributeKeys() {
		b.WriteString(" ")
		b.WriteString(t.paint.Paint(Styles.AttrKey, k))
		b.WriteString("=")
		b.WriteString(FormatValue(rec.Attributes[k]))
	}
	b.WriteString("\n")
	return b.String()
}

func (t *TextWriter) multiline(rec domain.LogRecord) string {
	var b strings.Builder
	b.WriteString(t.prefix(rec))
	if label := t.sessions[rec.Session].Label(); label != "" {
		b.WriteString(" ")
		b.WriteString(t.paint.Paint(Styles.Session, "["+label+"]"))
	}
	if rec.Thread != "" {
		b.WriteString(" (" + rec.Thread + ")")
	}
	b.WriteString("\n")
	if msg := rec.TrimmedMessage(); msg != "" {
		b.WriteString("  ")
		b.WriteString(t.paint.Paint(SeverityStyle(rec.Severity), msg))
		b.WriteString("\n")
	}
	for _, k := range rec.AttributeKeys() {
		b.WriteString("  ")
		b.WriteString(t.paint.Paint(Styles.AttrKey, k))
		b.WriteString(": ")
		b.WriteString(FormatValue(rec.Attributes[k]))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatValue renders a decoded JSON scalar for text and CSV output.
// Integral numbers print without a fraction.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
