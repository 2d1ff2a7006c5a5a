package domain

// TailSummary is emitted when a tail session ends
type TailSummary struct {
	Type          string `json:"type"`          // Always "tail_end"
	SchemaVersion int    `json:"schemaVersion"` // Schema version for compatibility
	TailID        string `json:"tail_id,omitempty"`
	Reason        string `json:"reason"` // "expired" or "interrupted"
	Polls         int    `json:"polls"`
	Emitted       int    `json:"emitted"`
	GapWarnings   int    `json:"gap_warnings"`
	DurationSecs  int    `json:"duration_seconds"`
}

// ErrorOutput represents a structured error for NDJSON output
type ErrorOutput struct {
	Type          string `json:"type"`           // Always "error"
	SchemaVersion int    `json:"schemaVersion"`  // Schema version for compatibility
	Code          string `json:"code"`           // Machine-readable error code
	Message       string `json:"message"`        // Human-readable message
	Hint          string `json:"hint,omitempty"` // Suggested fix
	TailID        string `json:"tail_id,omitempty"`
}

// NewErrorOutput creates a new error output
// Note: SchemaVersion should be set by the caller (output package)
func NewErrorOutput(code, message string) *ErrorOutput {
	return &ErrorOutput{
		Type:    "error",
		Code:    code,
		Message: message,
	}
}
