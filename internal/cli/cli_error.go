package cli

// Error codes reported by ReportError
const (
	CodeConfiguration     = "CONFIGURATION_ERROR"
	CodeTransport         = "TRANSPORT_ERROR"
	CodeServer            = "SERVER_ERROR"
	CodeMalformedResponse = "MALFORMED_RESPONSE"
	CodeAPI               = "API_ERROR"
	CodeInput             = "INPUT_ERROR"
	CodeOutput            = "OUTPUT_ERROR"
	CodeUnknown           = "ERROR"
)

// CLIError is a structured error used for consistent NDJSON/text emission.
type CLIError struct {
	Code    string
	Message string
	Hint    string
	Err     error
}

func (e *CLIError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
