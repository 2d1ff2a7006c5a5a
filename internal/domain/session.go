package domain

// SessionInfo describes the log stream a record came from, as reported in
// the "sessions" block of a query response.
type SessionInfo struct {
	ServerHost string            `json:"serverHost,omitempty"`
	LogFile    string            `json:"logfile,omitempty"`
	Fields     map[string]string `json:"fields,omitempty"` // any other session-level fields
}

// Label returns "host logfile" for display, skipping missing parts.
func (s SessionInfo) Label() string {
	switch {
	case s.ServerHost != "" && s.LogFile != "":
		return s.ServerHost + " " + s.LogFile
	case s.ServerHost != "":
		return s.ServerHost
	default:
		return s.LogFile
	}
}

// QueryResult is the decoded body of a log query
type QueryResult struct {
	Records       []LogRecord
	Sessions      map[string]SessionInfo
	ExecutionTime int64 // ms, as reported by the server
	Continuation  string
}
