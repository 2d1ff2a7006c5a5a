package api

import (
	"fmt"
	"strings"
)

// TransportError wraps a failure to complete the HTTP exchange at all
// (DNS, connection refused, TLS, context cancellation).
type TransportError struct {
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ServerError is returned for any non-200 HTTP status.
type ServerError struct {
	StatusCode int
	Reason     string
	Body       []byte
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned HTTP %d %s", e.StatusCode, e.Reason)
}

// MalformedResponseError is returned when a 200 response is not valid JSON.
type MalformedResponseError struct {
	Body []byte
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response from server: %v", e.Err)
	}
	return "malformed response from server: body is not valid JSON"
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// APIError is a well-formed response whose status does not begin with "success".
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		msg = "request failed"
	}
	if e.Status == "" {
		return msg
	}
	return fmt.Sprintf("%s (status: %s)", msg, e.Status)
}
