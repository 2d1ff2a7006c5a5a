package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/vburojevic/scalyr-tool/internal/api"
)

func hintForServerError(err *api.ServerError) string {
	if err == nil {
		return ""
	}
	switch err.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "The token was rejected; check that it has the right permission (Read Logs, Read Config or Write Config)"
	case http.StatusNotFound:
		return "Endpoint not found; check that --server points at the API host"
	case http.StatusTooManyRequests:
		return "Rate limited; wait a moment and retry, or use --priority low"
	}
	if err.StatusCode >= 500 {
		return "The server failed to process the request; retry later"
	}
	return ""
}

func hintForAPIError(err *api.APIError) string {
	if err == nil {
		return ""
	}
	status := strings.ToLower(err.Status)
	switch {
	case strings.Contains(status, "badtoken"), strings.Contains(status, "token"):
		return "The token was rejected; check that it has the right permission (Read Logs, Read Config or Write Config)"
	case strings.Contains(status, "badparam"):
		return "The server rejected a parameter; check the filter syntax and time range"
	case strings.Contains(status, "toobusy"), strings.Contains(status, "ratelimit"):
		return "The server is busy; retry later or use --priority low"
	}
	return ""
}

func hintForTransport(err *api.TransportError) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The request timed out; retry or narrow the query"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "Could not resolve the server host; check --server or scalyr_server"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return "The request timed out; retry or narrow the query"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "Could not connect to the server; check --server and your network"
	}
	return ""
}
