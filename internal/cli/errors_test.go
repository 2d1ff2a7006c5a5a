package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vburojevic/scalyr-tool/internal/api"
	"github.com/vburojevic/scalyr-tool/internal/config"
	"github.com/vburojevic/scalyr-tool/internal/output"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		hint     string
		withBody bool
	}{
		{"cli error", &CLIError{Code: CodeInput, Message: "bad", Hint: "fix it"}, CodeInput, "fix it", false},
		{"configuration", &config.ConfigurationError{Setting: "server", Message: "x", Hint: "set it"}, CodeConfiguration, "set it", false},
		{"wrapped configuration", fmt.Errorf("run: %w", &config.ConfigurationError{Hint: "h"}), CodeConfiguration, "h", false},
		{"server 401", &api.ServerError{StatusCode: 401, Body: []byte("no")}, CodeServer, "token was rejected", true},
		{"server 503", &api.ServerError{StatusCode: 503, Body: []byte("down")}, CodeServer, "retry later", true},
		{"malformed", &api.MalformedResponseError{Body: []byte("<html>")}, CodeMalformedResponse, "other than JSON", true},
		{"api badParam", &api.APIError{Status: "error/client/badParam", Message: "bad filter"}, CodeAPI, "filter syntax", false},
		{"api unknown status", &api.APIError{Status: "error/server"}, CodeAPI, "", false},
		{"transport timeout", &api.TransportError{Endpoint: "/api/query", Err: context.DeadlineExceeded}, CodeTransport, "timed out", false},
		{"transport dns", &api.TransportError{Err: &net.DNSError{Name: "nope.invalid"}}, CodeTransport, "resolve the server host", false},
		{"plain error", errors.New("boom"), CodeUnknown, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, hint, body := classify(tt.err)
			assert.Equal(t, tt.code, code)
			if tt.hint == "" {
				assert.Empty(t, hint)
			} else {
				assert.Contains(t, hint, tt.hint)
			}
			assert.Equal(t, tt.withBody, len(body) > 0)
		})
	}
}

func TestHintForServerError(t *testing.T) {
	assert.Contains(t, hintForServerError(&api.ServerError{StatusCode: http.StatusNotFound}), "--server")
	assert.Contains(t, hintForServerError(&api.ServerError{StatusCode: http.StatusTooManyRequests}), "--priority low")
	assert.Empty(t, hintForServerError(&api.ServerError{StatusCode: http.StatusBadRequest}))
	assert.Empty(t, hintForServerError(nil))
}

func TestReportError(t *testing.T) {
	t.Run("text report with body and hint", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("")
		ReportError(globals, &api.ServerError{StatusCode: 500, Reason: "Internal Server Error", Body: []byte("stack trace\n")})

		assert.Empty(t, stdout.String())
		lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, "Error [SERVER_ERROR]: server returned HTTP 500 Internal Server Error", lines[0])
		assert.Equal(t, "Response body:", lines[1])
		assert.Equal(t, "stack trace", lines[2])
		assert.True(t, strings.HasPrefix(lines[3], "Hint: "))
	})

	t.Run("json tail also writes an NDJSON error", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("")
		globals.emitter = output.NewEmitter(stdout, "tail-1")

		ReportError(globals, &api.APIError{Status: "error/client/badToken", Message: "invalid token"})

		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &m))
		assert.Equal(t, "error", m["type"])
		assert.Equal(t, CodeAPI, m["code"])
		assert.Equal(t, "tail-1", m["tail_id"])
		assert.Contains(t, m["hint"], "token")
		assert.Contains(t, stderr.String(), "Error [API_ERROR]: invalid token (status: error/client/badToken)")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		globals, stdout, stderr := testGlobals("")
		ReportError(globals, nil)
		assert.Empty(t, stdout.String())
		assert.Empty(t, stderr.String())
	})
}
