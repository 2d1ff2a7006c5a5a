package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// fakeServer answers every request with status and body, recording the last request.
func fakeServer(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.contentType = r.Header.Get("Content-Type")
		rec.body, _ = io.ReadAll(r.Body)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

type recorded struct {
	method      string
	path        string
	contentType string
	body        []byte
}

func TestParseServer(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.scalyr.com", "https://www.scalyr.com"},
		{"www.scalyr.com", "https://www.scalyr.com"},
		{"http://localhost:8080/", "http://localhost:8080"},
		{"HTTP://Example.com/path?x=1", "http://Example.com"},
		{"  eu.scalyr.com  ", "https://eu.scalyr.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, err := ParseServer(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseServer(" ")
		assert.Error(t, err)
	})
}

func TestExecute(t *testing.T) {
	t.Run("posts JSON and returns parsed body", func(t *testing.T) {
		srv, rec := fakeServer(t, http.StatusOK, `{"status":"success","matches":[]}`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		resp, err := client.Execute(context.Background(), EndpointQuery, NewLogQuery("tok-123"))
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, rec.method)
		assert.Equal(t, "/api/query", rec.path)
		assert.Equal(t, "application/json", rec.contentType)

		var sent map[string]any
		require.NoError(t, json.Unmarshal(rec.body, &sent))
		assert.Equal(t, "tok-123", sent["token"])
		assert.Equal(t, "log", sent["queryType"])
		assert.Equal(t, PageModeHead, sent["pageMode"])
		assert.Equal(t, PriorityHigh, sent["priority"])

		assert.Equal(t, "success", resp.Status)
		assert.True(t, resp.JSON.Get("matches").IsArray())
		assert.JSONEq(t, `{"status":"success","matches":[]}`, string(resp.Raw))
	})

	t.Run("non-200 is a server error carrying the body", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusInternalServerError, `{"status":"success"}`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Execute(context.Background(), EndpointListFiles, ListFilesRequest{Token: "t"})
		var srvErr *ServerError
		require.ErrorAs(t, err, &srvErr)
		assert.Equal(t, 500, srvErr.StatusCode)
		assert.Equal(t, "Internal Server Error", srvErr.Reason)
		assert.Equal(t, `{"status":"success"}`, string(srvErr.Body))
	})

	t.Run("invalid JSON on 200 is malformed", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusOK, `<html>oops</html>`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Execute(context.Background(), EndpointListFiles, ListFilesRequest{Token: "t"})
		var malformed *MalformedResponseError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "<html>oops</html>", string(malformed.Body))
	})

	t.Run("JSON that is not an object is malformed", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusOK, `[1,2,3]`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Execute(context.Background(), EndpointListFiles, ListFilesRequest{Token: "t"})
		var malformed *MalformedResponseError
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("non-success status is an API error with the server message", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusOK, `{"status":"error/client/badParam","message":"maxCount must be positive"}`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		_, err = client.Execute(context.Background(), EndpointQuery, NewLogQuery("t"))
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "error/client/badParam", apiErr.Status)
		assert.Equal(t, "maxCount must be positive", apiErr.Message)
		assert.Contains(t, err.Error(), "maxCount must be positive")
	})

	t.Run("success prefix variants are accepted", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusOK, `{"status":"success/noSuchFile","path":"/x"}`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		resp, err := client.Execute(context.Background(), EndpointGetFile, GetFileRequest{Token: "t", Path: "/x"})
		require.NoError(t, err)
		assert.Equal(t, StatusNoSuchFile, resp.Status)
	})

	t.Run("cancelled context is a transport error", func(t *testing.T) {
		srv, _ := fakeServer(t, http.StatusOK, `{"status":"success"}`)
		client, err := NewClient(srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = client.Execute(ctx, EndpointListFiles, ListFilesRequest{Token: "t"})
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

func TestExecuteVerboseEcho(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusOK, `{"status":"success","paths":[]}`)
	core, logs := observer.New(zapcore.DebugLevel)
	client, err := NewClient(srv.URL, WithLogger(zap.New(core).Sugar()))
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), EndpointListFiles, ListFilesRequest{Token: "secret-token"})
	require.NoError(t, err)

	var all strings.Builder
	for _, entry := range logs.All() {
		all.WriteString(entry.Message)
		all.WriteString("\n")
	}
	out := all.String()
	assert.Contains(t, out, "POST "+srv.URL+"/listFiles")
	assert.Contains(t, out, "Content-Type: application/json")
	assert.Contains(t, out, `"token": "secr..."`)
	assert.NotContains(t, out, "secret-token")
	assert.Contains(t, out, "/listFiles: HTTP 200")
}

func TestExecuteQuietLoggerSkipsEcho(t *testing.T) {
	srv, _ := fakeServer(t, http.StatusOK, `{"status":"success"}`)
	core, logs := observer.New(zapcore.WarnLevel)
	client, err := NewClient(srv.URL, WithLogger(zap.New(core).Sugar()))
	require.NoError(t, err)

	_, err = client.Execute(context.Background(), EndpointListFiles, ListFilesRequest{Token: "t"})
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
