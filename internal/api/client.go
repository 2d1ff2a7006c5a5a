package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

// Client posts JSON requests to the log API
type Client struct {
	base *url.URL
	http *http.Client
	log  *zap.SugaredLogger
	clk  clock.Clock
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for verbose request/response echo.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithClock sets the clock used for request timing.
func WithClock(clk clock.Clock) Option {
	return func(c *Client) {
		if clk != nil {
			c.clk = clk
		}
	}
}

// Response is a successful API reply
type Response struct {
	Raw    []byte
	JSON   gjson.Result
	Status string
}

// NewClient builds a client for server. A missing scheme means https.
func NewClient(server string, opts ...Option) (*Client, error) {
	base, err := ParseServer(server)
	if err != nil {
		return nil, err
	}
	c := &Client{
		base: base,
		http: &http.Client{},
		log:  zap.NewNop().Sugar(),
		clk:  clock.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ParseServer normalizes the --server value into a base URL.
func ParseServer(server string) (*url.URL, error) {
	server = strings.TrimSpace(server)
	if server == "" {
		return nil, fmt.Errorf("server address is empty")
	}
	lower := strings.ToLower(server)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		server = "https://" + server
	}
	base, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server address %q: %w", server, err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("invalid server address %q: missing host", server)
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""
	return base, nil
}

// BaseURL returns the normalized server URL.
func (c *Client) BaseURL() string {
	return c.base.String()
}

// Execute POSTs body as JSON to endpoint and validates the response envelope.
func (c *Client) Execute(ctx context.Context, endpoint string, body any) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", endpoint, err)
	}

	target := c.base.ResolveReference(&url.URL{Path: endpoint})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.echoRequest(req, payload)

	start := c.clk.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("read response body: %w", err)}
	}
	c.log.Debugf("%s: HTTP %d in %s, %s received",
		endpoint, resp.StatusCode, c.clk.Since(start).Round(time.Millisecond), humanize.Bytes(uint64(len(raw))))

	if resp.StatusCode != http.StatusOK {
		return nil, &ServerError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
			Body:       raw,
		}
	}

	if !gjson.ValidBytes(raw) {
		return nil, &MalformedResponseError{Body: raw}
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsObject() {
		return nil, &MalformedResponseError{Body: raw, Err: fmt.Errorf("expected a JSON object")}
	}

	status := parsed.Get("status").String()
	if !strings.HasPrefix(status, "success") {
		return nil, &APIError{Status: status, Message: parsed.Get("message").String()}
	}

	return &Response{Raw: raw, JSON: parsed, Status: status}, nil
}

func (c *Client) echoRequest(req *http.Request, payload []byte) {
	if !c.log.Desugar().Core().Enabled(zap.DebugLevel) {
		return
	}
	c.log.Debugf("POST %s", req.URL.String())
	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.log.Debugf("  %s: %s", name, strings.Join(req.Header[name], ", "))
	}
	c.log.Debugf("request body:\n%s", pretty.Pretty(redactToken(payload)))
}

// redactToken replaces the token value so verbose output can be shared.
func redactToken(payload []byte) []byte {
	var body map[string]any
	if err := json.Unmarshal(payload, &body); err != nil {
		return payload
	}
	tok, ok := body["token"].(string)
	if !ok || tok == "" {
		return payload
	}
	if len(tok) > 4 {
		body["token"] = tok[:4] + "..."
	} else {
		body["token"] = "..."
	}
	out, err := json.Marshal(body)
	if err != nil {
		return payload
	}
	return out
}

func reasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); reason != "" {
		return reason
	}
	return http.StatusText(resp.StatusCode)
}
