package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jordaneaster/phoenix/internal/domain"
)

// DefaultTimeout bounds every backend call so one slow lookup cannot stall
// a whole aggregation.
const DefaultTimeout = 8 * time.Second

// Client issues REST queries against the backend's PostgREST data API.
// A Client is stateless and safe for concurrent use.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpc.Timeout = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger sets the client logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for the given project URL and API key. The key is
// sent as the apikey header and as the bearer token for requests that carry
// no caller token in their context.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: DefaultTimeout},
		logger:  slog.Default(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured project URL.
func (c *Client) BaseURL() string { return c.baseURL }

// From starts a query against the named resource collection.
func (c *Client) From(table string) *Query {
	return &Query{c: c, table: table, selectCols: "*"}
}

// RPC invokes a named server-side procedure and decodes the raw result.
// RPC result shapes are defined by the backend schema, not this codebase,
// so the raw JSON is returned for the caller to normalize (UnwrapFirstOrValue).
func (c *Client) RPC(ctx context.Context, name string, params map[string]any) (json.RawMessage, error) {
	body := params
	if body == nil {
		body = map[string]any{}
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("encode rpc params: %v", err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rest/v1/rpc/"+name, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeaders(ctx, req)

	raw, _, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// setAuthHeaders applies the apikey header and bearer token. A caller token
// stored in the context takes precedence so row-level security applies to
// the authenticated user rather than the service key.
func (c *Client) setAuthHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	token := c.apiKey
	if t, ok := domain.AccessTokenFromContext(ctx); ok && t != "" {
		token = t
	}
	req.Header.Set("Authorization", "Bearer "+token)
}

// do executes the request and returns the response body and headers, mapping
// any failure to *Error.
func (c *Client) do(req *http.Request) (json.RawMessage, http.Header, error) {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, nil, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, resp.Header, parseErrorBody(resp.StatusCode, body)
	}
	if readErr != nil {
		return nil, resp.Header, &Error{Status: resp.StatusCode, Message: readErr.Error()}
	}
	return body, resp.Header, nil
}

// parseErrorBody extracts the backend's message and code from an error
// response. PostgREST and GoTrue use several shapes; all are tolerated.
func parseErrorBody(status int, body []byte) *Error {
	var payload struct {
		Message   string `json:"message"`
		Msg       string `json:"msg"`
		ErrorDesc string `json:"error_description"`
		ErrorStr  string `json:"error"`
		Code      any    `json:"code"`
		ErrorCode string `json:"error_code"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := payload.Message
	if msg == "" {
		msg = payload.Msg
	}
	if msg == "" {
		msg = payload.ErrorDesc
	}
	if msg == "" {
		msg = payload.ErrorStr
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	code := payload.ErrorCode
	if code == "" {
		if s, ok := payload.Code.(string); ok {
			code = s
		}
	}
	return &Error{Status: status, Code: code, Message: msg}
}
