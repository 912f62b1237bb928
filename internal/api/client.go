// Package api is the typed client for the clothing bot admin backend.
// Response envelopes are normalized and decoded into models here, once.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/dressdash/internal/models"
)

// RequestIDHeader carries a per request id the backend echoes in its logs
const RequestIDHeader = "X-Request-ID"

// TokenSource supplies the bearer token, empty when signed out
type TokenSource interface {
	Token() string
}

// Client calls the admin backend. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithTokenSource attaches the session that authorizes requests
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithTimeout bounds every request
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the request logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: SanitizeBaseURL(baseURL),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the sanitized base URL
func (c *Client) BaseURL() string { return c.baseURL }

// SanitizeBaseURL trims whitespace, a leading '@' left by copy-pasted env
// values, and trailing slashes
func SanitizeBaseURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "@")
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "/")
}

// Envelope is a normalized response body
type Envelope struct {
	Data      json.RawMessage
	Meta      models.Meta
	RequestID string
}

// normalize unwraps {data, meta} bodies. Bodies without a data field are
// the data themselves.
func normalize(body []byte) (Envelope, error) {
	var env Envelope
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		env.Data = json.RawMessage("null")
		return env, nil
	}
	if !json.Valid(trimmed) {
		return env, fmt.Errorf("response is not JSON")
	}

	env.Data = json.RawMessage(trimmed)
	if trimmed[0] != '{' {
		return env, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return env, err
	}
	if data, ok := fields["data"]; ok && !isNull(data) {
		env.Data = data
	}
	if meta, ok := fields["meta"]; ok && !isNull(meta) {
		// meta is informational; an unexpected shape is ignored
		_ = json.Unmarshal(meta, &env.Meta)
	}
	return env, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}

// errorMessage pulls a human message out of an error body
func errorMessage(body []byte) string {
	var fields map[string]any
	if json.Unmarshal(body, &fields) != nil {
		return ""
	}
	for _, key := range []string{"message", "detail", "error"} {
		if s, ok := fields[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// do sends one request and normalizes the response
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (Envelope, error) {
	requestID := uuid.NewString()

	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Envelope{}, fmt.Errorf("failed to encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return Envelope{}, &Error{
			Kind:      KindUnavailable,
			Message:   defaultMessage(KindUnavailable),
			RequestID: requestID,
			Err:       err,
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.logger.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)
	if err != nil {
		return Envelope{}, &Error{Kind: KindUnavailable, Status: resp.StatusCode, Message: defaultMessage(KindUnavailable), RequestID: requestID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := KindFromStatus(resp.StatusCode)
		msg := errorMessage(raw)
		if msg == "" {
			msg = defaultMessage(kind)
		}
		return Envelope{}, &Error{Kind: kind, Status: resp.StatusCode, Message: msg, RequestID: requestID}
	}

	env, err := normalize(raw)
	if err != nil {
		return Envelope{}, &Error{Kind: KindInternal, Status: resp.StatusCode, Message: "The server sent an unreadable response", RequestID: requestID, Err: err}
	}
	env.RequestID = requestID
	return env, nil
}

// decodeInto unmarshals the envelope data into out
func decodeInto(env Envelope, out any) error {
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: KindInternal, Message: "The server sent an unexpected response", RequestID: env.RequestID, Err: err}
	}
	return nil
}
