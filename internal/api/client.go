// Package api is the typed client for the exhibits backend REST API. The
// backend owns the record contract; this package only templates endpoints,
// attaches the access token, and unwraps the JSON envelope every response
// arrives in.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoint templates. Path parameters use the backend's :name placeholder
// convention and are expanded per call.
const (
	epLogin = "/api/v1/users/login"

	epExhibits = "/api/v1/exhibits"
	epExhibit  = "/api/v1/exhibits/:exhibit_id"

	epHeadings = "/api/v1/exhibits/:exhibit_id/headings"
	epHeading  = "/api/v1/exhibits/:exhibit_id/headings/:heading_id"

	epGrids     = "/api/v1/exhibits/:exhibit_id/grids"
	epGrid      = "/api/v1/exhibits/:exhibit_id/grids/:grid_id"
	epGridItems = "/api/v1/exhibits/:exhibit_id/grids/:grid_id/items"
	epGridItem  = "/api/v1/exhibits/:exhibit_id/grids/:grid_id/items/:item_id"

	epTimelines     = "/api/v1/exhibits/:exhibit_id/timelines"
	epTimeline      = "/api/v1/exhibits/:exhibit_id/timelines/:timeline_id"
	epTimelineItems = "/api/v1/exhibits/:exhibit_id/timelines/:timeline_id/items"
	epTimelineItem  = "/api/v1/exhibits/:exhibit_id/timelines/:timeline_id/items/:item_id"

	epMedia     = "/api/v1/media/:exhibit_id"
	epMediaFile = "/api/v1/media/:exhibit_id/:filename"
)

// Client provides access to the exhibits backend. A zero token is valid for
// the login call only; every other endpoint requires WithToken first.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a backend client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// WithToken returns a copy of the client that sends the given access token
// in the x-access-token header.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Error is a failed backend call: the HTTP status and the backend's message,
// surfaced verbatim to the operator.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (%d): %s", e.StatusCode, e.Message)
}

// envelope is the backend's uniform response shape:
// {status, message, data: {data: [...]}}.
type envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Data json.RawMessage `json:"data"`
	} `json:"data"`
}

// expand substitutes :name placeholders in an endpoint template.
func expand(template string, params map[string]string) string {
	path := template
	for name, value := range params {
		path = strings.ReplaceAll(path, ":"+name, value)
	}
	return path
}

// do performs one backend call and returns the inner data payload. Request
// bodies are JSON-encoded; non-2xx responses become *Error with the
// backend's message when one was sent.
func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("x-access-token", c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return nil, fmt.Errorf("decoding response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := env.Message
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	return env.Data.Data, nil
}

// getList decodes a list payload into out.
func (c *Client) getList(ctx context.Context, path string, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding records: %w", err)
	}
	return nil
}

// createdUUID extracts the uuid of a freshly created record. The backend
// answers create calls with the record wrapped in the usual list envelope.
func createdUUID(data json.RawMessage) (string, error) {
	var created []struct {
		UUID string `json:"uuid"`
	}
	if err := json.Unmarshal(data, &created); err != nil || len(created) == 0 {
		// Some endpoints return a bare object rather than a list.
		var single struct {
			UUID string `json:"uuid"`
		}
		if err := json.Unmarshal(data, &single); err != nil {
			return "", fmt.Errorf("decoding created record: %w", err)
		}
		return single.UUID, nil
	}
	return created[0].UUID, nil
}
