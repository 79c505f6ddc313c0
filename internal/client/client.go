// Package client implements the event relay: it forwards one hook event to
// the policy server and translates the verdict into the invoking editor's
// hook-response shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Devleaps/agent-policies/internal/core"
)

// RequestTimeout bounds one policy evaluation round trip. The editor's
// tool-use pipeline is blocked while the relay waits, so this stays short.
const RequestTimeout = 5 * time.Second

// Request is the wire envelope for one hook event. The event payload is
// forwarded exactly as received from the editor.
type Request struct {
	Bundles []string        `json:"bundles"`
	Event   json.RawMessage `json:"event"`
}

// Response is the policy server's verdict for one event.
type Response struct {
	Decision core.Decision `json:"decision"`
	Reason   string        `json:"reason,omitempty"`
	Guidance string        `json:"guidance,omitempty"`
}

// Client issues policy evaluation requests to one server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given server URL.
func New(serverURL string) *Client {
	return &Client{
		baseURL:    serverURL,
		httpClient: &http.Client{Timeout: RequestTimeout},
	}
}

// Evaluate submits one hook event and returns the server's decision.
// Transport failures and malformed responses are returned as errors; the
// caller applies the configured fallback behavior.
func (c *Client) Evaluate(ctx context.Context, editor core.Editor, event string, bundles []string, payload json.RawMessage) (*Response, error) {
	if bundles == nil {
		bundles = []string{}
	}
	body, err := json.Marshal(Request{Bundles: bundles, Event: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode policy request: %v", err)
	}

	url := fmt.Sprintf("%s/policy/%s/%s", c.baseURL, editor, event)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build policy request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("policy server unreachable at %s: %v", c.baseURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("policy server error: HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read policy response: %v", err)
	}

	var decision Response
	if err := json.Unmarshal(data, &decision); err != nil {
		return nil, fmt.Errorf("malformed policy response: %v", err)
	}
	if !decision.Decision.Valid() {
		return nil, fmt.Errorf("malformed policy response: unknown decision %q", decision.Decision)
	}
	return &decision, nil
}
