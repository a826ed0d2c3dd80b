package axle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	listPath = "/transactions/list/"

	// DefaultTimeout bounds a single upstream call. The API has no
	// retry policy at any layer; a slow upstream fails the turn.
	DefaultTimeout = 30 * time.Second
)

// Client talks to the Axle transaction API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a transaction API client. The bearer credential is
// normalized once here: a raw token gains the "Bearer " prefix, a
// pre-prefixed one passes through unchanged.
func NewClient(baseURL, token string) *Client {
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetTimeout overrides the HTTP client timeout.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// ListTransactions fetches the load listing for the given query and returns
// the raw result records. The body is always read in full as bytes before
// any decode: the upstream is not trusted to pair status codes with JSON.
func (c *Client) ListTransactions(ctx context.Context, query url.Values) ([]RawLoad, error) {
	raw, err := c.get(ctx, query.Encode())
	if err != nil {
		return nil, err
	}

	if raw.StatusCode < 200 || raw.StatusCode > 299 {
		return nil, newUpstreamError(raw.StatusCode, raw.Body)
	}

	var parsed listResponse
	if err := json.Unmarshal(raw.Body, &parsed); err != nil {
		return nil, &MalformedResponseError{Reason: "body is not valid JSON", Err: err}
	}
	if parsed.Data == nil || parsed.Data.Result == nil {
		return nil, &MalformedResponseError{Reason: "data.result array missing"}
	}

	return parsed.Data.Result, nil
}

// Passthrough forwards a raw query string to the listing endpoint and
// relays status, body, and content type unchanged. Legacy behavior for the
// old web client; no sanitization happens on this path.
func (c *Client) Passthrough(ctx context.Context, rawQuery string) (*RawResult, error) {
	return c.get(ctx, rawQuery)
}

func (c *Client) get(ctx context.Context, rawQuery string) (*RawResult, error) {
	u := c.baseURL + listPath
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("axle: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("axle: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("axle: failed to read response body: %w", err)
	}

	return &RawResult{
		StatusCode:  resp.StatusCode,
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
