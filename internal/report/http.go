package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/okian/arena/internal/domain/board"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// get performs a GET and decodes a JSON body into v. Non-2xx answers are
// returned as ErrRemote carrying the API error code.
func (c *HTTPClient) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRemote, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", ErrRemote, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Code != "" {
			return fmt.Errorf("%w: %d %s: %s", ErrRemote, resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}
	if v == nil {
		return nil
	}
	return json.Unmarshal(body, v)
}

// FetchBoard reads the board of period from a running dashboard.
func (c *HTTPClient) FetchBoard(ctx context.Context, period string) (board.Board, error) {
	path := "/api/board"
	if period != "" {
		path += "?period=" + url.QueryEscape(period)
	}
	var b board.Board
	if err := c.get(ctx, path, &b); err != nil {
		return board.Board{}, err
	}
	return b, nil
}

// CheckHealth returns nil when the dashboard has a snapshot loaded.
func (c *HTTPClient) CheckHealth(ctx context.Context) error {
	return c.get(ctx, "/healthz", nil)
}
