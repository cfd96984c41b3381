package pingclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lead-relay-backend/internal/domain"
)

const (
	DefaultTimeout = 15 * time.Second
	// maxBodyBytes caps how much of an upstream answer is kept
	maxBodyBytes = 1 << 20
)

// Client posts ping requests to the lead marketplace
type Client struct {
	httpClient *http.Client
}

var _ domain.FormPoster = (*Client)(nil)

// NewClient creates a ping client. A non-positive timeout falls back to DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP wraps an existing http.Client
func NewClientWithHTTP(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// PostForm sends form as application/x-www-form-urlencoded to endpoint.
// Failures after the request is built wrap domain.ErrUpstreamUnreachable.
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values) (*domain.UpstreamResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating ping request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", domain.ErrUpstreamUnreachable, err)
	}

	return &domain.UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
