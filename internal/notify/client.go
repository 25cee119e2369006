// Package notify is the HTTP client for the order notification endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/galactic-greens/storefront/internal/models"
)

const (
	DefaultEndpoint = "http://localhost:8080/api/send-email"
	DefaultTimeout  = 15 * time.Second

	// responses larger than this are not order acknowledgements
	maxResponseBytes = 64 << 10
)

// Client posts orders to the notification endpoint
type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for endpoint. A non-positive timeout falls back
// to DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithHTTP creates a client using a caller supplied http.Client
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, client: httpClient}
}

// Notify sends the order. It returns an error only when the call could not
// complete or the reply could not be decoded; a decoded reply is returned as
// is, whatever its status code.
func (c *Client) Notify(ctx context.Context, req models.OrderRequest) (*models.NotifyResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send order: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var out models.NotifyResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("malformed response (status %d): %w", resp.StatusCode, err)
	}
	out.StatusCode = resp.StatusCode

	return &out, nil
}
