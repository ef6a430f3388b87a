package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"
)

// DefaultTimeout applies when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Client is a JSON HTTP client for external APIs that authenticate with a
// bearer token (payment processor, email provider).
type Client struct {
	BaseURL    string
	BearerKey  string
	HTTPClient *nethttp.Client
}

// NewClient creates a new HTTP client
func NewClient(baseURL, bearerKey string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		BaseURL:   baseURL,
		BearerKey: bearerKey,
		HTTPClient: &nethttp.Client{
			Timeout: timeout,
		},
	}
}

// PostJSON performs a POST request with a JSON body and decodes the JSON
// response into result.
func (c *Client) PostJSON(ctx context.Context, endpoint string, body interface{}, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodPost, endpoint, body, result)
}

// GetJSON performs a GET request and decodes the JSON response into result.
func (c *Client) GetJSON(ctx context.Context, endpoint string, result interface{}) error {
	return c.doJSON(ctx, nethttp.MethodGet, endpoint, nil, result)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	url := c.BaseURL + endpoint

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.BearerKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.BearerKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Providers return a JSON error body; surface it verbatim.
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP error %d from %s: %s", resp.StatusCode, url, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
