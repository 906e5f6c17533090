// Package siperuk is a typed client for the remote SIPERUK booking REST API.
// The API owns all persistence and authorization; this client only shuttles
// JSON and attaches the bearer token of the acting session.
package siperuk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 20 * time.Second},
	}
}

// doJSON performs one request/response round-trip. A non-2xx status is
// returned as *APIError so callers can branch on the upstream status code.
func (c *Client) doJSON(ctx context.Context, method, path, token string, reqBody, respBody any) error {
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.BaseURL == "" {
		return fmt.Errorf("siperuk: missing base URL")
	}

	var buf bytes.Buffer
	if reqBody != nil {
		if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	b, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, b)
	}

	if respBody != nil && len(b) > 0 && resp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(b, respBody); err != nil {
			return fmt.Errorf("siperuk: decode %s %s response: %w", method, path, err)
		}
	}

	return nil
}
