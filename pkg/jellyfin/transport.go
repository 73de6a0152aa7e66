package jellyfin

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// get makes an HTTP GET request to the Jellyfin API with retry logic.
//
// It handles:
// - Request construction with the MediaBrowser auth header
// - Error handling and retry logic for transient failures
// - Context cancellation
//
// The raw response body is returned; callers unmarshal it themselves.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	// Retry with exponential backoff
	var lastErr error
	backoff := 1 * time.Second
	maxRetries := 3

	for i := 0; i < maxRetries; i++ {
		c.logDebugf("jellyfin: GET %s (attempt %d/%d)", path, i+1, maxRetries)

		req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Accept", "application/json")
		req.Header.Set("Authorization", authHeader(c.apiKey))
		req.Header.Set("User-Agent", "jellywrapped/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if shouldRetryNetworkError(err) && i < maxRetries-1 {
				c.logDebugf("jellyfin: network error, retrying: %v", err)
				if !sleep(ctx, backoff) {
					return nil, ctx.Err()
				}
				backoff = nextBackoff(backoff)
				continue
			}
			return nil, fmt.Errorf("http request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			c.logDebugf("jellyfin: GET %s succeeded", path)
			return body, nil
		}

		apiErr := &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, body),
		}

		if apiErr.Temporary() && i < maxRetries-1 {
			c.logDebugf("jellyfin: temporary error, retrying: %v", apiErr)
			lastErr = apiErr
			if !sleep(ctx, backoff) {
				return nil, ctx.Err()
			}
			backoff = nextBackoff(backoff)
			continue
		}

		return nil, apiErr
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// stream makes an HTTP GET request and returns the response body as a
// reader. Used for image downloads, which are not retried: a missing
// cover image is not worth a backoff loop.
func (c *Client) stream(ctx context.Context, path string, accept string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", authHeader(c.apiKey))
	req.Header.Set("User-Agent", "jellywrapped/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		return nil, &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp, body),
		}
	}

	return resp.Body, nil
}

// authHeader builds the MediaBrowser authorization header value.
func authHeader(apiKey string) string {
	return fmt.Sprintf("MediaBrowser Token=%q", apiKey)
}

// errorMessage extracts a human-readable message from an error response.
// Jellyfin error bodies are usually empty or plain text, so the HTTP
// status text is the fallback.
func errorMessage(resp *http.Response, body []byte) string {
	if len(body) > 0 && len(body) <= 512 {
		return string(body)
	}
	return http.StatusText(resp.StatusCode)
}

// shouldRetryNetworkError checks if a network error is retryable.
func shouldRetryNetworkError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors
	if _, ok := err.(net.Error); ok {
		return true
	}

	// Check for URL errors (which may contain network errors)
	if urlErr, ok := err.(*url.Error); ok {
		if _, ok := urlErr.Err.(net.Error); ok {
			return true
		}
	}

	return false
}

// sleep waits for the specified duration or until context is cancelled.
// Returns true if sleep completed, false if context was cancelled.
func sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(duration):
		return true
	}
}

// nextBackoff calculates the next backoff duration with exponential increase.
// Maximum backoff is capped at 30 seconds.
func nextBackoff(current time.Duration) time.Duration {
	next := current * 2
	if next > 30*time.Second {
		return 30 * time.Second
	}
	return next
}
