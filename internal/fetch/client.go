// Package fetch performs the network side of catalogue validation:
// link reachability checks and image downloads with config-driven retry.
package fetch

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"catpub/internal/config"
	"catpub/pkg/fsutil"
)

// ErrUnexpectedStatusCode indicates an HTTP response with unexpected status.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

const userAgent = "catpub/1.0"

// Client manages outbound HTTP requests with retry logic.
type Client struct {
	client      *http.Client
	retryPolicy *config.RetryPolicy
}

// NewClient creates a new client with the default retry policy.
func NewClient() *Client {
	cfg := config.DefaultConfig()

	return NewClientWithConfig(&cfg.Publisher.Retry)
}

// NewClientWithConfig creates a new client with a custom retry policy.
func NewClientWithConfig(retryPolicy *config.RetryPolicy) *Client {
	return &Client{
		client: &http.Client{
			Timeout: retryPolicy.GetTimeout(),
		},
		retryPolicy: retryPolicy,
	}
}

// CheckLink fetches the URL and requires a success response.
func (c *Client) CheckLink(rawURL string) error {
	resp, err := c.get(rawURL)
	if err != nil {
		return err
	}

	return resp.Body.Close()
}

// Download fetches the URL and streams the body into a unique UUID-named
// file under destDir, creating the directory if needed. The filename
// suffix is derived from the URL path extension. Returns the path of
// the written file.
func (c *Client) Download(rawURL, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	resp, err := c.get(rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	dest, err := fsutil.UniqueFilename(destDir, extensionFromURL(rawURL))
	if err != nil {
		return "", err
	}

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dest, err)
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()

		return "", fmt.Errorf("failed to write download to %s: %w", dest, err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close file %s: %w", dest, err)
	}

	return dest, nil
}

// get performs a GET with retries and returns the response on success.
// The caller owns the response body.
func (c *Client) get(rawURL string) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= c.retryPolicy.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := c.retryPolicy.GetRetryDelay(attempt)
			if delay > 0 {
				time.Sleep(delay)
			}
		}

		req, err := http.NewRequest(http.MethodGet, rawURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("User-Agent", userAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed (attempt %d/%d): %w", attempt, c.retryPolicy.MaxAttempts, err)

			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()

			lastErr = fmt.Errorf("%w: %d for %s", ErrUnexpectedStatusCode, resp.StatusCode, rawURL)

			if !isRetryableStatus(resp.StatusCode) {
				return nil, lastErr
			}

			continue
		}

		return resp, nil
	}

	return nil, lastErr
}

// extensionFromURL derives a filename suffix from the URL path, e.g.
// ".png" for https://example.com/pic.png. Empty when the path carries
// no extension.
func extensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	ext := path.Ext(u.Path)
	if ext == "." || strings.ContainsAny(ext, "/") {
		return ""
	}

	return ext
}

// isRetryableStatus determines if we should retry based on HTTP status code.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
		http.StatusTooManyRequests,
		http.StatusRequestTimeout:
		return true
	}

	return false
}
