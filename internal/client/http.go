package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	timeout = 30 * time.Second
)

// ErrRequestFailed is returned when a provider answers with a non-2xx
// status. Callers match it with errors.Is.
var ErrRequestFailed = errors.New("request failed")

// CreateProxyHTTPClient creates an HTTP client that routes through the
// given proxy. An empty or unparsable proxy URL falls back to a direct
// client.
func CreateProxyHTTPClient(proxyURL string) *http.Client {
	if proxyURL == "" {
		return CreateHTTPClient()
	}

	proxy, err := url.Parse(proxyURL)
	if err != nil {
		return CreateHTTPClient()
	}

	transport := &http.Transport{
		Proxy:               http.ProxyURL(proxy),
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// CreateHTTPClient creates a standard HTTP client with sane transport
// limits for sequential API polling.
func CreateHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// GetJSON performs a GET against rawURL with the given query parameters
// and headers, and decodes the JSON response into out. Any non-2xx
// status aborts with ErrRequestFailed; no body is read in that case.
func GetJSON(ctx context.Context, httpClient *http.Client, rawURL string, params url.Values, headers http.Header, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if params != nil {
		req.URL.RawQuery = params.Encode()
	}
	for key, values := range headers {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, req.URL.Host, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}
