package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxPayloadBytes caps how much of an HTTP response body is read. Tool
// catalogs are small; anything beyond this is treated as truncated.
const maxPayloadBytes = 8 << 20

// HTTPSource fetches the catalog from an HTTP(S) endpoint.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTP-backed source for the given URL.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Fetch performs a GET request and returns the response body.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: get %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source: get %s: unexpected status %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("source: read response from %s: %w", s.url, err)
	}

	return data, nil
}

// Ref returns the URL.
func (s *HTTPSource) Ref() string { return s.url }
