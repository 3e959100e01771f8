package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxKeySize caps signing key downloads. ASCII-armored PGP keys run a
// few kilobytes; a response anywhere near the cap is not a key.
const maxKeySize = 1 << 20

// Fetch downloads url and returns the response body. Any status other
// than 200 is an error, as is a body larger than maxBytes. Passing
// maxBytes <= 0 applies the signing key default.
func Fetch(ctx context.Context, client *http.Client, url string, maxBytes int64) ([]byte, error) {
	if client == nil {
		client = NewClient(ClientOptions{})
	}
	if maxBytes <= 0 {
		maxBytes = maxKeySize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > maxBytes {
		return nil, fmt.Errorf("fetching %s: response exceeds %d byte limit", url, maxBytes)
	}
	return body, nil
}
