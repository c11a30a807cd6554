// Package seqio owns the input stream, record reader and record writer for a
// sampling run, including their ordered acquisition and release.
package seqio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrUnsupportedScheme is returned for input URL schemes seqsample cannot open.
var ErrUnsupportedScheme = errors.New("unsupported input URL scheme")

// OpenURL resolves rawurl into a byte stream. Supported forms: a plain
// filesystem path, file://, http://, https:// and s3:// (public buckets,
// rewritten to a virtual-hosted-style HTTPS request). timeout bounds the
// whole HTTP download; 0 means no timeout.
func OpenURL(ctx context.Context, rawurl string, timeout time.Duration) (io.ReadCloser, error) {
	u, err := url.Parse(rawurl)
	if err != nil || u.Scheme == "" {
		// Not a URL, treat as a local path.
		return os.Open(rawurl)
	}

	switch u.Scheme {
	case "file":
		return os.Open(u.Path)
	case "http", "https":
		return openHTTP(ctx, rawurl, timeout)
	case "s3":
		return openHTTP(ctx, s3ToHTTPS(u), timeout)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// openHTTP issues a GET and returns the response body as the record stream.
// Anything outside 2xx is an open failure, not a stream to decode.
func openHTTP(ctx context.Context, rawurl string, timeout time.Duration) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", rawurl, err)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", rawurl, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("failed to open %s: unexpected status %s", rawurl, resp.Status)
	}

	return resp.Body, nil
}

// s3ToHTTPS rewrites s3://bucket/key to the virtual-hosted-style endpoint.
func s3ToHTTPS(u *url.URL) string {
	key := strings.TrimPrefix(u.Path, "/")
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.Host, key)
}
