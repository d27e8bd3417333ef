// ABOUTME: HTTP client abstraction used by the source adapters and the scraper
// ABOUTME: Decouples fetch logic from the concrete transport for testability

package interfaces

import (
	"context"
	"io"
)

// HTTPClient performs the outbound GET requests the pipeline needs: search
// queries, relay-proxied feeds and crawled article pages. Implementations
// own retry and timeout policy.
type HTTPClient interface {
	// Get performs an HTTP GET request against url.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the transport-neutral view of an HTTP response.
type Response interface {
	// StatusCode returns the HTTP status code.
	StatusCode() int

	// Body returns the response body. The caller closes it.
	Body() io.ReadCloser

	// Header returns the named header value, empty when absent.
	// Lookup is case-insensitive.
	Header(key string) string
}
