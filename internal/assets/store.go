// Package assets serves the SPA bundle. The backing store is an injected
// capability that answers path fetches with HTTP-response-shaped results,
// either a remote origin or a local build directory.
package assets

import (
	"context"
	"net/http"
)

// Store fetches a static asset by request path.
type Store interface {
	Fetch(ctx context.Context, path string) (*http.Response, error)
}
