package assets

import (
	"context"
	"net/http"
	"strings"
)

var _ Store = (*OriginStore)(nil)

// OriginStore proxies asset fetches to a backing HTTP origin, such as a CDN
// bucket or a dev server.
type OriginStore struct {
	origin string
	client *http.Client
}

// NewOriginStore creates a store backed by the given origin base URL.
func NewOriginStore(origin string) *OriginStore {
	return &OriginStore{
		origin: strings.TrimRight(origin, "/"),
		client: &http.Client{
			// Redirects are surfaced to the caller so the SPA handler can
			// translate them.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (s *OriginStore) Fetch(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.origin+path, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}
