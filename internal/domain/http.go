package domain

import (
	"context"
	"net/http"
)

// HTTPGetter performs plain GET requests. The caller owns the response body.
type HTTPGetter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}
