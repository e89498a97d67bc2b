package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so certctl talks to the metadata server
// through resty's request builder directly, with room for shared settings
// (base URL, timeout) applied once at construction by the caller.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool
// and no base URL set.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
