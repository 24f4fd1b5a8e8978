package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "consent-keeper/1"

// HTTPClient wraps resty.Client for outbound calls to third-party APIs.
// The embedded client exposes every resty method directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself with
// the service user agent. Callers set base URL and timeout.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New().SetHeader("User-Agent", userAgent)}
}
