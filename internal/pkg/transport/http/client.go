// Package http provides the HTTP client used to reach JSON-RPC nodes.
// It wraps the retryablehttp.Client from HashiCorp but pins it to a single
// attempt per request: failures are reported to the caller as they happened,
// never replayed.
package http

import (
	"net/http"
	"time"

	"github.com/gabapcia/rskreceipt/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout time.Duration // maximum duration for a single HTTP request
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates and returns a retryablehttp.Client configured with
// the provided options. If no options are given, the timeout is 5 seconds.
//
// The client never retries, and non-2xx responses are handed back to the
// caller instead of being turned into "giving up" errors.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.RequestLogHook = logRequest
	client.ResponseLogHook = logResponse
	return client
}

func logRequest(_ retryablehttp.Logger, req *http.Request, attempt int) {
	logger.Debug(req.Context(), "sending http request",
		"method", req.Method,
		"host", req.URL.Host,
		"attempt", attempt,
	)
}

func logResponse(_ retryablehttp.Logger, res *http.Response) {
	logger.Debug(res.Request.Context(), "received http response",
		"status", res.StatusCode,
	)
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}
