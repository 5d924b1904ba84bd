package vies

import (
	"log/slog"
	"net/http"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. This is the transport seam:
// tests inject httptest servers here, callers can wire proxies or custom
// TLS configuration. Nil clients are ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithEndpoint overrides the registry endpoint URL.
// Default is DefaultEndpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		if endpoint != "" {
			c.endpoint = endpoint
		}
	}
}

// WithTimeout sets the per-call request timeout, layered on top of the
// caller's context. Default is 15 seconds.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the structured logger. By default logs are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCache enables result caching. Only ServerValidated results are stored.
func WithCache(cache ResultCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDegradedFaults restricts the set of registry fault keys that degrade
// into a presumed-valid, unconfirmed Result. Faults outside the set surface
// as ErrRegistryFault instead.
//
// When this option is not used, every fault degrades — the historical
// behavior of the service. Calling it with no keys disables degradation
// entirely, so every fault becomes an error.
func WithDegradedFaults(faultKeys ...string) Option {
	return func(c *Client) {
		c.degraded = make(map[string]struct{}, len(faultKeys))
		for _, key := range faultKeys {
			c.degraded[key] = struct{}{}
		}
	}
}
