package middleware

import (
	"task-suggestion-service/pkg/log"
)

// Middleware bundles the gin middlewares of the service.
type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. A non-positive requestsPerMin disables rate limiting.
func New(l log.Logger, requestsPerMin int) Middleware {
	m := Middleware{l: l}
	if requestsPerMin > 0 {
		m.limiter = newRateLimiter(requestsPerMin)
	}
	return m
}
