package middleware

import (
	"axle-assist/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

// New creates the middleware set. requestsPerMin bounds chat turns per
// client IP; each turn can cost a model call and an upstream call, so the
// cap is deliberately low.
func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
