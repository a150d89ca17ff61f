package middleware

import (
	"taskflow/pkg/log"
	"taskflow/pkg/ratelimit"
	"taskflow/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	scopeManager scope.Manager
	loginLimiter *ratelimit.Limiter
	aiLimiter    *ratelimit.Limiter
}

// New creates the shared middleware set. Nil limiters disable rate limiting.
func New(l log.Logger, scopeManager scope.Manager, loginLimiter, aiLimiter *ratelimit.Limiter) Middleware {
	return Middleware{
		l:            l,
		scopeManager: scopeManager,
		loginLimiter: loginLimiter,
		aiLimiter:    aiLimiter,
	}
}
