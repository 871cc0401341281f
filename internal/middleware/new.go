package middleware

import (
	"timetracker/pkg/log"
)

// Config holds middleware settings taken from config.SecurityConfig.
type Config struct {
	// UnlockRatePerMin bounds passphrase-bearing requests per client IP.
	UnlockRatePerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(cfg.UnlockRatePerMin),
	}
}
