package middleware

import (
	"nanoclaw-bridges/pkg/log"
)

// Config configures the relay middlewares.
type Config struct {
	AllowedOrigins  []string
	RateLimitPerMin int // 0 disables rate limiting
}

type Middleware struct {
	l       log.Logger
	cfg     Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:   l,
		cfg: cfg,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
