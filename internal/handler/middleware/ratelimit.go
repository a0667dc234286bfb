package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"reservation-hub/internal/handler/httperr"
	"reservation-hub/internal/pkg/config"
	"reservation-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const (
	codeRateLimited = "RATE_LIMITED"

	limiterIdleTTL     = 10 * time.Minute
	limiterSweepAtSize = 10_000
)

var errRateLimited = errs.New("rate limit exceeded")

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client. Authenticated callers are
// keyed by user id, anonymous ones by client IP.
type RateLimiter struct {
	cfg      config.RateLimitConfig
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	now      func() time.Time
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		cfg:      cfg,
		limiters: make(map[string]*clientLimiter),
		now:      time.Now,
	}
}

func (r *RateLimiter) getLimiter(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if len(r.limiters) >= limiterSweepAtSize {
		r.sweep(now)
	}

	cl, exists := r.limiters[key]
	if !exists {
		cl = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(r.cfg.RPS), r.cfg.Burst)}
		r.limiters[key] = cl
	}
	cl.lastSeen = now
	return cl.limiter
}

// sweep must be called with mu held.
func (r *RateLimiter) sweep(now time.Time) {
	for key, cl := range r.limiters {
		if now.Sub(cl.lastSeen) > limiterIdleTTL {
			delete(r.limiters, key)
		}
	}
}

func (r *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.cfg.Enabled {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if id, ok := GetIdentity(c); ok && !id.IsZero() {
			key = "user:" + id.UserID.String()
		}

		limiter := r.getLimiter(key)
		if !limiter.Allow() {
			slog.Warn("Rate limit exceeded", "client", key, "path", c.FullPath())
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(r.cfg.RPS)))
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, codeRateLimited, "Rate limit exceeded. Try again later.", nil)
			return
		}
		c.Next()
	}
}

func retryAfterSeconds(rps float64) int {
	if rps <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(1/rps)))
}
