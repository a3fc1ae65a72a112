package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hearttune-http-service/internal/error/code"
	"hearttune-http-service/internal/error/response"
)

// limiterEntry tracks one client's token bucket and when it was last used
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	ipLimiters   = make(map[string]*limiterEntry)
	ipLimitersMu sync.Mutex
)

// limiterExpiry is how long an idle client's bucket is kept around
const limiterExpiry = 10 * time.Minute

// getIPLimiter returns the bucket for an IP, creating it if needed and
// evicting idle entries as a side effect
func getIPLimiter(ip string, r rate.Limit, burst int) *rate.Limiter {
	ipLimitersMu.Lock()
	defer ipLimitersMu.Unlock()

	now := time.Now()
	for key, entry := range ipLimiters {
		if now.Sub(entry.lastSeen) > limiterExpiry {
			delete(ipLimiters, key)
		}
	}

	entry, exists := ipLimiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(r, burst)}
		ipLimiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// IPRateLimiter limits each client IP to rps requests per second with
// the given burst
func IPRateLimiter(rps float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := getIPLimiter(c.ClientIP(), rate.Limit(rps), burst)
		if !limiter.Allow() {
			response.FailMessage(c, code.ErrTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}
		c.Next()
	}
}
