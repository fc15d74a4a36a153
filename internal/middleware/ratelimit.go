package middleware

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// RateLimiter keeps one token bucket per client IP. Buckets idle for longer
// than the eviction window are dropped by EvictIdle.
type RateLimiter struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	now      func() time.Time
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate.Limit(requestsPerSecond),
		burst: burst,
		now:   time.Now,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		entry := rl.get(c.ClientIP())
		entry.lastSeen.Store(rl.now().UnixNano())

		if !entry.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) get(key string) *clientLimiter {
	if v, ok := rl.limiters.Load(key); ok {
		return v.(*clientLimiter)
	}
	v, _ := rl.limiters.LoadOrStore(key, &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)})
	return v.(*clientLimiter)
}

// EvictIdle drops buckets not used within idle and returns how many were removed.
func (rl *RateLimiter) EvictIdle(idle time.Duration) int {
	cutoff := rl.now().Add(-idle).UnixNano()
	removed := 0
	rl.limiters.Range(func(key, value any) bool {
		if value.(*clientLimiter).lastSeen.Load() < cutoff {
			rl.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Len reports the number of tracked clients.
func (rl *RateLimiter) Len() int {
	n := 0
	rl.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (rl *RateLimiter) RunEviction(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.EvictIdle(idle)
		}
	}
}
