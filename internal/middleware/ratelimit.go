package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"lumiere_go/internal/core/logger"
)

// IPLimiter Fixed-window request counter per client IP
type IPLimiter struct {
	mu      sync.Mutex
	counts  map[string]int
	limit   int
	window  time.Duration
	resetAt time.Time
}

// NewIPLimiter Create limiter allowing limit requests per window
func NewIPLimiter(limit int, window time.Duration) *IPLimiter {
	return &IPLimiter{
		counts:  make(map[string]int),
		limit:   limit,
		window:  window,
		resetAt: time.Now().Add(window),
	}
}

// Allow Count one request from ip, false once over the limit
func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.resetAt) {
		l.counts = make(map[string]int)
		l.resetAt = now.Add(l.window)
	}

	l.counts[ip]++
	return l.counts[ip] <= l.limit
}

// RateLimitMW Per-IP rate limiting middleware, limit 0 disables
func RateLimitMW(limit int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	limiter := NewIPLimiter(limit, time.Minute)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.Warn("rate limit exceeded",
				logger.String("ip", ip),
				logger.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(429, gin.H{
				"code": 429,
				"msg":  "too many requests",
			})
			return
		}
		c.Next()
	}
}
