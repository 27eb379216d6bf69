package v1

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// LoginRateLimiter throttles login attempts per client IP to slow down
// credential stuffing.
type LoginRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewLoginRateLimiter creates a limiter that allows burst attempts at once
// and limit attempts per second sustained, tracked per client IP.
func NewLoginRateLimiter(limit rate.Limit, burst int) *LoginRateLimiter {
	return &LoginRateLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
	}
}

func (l *LoginRateLimiter) limiterFor(clientIP string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.clients[clientIP]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.clients[clientIP] = limiter
	}
	return limiter
}

// Middleware rejects requests over the limit with status 429.
func (l *LoginRateLimiter) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !l.limiterFor(ctx.ClientIP()).Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Message: "too many login attempts"})
			return
		}
		ctx.Next()
	}
}
