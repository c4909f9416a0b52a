package admin

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// loginLimiter throttles login attempts per client IP. The limiter map is
// unbounded but only grows with distinct attacking IPs; acceptable for a
// single-admin deployment.
type loginLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newLoginLimiter(perMinute int) *loginLimiter {
	return &loginLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    perMinute,
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[ip] = lim
	}
	return lim.Allow()
}

// middleware renders the login page with an error when the per-IP budget is
// exhausted, instead of reaching the password check.
func (l *loginLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.allow(c.ClientIP()) {
			c.Next()
			return
		}

		c.HTML(http.StatusTooManyRequests, "login.html", gin.H{
			"error": "Too many login attempts. Please try again later.",
		})
		c.Abort()
	}
}
