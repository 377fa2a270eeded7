package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
	"golang.org/x/time/rate"
)

// RateLimiter is a sliding window limit per client IP.
type RateLimiter struct {
	rate     int
	interval time.Duration
	ips      map[string][]time.Time
	mu       sync.Mutex
}

func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		rate:     rate,
		interval: interval,
		ips:      make(map[string][]time.Time),
	}
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatus(http.StatusTooManyRequests)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := now.Add(-rl.interval)
	valid := rl.ips[ip][:0]
	for _, t := range rl.ips[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	if len(valid) >= rl.rate {
		rl.ips[ip] = valid
		return false
	}
	rl.ips[ip] = append(valid, now)
	return true
}

// Sweep forgets clients idle for a full window.
func (rl *RateLimiter) Sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := now.Add(-rl.interval)
	for ip, times := range rl.ips {
		if len(times) == 0 || !times[len(times)-1].After(cutoff) {
			delete(rl.ips, ip)
		}
	}
}

// StrictRateLimiter guards sign-in and sign-up: burst attempts per client,
// refilled evenly over window.
type StrictRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*strictClient
	every   rate.Limit
	burst   int
	window  time.Duration
}

type strictClient struct {
	limiter *rate.Limiter
	seen    time.Time
}

func NewStrictRateLimiter(burst int, window time.Duration) *StrictRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &StrictRateLimiter{
		clients: make(map[string]*strictClient),
		every:   rate.Every(window / time.Duration(burst)),
		burst:   burst,
		window:  window,
	}
}

func (s *StrictRateLimiter) allow(ip string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cl, ok := s.clients[ip]
	if !ok {
		cl = &strictClient{limiter: rate.NewLimiter(s.every, s.burst)}
		s.clients[ip] = cl
	}
	cl.seen = now
	return cl.limiter.AllowN(now, 1)
}

// Sweep forgets clients idle for a full window. Their bucket has refilled by
// then, so a returning client starts from the same burst.
func (s *StrictRateLimiter) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := now.Add(-s.window)
	for ip, cl := range s.clients {
		if !cl.seen.After(cutoff) {
			delete(s.clients, ip)
		}
	}
}

func (s *StrictRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.allow(c.ClientIP(), time.Now()) {
			utils.RespondError(c, http.StatusTooManyRequests, services.MsgTooManyAttempts)
			c.Abort()
			return
		}
		c.Next()
	}
}
