package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter tracks request timestamps per client IP over a sliding window.
// The auth endpoints get their own, much tighter limiter than the general
// API; both are constructed once when the router is built.
type RateLimiter struct {
	requests      int
	window        time.Duration
	clients       map[string]*clientWindow
	mu            sync.RWMutex
	cleanupTicker *time.Ticker
}

type clientWindow struct {
	timestamps []time.Time
	mu         sync.Mutex
}

func NewRateLimiter(requests int, windowSeconds int) *RateLimiter {
	if requests <= 0 {
		requests = 100
	}
	if windowSeconds <= 0 {
		windowSeconds = 900
	}

	rl := &RateLimiter{
		requests: requests,
		window:   time.Duration(windowSeconds) * time.Second,
		clients:  make(map[string]*clientWindow),
	}

	rl.cleanupTicker = time.NewTicker(time.Minute)
	go rl.cleanup()

	return rl
}

// cleanup removes clients with no recent activity.
func (rl *RateLimiter) cleanup() {
	for range rl.cleanupTicker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, client := range rl.clients {
			client.mu.Lock()
			if len(client.timestamps) == 0 || now.Sub(client.timestamps[len(client.timestamps)-1]) > rl.window*2 {
				delete(rl.clients, ip)
			}
			client.mu.Unlock()
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether a request from the given IP fits in the window,
// along with the remaining allowance and the reset time.
func (rl *RateLimiter) Allow(ip string) (bool, int, time.Time) {
	rl.mu.RLock()
	client, exists := rl.clients[ip]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if client, exists = rl.clients[ip]; !exists {
			client = &clientWindow{
				timestamps: make([]time.Time, 0, rl.requests),
			}
			rl.clients[ip] = client
		}
		rl.mu.Unlock()
	}

	client.mu.Lock()
	defer client.mu.Unlock()

	now := time.Now()
	windowStart := now.Add(-rl.window)

	// Drop timestamps that fell out of the window.
	valid := client.timestamps[:0]
	for _, ts := range client.timestamps {
		if ts.After(windowStart) {
			valid = append(valid, ts)
		}
	}
	client.timestamps = valid

	remaining := rl.requests - len(client.timestamps)
	if remaining < 0 {
		remaining = 0
	}

	if len(client.timestamps) >= rl.requests {
		resetTime := client.timestamps[0].Add(rl.window)
		return false, remaining, resetTime
	}

	client.timestamps = append(client.timestamps, now)
	return true, remaining - 1, now.Add(rl.window)
}

// RateLimit returns a middleware that applies per-IP rate limiting.
func RateLimit(requests int, windowSeconds int) func(http.Handler) http.Handler {
	limiter := NewRateLimiter(requests, windowSeconds)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)

			allowed, remaining, resetTime := limiter.Allow(ip)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.requests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				w.Header().Set("Retry-After", strconv.FormatInt(int64(time.Until(resetTime).Seconds())+1, 10))
				writeError(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP extracts the client IP, preferring proxy headers.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		for i := 0; i < len(xff); i++ {
			if xff[i] == ',' {
				return xff[:i]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip := r.RemoteAddr
	for i := len(ip) - 1; i >= 0; i-- {
		if ip[i] == ':' {
			return ip[:i]
		}
	}
	return ip
}
