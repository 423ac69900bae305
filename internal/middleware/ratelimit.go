package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	staleAfter      = 1 * time.Hour
	cleanupInterval = 30 * time.Minute
)

type bucket struct {
	tokens   int
	refilled time.Time
}

// RateLimiter is a fixed-window token bucket per client IP. Buckets
// idle for more than staleAfter are dropped by a background sweep.
type RateLimiter struct {
	mu       sync.Mutex
	capacity int
	window   time.Duration
	clients  map[string]*bucket
	stop     chan struct{}
}

// NewRateLimiter allows capacity requests per window for each client.
func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	l := &RateLimiter{
		capacity: capacity,
		window:   window,
		clients:  make(map[string]*bucket),
		stop:     make(chan struct{}),
	}
	go l.cleanupLoop()
	return l
}

func (l *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.cleanup()
		case <-l.stop:
			return
		}
	}
}

func (l *RateLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	for ip, b := range l.clients {
		if now.Sub(b.refilled) > staleAfter {
			delete(l.clients, ip)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *RateLimiter) Stop() {
	close(l.stop)
}

// Allow reports whether the client may make another request now.
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.clients[ip]
	if !ok {
		l.clients[ip] = &bucket{tokens: l.capacity - 1, refilled: now}
		return true
	}
	if now.Sub(b.refilled) >= l.window {
		b.tokens = l.capacity
		b.refilled = now
	}
	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// RateLimit rejects clients that exceed the limiter's budget with 429.
func RateLimit(limiter *RateLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !limiter.Allow(ip) {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
