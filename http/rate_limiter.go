package http

import (
	"sync"
	"time"
)

const (
	staleClientThreshold = 1 * time.Hour
	cleanupInterval      = 30 * time.Minute
)

type clientQuota struct {
	remaining  int
	lastRefill time.Time
}

// RateLimiter grants each client IP a fixed request quota per refill
// window. Stale clients are evicted by a background sweep.
type RateLimiter struct {
	mu        sync.Mutex
	capacity  int
	refillDur time.Duration
	clients   map[string]*clientQuota
	stopSweep chan struct{}
}

// NewRateLimiter creates a limiter allowing capacity requests per client
// per refill window and starts its cleanup loop.
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:  capacity,
		refillDur: refillDur,
		clients:   make(map[string]*clientQuota),
		stopSweep: make(chan struct{}),
	}
	go rl.sweepLoop()
	return rl
}

func (r *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep()
		case <-r.stopSweep:
			return
		}
	}
}

func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, quota := range r.clients {
		if now.Sub(quota.lastRefill) > staleClientThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop terminates the cleanup loop.
func (r *RateLimiter) Stop() {
	close(r.stopSweep)
}

// Allow reports whether the client may proceed, consuming one unit of its
// quota.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	quota, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientQuota{
			remaining:  r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(quota.lastRefill) >= r.refillDur {
		quota.remaining = r.capacity
		quota.lastRefill = now
	}

	if quota.remaining <= 0 {
		return false
	}

	quota.remaining--
	return true
}
