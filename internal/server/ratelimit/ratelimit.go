// Package ratelimit provides per-client, per-endpoint rate limiting
// using token buckets. Scoring endpoints get tight limits because a
// scoring call parses and analyzes a whole document; session reads are
// cheap and lenient.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// tokenBucket refills at a steady rate up to a burst capacity.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (tb *tokenBucket) refillLocked(now time.Time) {
	tb.tokens += now.Sub(tb.lastRefill).Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now
}

func (tb *tokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	tb.refillLocked(time.Now())
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}
	return false
}

func (tb *tokenBucket) status() (remaining int, resetTime time.Time) {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	now := time.Now()
	tb.refillLocked(now)
	remaining = int(tb.tokens)
	if tb.tokens < float64(tb.capacity) {
		deficit := float64(tb.capacity) - tb.tokens
		resetTime = now.Add(time.Duration(deficit / tb.refillRate * float64(time.Second)))
	} else {
		resetTime = now
	}
	return remaining, resetTime
}

// EndpointConfig gives one endpoint its own budget. Paths ending in "/"
// match by prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per window; 0 means unlimited
	Window time.Duration
	Burst  int // burst capacity; defaults to Limit
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// Info describes the rate-limit state returned with each decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter tracks a bucket per client and endpoint.
type Limiter struct {
	mu         sync.Mutex
	cfg        *Config
	buckets    map[string]*tokenBucket
	lastAccess map[string]time.Time
	stop       chan struct{}
}

func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	l := &Limiter{
		cfg:        cfg,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		l.stop = make(chan struct{})
		go l.cleanupLoop(cfg.CleanupInterval)
	}
	return l
}

// Allow decides whether a request passes, consuming a token when it does.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{Allowed: true}
	}

	endpoint := l.match(path, method)
	if endpoint == nil {
		endpoint = &EndpointConfig{
			Limit:  l.cfg.DefaultLimit,
			Window: l.cfg.DefaultWindow,
			Burst:  l.cfg.DefaultLimit,
		}
	}
	if endpoint.Limit <= 0 {
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint.Path + ":" + method
	bucket := l.bucket(key, endpoint)

	allowed := bucket.allow()
	remaining, resetTime := bucket.status()

	info := Info{
		Allowed:   allowed,
		Limit:     endpoint.Limit,
		Remaining: remaining,
		ResetTime: resetTime,
	}
	if !allowed {
		if retry := time.Until(resetTime); retry > 0 {
			info.RetryAfter = retry
		}
	}
	return allowed, info
}

func (l *Limiter) match(path, method string) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}
	for i := range l.cfg.Endpoints {
		ep := &l.cfg.Endpoints[i]
		if ep.Method != method {
			continue
		}
		if ep.Path == path {
			return ep
		}
		if strings.HasSuffix(ep.Path, "/") && strings.HasPrefix(path, ep.Path) {
			return ep
		}
	}
	return nil
}

func (l *Limiter) bucket(key string, ep *EndpointConfig) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if b, ok := l.buckets[key]; ok {
		l.lastAccess[key] = time.Now()
		return b
	}

	burst := ep.Burst
	if burst <= 0 {
		burst = ep.Limit
	}
	refillRate := float64(ep.Limit) / ep.Window.Seconds()
	b := newTokenBucket(burst, refillRate)
	l.buckets[key] = b
	l.lastAccess[key] = time.Now()
	return b
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(interval * 2)
		case <-l.stop:
			return
		}
	}
}

func (l *Limiter) evictIdle(maxIdle time.Duration) {
	cutoff := time.Now().Add(-maxIdle)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, last := range l.lastAccess {
		if last.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
		}
	}
}

// Stop terminates the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.stop != nil {
		close(l.stop)
	}
}
