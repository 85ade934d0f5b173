// Package ratelimit provides per-client, per-route token bucket rate limiting.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info describes a client's budget on a route after a call to Allow.
// Limit is 0 when the request was not metered.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time     // when the bucket is full again
	RetryAfter time.Duration // when the next token arrives; set only on denial
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter hands out one token bucket per client and route.
type Limiter struct {
	config  Config
	perSec  float64
	burst   int
	mu      sync.Mutex
	buckets map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a limiter and starts its idle-bucket sweeper. A nil
// config uses DefaultConfig. Call Stop to end the sweeper.
func NewLimiter(cfg *Config) *Limiter {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = DefaultIdleTTL
	}
	burst := c.Burst
	if burst <= 0 {
		burst = c.Limit
	}

	l := &Limiter{
		config:  c,
		perSec:  float64(c.Limit) / c.Window.Seconds(),
		burst:   burst,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	if c.Enabled && c.CleanupInterval > 0 {
		go l.sweepEvery(c.CleanupInterval)
	}
	return l
}

// Allow consumes a token from clientID's bucket for route. Whitelisted
// clients and a disabled limiter are never metered; blacklisted clients are
// always refused.
func (l *Limiter) Allow(clientID, route string) (bool, Info) {
	switch {
	case !l.config.Enabled, l.config.Whitelist[clientID], l.config.Limit <= 0:
		return true, Info{Allowed: true}
	case l.config.Blacklist[clientID]:
		return false, Info{}
	}

	now := time.Now()
	key := clientID + " " + route

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Limit(l.perSec), l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	l.mu.Unlock()

	allowed := b.limiter.AllowN(now, 1)
	tokens := max(b.limiter.TokensAt(now), 0)

	info := Info{
		Allowed:   allowed,
		Limit:     l.config.Limit,
		Remaining: int(tokens),
		ResetTime: now.Add(l.timeToRefill(float64(l.burst) - tokens)),
	}
	if !allowed {
		info.RetryAfter = l.timeToRefill(1 - tokens)
	}
	return allowed, info
}

// timeToRefill is how long the bucket takes to gain n tokens.
func (l *Limiter) timeToRefill(n float64) time.Duration {
	if n <= 0 || l.perSec <= 0 {
		return 0
	}
	return time.Duration(n / l.perSec * float64(time.Second))
}

func (l *Limiter) sweepEvery(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			l.sweep(now)
		case <-l.stop:
			return
		}
	}
}

// sweep drops buckets idle for longer than IdleTTL and returns how many remain.
func (l *Limiter) sweep(now time.Time) int {
	cutoff := now.Add(-l.config.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
	return len(l.buckets)
}

// Stop ends the sweeper. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
