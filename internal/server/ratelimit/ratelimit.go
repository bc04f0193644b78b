// Package ratelimit provides per-client request throttling on top of golang.org/x/time/rate token buckets.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int // bucket size of the matched tier, 0 when unlimited
	Remaining  int
	RetryAfter time.Duration
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages one token bucket per client and endpoint tier.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	config  *Config
	now     func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewLimiter creates a new rate limiter with the given configuration.
// A nil configuration enables limiting with 10 requests per second and a burst of 20.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = NewConfig(true, 10, 20)
	}
	if config.Burst <= 0 {
		config.Burst = max(1, int(config.Rate))
	}

	l := &Limiter{
		entries: make(map[string]*entry),
		config:  config,
		now:     time.Now,
		stop:    make(chan struct{}),
	}

	if config.Enabled && config.CleanupInterval > 0 && config.IdleTTL > 0 {
		go l.cleanupLoop(config.CleanupInterval)
	}

	return l
}

// Allow reports whether a request from clientID to the given endpoint may proceed.
// Denied requests do not consume a token.
func (l *Limiter) Allow(clientID string, path string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}

	tier := MatchEndpoint(path, method, l.config.EndpointConfigs)
	if tier == nil {
		tier = &EndpointConfig{Path: "*", Rate: l.config.Rate, Burst: l.config.Burst}
	}
	if tier.Rate == rate.Inf {
		return true, Info{Allowed: true}
	}

	now := l.now()
	lim := l.limiterFor(clientID+":"+tier.Method+":"+tier.Path, tier, now)

	info := Info{Limit: tier.Burst}
	res := lim.ReserveN(now, 1)
	if !res.OK() {
		return false, info
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		info.RetryAfter = delay
		return false, info
	}

	info.Allowed = true
	info.Remaining = max(0, int(lim.TokensAt(now)))
	return true, info
}

func (l *Limiter) limiterFor(key string, tier *EndpointConfig, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(tier.Rate, tier.Burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (l *Limiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.evictIdle(l.now())
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops buckets not used within IdleTTL of now.
func (l *Limiter) evictIdle(now time.Time) int {
	cutoff := now.Add(-l.config.IdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, e := range l.entries {
		if e.lastSeen.Before(cutoff) {
			delete(l.entries, key)
			evicted++
		}
	}
	return evicted
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
