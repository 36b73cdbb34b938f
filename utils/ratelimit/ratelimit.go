package ratelimit

import (
	"context"
	"sync"
	"time"

	redisrepo "github.com/muhammadheryan/green-footprint/repository/redis"
	"golang.org/x/time/rate"
)

// Result is the outcome of a single Allow call.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter decides whether another request for key fits in the current budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

// redisLimiter is a fixed window counter shared by every API instance.
type redisLimiter struct {
	repo   redisrepo.Repository
	limit  int64
	window time.Duration
}

func NewRedisLimiter(repo redisrepo.Repository, limit int, window time.Duration) Limiter {
	return &redisLimiter{repo: repo, limit: int64(limit), window: window}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.repo.IncrWithTTL(ctx, redisKey(key), l.window)
	if err != nil {
		return Result{Allowed: true}, err
	}
	if count > l.limit {
		if ttl <= 0 {
			ttl = l.window
		}
		return Result{Allowed: false, RetryAfter: ttl}, nil
	}
	return Result{Allowed: true}, nil
}

func redisKey(key string) string {
	return "ratelimit:" + key
}

type memoryEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// memoryLimiter is a per-process token bucket used when Redis is disabled.
type memoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*memoryEntry
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastEvict time.Time
	now       func() time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) Limiter {
	if limit <= 0 {
		limit = 1
	}
	return &memoryLimiter{
		entries: make(map[string]*memoryEntry),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
		idle:    window,
		now:     time.Now,
	}
}

func (l *memoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	e, ok := l.entries[key]
	if !ok {
		e = &memoryEntry{limiter: rate.NewLimiter(l.every, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now

	r := e.limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Result{Allowed: false, RetryAfter: delay}, nil
	}
	return Result{Allowed: true}, nil
}

// evict drops buckets that have been idle for longer than a full window. It
// sweeps at most once per window.
func (l *memoryLimiter) evict(now time.Time) {
	if now.Sub(l.lastEvict) < l.idle {
		return
	}
	l.lastEvict = now
	for k, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idle {
			delete(l.entries, k)
		}
	}
}
