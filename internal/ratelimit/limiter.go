package ratelimit

import (
	"context"
	"fmt"
	"time"
)

// CounterStore is a shared fixed-window counter. Backing it with Redis keeps
// the limit consistent across instances instead of living in one process's
// memory.
type CounterStore interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

type Limiter struct {
	store  CounterStore
	max    int64
	window time.Duration
}

func NewLimiter(store CounterStore, max int64, window time.Duration) *Limiter {
	// the bucket math divides by whole seconds
	if window < time.Second {
		window = time.Second
	}
	return &Limiter{
		store:  store,
		max:    max,
		window: window,
	}
}

// Allow counts the caller against the current window. The counter key rolls
// over every window, so a burst straddling the boundary can see up to 2x the
// cap; that is the accepted fixed-window tradeoff.
func (l *Limiter) Allow(ctx context.Context, caller string) (bool, error) {
	bucket := time.Now().Unix() / int64(l.window.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%d", caller, bucket)
	n, err := l.store.Incr(ctx, key, l.window)
	if err != nil {
		return true, err
	}
	return n <= l.max, nil
}
