package swimrankings

import (
	"context"
	"sync"
	"time"
)

const (
	defaultRateLimit  = 15
	defaultRateWindow = time.Second * 30
)

// rateLimiter spreads requests over a sliding window. the site bans
// clients that hammer it, the defaults match what the site tolerates.
type rateLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	history []time.Time

	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		limit:  limit,
		window: window,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// wait blocks until a request slot is available or ctx is done. the
// window is re-evaluated after every sleep, so several waiters woken
// together still claim slots one at a time.
func (l *rateLimiter) wait(ctx context.Context) error {
	l.mu.Lock()
	for {
		now := l.now()
		start := now.Add(-l.window)

		valid := l.history[:0]
		for _, t := range l.history {
			if t.After(start) {
				valid = append(valid, t)
			}
		}
		l.history = valid

		if len(l.history) < l.limit {
			break
		}

		wait := l.history[0].Add(l.window).Sub(now)
		l.mu.Unlock()
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
		l.mu.Lock()
	}

	l.history = append(l.history, l.now())
	l.mu.Unlock()
	return nil
}
