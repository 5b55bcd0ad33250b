package swimrankings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiterBelowLimit(t *testing.T) {
	now := time.Unix(1000, 0)
	slept := time.Duration(0)

	limiter := newRateLimiter(3, time.Second*30)
	limiter.now = func() time.Time { return now }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		slept += d
		return nil
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.wait(context.Background()))
	}
	require.Equal(t, time.Duration(0), slept)
}

func TestRateLimiterBlocksAtLimit(t *testing.T) {
	now := time.Unix(1000, 0)
	slept := time.Duration(0)

	limiter := newRateLimiter(2, time.Second*30)
	limiter.now = func() time.Time { return now }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		slept += d
		now = now.Add(d)
		return nil
	}

	require.NoError(t, limiter.wait(context.Background()))
	now = now.Add(time.Second * 10)
	require.NoError(t, limiter.wait(context.Background()))

	// third request inside the window has to wait for the first slot
	// to expire
	require.NoError(t, limiter.wait(context.Background()))
	require.Equal(t, time.Second*20, slept)
}

func TestRateLimiterExpiredSlotsFreeUp(t *testing.T) {
	now := time.Unix(1000, 0)

	limiter := newRateLimiter(2, time.Second*30)
	limiter.now = func() time.Time { return now }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		t.Fatal("should not sleep")
		return nil
	}

	require.NoError(t, limiter.wait(context.Background()))
	require.NoError(t, limiter.wait(context.Background()))

	now = now.Add(time.Second * 31)
	require.NoError(t, limiter.wait(context.Background()))
}

func TestRateLimiterRechecksAfterWaking(t *testing.T) {
	now := time.Unix(1000, 0)
	sleeps := 0

	limiter := newRateLimiter(1, time.Second*30)
	limiter.now = func() time.Time { return now }
	limiter.sleep = func(_ context.Context, d time.Duration) error {
		sleeps++
		// first wake finds the window still full, the slot frees up
		// only on the second
		if sleeps > 1 {
			now = now.Add(d)
		}
		return nil
	}

	require.NoError(t, limiter.wait(context.Background()))

	// a waiter woken while the window is full goes back to sleep
	// instead of recording a request anyway
	require.NoError(t, limiter.wait(context.Background()))
	require.Equal(t, 2, sleeps)
	require.Len(t, limiter.history, 1)
}

func TestRateLimiterHonorsContext(t *testing.T) {
	limiter := newRateLimiter(1, time.Second*30)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, limiter.wait(ctx))

	cancel()
	err := limiter.wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
