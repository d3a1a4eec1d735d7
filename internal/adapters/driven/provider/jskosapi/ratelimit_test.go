package jskosapi

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Defaults(t *testing.T) {
	r := newRateLimiter(0, 0)

	assert.InDelta(t, DefaultRequestsPerSecond, float64(r.limiter.Limit()), 0.001)
	assert.Equal(t, DefaultBurst, r.limiter.Burst())
}

func TestRateLimiter_BackoffHonoursContext(t *testing.T) {
	r := newRateLimiter(100, 1)
	r.Backoff(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, r.Wait(ctx), context.DeadlineExceeded)
}

func TestRateLimiter_BackoffNeverShortens(t *testing.T) {
	r := newRateLimiter(100, 1)
	r.Backoff(time.Hour)
	first := r.retryAt

	r.Backoff(time.Second)

	assert.Equal(t, first, r.retryAt)
}
