package ratelimiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func newTestLimiter(limit int, w time.Duration) (*FixedWindowRateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	rl := NewFixedWindowLimiter(limit, w)
	rl.now = clock.now
	return rl, clock
}

func TestAllow_WithinLimit(t *testing.T) {
	rl, _ := newTestLimiter(3, time.Second)

	for i := 0; i < 3; i++ {
		ok, retry := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i+1)
		assert.Zero(t, retry)
	}
}

func TestAllow_OverLimit(t *testing.T) {
	rl, clock := newTestLimiter(2, 5*time.Second)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.1")
	clock.t = clock.t.Add(2 * time.Second)

	ok, retry := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 3*time.Second, retry)

	// other clients have their own budget
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestAllow_WindowResets(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Second)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	clock.t = clock.t.Add(time.Second)
	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}

func TestAllow_SweepsExpiredClients(t *testing.T) {
	rl, clock := newTestLimiter(1, time.Second)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")
	clock.t = clock.t.Add(2 * time.Second)
	rl.Allow("10.0.0.3")

	assert.Len(t, rl.clients, 1)
}

func TestAllow_Concurrent(t *testing.T) {
	rl := NewFixedWindowLimiter(50, time.Minute)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := rl.Allow("10.0.0.1"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
