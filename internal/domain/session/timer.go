package session

import (
	"fmt"
	"sync"
	"time"
)

// Countdown is the exam clock: one-second resolution, counting down to a
// forced submission. Stop is idempotent, and once stopped or expired the
// clock never fires again, so a tick arriving after teardown cannot
// mutate a discarded session.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	expired   bool
	stopped   bool
	stop      chan struct{}
}

// NewCountdown creates a countdown with the given number of seconds.
func NewCountdown(seconds int) *Countdown {
	return &Countdown{
		remaining: seconds,
		stop:      make(chan struct{}),
	}
}

// Tick decrements the clock by one second. The second return value is
// true exactly once: on the tick that reaches zero. Ticks after expiry or
// Stop are no-ops.
func (c *Countdown) Tick() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped || c.expired {
		return c.remaining, false
	}

	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.expired = true
		return 0, true
	}
	return c.remaining, false
}

// Start runs the clock in the background, ticking once per second and
// invoking onExpire when the countdown reaches zero.
func (c *Countdown) Start(onExpire func()) {
	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				if _, expired := c.Tick(); expired {
					onExpire()
					c.Stop()
					return
				}
			}
		}
	}()
}

// Stop halts the clock. Stopping an already stopped countdown is a no-op.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopped {
		return
	}
	c.stopped = true
	close(c.stop)
}

// Remaining returns the seconds left on the clock.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Clock formats the remaining time as MM:SS.
func Clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
