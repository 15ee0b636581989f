package session

import (
	"sync"
	"time"
)

// countdownStep is the amount removed from the remaining budget per tick.
const countdownStep = time.Second

// Countdown is a cancellable per-second countdown for exam-mode sessions.
// Each tick decrements the remaining budget by one second; when the budget
// reaches zero the expiry callback fires exactly once and the countdown stops
// itself. Stop is idempotent and safe to call from the callbacks.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
	interval  time.Duration
	onTick    func(remaining time.Duration)
	onExpire  func()
	stop      chan struct{}
	stopped   bool
}

// NewCountdown creates a countdown over the given total budget. The interval
// controls real-time pacing between ticks and is one second in production;
// tests shrink it to keep runs fast. Either callback may be nil.
func NewCountdown(total, interval time.Duration, onTick func(time.Duration), onExpire func()) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{
		remaining: total,
		interval:  interval,
		onTick:    onTick,
		onExpire:  onExpire,
		stop:      make(chan struct{}),
	}
}

// Start launches the ticking goroutine.
func (c *Countdown) Start() {
	go c.run()
}

func (c *Countdown) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stopped {
				c.mu.Unlock()
				return
			}
			c.remaining -= countdownStep
			rem := c.remaining
			c.mu.Unlock()

			if rem <= 0 {
				// Stop before firing so a slow expiry callback can never
				// overlap with another tick.
				c.Stop()
				if c.onExpire != nil {
					c.onExpire()
				}
				return
			}
			if c.onTick != nil {
				c.onTick(rem)
			}
		}
	}
}

// Remaining returns the current remaining budget, floored at zero.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// Stop cancels the countdown. Safe to call multiple times and from any
// goroutine; after Stop no further ticks or expiry fire.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.stopped {
		c.stopped = true
		close(c.stop)
	}
}
