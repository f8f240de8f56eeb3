package hal

import (
	"sync"
	"time"
)

// hostClock counts ticks and measures the tick rate over one-second windows.
type hostClock struct {
	mu  sync.Mutex
	now func() time.Time

	frame uint64
	start time.Time
	count int
	fps   float64
}

func newHostClock() *hostClock {
	return newHostClockWithNow(time.Now)
}

func newHostClockWithNow(now func() time.Time) *hostClock {
	return &hostClock{now: now}
}

func (c *hostClock) Frame() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

func (c *hostClock) FPS() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fps
}

func (c *hostClock) step() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.frame++
	if c.start.IsZero() {
		c.start = now
		c.count = 0
		return
	}
	c.count++
	if d := now.Sub(c.start); d >= time.Second {
		c.fps = float64(c.count) / d.Seconds()
		c.start = now
		c.count = 0
	}
}
