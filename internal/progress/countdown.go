package progress

import (
	"sync"
)

// Countdown is a standalone per-exercise timer (timed holds, cardio
// intervals). It runs independently of any SetTracker sharing the same view.
// When the countdown reaches zero it notifies once and rearms to the full
// duration.
type Countdown struct {
	mu sync.Mutex

	duration   int // seconds
	remaining  int
	running    bool
	onComplete func()
}

// NewCountdown builds a stopped countdown holding the full duration.
func NewCountdown(duration int, onComplete func()) *Countdown {
	if duration < 0 {
		duration = 0
	}
	return &Countdown{
		duration:   duration,
		remaining:  duration,
		onComplete: onComplete,
	}
}

// Start begins or resumes ticking.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.running = true
	}
}

// Pause stops ticking without touching the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
}

// Reset stops the countdown and restores the full duration.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.running = false
	c.remaining = c.duration
}

// SetDuration changes the configured duration. The remaining time follows
// only while the countdown is stopped, so edits mid-run don't jump the clock.
func (c *Countdown) SetDuration(duration int) {
	if duration < 0 {
		duration = 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.duration = duration
	if !c.running {
		c.remaining = duration
	}
}

// Tick advances the countdown by one second. At zero it stops, notifies
// once, and rearms to the full duration.
func (c *Countdown) Tick() {
	c.mu.Lock()

	if !c.running || c.remaining <= 0 {
		c.mu.Unlock()
		return
	}

	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return
	}

	c.running = false
	c.remaining = c.duration
	notify := c.onComplete
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// Remaining returns the seconds left in the current cycle.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether the countdown is actively ticking.
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}
