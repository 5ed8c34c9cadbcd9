package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownRunsToZeroAndRearms(t *testing.T) {
	notified := 0
	c := NewCountdown(5, func() { notified++ })

	assert.Equal(t, 5, c.Remaining())
	assert.False(t, c.Running())

	c.Start()
	for i := 0; i < 5; i++ {
		c.Tick()
	}

	assert.Equal(t, 1, notified)
	assert.False(t, c.Running(), "stops at zero")
	assert.Equal(t, 5, c.Remaining(), "rearms to the full duration")

	// Further ticks while stopped do nothing.
	c.Tick()
	assert.Equal(t, 1, notified)
	assert.Equal(t, 5, c.Remaining())
}

func TestCountdownPausePreservesRemaining(t *testing.T) {
	c := NewCountdown(10, nil)

	c.Start()
	c.Tick()
	c.Tick()
	assert.Equal(t, 8, c.Remaining())

	c.Pause()
	c.Tick()
	assert.Equal(t, 8, c.Remaining())

	c.Start()
	c.Tick()
	assert.Equal(t, 7, c.Remaining())
}

func TestCountdownReset(t *testing.T) {
	c := NewCountdown(10, nil)

	c.Start()
	c.Tick()
	c.Tick()
	c.Reset()

	assert.Equal(t, 10, c.Remaining())
	assert.False(t, c.Running())
}

func TestCountdownSetDuration(t *testing.T) {
	c := NewCountdown(10, nil)

	// Stopped: the remaining time follows the new duration.
	c.SetDuration(20)
	assert.Equal(t, 20, c.Remaining())

	// Running: edits don't jump the clock mid-cycle.
	c.Start()
	c.Tick()
	c.SetDuration(30)
	assert.Equal(t, 19, c.Remaining())

	// The new duration applies from the next rearm.
	c.Reset()
	assert.Equal(t, 30, c.Remaining())
}

func TestCountdownNegativeDurationClamped(t *testing.T) {
	c := NewCountdown(-5, nil)
	assert.Equal(t, 0, c.Remaining())

	c.Start()
	assert.False(t, c.Running(), "an empty countdown never starts")
}
