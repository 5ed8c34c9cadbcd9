package progress

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingTicker struct {
	ticks atomic.Int64
}

func (c *countingTicker) Tick() {
	c.ticks.Add(1)
}

func TestRunDrivesTicksUntilCancelled(t *testing.T) {
	ct := &countingTicker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		Run(ctx, ct, time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return ct.ticks.Load() >= 3
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	// No ticks arrive after the runner has exited.
	final := ct.ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, final, ct.ticks.Load())
}

func TestRunSecondsReturnsWorkingCancel(t *testing.T) {
	tracker := NewSetTracker(TrackerConfig{Sets: 2, RestDuration: 60})
	cancel := RunSeconds(tracker)

	// Cancelling must be safe at any point, including immediately.
	cancel()
}
