package progress

import (
	"context"
	"time"
)

// Ticker is anything advanced by one-second ticks.
type Ticker interface {
	Tick()
}

// Run drives a Ticker once per interval until the context is cancelled.
// Cancelling is the only way to stop it, so every exit path of the owning
// view must cancel or a stale tick fires after the state has moved on.
func Run(ctx context.Context, t Ticker, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

// RunSeconds starts Run in a goroutine at a one-second cadence and returns
// the cancel func that stops it.
func RunSeconds(t Ticker) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	go Run(ctx, t, time.Second)
	return cancel
}
