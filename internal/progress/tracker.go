// Package progress holds the per-exercise set-logging and rest-timer state.
// All of it is ephemeral client state: nothing here is persisted, and a
// tracker is rebuilt from the exercise's rest duration whenever the owning
// view is recreated.
package progress

import (
	"sync"
)

// TrackerState is the logical state of a set tracker.
type TrackerState int

const (
	// StateIdle: no sets logged yet.
	StateIdle TrackerState = iota
	// StateInProgress: some sets logged, no active rest period.
	StateInProgress
	// StateResting: a rest countdown is active between sets.
	StateResting
	// StateDone: all sets logged and completion fired.
	StateDone
)

func (s TrackerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInProgress:
		return "in-progress"
	case StateResting:
		return "resting"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// CompletionTrigger selects when a fully-logged exercise is marked complete.
type CompletionTrigger int

const (
	// TriggerImmediate marks the exercise complete the moment the last set
	// is logged.
	TriggerImmediate CompletionTrigger = iota
	// TriggerAfterFinalRest runs one final rest period after the last set
	// and marks the exercise complete when it finishes.
	TriggerAfterFinalRest
)

// TrackerConfig configures a SetTracker.
type TrackerConfig struct {
	Sets         int
	RestDuration int // seconds
	Trigger      CompletionTrigger

	// OnRestFinished fires every time a rest countdown reaches zero.
	OnRestFinished func()
	// OnCompleted fires exactly once per tracker, when the exercise is
	// fully logged per the configured trigger. This is where the caller
	// persists completed=true.
	OnCompleted func()
}

// SetTracker tracks logged sets for one exercise and paces the rest periods
// between them. Safe for use from the ticking goroutine and the UI event
// path concurrently.
type SetTracker struct {
	mu sync.Mutex

	sets         int
	restDuration int
	trigger      CompletionTrigger

	onRestFinished func()
	onCompleted    func()

	state          TrackerState
	completedSets  int
	restLeft       int
	running        bool
	finalRest      bool
	completedFired bool
}

// NewSetTracker builds a tracker in the Idle state with a full rest period
// banked.
func NewSetTracker(cfg TrackerConfig) *SetTracker {
	sets := cfg.Sets
	if sets < 1 {
		sets = 1
	}
	rest := cfg.RestDuration
	if rest < 0 {
		rest = 0
	}
	return &SetTracker{
		sets:           sets,
		restDuration:   rest,
		trigger:        cfg.Trigger,
		onRestFinished: cfg.OnRestFinished,
		onCompleted:    cfg.OnCompleted,
		state:          StateIdle,
		restLeft:       rest,
	}
}

// IncrementSet logs one completed set. Between sets it starts a rest
// countdown; on the last set the completion trigger decides whether the
// tracker completes now or after one final rest. No-op while resting or done.
func (t *SetTracker) IncrementSet() {
	t.mu.Lock()

	if t.state == StateResting || t.state == StateDone || t.completedSets >= t.sets {
		t.mu.Unlock()
		return
	}

	t.completedSets++

	if t.completedSets < t.sets {
		if t.restDuration > 0 {
			t.startRestLocked(false)
		} else {
			t.state = StateInProgress
		}
		t.mu.Unlock()
		return
	}

	// Last set logged.
	if t.trigger == TriggerAfterFinalRest && t.restDuration > 0 {
		t.startRestLocked(true)
		t.mu.Unlock()
		return
	}

	t.state = StateDone
	fire := t.takeCompletionLocked()
	t.mu.Unlock()
	if fire != nil {
		fire()
	}
}

// DecrementSet un-logs one set, floored at zero. Disabled while resting.
func (t *SetTracker) DecrementSet() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateResting || t.completedSets == 0 {
		return
	}
	t.completedSets--
	if t.completedSets == 0 {
		t.state = StateIdle
	}
}

// Tick advances the rest countdown by one second. The caller drives it once
// per second while the tracker is resting; ticks outside an active rest are
// ignored.
func (t *SetTracker) Tick() {
	t.mu.Lock()

	if t.state != StateResting || !t.running || t.restLeft <= 0 {
		t.mu.Unlock()
		return
	}

	t.restLeft--
	if t.restLeft > 0 {
		t.mu.Unlock()
		return
	}

	// Countdown hit zero: stop, rearm for the next cycle, notify.
	t.running = false
	t.restLeft = t.restDuration
	wasFinal := t.finalRest
	t.finalRest = false
	if wasFinal {
		t.state = StateDone
	} else {
		t.state = StateInProgress
	}

	notify := t.onRestFinished
	var fire func()
	if wasFinal {
		fire = t.takeCompletionLocked()
	}
	t.mu.Unlock()

	if notify != nil {
		notify()
	}
	if fire != nil {
		fire()
	}
}

// Pause stops the countdown without touching the remaining time.
func (t *SetTracker) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
}

// Resume restarts a paused countdown from where it stopped.
func (t *SetTracker) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateResting {
		t.running = true
	}
}

// ResetRest stops the countdown and restores the full rest duration. The
// logical state is unchanged, so resetting twice is the same as resetting
// once.
func (t *SetTracker) ResetRest() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.running = false
	t.restLeft = t.restDuration
}

// SkipRest leaves the rest period immediately without waiting for zero.
// Skipping the final rest completes the exercise: the sets are all logged
// and the user chose to forgo the pause.
func (t *SetTracker) SkipRest() {
	t.mu.Lock()

	if t.state != StateResting {
		t.mu.Unlock()
		return
	}

	t.running = false
	t.restLeft = t.restDuration
	wasFinal := t.finalRest
	t.finalRest = false
	if wasFinal {
		t.state = StateDone
	} else {
		t.state = StateInProgress
	}

	var fire func()
	if wasFinal {
		fire = t.takeCompletionLocked()
	}
	t.mu.Unlock()

	if fire != nil {
		fire()
	}
}

// State returns the current logical state.
func (t *SetTracker) State() TrackerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CompletedSets returns how many sets have been logged.
func (t *SetTracker) CompletedSets() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.completedSets
}

// RestTimeLeft returns the seconds remaining in the current rest cycle.
func (t *SetTracker) RestTimeLeft() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.restLeft
}

// Running reports whether the rest countdown is actively ticking.
func (t *SetTracker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.running
}

func (t *SetTracker) startRestLocked(final bool) {
	t.state = StateResting
	t.restLeft = t.restDuration
	t.running = true
	t.finalRest = final
}

// takeCompletionLocked returns the completion callback the first time the
// tracker completes and nil ever after.
func (t *SetTracker) takeCompletionLocked() func() {
	if t.completedFired {
		return nil
	}
	t.completedFired = true
	return t.onCompleted
}
