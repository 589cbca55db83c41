// Package savestatus tracks the user-visible state of the save action.
package savestatus

import (
	"sync"
	"time"
)

// State is one step of the save lifecycle.
type State string

// Save states. Success states revert to idle on their own after the revert
// duration; Failed holds until dismissed.
const (
	StateIdle           State = "idle"
	StateSaving         State = "saving"
	StateSavedFile      State = "saved-file"
	StateSavedClipboard State = "saved-clipboard"
	StateFailed         State = "failed"
)

// DefaultRevert is how long a success state stays visible.
const DefaultRevert = 3 * time.Second

// Tracker is the save-status state machine:
// idle → saving → saved-file|saved-clipboard → idle (timed),
// or saving → failed → idle (on Dismiss).
type Tracker struct {
	mu      sync.Mutex
	state   State
	message string
	revert  time.Duration
	gen     int // invalidates revert timers from superseded transitions
}

// NewTracker creates an idle tracker. A non-positive revert selects the
// default.
func NewTracker(revert time.Duration) *Tracker {
	if revert <= 0 {
		revert = DefaultRevert
	}
	return &Tracker{state: StateIdle, revert: revert}
}

// Begin marks a save as in flight.
func (t *Tracker) Begin() {
	t.set(StateSaving, "")
}

// Succeed records a completed save and schedules the revert to idle.
func (t *Tracker) Succeed(toFile bool) {
	st := StateSavedClipboard
	if toFile {
		st = StateSavedFile
	}
	gen := t.set(st, "")
	time.AfterFunc(t.revert, func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.gen != gen {
			return // superseded by a newer transition
		}
		t.state = StateIdle
		t.message = ""
	})
}

// Fail records a hard failure. No revert timer: the user must dismiss.
func (t *Tracker) Fail(message string) {
	t.set(StateFailed, message)
}

// Dismiss clears the current state back to idle.
func (t *Tracker) Dismiss() {
	t.set(StateIdle, "")
}

// Status returns the current state and message.
func (t *Tracker) Status() (State, string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.message
}

func (t *Tracker) set(st State, message string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.state = st
	t.message = message
	return t.gen
}
