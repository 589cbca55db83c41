package savestatus

import (
	"testing"
	"time"
)

func TestSuccessRevertsToIdle(t *testing.T) {
	tr := NewTracker(50 * time.Millisecond)
	tr.Begin()
	if st, _ := tr.Status(); st != StateSaving {
		t.Fatalf("state = %q, want saving", st)
	}

	tr.Succeed(true)
	if st, _ := tr.Status(); st != StateSavedFile {
		t.Fatalf("state = %q, want saved-file", st)
	}

	deadline := time.After(time.Second)
	for {
		if st, _ := tr.Status(); st == StateIdle {
			return
		}
		select {
		case <-deadline:
			t.Fatal("state did not revert to idle")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestClipboardResultDistinct(t *testing.T) {
	tr := NewTracker(time.Minute)
	tr.Begin()
	tr.Succeed(false)
	if st, _ := tr.Status(); st != StateSavedClipboard {
		t.Errorf("state = %q, want saved-clipboard", st)
	}
}

func TestStaleRevertTimerIgnored(t *testing.T) {
	tr := NewTracker(30 * time.Millisecond)
	tr.Succeed(true)
	// A second save begins before the first revert fires.
	tr.Begin()
	time.Sleep(80 * time.Millisecond)
	if st, _ := tr.Status(); st != StateSaving {
		t.Errorf("state = %q, stale timer should not reset an in-flight save", st)
	}
}

func TestFailedHoldsUntilDismissed(t *testing.T) {
	tr := NewTracker(20 * time.Millisecond)
	tr.Begin()
	tr.Fail("clipboard unavailable")
	time.Sleep(60 * time.Millisecond)
	st, msg := tr.Status()
	if st != StateFailed {
		t.Fatalf("state = %q, failed must not auto-revert", st)
	}
	if msg != "clipboard unavailable" {
		t.Errorf("message = %q", msg)
	}
	tr.Dismiss()
	if st, _ := tr.Status(); st != StateIdle {
		t.Errorf("state after dismiss = %q", st)
	}
}
