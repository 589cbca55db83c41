package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishSaveDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishSave("completed", map[string]string{"result": "file"})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: save.completed") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"result":"file"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishEditThrottle(t *testing.T) {
	b := NewBroker(300 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// A burst of edits should collapse: one leading broadcast, one trailing.
	for i := 0; i < 5; i++ {
		b.PublishEdit()
	}

	count := 0
	deadline := time.After(time.Second)
	for count < 2 {
		select {
		case msg := <-ch:
			if strings.Contains(string(msg), "event: portfolio.updated") {
				count++
			}
		case <-deadline:
			t.Fatalf("got %d portfolio.updated events, want 2", count)
		}
	}

	// No further events should arrive.
	select {
	case msg := <-ch:
		t.Errorf("unexpected extra event %q", msg)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := NewBroker(50 * time.Millisecond)
	ch := b.Subscribe()
	b.Close()

	// Must not panic or block.
	b.PublishEdit()
	b.PublishSave("failed", nil)

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after broker close")
	}
}
