package internal

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/avendel/folio/internal/literal"
	"github.com/avendel/folio/internal/store"
	"github.com/avendel/folio/internal/testutil"
)

func TestWatchReloadsOnExternalWrite(t *testing.T) {
	file := testutil.TestDataFile(t)
	st := store.New(testutil.SeedData())
	logger := slog.New(slog.DiscardHandler)

	// The watcher needs the directory to exist; TestDataFile's TempDir does.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		watchDataFile(ctx, file, st, nil, logger)
		close(done)
	}()

	// Give the watcher a moment to register before the write.
	time.Sleep(100 * time.Millisecond)

	next := testutil.SeedData()
	next.PersonalInfo.Name = "Rewritten Externally"
	if err := file.Write(literal.Marshal(next)); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		if st.Snapshot().PersonalInfo.Name == "Rewritten Externally" {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("store never reloaded; name = %q", st.Snapshot().PersonalInfo.Name)
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on context cancel")
	}
}

func TestWatchKeepsSnapshotOnParseFailure(t *testing.T) {
	file := testutil.TestDataFile(t)
	st := store.New(testutil.SeedData())
	before := st.Snapshot()
	logger := slog.New(slog.DiscardHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go watchDataFile(ctx, file, st, nil, logger)

	time.Sleep(100 * time.Millisecond)

	if err := file.Write([]byte("half a paste {")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Wait past the debounce window, then confirm the snapshot survived.
	time.Sleep(600 * time.Millisecond)
	if st.Snapshot() != before {
		t.Error("unparseable data file replaced the snapshot")
	}
}
