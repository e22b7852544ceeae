package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/five82/snaplane/internal/state"
)

func TestCalculateBackoff(t *testing.T) {
	baseInterval := 2 * time.Second

	tests := []struct {
		name     string
		failures int
		want     time.Duration
	}{
		{"zero failures", 0, 2 * time.Second},
		{"negative failures", -1, 2 * time.Second},
		{"one failure", 1, 4 * time.Second},
		{"two failures", 2, 8 * time.Second},
		{"three failures", 3, 16 * time.Second},
		{"four failures capped", 4, 30 * time.Second}, // Would be 32s, capped to 30s
		{"many failures capped", 10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calculateBackoff(tt.failures, baseInterval)
			if got != tt.want {
				t.Errorf("calculateBackoff(%d, %v) = %v, want %v", tt.failures, baseInterval, got, tt.want)
			}
		})
	}
}

func TestCalculateBackoff_MaxCap(t *testing.T) {
	// Verify that backoff never exceeds maxBackoff regardless of input
	baseInterval := 2 * time.Second
	for failures := 0; failures <= 20; failures++ {
		got := calculateBackoff(failures, baseInterval)
		if got > maxBackoff {
			t.Errorf("calculateBackoff(%d, %v) = %v, exceeds maxBackoff %v", failures, baseInterval, got, maxBackoff)
		}
	}
}

func TestRefresh_UpdatesStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "items.txt")
	if err := os.WriteFile(path, []byte("one\n# skip\ntwo\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var store state.Store
	if err := refresh(&store, path, 10); err != nil {
		t.Fatalf("refresh returned error: %v", err)
	}
	snap := store.Snapshot()
	if len(snap.Items) != 2 || snap.Items[1] != "two" {
		t.Fatalf("Items = %v, want [one two]", snap.Items)
	}

	// A directory cannot be scanned as a file; the error is recorded and the
	// previous items survive.
	if err := refresh(&store, dir, 10); err == nil {
		t.Fatalf("refresh(dir) returned nil error")
	}
	snap = store.Snapshot()
	if snap.ConsecutiveFailures != 1 || len(snap.Items) != 2 {
		t.Fatalf("snapshot after failure = %+v", snap)
	}
}

func TestStartPoller_PicksUpChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var store state.Store
	StartPoller(ctx, &store, path, 10, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := store.Snapshot(); len(snap.Items) == 1 && snap.Items[0] == "a" {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("poller never populated the store: %+v", store.Snapshot())
}
