package state

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update([]string{"a", "b"}, nil)

	snap := s.Snapshot()
	if !snap.HasItems || snap.Revision != 1 {
		t.Fatalf("snapshot = %#v, want HasItems and revision 1", snap)
	}
	if len(snap.Items) != 2 || snap.Items[0] != "a" {
		t.Fatalf("snapshot items = %#v, want 2 items", snap.Items)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Items[0] = "zzz"
	snap2 := s.Snapshot()
	if snap2.Items[0] != "a" {
		t.Fatalf("Snapshot should clone items; got %q want a", snap2.Items[0])
	}
}

func TestStore_RevisionOnlyAdvancesOnChange(t *testing.T) {
	var s Store

	s.Update(nil, nil)
	if got := s.Snapshot().Revision; got != 1 {
		t.Fatalf("first empty read revision = %d, want 1", got)
	}
	s.Update(nil, nil)
	s.Update([]string{}, nil)
	if got := s.Snapshot().Revision; got != 1 {
		t.Fatalf("unchanged revision = %d, want 1", got)
	}
	s.Update([]string{"x"}, nil)
	s.Update([]string{"x"}, nil)
	if got := s.Snapshot().Revision; got != 2 {
		t.Fatalf("revision = %d, want 2", got)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]string{"keep"}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !reflect.DeepEqual(snap.Items, prev.Items) || snap.Revision != prev.Revision {
		t.Fatalf("items changed on error: got %#v want %#v", snap.Items, prev.Items)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	tests := []struct {
		err       error
		failures  int
		wantStale bool
	}{
		{errors.New("fail 1"), 1, false},
		{errors.New("fail 2"), 2, true},
		{errors.New("fail 3"), 3, true},
		{nil, 0, false},
	}
	for i, tt := range tests {
		s.Update([]string{"a"}, tt.err)
		snap := s.Snapshot()
		if snap.ConsecutiveFailures != tt.failures {
			t.Fatalf("step %d: ConsecutiveFailures = %d, want %d", i, snap.ConsecutiveFailures, tt.failures)
		}
		if snap.IsStale() != tt.wantStale {
			t.Fatalf("step %d: IsStale() = %v, want %v", i, snap.IsStale(), tt.wantStale)
		}
	}
}
