package metrics

import (
	"testing"
	"time"
)

func TestInMemoryRecorder_Counters(t *testing.T) {
	rec := NewInMemory()

	rec.IncUserCreated()
	rec.IncUserCreated()
	rec.IncUserConflict()
	rec.IncExerciseCreated()
	rec.ObserveLogQueryDuration(5 * time.Millisecond)
	rec.IncUserCacheHit()
	rec.IncUserCacheMiss()
	rec.IncUserCacheMiss()

	snap := rec.Snapshot()

	if snap.UsersCreated != 2 {
		t.Errorf("expected 2 users created, got %d", snap.UsersCreated)
	}
	if snap.UserConflicts != 1 {
		t.Errorf("expected 1 conflict, got %d", snap.UserConflicts)
	}
	if snap.ExercisesCreated != 1 {
		t.Errorf("expected 1 exercise created, got %d", snap.ExercisesCreated)
	}
	if snap.LogQueries != 1 {
		t.Errorf("expected 1 log query, got %d", snap.LogQueries)
	}
	if snap.UserCacheHits != 1 || snap.UserCacheMisses != 2 {
		t.Errorf("unexpected cache counters: %+v", snap)
	}
}
