package metrics

import (
	"sync/atomic"
	"time"
)

// InMemoryRecorder implements Recorder with atomic counters.
// Useful in tests and as a debugging backend.
type InMemoryRecorder struct {
	usersCreated     atomic.Int64
	userConflicts    atomic.Int64
	exercisesCreated atomic.Int64
	logQueries       atomic.Int64
	userCacheHits    atomic.Int64
	userCacheMisses  atomic.Int64
}

// NewInMemory returns a Recorder backed by in-process counters.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// IncUserCreated increments the created-user counter.
func (m *InMemoryRecorder) IncUserCreated() { m.usersCreated.Add(1) }

// IncUserConflict increments the duplicate-username counter.
func (m *InMemoryRecorder) IncUserConflict() { m.userConflicts.Add(1) }

// IncExerciseCreated increments the created-exercise counter.
func (m *InMemoryRecorder) IncExerciseCreated() { m.exercisesCreated.Add(1) }

// ObserveLogQueryDuration counts log queries; durations are not retained.
func (m *InMemoryRecorder) ObserveLogQueryDuration(duration time.Duration) {
	m.logQueries.Add(1)
}

// IncUserCacheHit increments the cache-hit counter.
func (m *InMemoryRecorder) IncUserCacheHit() { m.userCacheHits.Add(1) }

// IncUserCacheMiss increments the cache-miss counter.
func (m *InMemoryRecorder) IncUserCacheMiss() { m.userCacheMisses.Add(1) }

// Snapshot returns the current counter values.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:     m.usersCreated.Load(),
		UserConflicts:    m.userConflicts.Load(),
		ExercisesCreated: m.exercisesCreated.Load(),
		LogQueries:       m.logQueries.Load(),
		UserCacheHits:    m.userCacheHits.Load(),
		UserCacheMisses:  m.userCacheMisses.Load(),
	}
}
