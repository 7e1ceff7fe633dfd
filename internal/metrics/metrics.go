// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// User store metrics
	IncUserCreated()
	IncUserConflict()

	// Exercise log metrics
	IncExerciseCreated()
	ObserveLogQueryDuration(duration time.Duration)

	// User lookup cache metrics
	IncUserCacheHit()
	IncUserCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot is a point-in-time view of recorded counters.
type Snapshot struct {
	UsersCreated     int64
	UserConflicts    int64
	ExercisesCreated int64
	LogQueries       int64
	UserCacheHits    int64
	UserCacheMisses  int64
}
