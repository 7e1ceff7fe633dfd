package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// MemStore is an in-memory store for tests. It mirrors the repository's
// contract, including its sentinel errors and the always-date-ascending
// ordering of log queries.
type MemStore struct {
	mu        sync.Mutex
	users     []*model.User
	exercises []*model.Exercise

	// FailWith, when set, is returned by every operation. Lets tests
	// exercise the 500 paths.
	FailWith error
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// CreateUser inserts a user, enforcing username uniqueness the way the
// database UNIQUE constraint does.
func (m *MemStore) CreateUser(ctx context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}

	for _, u := range m.users {
		if u.Username == user.Username {
			return repository.ErrUsernameExists
		}
	}

	clone := *user
	m.users = append(m.users, &clone)
	return nil
}

// GetUserByID looks up a user by ID.
func (m *MemStore) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	for _, u := range m.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// GetUserByUsername looks up a user by exact username.
func (m *MemStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	for _, u := range m.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// ListUsers returns all users in insertion order.
func (m *MemStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	users := make([]*model.User, len(m.users))
	for i, u := range m.users {
		clone := *u
		users[i] = &clone
	}
	return users, nil
}

// CreateExercise inserts an exercise record.
func (m *MemStore) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}

	clone := *exercise
	m.exercises = append(m.exercises, &clone)
	return nil
}

// ListExercises returns matches ordered by date then ID, capped at the
// filter limit.
func (m *MemStore) ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return nil, m.FailWith
	}

	matches := m.match(filter)
	if filter.Limit > 0 && len(matches) > filter.Limit {
		matches = matches[:filter.Limit]
	}
	return matches, nil
}

// CountExercises reports total matches before any limit.
func (m *MemStore) CountExercises(ctx context.Context, filter repository.ExerciseFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return 0, m.FailWith
	}

	return len(m.match(filter)), nil
}

func (m *MemStore) match(filter repository.ExerciseFilter) []*model.Exercise {
	var matches []*model.Exercise
	for _, ex := range m.exercises {
		if ex.UserID != filter.UserID {
			continue
		}
		if filter.From != nil && ex.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && ex.Date.After(*filter.To) {
			continue
		}
		clone := *ex
		matches = append(matches, &clone)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if !matches[i].Date.Equal(matches[j].Date) {
			return matches[i].Date.Before(matches[j].Date)
		}
		return matches[i].ID < matches[j].ID
	})

	return matches
}
