// Package service provides business logic for the application.
package service

import (
	"context"

	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// Store is the persistence boundary for the services. The PostgreSQL
// repository is the production implementation; tests substitute an
// in-memory one.
type Store interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)

	CreateExercise(ctx context.Context, exercise *model.Exercise) error
	ListExercises(ctx context.Context, filter repository.ExerciseFilter) ([]*model.Exercise, error)
	CountExercises(ctx context.Context, filter repository.ExerciseFilter) (int, error)
}

var _ Store = (*repository.Repository)(nil)
