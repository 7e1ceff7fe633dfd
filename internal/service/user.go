package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// User service errors.
var (
	ErrUsernameRequired = errors.New("username is required")
	ErrUsernameTaken    = errors.New("username already taken")
	ErrUserNotFound     = errors.New("user not found")
)

// UserService handles user creation and listing.
type UserService struct {
	store   Store
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store Store, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		metrics: recorder,
	}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Create registers a new user. On a duplicate username it returns the
// existing user together with ErrUsernameTaken, so callers can report the
// conflict with the winner's representation. Usernames are matched exactly,
// case-sensitively; the database UNIQUE constraint backs the check.
func (s *UserService) Create(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	existing, err := s.store.GetUserByUsername(ctx, username)
	if err == nil {
		s.metrics.IncUserConflict()
		return existing, ErrUsernameTaken
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	user := &model.User{
		ID:        ulid.Make().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		// A concurrent create may have won the race between the check
		// and the insert. The unique index makes that loss explicit;
		// report the winner the same way as a plain conflict.
		if errors.Is(err, repository.ErrUsernameExists) {
			winner, lookupErr := s.store.GetUserByUsername(ctx, username)
			if lookupErr != nil {
				return nil, fmt.Errorf("failed to load conflicting user: %w", lookupErr)
			}
			s.metrics.IncUserConflict()
			return winner, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserCreated()

	return user, nil
}
