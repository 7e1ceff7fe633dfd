package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/fitlog/fitlog/internal/cache"
	"github.com/fitlog/fitlog/internal/metrics"
	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
)

// Log service errors. Each maps to a distinct client-facing message.
var (
	ErrDescriptionAndDurationRequired = errors.New("description and duration are required")
	ErrDescriptionRequired            = errors.New("description is required")
	ErrDurationRequired               = errors.New("duration is required")
	ErrDurationNotNumeric             = errors.New("duration must be a valid number")
	ErrInvalidDate                    = errors.New("date must be in YYYY-MM-DD format")
)

// DateParamFormat is the accepted layout for date inputs and the
// from/to query filters.
const DateParamFormat = "2006-01-02"

// LogService handles exercise creation and log retrieval.
type LogService struct {
	store        Store
	cache        *cache.Cache
	metrics      metrics.Recorder
	defaultLimit int
}

// NewLogService creates a new LogService. userCache may be nil, in which
// case every user lookup goes to the store.
func NewLogService(store Store, userCache *cache.Cache, defaultLimit int, recorder metrics.Recorder) *LogService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if defaultLimit <= 0 {
		defaultLimit = 100
	}
	return &LogService{
		store:        store,
		cache:        userCache,
		metrics:      recorder,
		defaultLimit: defaultLimit,
	}
}

// AddExerciseInput defines input for logging an exercise. Duration arrives
// as the raw string the client sent; validation decides whether it is
// numeric.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string
}

// AddExercise validates and persists a new exercise record.
//
// Checks run in a fixed order, first failure wins: user existence, both
// description and duration missing, description missing, duration missing,
// duration not numeric, date malformed.
func (s *LogService) AddExercise(ctx context.Context, input AddExerciseInput) (*model.Exercise, error) {
	user, err := s.lookupUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	switch {
	case input.Description == "" && input.Duration == "":
		return nil, ErrDescriptionAndDurationRequired
	case input.Description == "":
		return nil, ErrDescriptionRequired
	case input.Duration == "":
		return nil, ErrDurationRequired
	}

	// Durations are whole minutes; fractional input is not numeric.
	duration, err := strconv.Atoi(input.Duration)
	if err != nil {
		return nil, ErrDurationNotNumeric
	}

	date := model.DateOnly(time.Now())
	if input.Date != "" {
		parsed, err := time.Parse(DateParamFormat, input.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		date = parsed
	}

	exercise := &model.Exercise{
		ID:          ulid.Make().String(),
		UserID:      user.ID,
		Username:    user.Username,
		Description: input.Description,
		Duration:    duration,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.store.CreateExercise(ctx, exercise); err != nil {
		return nil, fmt.Errorf("failed to create exercise: %w", err)
	}

	s.metrics.IncExerciseCreated()

	return exercise, nil
}

// GetLogInput defines input for reading a user's exercise log.
type GetLogInput struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// Log is a user's filtered, bounded exercise log. Count reports the total
// matches before the limit was applied.
type Log struct {
	User      *model.User
	Count     int
	Exercises []*model.Exercise
}

// GetLog returns the user's exercises within the inclusive [From, To]
// bounds, ordered by date ascending and capped at Limit entries.
func (s *LogService) GetLog(ctx context.Context, input GetLogInput) (*Log, error) {
	start := time.Now()

	user, err := s.lookupUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}

	filter := repository.ExerciseFilter{
		UserID: user.ID,
		From:   input.From,
		To:     input.To,
		Limit:  limit,
	}

	count, err := s.store.CountExercises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count exercises: %w", err)
	}

	exercises, err := s.store.ListExercises(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	s.metrics.ObserveLogQueryDuration(time.Since(start))

	return &Log{
		User:      user,
		Count:     count,
		Exercises: exercises,
	}, nil
}

// lookupUser resolves a user by ID through the cache when one is wired.
// Any ID the store does not recognize, malformed or not, is ErrUserNotFound.
// Cache failures fall through to the store and are never surfaced.
func (s *LogService) lookupUser(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, ErrUserNotFound
	}

	if s.cache != nil {
		if user, err := s.cache.GetUser(ctx, id); err == nil {
			s.metrics.IncUserCacheHit()
			return user, nil
		}
		s.metrics.IncUserCacheMiss()
	}

	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if s.cache != nil {
		// Best effort; a failed write only costs the next request a DB hit.
		_ = s.cache.SetUser(ctx, user)
	}

	return user, nil
}
