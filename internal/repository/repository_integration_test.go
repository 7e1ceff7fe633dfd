package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/repository"
	"github.com/fitlog/fitlog/internal/testutil"
)

// newTestRepository connects to the database named by TEST_DATABASE_URL,
// or skips. Migrations run on connect; tables are emptied per test.
func newTestRepository(t *testing.T) (*repository.Repository, context.Context) {
	t.Helper()

	url := testutil.RequireEnv(t, "TEST_DATABASE_URL")
	ctx := context.Background()

	repo, err := repository.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	require.NoError(t, testutil.ResetSchema(ctx, repo.Pool()))

	return repo, ctx
}

func newDBUser(username string) *model.User {
	return &model.User{
		ID:        ulid.Make().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
}

func TestRepository_CreateAndGetUser(t *testing.T) {
	repo, ctx := newTestRepository(t)

	user := newDBUser("alice")
	require.NoError(t, repo.CreateUser(ctx, user))

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	got, err = repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestRepository_CreateUser_UniqueViolation(t *testing.T) {
	repo, ctx := newTestRepository(t)

	require.NoError(t, repo.CreateUser(ctx, newDBUser("alice")))

	err := repo.CreateUser(ctx, newDBUser("alice"))
	require.ErrorIs(t, err, repository.ErrUsernameExists)
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, ctx := newTestRepository(t)

	// Any unrecognized ID, malformed or not, is the same not-found.
	_, err := repo.GetUserByID(ctx, "definitely-not-a-ulid")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestRepository_ListUsers(t *testing.T) {
	repo, ctx := newTestRepository(t)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	require.NoError(t, repo.CreateUser(ctx, newDBUser("alice")))
	require.NoError(t, repo.CreateUser(ctx, newDBUser("bob")))

	users, err = repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestRepository_ExerciseFilterAndCount(t *testing.T) {
	repo, ctx := newTestRepository(t)

	user := newDBUser("alice")
	require.NoError(t, repo.CreateUser(ctx, user))

	days := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04"}
	for _, day := range days {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)

		require.NoError(t, repo.CreateExercise(ctx, &model.Exercise{
			ID:          ulid.Make().String(),
			UserID:      user.ID,
			Username:    user.Username,
			Description: "run " + day,
			Duration:    30,
			Date:        date,
			CreatedAt:   time.Now().UTC(),
		}))
	}

	from, _ := time.Parse("2006-01-02", "2024-01-02")
	to, _ := time.Parse("2006-01-02", "2024-01-03")

	filter := repository.ExerciseFilter{UserID: user.ID, From: &from, To: &to, Limit: 1}

	// Count ignores the limit.
	count, err := repo.CountExercises(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// List honors it, inclusive on both bounds, date ascending.
	exercises, err := repo.ListExercises(ctx, filter)
	require.NoError(t, err)
	require.Len(t, exercises, 1)
	assert.Equal(t, "run 2024-01-02", exercises[0].Description)
}

func TestRepository_ExerciseOrdering(t *testing.T) {
	repo, ctx := newTestRepository(t)

	user := newDBUser("alice")
	require.NoError(t, repo.CreateUser(ctx, user))

	for _, day := range []string{"2024-03-01", "2024-01-01", "2024-02-01"} {
		date, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		require.NoError(t, repo.CreateExercise(ctx, &model.Exercise{
			ID:          ulid.Make().String(),
			UserID:      user.ID,
			Username:    user.Username,
			Description: day,
			Duration:    10,
			Date:        date,
			CreatedAt:   time.Now().UTC(),
		}))
	}

	exercises, err := repo.ListExercises(ctx, repository.ExerciseFilter{UserID: user.ID, Limit: 100})
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "2024-01-01", exercises[0].Description)
	assert.Equal(t, "2024-02-01", exercises[1].Description)
	assert.Equal(t, "2024-03-01", exercises[2].Description)
}
