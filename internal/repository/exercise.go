package repository

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/fitlog/fitlog/internal/model"
)

// psql builds queries with PostgreSQL-style placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ExerciseFilter defines filters for querying a user's exercise log.
// From and To are inclusive calendar-day bounds.
type ExerciseFilter struct {
	UserID string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// CreateExercise inserts a new exercise record.
func (r *Repository) CreateExercise(ctx context.Context, exercise *model.Exercise) error {
	query := `
		INSERT INTO exercises (id, user_id, username, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		exercise.ID,
		exercise.UserID,
		exercise.Username,
		exercise.Description,
		exercise.Duration,
		exercise.Date,
		exercise.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil
}

// ListExercises retrieves a user's exercises matching the filter, ordered
// by date ascending, capped at filter.Limit rows.
func (r *Repository) ListExercises(ctx context.Context, filter ExerciseFilter) ([]*model.Exercise, error) {
	builder := psql.
		Select("id", "user_id", "username", "description", "duration", "date", "created_at").
		From("exercises").
		Where(sq.Eq{"user_id": filter.UserID})

	builder = applyDateBounds(builder, filter)
	builder = builder.OrderBy("date ASC", "id ASC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build exercise query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*model.Exercise
	for rows.Next() {
		var ex model.Exercise
		err := rows.Scan(
			&ex.ID,
			&ex.UserID,
			&ex.Username,
			&ex.Description,
			&ex.Duration,
			&ex.Date,
			&ex.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		exercises = append(exercises, &ex)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exercises: %w", err)
	}

	return exercises, nil
}

// CountExercises reports the number of records matching the filter before
// any limit is applied.
func (r *Repository) CountExercises(ctx context.Context, filter ExerciseFilter) (int, error) {
	builder := psql.
		Select("COUNT(*)").
		From("exercises").
		Where(sq.Eq{"user_id": filter.UserID})

	builder = applyDateBounds(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count exercises: %w", err)
	}

	return count, nil
}

func applyDateBounds(builder sq.SelectBuilder, filter ExerciseFilter) sq.SelectBuilder {
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"date": *filter.To})
	}
	return builder
}
