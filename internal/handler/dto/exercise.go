package dto

import (
	"encoding/json"

	"github.com/fitlog/fitlog/internal/model"
	"github.com/fitlog/fitlog/internal/service"
)

// StringOrNumber accepts a JSON string or a bare number and keeps the raw
// text either way. Clients send duration both quoted and unquoted.
type StringOrNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = StringOrNumber(v)
		return nil
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	*s = StringOrNumber(data)
	return nil
}

// CreateExerciseRequest represents the request body for logging an exercise.
type CreateExerciseRequest struct {
	Description string         `json:"description"`
	Duration    StringOrNumber `json:"duration"`
	Date        string         `json:"date"`
}

// ExerciseResponse represents a created exercise in API responses.
// ID echoes the owning user's ID.
type ExerciseResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogEntry is one exercise inside a log response.
type LogEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse represents a user's filtered exercise log.
// Count is the total number of matches before the limit was applied.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"id"`
	Log      []LogEntry `json:"log"`
}

// ToExerciseResponse converts a created Exercise to its response DTO.
func ToExerciseResponse(exercise *model.Exercise) *ExerciseResponse {
	return &ExerciseResponse{
		ID:          exercise.UserID,
		Username:    exercise.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
	}
}

// ToLogResponse converts a service Log to its response DTO.
// Log is never nil so an empty log encodes as [].
func ToLogResponse(log *service.Log) *LogResponse {
	entries := make([]LogEntry, len(log.Exercises))
	for i, exercise := range log.Exercises {
		entries[i] = LogEntry{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.DateString(),
		}
	}
	return &LogResponse{
		Username: log.User.Username,
		Count:    log.Count,
		ID:       log.User.ID,
		Log:      entries,
	}
}
