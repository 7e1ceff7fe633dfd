package model

import "time"

// LogDateFormat is the fixed calendar rendering used in API responses,
// e.g. "Mon Jan 01 2024".
const LogDateFormat = "Mon Jan 02 2006"

// Exercise is a single logged activity owned by exactly one user.
// Records are immutable after creation.
type Exercise struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// DateString renders the exercise date in the fixed log format.
func (e *Exercise) DateString() string {
	return e.Date.Format(LogDateFormat)
}

// DateOnly truncates t to calendar-day granularity in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
