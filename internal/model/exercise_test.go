package model

import (
	"testing"
	"time"
)

func TestExercise_DateString(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"single_digit_day", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Mon Jan 01 2024"},
		{"double_digit_day", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), "Wed Dec 25 2024"},
		{"leap_day", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), "Thu Feb 29 2024"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ex := &Exercise{Date: test.date}
			if got := ex.DateString(); got != test.want {
				t.Errorf("expected %q, got %q", test.want, got)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 6, 15, 23, 45, 12, 999, time.FixedZone("X", 3*3600))
	got := DateOnly(in)

	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got.Location() != time.UTC {
		t.Errorf("expected UTC, got %v", got.Location())
	}
}
