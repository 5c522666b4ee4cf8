package domain

import (
	"context"
	"errors"
)

var (
	ErrRecordNotFound = errors.New("completion record not found")
	ErrRecordConflict = errors.New("completion record conflict")
)

// RecordRepository owns raw completion records. It is the external record
// store the derivations read from; they never write through it except via
// Upsert and the habit-delete cascade.
type RecordRepository interface {
	// Upsert creates or overwrites the record identified by
	// (user_name, habit, date).
	Upsert(ctx context.Context, record *CompletionRecord) error

	// ListByUser retrieves a user's full history.
	ListByUser(ctx context.Context, userName string) ([]*CompletionRecord, error)

	// ListByUserAndDates retrieves a user's records restricted to the
	// given set of days.
	ListByUserAndDates(ctx context.Context, userName string, days []DayKey) ([]*CompletionRecord, error)

	// DeleteByHabitName removes all of a user's records for one habit.
	// Used by the habit-delete cascade.
	DeleteByHabitName(ctx context.Context, userName, habitName string) error
}
