package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidRecord = errors.New("invalid completion record")

// CompletionRecord is one user's check for one habit on one day.
// Uniquely identified by (user_name, habit, date) in storage; the
// derivation code treats it as an immutable value.
type CompletionRecord struct {
	ID        string `json:"id" db:"id"`
	UserName  string `json:"user_name" db:"user_name"`
	Habit     string `json:"habit" db:"habit"`
	Date      DayKey `json:"date" db:"date"`
	Completed bool   `json:"completed" db:"completed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func NewCompletionRecord(userName, habit string, date DayKey, completed bool) *CompletionRecord {
	now := time.Now().UTC()

	return &CompletionRecord{
		UserName:  userName,
		Habit:     habit,
		Date:      date,
		Completed: completed,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *CompletionRecord) Validate() error {
	if strings.TrimSpace(r.UserName) == "" {
		return fmt.Errorf("%w: user_name is required", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Habit) == "" {
		return fmt.Errorf("%w: habit is required", ErrInvalidRecord)
	}
	if _, err := ParseDayKey(string(r.Date)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	return nil
}

// FilterValid drops malformed records before aggregation. A bad row from
// storage degrades one data point, never the whole computation.
func FilterValid(records []*CompletionRecord) []*CompletionRecord {
	valid := make([]*CompletionRecord, 0, len(records))
	for _, r := range records {
		if r == nil || r.Validate() != nil {
			continue
		}
		valid = append(valid, r)
	}
	return valid
}
