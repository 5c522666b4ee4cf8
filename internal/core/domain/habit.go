package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitInvalidUser   = errors.New("invalid user name")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrHabitAlreadyExists = errors.New("habit already exists for this user")
)

const MaxHabitNameLen = 100

// Habit is a user-defined daily habit. Only the name participates in the
// derivations; everything else is bookkeeping.
type Habit struct {
	ID        string    `json:"id" db:"id"`
	UserName  string    `json:"user_name" db:"user_name"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewHabit(userName, name string) (*Habit, error) {
	if strings.TrimSpace(userName) == "" {
		return nil, ErrHabitInvalidUser
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrHabitNameEmpty
	}
	if len(trimmed) > MaxHabitNameLen {
		return nil, ErrHabitNameTooLong
	}

	return &Habit{
		ID:        uuid.New().String(),
		UserName:  userName,
		Name:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}
