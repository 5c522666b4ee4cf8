package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserNameEmpty     = errors.New("user name cannot be empty")
	ErrUserNameTooLong   = errors.New("user name is too long (max 50 chars)")
)

const MaxUserNameLen = 50

// User is one tracked profile. Streak and LastUpdated form the persisted
// streak state; they are written only through the streak transition.
type User struct {
	Name        string    `json:"name" db:"name"`
	Streak      int       `json:"streak" db:"streak"`
	LastUpdated *DayKey   `json:"last_updated,omitempty" db:"last_updated"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

func NewUser(name string) (*User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrUserNameEmpty
	}
	if len(trimmed) > MaxUserNameLen {
		return nil, ErrUserNameTooLong
	}

	now := time.Now().UTC()
	return &User{
		Name:      trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// StreakState is the persisted streak counter plus the day it was last
// evaluated. A nil LastUpdated means the streak has never been computed
// for this user.
type StreakState struct {
	Streak      int     `json:"streak"`
	LastUpdated *DayKey `json:"last_updated,omitempty"`
}
