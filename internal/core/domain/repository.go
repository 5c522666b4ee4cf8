package domain

import "context"

// UserRepository owns user profiles and their persisted streak state.
type UserRepository interface {
	// Create persists a new user profile.
	Create(ctx context.Context, user *User) error

	// GetByName retrieves a user by their unique name.
	GetByName(ctx context.Context, name string) (*User, error)

	// List retrieves every user with their persisted streak fields,
	// as needed by the leaderboard and comparison views.
	List(ctx context.Context) ([]*User, error)

	// GetStreakState reads the persisted streak counter and its
	// last-updated marker for one user.
	GetStreakState(ctx context.Context, name string) (*StreakState, error)

	// SetStreakState overwrites the persisted streak state. Only the
	// streak transition calls this.
	SetStreakState(ctx context.Context, name string, streak int, lastUpdated DayKey) error
}

// HabitRepository owns habit definitions.
type HabitRepository interface {
	Create(ctx context.Context, habit *Habit) error

	// ListByUser retrieves a user's habits in creation order.
	ListByUser(ctx context.Context, userName string) ([]*Habit, error)

	// Delete removes a habit by name. Cascading the habit's records is
	// orchestrated by the service layer.
	Delete(ctx context.Context, userName, habitName string) error
}
