package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/npandey/habitpulse/internal/core/domain"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	query := `
		INSERT INTO users (name, streak, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query,
		user.Name, user.Streak, user.LastUpdated, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("repository: create user failed: %w", err)
	}

	return nil
}

func (r *PostgresUserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var user domain.User
	query := `
		SELECT name, streak, last_updated, created_at, updated_at
		FROM users
		WHERE name = $1`

	if err := r.db.GetContext(ctx, &user, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by name failed: %w", err)
	}

	return &user, nil
}

func (r *PostgresUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	users := []*domain.User{}
	query := `
		SELECT name, streak, last_updated, created_at, updated_at
		FROM users
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("repository: list users failed: %w", err)
	}

	return users, nil
}

func (r *PostgresUserRepository) GetStreakState(ctx context.Context, name string) (*domain.StreakState, error) {
	user, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &domain.StreakState{
		Streak:      user.Streak,
		LastUpdated: user.LastUpdated,
	}, nil
}

func (r *PostgresUserRepository) SetStreakState(ctx context.Context, name string, streak int, lastUpdated domain.DayKey) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	now := time.Now().UTC()

	// Upsert so the first streak evaluation works for profiles created
	// outside the API.
	query := `
		INSERT INTO users (name, streak, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (name) DO UPDATE
		SET streak = EXCLUDED.streak,
		    last_updated = EXCLUDED.last_updated,
		    updated_at = EXCLUDED.updated_at`

	if _, err := r.db.ExecContext(ctx, query, name, streak, lastUpdated, now); err != nil {
		return fmt.Errorf("repository: set streak state failed: %w", err)
	}

	return nil
}
