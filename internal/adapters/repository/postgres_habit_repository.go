package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/npandey/habitpulse/internal/core/domain"
)

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if habit.ID == "" {
		habit.ID = uuid.NewString()
	}

	query := `
		INSERT INTO habits (id, user_name, name, created_at)
		VALUES (:id, :user_name, :name, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, habit)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23505" {
				return domain.ErrHabitAlreadyExists
			}
			if pqErr.Code == "23503" {
				return domain.ErrHabitInvalidUser
			}
		}
		return fmt.Errorf("repository: create habit failed: %w", err)
	}

	return nil
}

func (r *PostgresHabitRepository) ListByUser(ctx context.Context, userName string) ([]*domain.Habit, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	habits := []*domain.Habit{}
	query := `
		SELECT id, user_name, name, created_at
		FROM habits
		WHERE user_name = $1
		ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &habits, query, userName); err != nil {
		return nil, fmt.Errorf("repository: list habits failed: %w", err)
	}

	return habits, nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, userName, habitName string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM habits WHERE user_name = $1 AND name = $2`, userName, habitName)
	if err != nil {
		return fmt.Errorf("repository: delete habit failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}
