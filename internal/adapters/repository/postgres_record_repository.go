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

type PostgresRecordRepository struct {
	db *sqlx.DB
}

func NewPostgresRecordRepository(db *sqlx.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db}
}

// Upsert overwrites on the (user_name, habit, date) key, so toggling a day
// twice just flips the stored flag.
func (r *PostgresRecordRepository) Upsert(ctx context.Context, record *domain.CompletionRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	record.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO completion_records (
			id, user_name, habit, date, completed, created_at, updated_at
		) VALUES (
			:id, :user_name, :habit, :date, :completed, :created_at, :updated_at
		)
		ON CONFLICT (user_name, habit, date) DO UPDATE
		SET completed = EXCLUDED.completed,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("repository: upsert record failed: %w", err)
	}

	return nil
}

func (r *PostgresRecordRepository) ListByUser(ctx context.Context, userName string) ([]*domain.CompletionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	records := []*domain.CompletionRecord{}
	query := `
		SELECT * FROM completion_records
		WHERE user_name = $1
		ORDER BY date ASC, habit ASC`

	if err := r.db.SelectContext(ctx, &records, query, userName); err != nil {
		return nil, fmt.Errorf("repository: list records failed: %w", err)
	}

	return records, nil
}

func (r *PostgresRecordRepository) ListByUserAndDates(ctx context.Context, userName string, days []domain.DayKey) ([]*domain.CompletionRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if len(days) == 0 {
		return []*domain.CompletionRecord{}, nil
	}

	keys := make([]string, len(days))
	for i, d := range days {
		keys[i] = string(d)
	}

	records := []*domain.CompletionRecord{}
	query := `
		SELECT * FROM completion_records
		WHERE user_name = $1
		  AND date = ANY($2)
		ORDER BY date ASC, habit ASC`

	if err := r.db.SelectContext(ctx, &records, query, userName, pq.Array(keys)); err != nil {
		return nil, fmt.Errorf("repository: list records by dates failed: %w", err)
	}

	return records, nil
}

func (r *PostgresRecordRepository) DeleteByHabitName(ctx context.Context, userName, habitName string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM completion_records WHERE user_name = $1 AND habit = $2`, userName, habitName)
	if err != nil {
		return fmt.Errorf("repository: delete records by habit failed: %w", err)
	}

	return nil
}
