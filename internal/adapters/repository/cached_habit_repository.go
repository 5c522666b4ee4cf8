package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/npandey/habitpulse/internal/core/domain"
)

var _ domain.HabitRepository = (*CachedHabitRepository)(nil)

// CachedHabitRepository is a redis read-through on the habit list. Habit
// definitions change rarely but are read on every stats request, so this
// is the one list worth caching.
type CachedHabitRepository struct {
	next  domain.HabitRepository
	cache *redis.Client
}

func NewCachedHabitRepository(next domain.HabitRepository, cache *redis.Client) *CachedHabitRepository {
	return &CachedHabitRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedHabitRepository) cacheKey(userName string) string {
	return fmt.Sprintf("habits:%s", userName)
}

func (r *CachedHabitRepository) invalidate(ctx context.Context, userName string) {
	if err := r.cache.Del(ctx, r.cacheKey(userName)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userName, err)
	}
}

func (r *CachedHabitRepository) ListByUser(ctx context.Context, userName string) ([]*domain.Habit, error) {
	key := r.cacheKey(userName)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var habits []*domain.Habit
		if err := json.Unmarshal([]byte(val), &habits); err == nil {
			return habits, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userName)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	habits, err := r.next.ListByUser(ctx, userName)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(habits); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return habits, nil
}

func (r *CachedHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	if err := r.next.Create(ctx, habit); err != nil {
		return err
	}
	r.invalidate(ctx, habit.UserName)
	return nil
}

func (r *CachedHabitRepository) Delete(ctx context.Context, userName, habitName string) error {
	if err := r.next.Delete(ctx, userName, habitName); err != nil {
		return err
	}
	r.invalidate(ctx, userName)
	return nil
}
