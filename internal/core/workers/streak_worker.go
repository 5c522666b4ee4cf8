package workers

import (
	"context"
	"log"
)

// StreakUpdater runs the once-per-day streak transition for one user.
type StreakUpdater interface {
	UpdateIfNeeded(ctx context.Context, userName string) (int, error)
}

type StreakJob struct {
	UserName string
}

// StreakWorker refreshes streak state in the background after record
// writes. The single goroutine draining the queue also serializes updates,
// so two writes for the same user can never race the transition.
type StreakWorker struct {
	updater StreakUpdater
	jobs    chan StreakJob
}

func NewStreakWorker(updater StreakUpdater) *StreakWorker {
	return &StreakWorker{
		updater: updater,
		jobs:    make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		log.Println("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(userName string) {
	select {
	case w.jobs <- StreakJob{UserName: userName}:
	default:
		log.Printf("Streak Worker queue full! Dropping job for user %s", userName)
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	streak, err := w.updater.UpdateIfNeeded(ctx, job.UserName)
	if err != nil {
		log.Printf("Worker Error updating streak for %s: %v", job.UserName, err)
		return
	}
	log.Printf("Streak evaluated for %s: %d", job.UserName, streak)
}
