package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/npandey/habitpulse/docs"
	"github.com/npandey/habitpulse/internal/adapters/cache"
	adapterHTTP "github.com/npandey/habitpulse/internal/adapters/handler/http"
	"github.com/npandey/habitpulse/internal/adapters/repository"
	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/services"
	"github.com/npandey/habitpulse/internal/core/workers"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// @title       HabitPulse Consistency Engine API
// @version     1.0
// @description Daily habit consistency, streak and leaderboard derivations.
// @BasePath    /api/v1
func main() {
	startTime := time.Now()

	_ = godotenv.Load()

	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	serverPort := getEnv("PORT", "8080")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	log.Println("Connecting to database...")

	db, err := sqlx.Connect("pgx", dsn)
	if err != nil {
		log.Fatalf("Critical: Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("Database connected successfully.")

	var rdb *redis.Client
	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		rdb, err = cache.NewRedisClient(
			redisHost,
			getEnv("REDIS_PORT", "6379"),
			os.Getenv("REDIS_PASSWORD"),
			0,
		)
		if err != nil {
			log.Printf("Redis unavailable, running without cache and rate limiting: %v", err)
			rdb = nil
		} else {
			log.Println("Redis connected successfully.")
		}
	}

	clock := domain.NewTrackerClock()

	userRepo := repository.NewPostgresUserRepository(db)
	recordRepo := repository.NewPostgresRecordRepository(db)

	var habitRepo domain.HabitRepository = repository.NewPostgresHabitRepository(db)
	if rdb != nil {
		habitRepo = repository.NewCachedHabitRepository(habitRepo, rdb)
	}

	streakService := services.NewStreakService(userRepo, recordRepo, clock)

	streakWorker := workers.NewStreakWorker(streakService)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	streakWorker.Start(workerCtx)

	userService := services.NewUserService(userRepo)
	habitService := services.NewHabitService(habitRepo, recordRepo)
	recordService := services.NewRecordService(recordRepo, habitRepo, clock, streakWorker)
	statsService := services.NewStatsService(habitRepo, recordRepo, clock)
	leaderboardService := services.NewLeaderboardService(userRepo, recordRepo, clock)

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		UserHandler:   adapterHTTP.NewUserHandler(userService),
		HabitHandler:  adapterHTTP.NewHabitHandler(habitService),
		RecordHandler: adapterHTTP.NewRecordHandler(recordService),
		StatsHandler:  adapterHTTP.NewStatsHandler(statsService, leaderboardService),
		StreakHandler: adapterHTTP.NewStreakHandler(streakService),
		DB:            db,
		Redis:         rdb,
		StartTime:     startTime,
	})

	srv := &http.Server{
		Addr:         ":" + serverPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("HabitPulse engine running on http://localhost:%s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown error:", err)
	}

	log.Println("Server stopped gracefully.")
}
