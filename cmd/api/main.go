// Package main is the entrypoint for the TaskNest API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tasknest/tasknest/internal/api"
	apimiddleware "github.com/tasknest/tasknest/internal/api/middleware"
	"github.com/tasknest/tasknest/internal/core/service"
	"github.com/tasknest/tasknest/internal/infrastructure/config"
	mongodb "github.com/tasknest/tasknest/internal/infrastructure/db/mongo"
	redisdb "github.com/tasknest/tasknest/internal/infrastructure/db/redis"
	"github.com/tasknest/tasknest/internal/infrastructure/queue"
	"github.com/tasknest/tasknest/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	// --- Repositories ---
	users := mongodb.NewUserRepository(db)
	todos := mongodb.NewTodoRepository(db)
	reminders := mongodb.NewReminderRepository(db)
	activity := mongodb.NewActivityRepository(db)

	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := todos.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create todo indexes")
	}
	if err := reminders.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create reminder indexes")
	}

	// --- Activity pipeline ---
	dedup := redisdb.NewDedupChecker(rdb)
	activityService := service.NewActivityService(activity, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.Activity.Workers, activityService, log)
	dispatcher.Start(ctx)

	// --- Router ---
	var limiter apimiddleware.Limiter = redisdb.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)

	e := api.NewRouter(api.Dependencies{
		Users:       users,
		Todos:       todos,
		Reminders:   reminders,
		Activity:    activity,
		Recorder:    dispatcher,
		JWTSecret:   cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		AuthLimiter: limiter,
		Metrics:     true,
		Mongo:       db,
		Redis:       rdb,
		Logger:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
