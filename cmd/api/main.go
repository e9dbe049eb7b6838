package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/brewfinder/backend/config"
	"github.com/pageza/brewfinder/backend/internal/database"
	"github.com/pageza/brewfinder/backend/internal/logger"
	"github.com/pageza/brewfinder/backend/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server exited with error", zap.Error(err))
	}
	zlog.Info("server stopped")
}

func run(cfg *config.Config, log *zap.Logger) error {
	db, err := database.New(cfg.Database, log)
	if err != nil {
		return err
	}
	defer database.Close(db) //nolint:errcheck

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(context.Background(), db, cfg.Database.MigrationsDir, log); err != nil {
			return err
		}
	}

	// Redis only backs rate limiting, so the API still starts without it.
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warn("redis unavailable", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	srv := server.New(cfg, db, redisClient, log)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Info("received signal", zap.String("signal", sig.String()))
	}

	log.Info("shutting down server", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
