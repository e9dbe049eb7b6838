package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/pageza/brewfinder/backend/config"
	"github.com/pageza/brewfinder/backend/internal/database"
	"github.com/pageza/brewfinder/backend/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "", "Migrations directory (defaults to DB_MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	zlog, err := logger.New(cfg.LogLevel, true)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// DATABASE_URL wins over the discrete DB_* settings.
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = cfg.Database.DSN()
	}
	migrationsDir := cfg.Database.MigrationsDir
	if *dir != "" {
		migrationsDir = *dir
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	migrator := database.NewMigrator(db, migrationsDir, zlog)

	if *rollback {
		name, err := migrator.Rollback(ctx)
		if errors.Is(err, database.ErrNoMigrations) {
			fmt.Println("No migrations to rollback")
			return
		}
		if err != nil {
			log.Fatalf("failed to roll back: %v", err)
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return
	}

	applied, err := migrator.Up(ctx)
	if err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	for _, name := range applied {
		fmt.Printf("Applied migration: %s\n", name)
	}
	fmt.Println("All migrations applied successfully.")
}
