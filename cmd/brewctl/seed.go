package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/database"
	"github.com/pageza/brewfinder/backend/internal/seed"
)

// SeedCommand creates the seed command
func SeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load recipes, equipment, tags and baristas from a TOML fixture",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Fixture file path",
				Value: "seed/recipes.toml",
			},
			&cli.BoolFlag{
				Name:  "migrate",
				Usage: "Apply pending migrations before seeding",
				Value: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, log, err := setup(c)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			db, err := database.New(cfg.Database, log)
			if err != nil {
				return err
			}
			defer database.Close(db) //nolint:errcheck

			if c.Bool("migrate") {
				if err := database.RunMigrations(ctx, db, cfg.Database.MigrationsDir, log); err != nil {
					return err
				}
			}
			return RunSeed(ctx, db, c.String("file"), os.Stdout, log)
		},
	}
}

// RunSeed applies the fixture at path and reports what was created.
func RunSeed(ctx context.Context, db *gorm.DB, path string, out io.Writer, log *zap.Logger) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening fixture: %w", err)
	}
	defer file.Close()

	fixture, err := seed.Load(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	stats, err := seed.Apply(ctx, db, fixture, log)
	if err != nil {
		return fmt.Errorf("applying %s: %w", path, err)
	}

	fmt.Fprintf(out, "equipment types: %d\n", stats.EquipmentTypes)
	fmt.Fprintf(out, "equipment:       %d\n", stats.Equipment)
	fmt.Fprintf(out, "tags:            %d\n", stats.Tags)
	fmt.Fprintf(out, "baristas:        %d\n", stats.Baristas)
	fmt.Fprintf(out, "recipes:         %d\n", stats.Recipes)
	return nil
}
