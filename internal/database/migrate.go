package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/brewfinder/backend/internal/model"
)

const rollbackSuffix = "_rollback.sql"

// ErrNoMigrations is returned by Rollback when nothing has been applied.
var ErrNoMigrations = errors.New("no migrations to rollback")

// Migration is one versioned SQL file named VERSION_NAME.sql, with an
// optional VERSION_NAME_rollback.sql beside it.
type Migration struct {
	Version  string
	Name     string
	Path     string
	Rollback string
}

// ListMigrations returns the migrations in dir sorted by file name.
func ListMigrations(dir string) ([]Migration, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	var out []Migration
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".sql" || strings.HasSuffix(name, rollbackSuffix) {
			continue
		}
		m := Migration{
			Version: strings.SplitN(name, "_", 2)[0],
			Name:    name,
			Path:    filepath.Join(dir, name),
		}
		if rb := strings.TrimSuffix(name, ".sql") + rollbackSuffix; names[rb] {
			m.Rollback = filepath.Join(dir, rb)
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Migrator applies and rolls back SQL migrations, recording them in the
// schema_migrations table.
type Migrator struct {
	db     *sql.DB
	dir    string
	logger *zap.Logger
}

// NewMigrator creates a Migrator reading files from dir
func NewMigrator(db *sql.DB, dir string, log *zap.Logger) *Migrator {
	return &Migrator{db: db, dir: dir, logger: log}
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}
	return nil
}

// Up applies every migration not yet recorded and returns their names.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}
	migrations, err := ListMigrations(m.dir)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, mig := range migrations {
		var count int
		err := m.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM schema_migrations WHERE version = $1", mig.Version,
		).Scan(&count)
		if err != nil {
			return applied, fmt.Errorf("failed to check migration status: %w", err)
		}
		if count > 0 {
			m.logger.Debug("skipping migration, already applied", zap.String("migration", mig.Name))
			continue
		}

		content, err := os.ReadFile(mig.Path)
		if err != nil {
			return applied, fmt.Errorf("failed to read migration %s: %w", mig.Name, err)
		}
		err = m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", mig.Name, err)
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", mig.Version, mig.Name,
			); err != nil {
				return fmt.Errorf("failed to record migration %s: %w", mig.Name, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}

		m.logger.Info("applied migration", zap.String("migration", mig.Name))
		applied = append(applied, mig.Name)
	}
	return applied, nil
}

// Rollback reverts the most recently applied migration and returns its name.
func (m *Migrator) Rollback(ctx context.Context) (string, error) {
	if err := m.ensureTable(ctx); err != nil {
		return "", err
	}

	var version, name string
	err := m.db.QueryRowContext(ctx,
		"SELECT version, name FROM schema_migrations ORDER BY applied_at DESC, version DESC LIMIT 1",
	).Scan(&version, &name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoMigrations
		}
		return "", fmt.Errorf("failed to get last migration: %w", err)
	}

	path := filepath.Join(m.dir, strings.TrimSuffix(name, ".sql")+rollbackSuffix)
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read rollback file %s: %w", path, err)
	}

	err = m.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute rollback: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM schema_migrations WHERE version = $1", version); err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	m.logger.Info("rolled back migration", zap.String("migration", name))
	return name, nil
}

func (m *Migrator) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RunMigrations brings the schema up to date. SQLite databases are
// auto-migrated from the models; PostgreSQL runs the SQL files in dir.
func RunMigrations(ctx context.Context, db *gorm.DB, dir string, log *zap.Logger) error {
	if db.Dialector.Name() == "sqlite" {
		log.Info("using gorm auto-migration for sqlite")
		if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("failed to auto-migrate: %w", err)
		}
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	_, err = NewMigrator(sqlDB, dir, log).Up(ctx)
	return err
}
