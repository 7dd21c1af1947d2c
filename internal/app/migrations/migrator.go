package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/memitrading/memi/internal/db"
	"github.com/memitrading/memi/internal/pkg/logger"
)

// appTables lists every table owned by the application, dependents first
var appTables = []string{
	"enrollments", "app_showcase", "testimonials", "faqs", "team_members", "events",
	"news", "courses", "app_features", "stats", "about_content", "services", "users",
	"schema_migrations",
}

// Migrator manages database migrations
type Migrator struct {
	db    db.TxBeginner
	files fs.FS
}

// NewMigrator creates a migrator reading *.sql files from the root of files
func NewMigrator(conn db.TxBeginner, files fs.FS) *Migrator {
	return &Migrator{
		db:    conn,
		files: files,
	}
}

// ensureMigrationTableExists creates the migration tracking table if it doesn't exist
func (m *Migrator) ensureMigrationTableExists(ctx context.Context) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version VARCHAR(255) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := m.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}
	return nil
}

// isMigrationApplied checks if a specific migration has already been applied
func (m *Migrator) isMigrationApplied(ctx context.Context, version string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := m.db.QueryRow(ctx, query, version).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return exists, nil
}

// versionOf extracts the version prefix: "001_init.sql" => "001"
func versionOf(filename string) string {
	return strings.SplitN(path.Base(filename), "_", 2)[0]
}

// Pending returns the migration files not applied yet, in order
func (m *Migrator) Pending(ctx context.Context) ([]string, error) {
	if err := m.ensureMigrationTableExists(ctx); err != nil {
		return nil, err
	}

	files, err := m.sqlFiles()
	if err != nil {
		return nil, err
	}

	var pending []string
	for _, file := range files {
		applied, err := m.isMigrationApplied(ctx, versionOf(file))
		if err != nil {
			return nil, err
		}
		if !applied {
			pending = append(pending, file)
		}
	}
	return pending, nil
}

func (m *Migrator) sqlFiles() ([]string, error) {
	entries, err := fs.ReadDir(m.files, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)
	return sqlFiles, nil
}

// Up applies every pending migration, each in its own transaction
func (m *Migrator) Up(ctx context.Context) (int, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return 0, err
	}

	for i, file := range pending {
		if err := m.apply(ctx, file); err != nil {
			return i, err
		}
	}

	if len(pending) == 0 {
		logger.Info().Msg("Database schema is up to date")
	}
	return len(pending), nil
}

func (m *Migrator) apply(ctx context.Context, file string) error {
	content, err := fs.ReadFile(m.files, file)
	if err != nil {
		return fmt.Errorf("failed to read migration file %s: %w", file, err)
	}

	version := versionOf(file)
	err = db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("error occurred during SQL migration %s: %w", file, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version); err != nil {
			return fmt.Errorf("failed to record migration: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("file", file).Str("version", version).Msg("Migration applied")
	return nil
}

// Reset drops every application table. The next Up recreates the schema.
func (m *Migrator) Reset(ctx context.Context) error {
	return db.WithTransaction(ctx, m.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, table := range appTables {
			if _, err := tx.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
			logger.Info().Str("table", table).Msg("Dropped table")
		}
		return nil
	})
}
