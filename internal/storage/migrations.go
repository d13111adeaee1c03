package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. Failing to reach it is fatal.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS categories (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					name TEXT NOT NULL,
					description TEXT NOT NULL DEFAULT '',
					kind INTEGER NOT NULL,
					color TEXT NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL,
					active INTEGER NOT NULL DEFAULT 1
				)`,
				`CREATE INDEX idx_categories_name ON categories(name)`,
				`CREATE INDEX idx_categories_kind ON categories(kind)`,
				`CREATE INDEX idx_categories_active ON categories(active)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					description TEXT NOT NULL,
					amount_cents INTEGER NOT NULL,
					date DATETIME NOT NULL,
					kind INTEGER NOT NULL,
					category_id INTEGER NOT NULL,
					notes TEXT NOT NULL DEFAULT '',
					created_at DATETIME NOT NULL,
					modified_at DATETIME NOT NULL,
					FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE RESTRICT
				)`,
				`CREATE INDEX idx_transactions_date ON transactions(date)`,
				`CREATE INDEX idx_transactions_kind ON transactions(kind)`,
				`CREATE INDEX idx_transactions_category_id ON transactions(category_id)`,
				`CREATE INDEX idx_transactions_amount ON transactions(amount_cents)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Seed default categories",
		Up:          seedDefaultCategories,
	},
}

// Migrate applies all pending migrations. The seed migration only inserts
// when the categories table is empty, so an existing database keeps its
// data.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
