package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"grana/internal/common"
	"grana/internal/model"
)

// ListCategories returns every category, active and inactive, sorted by
// (kind, name). The active-only view is a manager concern; the category
// screen shows inactive entries too.
func (s *SQLiteStorage) ListCategories(ctx context.Context) ([]model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, description, kind, color, created_at, active
		FROM categories
		ORDER BY kind, name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStoreError("list categories", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Kind, &c.Color, &c.CreatedAt, &c.Active); err != nil {
			return nil, common.NewStoreError("scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("iterate categories", err)
	}

	slog.Debug("retrieved categories", "count", len(categories))
	return categories, nil
}

// GetCategory resolves a category by id regardless of active state, so
// historical transactions can always display their category.
func (s *SQLiteStorage) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, description, kind, color, created_at, active
		FROM categories
		WHERE id = ?`

	var c model.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.Kind, &c.Color, &c.CreatedAt, &c.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewNotFoundError("category", id)
	}
	if err != nil {
		return nil, common.NewStoreError("get category", err)
	}
	return &c, nil
}

// InsertCategory persists a new category and returns the assigned id.
func (s *SQLiteStorage) InsertCategory(ctx context.Context, c *model.Category) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if c == nil {
		return 0, ErrNilParameter
	}
	if err := validateString(c.Name, "name"); err != nil {
		return 0, err
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, description, kind, color, created_at, active)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Description, int(c.Kind), c.Color, c.CreatedAt, c.Active)
	if err != nil {
		return 0, common.NewStoreError("insert category", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, common.NewStoreError("insert category", err)
	}

	slog.Info("inserted category", "id", id, "name", c.Name)
	return id, nil
}

// UpdateCategory replaces the full record identified by c.ID.
func (s *SQLiteStorage) UpdateCategory(ctx context.Context, c *model.Category) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if c == nil {
		return ErrNilParameter
	}
	if err := validateID(c.ID, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE categories
		SET name = ?, description = ?, kind = ?, color = ?, active = ?
		WHERE id = ?`,
		c.Name, c.Description, int(c.Kind), c.Color, c.Active, c.ID)
	if err != nil {
		return common.NewStoreError("update category", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStoreError("update category", err)
	}
	if affected == 0 {
		return common.NewNotFoundError("category", c.ID)
	}
	return nil
}

// DeleteCategory removes a category. The schema restricts on delete, so a
// category still referenced by transactions fails with a constraint error;
// the manager's guard normally prevents reaching that.
func (s *SQLiteStorage) DeleteCategory(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return common.NewStoreError("delete category", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStoreError("delete category", err)
	}
	if affected == 0 {
		return common.NewNotFoundError("category", id)
	}

	slog.Info("deleted category", "id", id)
	return nil
}

// CountTransactionsForCategory reports how many transactions reference the
// category, the guard that decides hard vs soft delete.
func (s *SQLiteStorage) CountTransactionsForCategory(ctx context.Context, categoryID int64) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateID(categoryID, "categoryID"); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM transactions WHERE category_id = ?`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, common.NewStoreError("count transactions for category", err)
	}
	return count, nil
}
