package storage

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"grana/internal/common"
	"grana/internal/model"
)

const transactionColumns = `
	t.id, t.description, t.amount_cents, t.date, t.kind, t.category_id,
	t.notes, t.created_at, t.modified_at,
	c.id, c.name, c.description, c.kind, c.color, c.created_at, c.active`

func scanTransaction(scan func(...any) error) (model.Transaction, error) {
	var t model.Transaction
	err := scan(
		&t.ID, &t.Description, &t.Amount.Cents, &t.Date, &t.Kind, &t.CategoryID,
		&t.Notes, &t.CreatedAt, &t.ModifiedAt,
		&t.Category.ID, &t.Category.Name, &t.Category.Description,
		&t.Category.Kind, &t.Category.Color, &t.Category.CreatedAt, &t.Category.Active,
	)
	return t, err
}

// ListTransactions returns all transactions with their category resolved,
// newest first. Equal dates keep insertion order via the id tie-break, so
// the ordering is stable across reloads.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		ORDER BY t.date DESC, t.id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStoreError("list transactions", err)
	}
	defer rows.Close()

	var transactions []model.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, common.NewStoreError("scan transaction", err)
		}
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStoreError("iterate transactions", err)
	}

	slog.Debug("retrieved transactions", "count", len(transactions))
	return transactions, nil
}

// GetTransaction resolves a transaction by id, category included.
func (s *SQLiteStorage) GetTransaction(ctx context.Context, id int64) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions t
		JOIN categories c ON c.id = t.category_id
		WHERE t.id = ?`

	t, err := scanTransaction(s.db.QueryRowContext(ctx, query, id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewNotFoundError("transaction", id)
	}
	if err != nil {
		return nil, common.NewStoreError("get transaction", err)
	}
	return &t, nil
}

// InsertTransaction persists a new transaction and returns the assigned id.
func (s *SQLiteStorage) InsertTransaction(ctx context.Context, t *model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if t == nil {
		return 0, ErrNilParameter
	}
	if err := validateString(t.Description, "description"); err != nil {
		return 0, err
	}
	if err := validateID(t.CategoryID, "categoryID"); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (description, amount_cents, date, kind, category_id, notes, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Description, t.Amount.Cents, t.Date, int(t.Kind), t.CategoryID, t.Notes, t.CreatedAt, t.ModifiedAt)
	if err != nil {
		return 0, common.NewStoreError("insert transaction", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, common.NewStoreError("insert transaction", err)
	}

	slog.Info("inserted transaction", "id", id, "amount", t.Amount.String())
	return id, nil
}

// UpdateTransaction replaces the full record identified by t.ID.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if t == nil {
		return ErrNilParameter
	}
	if err := validateID(t.ID, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET description = ?, amount_cents = ?, date = ?, kind = ?, category_id = ?, notes = ?, modified_at = ?
		WHERE id = ?`,
		t.Description, t.Amount.Cents, t.Date, int(t.Kind), t.CategoryID, t.Notes, t.ModifiedAt, t.ID)
	if err != nil {
		return common.NewStoreError("update transaction", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStoreError("update transaction", err)
	}
	if affected == 0 {
		return common.NewNotFoundError("transaction", t.ID)
	}
	return nil
}

// DeleteTransaction removes a transaction. Transactions have no soft
// delete; only categories do.
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return common.NewStoreError("delete transaction", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return common.NewStoreError("delete transaction", err)
	}
	if affected == 0 {
		return common.NewNotFoundError("transaction", id)
	}

	slog.Info("deleted transaction", "id", id)
	return nil
}
