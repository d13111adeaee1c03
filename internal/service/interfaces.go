// Package service defines the persistence contract the ledger managers
// depend on.
package service

import (
	"context"

	"grana/internal/model"
)

// Store is the persistence layer consumed by the category and transaction
// managers. Identity and lifetime of persisted records belong to the Store;
// managers hold transient copies keyed by the same ids.
//
// Every method is fallible: I/O and constraint failures surface as
// *common.StoreError, missing ids as *common.NotFoundError. Implementations
// may suspend on I/O; cancellation and timeouts are their responsibility.
type Store interface {
	// ListCategories returns all categories, active and inactive, sorted
	// by (kind, name).
	ListCategories(ctx context.Context) ([]model.Category, error)
	// GetCategory resolves a category by id regardless of active state.
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	// InsertCategory persists a new category and returns it with the
	// store-assigned id.
	InsertCategory(ctx context.Context, c *model.Category) (int64, error)
	// UpdateCategory replaces the full record identified by c.ID.
	UpdateCategory(ctx context.Context, c *model.Category) error
	// DeleteCategory removes a category. Callers guard referential
	// integrity before calling; the schema additionally restricts on
	// delete.
	DeleteCategory(ctx context.Context, id int64) error
	// CountTransactionsForCategory reports how many transactions reference
	// the category, the guard for hard vs soft delete.
	CountTransactionsForCategory(ctx context.Context, categoryID int64) (int, error)

	// ListTransactions returns all transactions with their category
	// resolved, sorted by date descending (ties by id ascending, stable
	// across reloads).
	ListTransactions(ctx context.Context) ([]model.Transaction, error)
	// GetTransaction resolves a transaction by id, category included.
	GetTransaction(ctx context.Context, id int64) (*model.Transaction, error)
	// InsertTransaction persists a new transaction and returns the
	// store-assigned id.
	InsertTransaction(ctx context.Context, t *model.Transaction) (int64, error)
	// UpdateTransaction replaces the full record identified by t.ID.
	UpdateTransaction(ctx context.Context, t *model.Transaction) error
	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, id int64) error

	// Migrate brings the schema to the current version and seeds default
	// categories on first initialization.
	Migrate(ctx context.Context) error
	// Close releases the underlying resources.
	Close() error
}
