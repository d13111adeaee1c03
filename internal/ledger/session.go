package ledger

import (
	"context"

	"grana/internal/service"
)

// ActiveView tags which of the three panels a session is showing. A single
// enum replaces per-panel booleans, so "exactly one active" holds by
// construction.
type ActiveView int

const (
	// ViewTransactions shows the transaction list and form.
	ViewTransactions ActiveView = iota
	// ViewCategories shows the category list and form.
	ViewCategories
	// ViewReports shows the filtered report panel.
	ViewReports
)

func (v ActiveView) String() string {
	switch v {
	case ViewTransactions:
		return "transactions"
	case ViewCategories:
		return "categories"
	case ViewReports:
		return "reports"
	default:
		return "unknown"
	}
}

// Session wires the managers and the ledger totals for one user. All of
// its operations run on a single logical thread: the caller serializes
// user actions, the session holds no locks.
type Session struct {
	Categories   *CategoryManager
	Transactions *TransactionManager
	Totals       *Totals
	view         ActiveView
}

// NewSession builds the manager graph over one store: the transaction
// manager consumes the category manager's active-category view and
// recomputes the shared totals after each mutation.
func NewSession(store service.Store) *Session {
	totals := NewTotals()
	categories := NewCategoryManager(store)
	return &Session{
		Categories:   categories,
		Transactions: NewTransactionManager(store, categories, totals),
		Totals:       totals,
		view:         ViewTransactions,
	}
}

// Load populates both managers; categories first, since the transaction
// manager validates against them.
func (s *Session) Load(ctx context.Context) error {
	if err := s.Categories.Load(ctx); err != nil {
		return err
	}
	return s.Transactions.Load(ctx)
}

// View returns the currently active panel.
func (s *Session) View() ActiveView { return s.view }

// SetView switches the active panel.
func (s *Session) SetView(v ActiveView) { s.view = v }
