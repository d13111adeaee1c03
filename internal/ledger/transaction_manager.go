package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"grana/internal/common"
	"grana/internal/model"
	"grana/internal/service"
)

// CategorySource supplies the transaction manager with the category views
// it needs to validate drafts. The category manager implements it.
type CategorySource interface {
	ActiveCategories() []model.Category
	CategoryByID(id int64) (model.Category, bool)
}

// TransactionManager holds the loaded transaction list (newest first), the
// current selection, and the edit-mode flag. Every successful mutation
// recomputes the ledger totals and fires the change observers, both
// synchronously.
type TransactionManager struct {
	store        service.Store
	categories   CategorySource
	totals       *Totals
	now          func() time.Time
	transactions []model.Transaction
	onChange     []func()
	selected     int64
	editingID    int64
	state        editState
}

// NewTransactionManager creates a manager backed by the given store.
// categories provides the active category views; totals, if non-nil, is
// recomputed after every mutation.
func NewTransactionManager(store service.Store, categories CategorySource, totals *Totals) *TransactionManager {
	return &TransactionManager{
		store:      store,
		categories: categories,
		totals:     totals,
		now:        time.Now,
	}
}

// OnChange registers a callback invoked synchronously after every
// successful mutating operation.
func (m *TransactionManager) OnChange(fn func()) {
	m.onChange = append(m.onChange, fn)
}

func (m *TransactionManager) mutated() {
	if m.totals != nil {
		m.totals.Recompute(m.transactions)
	}
	for _, fn := range m.onChange {
		fn()
	}
}

// Load replaces the in-memory list with all transactions from the store,
// category resolved, sorted by date descending with ties in insertion
// order. On failure the prior list is left unchanged.
func (m *TransactionManager) Load(ctx context.Context) error {
	transactions, err := m.store.ListTransactions(ctx)
	if err != nil {
		return err
	}
	m.transactions = transactions
	if m.totals != nil {
		m.totals.Recompute(m.transactions)
	}
	slog.Debug("loaded transactions", "count", len(transactions))
	return nil
}

// Transactions returns a copy of the loaded list, newest first.
func (m *TransactionManager) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// TransactionByID looks up a loaded transaction by id.
func (m *TransactionManager) TransactionByID(id int64) (model.Transaction, bool) {
	for _, t := range m.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// EligibleCategories returns the active categories a draft of the given
// kind may reference. Changing the draft's kind re-filters the set.
func (m *TransactionManager) EligibleCategories(kind model.Kind) []model.Category {
	var out []model.Category
	for _, c := range m.categories.ActiveCategories() {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Select marks a loaded transaction as the current selection.
func (m *TransactionManager) Select(id int64) error {
	if _, ok := m.TransactionByID(id); !ok {
		return common.NewNotFoundError("transaction", id)
	}
	m.selected = id
	return nil
}

// ClearSelection removes the current selection.
func (m *TransactionManager) ClearSelection() {
	m.selected = 0
}

// Selected returns the currently selected transaction, if any.
func (m *TransactionManager) Selected() (model.Transaction, bool) {
	if m.selected == 0 {
		return model.Transaction{}, false
	}
	return m.TransactionByID(m.selected)
}

// IsEditing reports whether an edit session is open.
func (m *TransactionManager) IsEditing() bool {
	return m.state == stateEditing
}

// CanBeginCreate reports whether a create is currently permitted.
func (m *TransactionManager) CanBeginCreate() bool { return m.state == stateIdle }

// CanBeginEdit reports whether an edit session can be opened.
func (m *TransactionManager) CanBeginEdit() bool { return m.state == stateIdle }

// CanDelete reports whether a delete is currently permitted.
func (m *TransactionManager) CanDelete() bool { return m.state == stateIdle }

// CanCommit reports whether an edit session is open for commit or cancel.
func (m *TransactionManager) CanCommit() bool { return m.state == stateEditing }

// resolveCategory fetches the draft's category from the store, which
// resolves inactive categories too. A missing id comes back as nil so the
// validator can reject it as a field error.
func (m *TransactionManager) resolveCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := m.store.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// BeginCreate validates the draft against its resolved category, persists
// it, and inserts it at the head of the in-memory list. The list is sorted
// newest-first, so a draft dated in the past leaves the order stale until
// the next Load; that staleness is accepted. Create is one-shot: the
// manager stays Idle.
func (m *TransactionManager) BeginCreate(ctx context.Context, draft model.Transaction) (model.Transaction, error) {
	if m.state != stateIdle {
		return model.Transaction{}, common.NewInvalidStateError("beginCreate", m.state.String())
	}

	if draft.Date.IsZero() {
		draft.Date = m.now()
	}

	category, err := m.resolveCategory(ctx, draft.CategoryID)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := model.ValidateTransaction(&draft, category); err != nil {
		return model.Transaction{}, err
	}

	now := m.now()
	draft.CreatedAt = now
	draft.ModifiedAt = now
	draft.Category = *category

	id, err := m.store.InsertTransaction(ctx, &draft)
	if err != nil {
		return model.Transaction{}, err
	}
	draft.ID = id

	m.transactions = append([]model.Transaction{draft}, m.transactions...)
	slog.Info("created transaction", "id", id, "amount", draft.Amount.String(), "kind", draft.Kind.String())
	m.mutated()
	return draft, nil
}

// BeginEdit opens an edit session for the given transaction, selects it,
// and returns a snapshot of its fields as the editable draft.
func (m *TransactionManager) BeginEdit(id int64) (model.Transaction, error) {
	if m.state != stateIdle {
		return model.Transaction{}, common.NewInvalidStateError("beginEdit", m.state.String())
	}

	current, ok := m.TransactionByID(id)
	if !ok {
		return model.Transaction{}, common.NewNotFoundError("transaction", id)
	}

	m.selected = id
	m.editingID = id
	m.state = stateEditing
	return current, nil
}

// CommitEdit validates the draft against its resolved category, persists
// it with ModifiedAt set to the commit time, and updates the in-memory
// entry. A store failure leaves the manager in Editing so the user can
// retry or cancel explicitly.
func (m *TransactionManager) CommitEdit(ctx context.Context, draft model.Transaction) error {
	if m.state != stateEditing {
		return common.NewInvalidStateError("commitEdit", m.state.String())
	}

	current, ok := m.TransactionByID(m.editingID)
	if !ok {
		return common.NewNotFoundError("transaction", m.editingID)
	}

	category, err := m.resolveCategory(ctx, draft.CategoryID)
	if err != nil {
		return err
	}
	if err := model.ValidateTransaction(&draft, category); err != nil {
		return err
	}

	draft.ID = current.ID
	draft.CreatedAt = current.CreatedAt
	draft.ModifiedAt = m.now()
	draft.Category = *category

	if err := m.store.UpdateTransaction(ctx, &draft); err != nil {
		return err
	}

	for i := range m.transactions {
		if m.transactions[i].ID == draft.ID {
			m.transactions[i] = draft
			break
		}
	}
	m.state = stateIdle
	m.editingID = 0
	m.selected = 0
	slog.Info("updated transaction", "id", draft.ID, "amount", draft.Amount.String())
	m.mutated()
	return nil
}

// CancelEdit discards the draft and returns to Idle. Calling it outside an
// edit session is a sequencing error.
func (m *TransactionManager) CancelEdit() error {
	if m.state != stateEditing {
		return common.NewInvalidStateError("cancelEdit", m.state.String())
	}
	m.state = stateIdle
	m.editingID = 0
	m.selected = 0
	return nil
}

// Delete hard-deletes the transaction; only categories soft-delete.
func (m *TransactionManager) Delete(ctx context.Context, id int64) error {
	if m.state != stateIdle {
		return common.NewInvalidStateError("delete", m.state.String())
	}

	if _, ok := m.TransactionByID(id); !ok {
		return common.NewNotFoundError("transaction", id)
	}

	if err := m.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	for i := range m.transactions {
		if m.transactions[i].ID == id {
			m.transactions = append(m.transactions[:i], m.transactions[i+1:]...)
			break
		}
	}
	if m.selected == id {
		m.selected = 0
	}
	slog.Info("deleted transaction", "id", id)
	m.mutated()
	return nil
}
