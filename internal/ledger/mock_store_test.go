package ledger

import (
	"context"
	"sort"
	"time"

	"grana/internal/common"
	"grana/internal/model"
	"grana/internal/service"
)

// mockStore is an in-memory service.Store for manager tests. Error fields
// inject failures into the corresponding operation.
type mockStore struct {
	categories   map[int64]model.Category
	transactions map[int64]model.Transaction

	insertCategoryErr    error
	updateCategoryErr    error
	deleteCategoryErr    error
	insertTransactionErr error
	updateTransactionErr error
	deleteTransactionErr error

	nextCategoryID    int64
	nextTransactionID int64
}

var _ service.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{
		categories:   make(map[int64]model.Category),
		transactions: make(map[int64]model.Transaction),
	}
}

func (m *mockStore) addCategory(c model.Category) model.Category {
	if c.ID == 0 {
		m.nextCategoryID++
		c.ID = m.nextCategoryID
	} else if c.ID > m.nextCategoryID {
		m.nextCategoryID = c.ID
	}
	m.categories[c.ID] = c
	return c
}

func (m *mockStore) addTransaction(t model.Transaction) model.Transaction {
	if t.ID == 0 {
		m.nextTransactionID++
		t.ID = m.nextTransactionID
	} else if t.ID > m.nextTransactionID {
		m.nextTransactionID = t.ID
	}
	if cat, ok := m.categories[t.CategoryID]; ok {
		t.Category = cat
	}
	m.transactions[t.ID] = t
	return t
}

func (m *mockStore) ListCategories(_ context.Context) ([]model.Category, error) {
	out := make(model.Categories, 0, len(m.categories))
	for _, c := range m.categories {
		out = append(out, c)
	}
	sort.Stable(out)
	return out, nil
}

func (m *mockStore) GetCategory(_ context.Context, id int64) (*model.Category, error) {
	c, ok := m.categories[id]
	if !ok {
		return nil, common.NewNotFoundError("category", id)
	}
	return &c, nil
}

func (m *mockStore) InsertCategory(_ context.Context, c *model.Category) (int64, error) {
	if m.insertCategoryErr != nil {
		return 0, m.insertCategoryErr
	}
	saved := *c
	saved.ID = 0
	return m.addCategory(saved).ID, nil
}

func (m *mockStore) UpdateCategory(_ context.Context, c *model.Category) error {
	if m.updateCategoryErr != nil {
		return m.updateCategoryErr
	}
	if _, ok := m.categories[c.ID]; !ok {
		return common.NewNotFoundError("category", c.ID)
	}
	m.categories[c.ID] = *c
	return nil
}

func (m *mockStore) DeleteCategory(_ context.Context, id int64) error {
	if m.deleteCategoryErr != nil {
		return m.deleteCategoryErr
	}
	if _, ok := m.categories[id]; !ok {
		return common.NewNotFoundError("category", id)
	}
	delete(m.categories, id)
	return nil
}

func (m *mockStore) CountTransactionsForCategory(_ context.Context, categoryID int64) (int, error) {
	count := 0
	for _, t := range m.transactions {
		if t.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) ListTransactions(_ context.Context) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(m.transactions))
	for _, t := range m.transactions {
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *mockStore) GetTransaction(_ context.Context, id int64) (*model.Transaction, error) {
	t, ok := m.transactions[id]
	if !ok {
		return nil, common.NewNotFoundError("transaction", id)
	}
	return &t, nil
}

func (m *mockStore) InsertTransaction(_ context.Context, t *model.Transaction) (int64, error) {
	if m.insertTransactionErr != nil {
		return 0, m.insertTransactionErr
	}
	saved := *t
	saved.ID = 0
	return m.addTransaction(saved).ID, nil
}

func (m *mockStore) UpdateTransaction(_ context.Context, t *model.Transaction) error {
	if m.updateTransactionErr != nil {
		return m.updateTransactionErr
	}
	if _, ok := m.transactions[t.ID]; !ok {
		return common.NewNotFoundError("transaction", t.ID)
	}
	m.transactions[t.ID] = *t
	return nil
}

func (m *mockStore) DeleteTransaction(_ context.Context, id int64) error {
	if m.deleteTransactionErr != nil {
		return m.deleteTransactionErr
	}
	if _, ok := m.transactions[id]; !ok {
		return common.NewNotFoundError("transaction", id)
	}
	delete(m.transactions, id)
	return nil
}

func (m *mockStore) Migrate(_ context.Context) error { return nil }
func (m *mockStore) Close() error                    { return nil }

// Seed data mirroring the default install: income category 1, expense
// category 4.
func seedStore() *mockStore {
	store := newMockStore()
	now := time.Now()
	store.addCategory(model.Category{ID: 1, Name: "Salário", Kind: model.KindIncome, Color: "#28A745", CreatedAt: now, Active: true})
	store.addCategory(model.Category{ID: 4, Name: "Alimentação", Kind: model.KindExpense, Color: "#DC3545", CreatedAt: now, Active: true})
	return store
}
