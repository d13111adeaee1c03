package model

import "time"

// Kind classifies a category or transaction as money coming in or going
// out. The integer codes are the persisted form.
type Kind int

const (
	// KindIncome marks money coming into the ledger.
	KindIncome Kind = 1
	// KindExpense marks money leaving the ledger.
	KindExpense Kind = 2
)

// Valid reports whether k is one of the two defined kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// Category is a user-defined classification for transactions. A category's
// kind is fixed once created; transactions of the opposite kind must not
// reference it. An inactive category is excluded from selection lists but
// stays resolvable by id for historical transactions.
type Category struct {
	CreatedAt   time.Time
	Name        string
	Description string
	Color       string
	ID          int64
	Kind        Kind
	Active      bool
}

// Categories supports the manager's display ordering: kind first, then
// name. Income categories sort before expense categories.
type Categories []Category

func (c Categories) Len() int      { return len(c) }
func (c Categories) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

func (c Categories) Less(i, j int) bool {
	if c[i].Kind != c[j].Kind {
		return c[i].Kind < c[j].Kind
	}
	return c[i].Name < c[j].Name
}
