package ledger

import "grana/internal/model"

// Totals is the always-current income/expense/balance aggregate over the
// entire transaction set, distinct from a filtered report. It carries no
// state beyond the two sums and is never persisted; it is recomputed in
// full after every transaction mutation, which is fine at this data scale.
type Totals struct {
	income  model.Money
	expense model.Money
}

// NewTotals returns zeroed ledger totals.
func NewTotals() *Totals {
	return &Totals{}
}

// Recompute derives the totals from the full, unfiltered transaction set.
func (t *Totals) Recompute(transactions []model.Transaction) {
	var income, expense model.Money
	for _, txn := range transactions {
		switch txn.Kind {
		case model.KindIncome:
			income = income.Add(txn.Amount)
		case model.KindExpense:
			expense = expense.Add(txn.Amount)
		}
	}
	t.income = income
	t.expense = expense
}

// TotalIncome returns the sum of all income amounts.
func (t *Totals) TotalIncome() model.Money { return t.income }

// TotalExpense returns the sum of all expense amounts.
func (t *Totals) TotalExpense() model.Money { return t.expense }

// Balance returns income minus expense; negative when spending exceeds
// earnings.
func (t *Totals) Balance() model.Money { return t.income.Sub(t.expense) }
