// Package report computes period/category aggregates over a snapshot of
// transactions. Everything here is a pure function: no store access, no
// manager state, exact fixed-point sums.
package report

import (
	"sort"
	"time"

	"grana/internal/model"
)

// Params filters a transaction snapshot. From and To are inclusive bounds;
// From after To yields an empty result, not an error. CategoryID zero
// means all categories.
type Params struct {
	From       time.Time
	To         time.Time
	CategoryID int64
}

// Summary holds the period totals in exact cents.
type Summary struct {
	TotalIncome  model.Money
	TotalExpense model.Money
	Balance      model.Money
}

// CategoryRow is one per-category aggregate line.
type CategoryRow struct {
	Category string
	Total    model.Money
	Average  model.Money
	Count    int
	Kind     model.Kind
}

// Report bundles the three computations for presentation callers.
type Report struct {
	Transactions []model.Transaction
	ByCategory   []CategoryRow
	Summary      Summary
	Params       Params
}

// Filter keeps transactions with From <= date <= To and, when CategoryID
// is set, a matching category. Input order is preserved; callers pass the
// manager's date-descending snapshot.
func Filter(transactions []model.Transaction, p Params) []model.Transaction {
	var out []model.Transaction
	for _, t := range transactions {
		if t.Date.Before(p.From) || t.Date.After(p.To) {
			continue
		}
		if p.CategoryID != 0 && t.CategoryID != p.CategoryID {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Summarize sums the filtered set into income, expense, and balance.
func Summarize(transactions []model.Transaction) Summary {
	var income, expense model.Money
	for _, t := range transactions {
		switch t.Kind {
		case model.KindIncome:
			income = income.Add(t.Amount)
		case model.KindExpense:
			expense = expense.Add(t.Amount)
		}
	}
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

type groupKey struct {
	name string
	kind model.Kind
}

// GroupByCategory groups the filtered set by (category name, kind) and
// computes total, count, and average per group. Rows are ordered by total
// descending; equal totals keep first-encountered order.
func GroupByCategory(transactions []model.Transaction) []CategoryRow {
	index := make(map[groupKey]int)
	var rows []CategoryRow

	for _, t := range transactions {
		key := groupKey{name: t.Category.Name, kind: t.Category.Kind}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, CategoryRow{Category: key.name, Kind: key.kind})
		}
		rows[i].Total = rows[i].Total.Add(t.Amount)
		rows[i].Count++
	}

	for i := range rows {
		// Groups are never empty by construction; Div guards the zero
		// count anyway instead of dividing.
		rows[i].Average = rows[i].Total.Div(int64(rows[i].Count))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.Cents > rows[j].Total.Cents
	})
	return rows
}

// Build runs Filter, Summarize, and GroupByCategory over one snapshot.
func Build(transactions []model.Transaction, p Params) Report {
	filtered := Filter(transactions, p)
	return Report{
		Params:       p,
		Transactions: filtered,
		Summary:      Summarize(filtered),
		ByCategory:   GroupByCategory(filtered),
	}
}
