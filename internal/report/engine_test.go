package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grana/internal/model"
)

var (
	salario     = model.Category{ID: 1, Name: "Salário", Kind: model.KindIncome, Active: true}
	alimentacao = model.Category{ID: 4, Name: "Alimentação", Kind: model.KindExpense, Active: true}
	transporte  = model.Category{ID: 5, Name: "Transporte", Kind: model.KindExpense, Active: true}
)

func tx(cat model.Category, amount model.Money, date time.Time) model.Transaction {
	return model.Transaction{
		Description: cat.Name,
		Amount:      amount,
		Date:        date,
		Kind:        cat.Kind,
		CategoryID:  cat.ID,
		Category:    cat,
	}
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// The two-transaction ledger from the acceptance scenario: 1000.00 income
// on Jan 5, 200.00 expense on Jan 10.
func scenarioTransactions() []model.Transaction {
	return []model.Transaction{
		tx(alimentacao, model.NewMoney(200, 0), day(10)),
		tx(salario, model.NewMoney(1000, 0), day(5)),
	}
}

func TestFilterDateRange(t *testing.T) {
	txs := scenarioTransactions()

	tests := []struct {
		name   string
		params Params
		want   int
	}{
		{name: "all", params: Params{From: day(1), To: day(31)}, want: 2},
		{name: "inclusive from bound", params: Params{From: day(10), To: day(31)}, want: 1},
		{name: "inclusive to bound", params: Params{From: day(1), To: day(5)}, want: 1},
		{name: "empty window", params: Params{From: day(6), To: day(9)}, want: 0},
		{name: "from after to", params: Params{From: day(31), To: day(1)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Filter(txs, tt.params), tt.want)
		})
	}
}

func TestFilterFromAfterToAlwaysEmpty(t *testing.T) {
	// Inverted bounds are an empty result, not an error, regardless of
	// content.
	txs := scenarioTransactions()
	got := Filter(txs, Params{From: day(20), To: day(1)})
	assert.Empty(t, got)
}

func TestFilterByCategory(t *testing.T) {
	txs := scenarioTransactions()

	got := Filter(txs, Params{From: day(1), To: day(31), CategoryID: 4})
	require.Len(t, got, 1)
	assert.Equal(t, "Alimentação", got[0].Category.Name)

	// Zero means all categories.
	assert.Len(t, Filter(txs, Params{From: day(1), To: day(31), CategoryID: 0}), 2)
}

func TestFilterPreservesInputOrder(t *testing.T) {
	txs := []model.Transaction{
		tx(alimentacao, model.NewMoney(3, 0), day(12)),
		tx(alimentacao, model.NewMoney(1, 0), day(11)),
		tx(alimentacao, model.NewMoney(2, 0), day(10)),
	}

	got := Filter(txs, Params{From: day(1), To: day(31)})
	require.Len(t, got, 3)
	for i := range txs {
		assert.Equal(t, txs[i].Amount, got[i].Amount)
	}
}

func TestSummarizeScenario(t *testing.T) {
	s := Summarize(scenarioTransactions())

	assert.Equal(t, "1000.00", s.TotalIncome.String())
	assert.Equal(t, "200.00", s.TotalExpense.String())
	assert.Equal(t, "800.00", s.Balance.String())
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalIncome.Cents)
	assert.Zero(t, s.TotalExpense.Cents)
	assert.Zero(t, s.Balance.Cents)
}

func TestGroupByCategoryScenario(t *testing.T) {
	rows := GroupByCategory(scenarioTransactions())
	require.Len(t, rows, 2)

	assert.Equal(t, "Salário", rows[0].Category)
	assert.Equal(t, "1000.00", rows[0].Total.String())
	assert.Equal(t, 1, rows[0].Count)
	assert.Equal(t, "1000.00", rows[0].Average.String())

	assert.Equal(t, "Alimentação", rows[1].Category)
	assert.Equal(t, "200.00", rows[1].Total.String())
	assert.Equal(t, 1, rows[1].Count)
	assert.Equal(t, "200.00", rows[1].Average.String())
}

func TestGroupByCategoryAverages(t *testing.T) {
	txs := []model.Transaction{
		tx(alimentacao, model.NewMoney(100, 0), day(1)),
		tx(alimentacao, model.NewMoney(50, 0), day(2)),
		tx(alimentacao, model.NewMoney(51, 0), day(3)),
	}

	rows := GroupByCategory(txs)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, "201.00", rows[0].Total.String())
	assert.Equal(t, "67.00", rows[0].Average.String())
}

func TestGroupByCategoryStableTies(t *testing.T) {
	// Equal totals keep first-encountered order.
	txs := []model.Transaction{
		tx(transporte, model.NewMoney(100, 0), day(1)),
		tx(alimentacao, model.NewMoney(100, 0), day(2)),
	}

	rows := GroupByCategory(txs)
	require.Len(t, rows, 2)
	assert.Equal(t, "Transporte", rows[0].Category)
	assert.Equal(t, "Alimentação", rows[1].Category)
}

func TestGroupByCategorySortedByTotalDescending(t *testing.T) {
	txs := []model.Transaction{
		tx(alimentacao, model.NewMoney(10, 0), day(1)),
		tx(transporte, model.NewMoney(500, 0), day(2)),
		tx(salario, model.NewMoney(100, 0), day(3)),
	}

	rows := GroupByCategory(txs)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].Total.Cents, rows[i].Total.Cents)
	}
}

func TestGroupingIsSumPreserving(t *testing.T) {
	txs := []model.Transaction{
		tx(salario, model.NewMoney(1000, 0), day(1)),
		tx(salario, model.NewMoney(2500, 33), day(2)),
		tx(alimentacao, model.NewMoney(199, 99), day(3)),
		tx(transporte, model.NewMoney(75, 1), day(4)),
		tx(alimentacao, model.NewMoney(0, 1), day(5)),
	}

	direct := Summarize(txs)

	var groupedIncome, groupedExpense model.Money
	for _, row := range GroupByCategory(txs) {
		switch row.Kind {
		case model.KindIncome:
			groupedIncome = groupedIncome.Add(row.Total)
		case model.KindExpense:
			groupedExpense = groupedExpense.Add(row.Total)
		}
	}

	assert.Equal(t, direct.TotalIncome, groupedIncome)
	assert.Equal(t, direct.TotalExpense, groupedExpense)
}

func TestBuild(t *testing.T) {
	params := Params{From: day(1), To: day(31)}
	rpt := Build(scenarioTransactions(), params)

	assert.Equal(t, params, rpt.Params)
	assert.Len(t, rpt.Transactions, 2)
	assert.Equal(t, "800.00", rpt.Summary.Balance.String())
	assert.Len(t, rpt.ByCategory, 2)
}
