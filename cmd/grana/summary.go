package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/ledger"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the ledger totals",
		Long:  `Print total income, total expense, and balance over the entire ledger.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, store, err := openSession(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			printTotals(session)
			return nil
		},
	}
}

func printTotals(session *ledger.Session) {
	totals := session.Totals
	fmt.Printf("Total income:  %s\n", cli.IncomeStyle.Render(totals.TotalIncome().String()))
	fmt.Printf("Total expense: %s\n", cli.ExpenseStyle.Render(totals.TotalExpense().String()))
	fmt.Printf("Balance:       %s\n", balanceStyle(totals.Balance().Cents).Render(totals.Balance().String()))
}

// balanceStyle colors a balance green when non-negative, red otherwise.
func balanceStyle(cents int64) lipgloss.Style {
	if cents < 0 {
		return cli.ExpenseStyle
	}
	return cli.IncomeStyle
}
