package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/ledger"
	"grana/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		fromStr    string
		toStr      string
		categoryID int64
		exportPath string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Period and per-category report",
		Long: `Filter transactions by an inclusive date range and optional category,
then print the period totals and the per-category breakdown ordered by
total. Defaults to the last month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			now := time.Now()
			params := report.Params{
				From:       now.AddDate(0, -1, 0),
				To:         now,
				CategoryID: categoryID,
			}

			var err error
			if fromStr != "" {
				if params.From, err = parseDate(fromStr); err != nil {
					return err
				}
			}
			if toStr != "" {
				to, err := parseDate(toStr)
				if err != nil {
					return err
				}
				params.To = endOfDay(to)
			}

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()
			session.SetView(ledger.ViewReports)

			rpt := report.Build(session.Transactions.Transactions(), params)

			if exportPath != "" {
				if err := exportCSV(exportPath, rpt); err != nil {
					return err
				}
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported report to %s", exportPath)))
				return nil
			}

			printReport(rpt)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "start date YYYY-MM-DD (inclusive)")
	cmd.Flags().StringVar(&toStr, "to", "", "end date YYYY-MM-DD (inclusive)")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "restrict to one category id (0 = all)")
	cmd.Flags().StringVar(&exportPath, "export", "", "write the report as CSV to this file instead of printing")
	return cmd
}

func printReport(rpt report.Report) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Report %s to %s",
		rpt.Params.From.Format(dateLayout), rpt.Params.To.Format(dateLayout))))

	fmt.Printf("Income:  %s\n", cli.IncomeStyle.Render(rpt.Summary.TotalIncome.String()))
	fmt.Printf("Expense: %s\n", cli.ExpenseStyle.Render(rpt.Summary.TotalExpense.String()))
	fmt.Printf("Balance: %s\n\n", balanceStyle(rpt.Summary.Balance.Cents).Render(rpt.Summary.Balance.String()))

	if len(rpt.ByCategory) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No transactions in this period."))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		cli.HeaderStyle.Render("Category"),
		cli.HeaderStyle.Render("Kind"),
		cli.HeaderStyle.Render("Total"),
		cli.HeaderStyle.Render("Count"),
		cli.HeaderStyle.Render("Average"))
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 7), strings.Repeat("-", 10),
		strings.Repeat("-", 5), strings.Repeat("-", 10))

	for _, row := range rpt.ByCategory {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			row.Category,
			row.Kind.String(),
			cli.AmountStyle(int(row.Kind)).Render(row.Total.String()),
			row.Count,
			row.Average.String())
	}
}

func exportCSV(path string, rpt report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"date", "description", "category", "kind", "amount", "notes"}); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	for _, t := range rpt.Transactions {
		record := []string{
			t.Date.Format(dateLayout),
			t.Description,
			t.Category.Name,
			t.Kind.String(),
			t.Amount.String(),
			t.Notes,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
