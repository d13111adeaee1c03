package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/model"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "Manage ledger transactions",
		Long:    `List, add, edit, and delete income and expense transactions.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			transactions := session.Transactions.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions found. Use 'grana transactions add' to create one."))
				return nil
			}
			if limit > 0 && len(transactions) > limit {
				transactions = transactions[:limit]
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Kind"),
				cli.HeaderStyle.Render("Amount"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 10), strings.Repeat("-", 30),
				strings.Repeat("-", 15), strings.Repeat("-", 7), strings.Repeat("-", 10))

			for _, t := range transactions {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					t.Date.Format(dateLayout),
					t.Description,
					t.Category.Name,
					t.Kind.String(),
					cli.AmountStyle(int(t.Kind)).Render(t.Amount.String()))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "show at most this many transactions (0 = all)")
	return cmd
}

func addTransactionCmd() *cobra.Command {
	var (
		amountStr  string
		kindName   string
		categoryID int64
		dateStr    string
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new transaction",
		Long: `Record a transaction. The category must be active and of the same kind
as the transaction; use 'grana categories list --active' to pick one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}
			amount, err := model.ParseMoney(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q", amountStr)
			}

			draft := model.Transaction{
				Description: args[0],
				Amount:      amount,
				Kind:        kind,
				CategoryID:  categoryID,
				Notes:       notes,
			}
			if dateStr != "" {
				if draft.Date, err = parseDate(dateStr); err != nil {
					return err
				}
			}

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := session.Transactions.BeginCreate(ctx, draft)
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf(
				"Recorded %s of %s in %q (ID: %d)",
				created.Kind, created.Amount, created.Category.Name, created.ID)))
			printTotals(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount, e.g. 12.34 (required)")
	cmd.Flags().StringVar(&kindName, "kind", "", "income or expense (required)")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "category id (required)")
	cmd.Flags().StringVar(&dateStr, "date", "", "effective date YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&notes, "notes", "", "optional notes")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func editTransactionCmd() *cobra.Command {
	var (
		description string
		amountStr   string
		kindName    string
		categoryID  int64
		dateStr     string
		notes       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Update a transaction in place. Changing the kind requires a category of
the new kind as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			mgr := session.Transactions
			draft, err := mgr.BeginEdit(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("amount") {
				if draft.Amount, err = model.ParseMoney(amountStr); err != nil {
					return fmt.Errorf("invalid amount %q", amountStr)
				}
			}
			if cmd.Flags().Changed("kind") {
				if draft.Kind, err = parseKind(kindName); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("category") {
				draft.CategoryID = categoryID
			}
			if cmd.Flags().Changed("date") {
				if draft.Date, err = parseDate(dateStr); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("notes") {
				draft.Notes = notes
			}

			if err := mgr.CommitEdit(ctx, draft); err != nil {
				_ = mgr.CancelEdit()
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated transaction %d", id)))
			printTotals(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&amountStr, "amount", "", "new amount")
	cmd.Flags().StringVar(&kindName, "kind", "", "new kind: income or expense")
	cmd.Flags().Int64Var(&categoryID, "category", 0, "new category id")
	cmd.Flags().StringVar(&dateStr, "date", "", "new effective date YYYY-MM-DD")
	cmd.Flags().StringVar(&notes, "notes", "", "new notes")
	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := session.Transactions.Delete(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted transaction %d", id)))
			printTotals(session)
			return nil
		},
	}
}
