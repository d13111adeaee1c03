package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"grana/internal/cli"
	"grana/internal/ledger"
	"grana/internal/model"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage income and expense categories",
		Long:  `List, add, edit, and delete the categories transactions are classified into.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Long:  `Display all categories sorted by kind and name. Inactive categories are kept for historical transactions.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			categories := session.Categories.Categories()
			if activeOnly {
				categories = session.Categories.ActiveCategories()
			}
			if len(categories) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No categories found. Use 'grana categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Kind"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Color"),
				cli.HeaderStyle.Render("Description"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 4), strings.Repeat("-", 7),
				strings.Repeat("-", 20), strings.Repeat("-", 7), strings.Repeat("-", 40))

			for _, c := range categories {
				name := c.Name
				if !c.Active {
					name = cli.SubtleStyle.Render(name + " (inactive)")
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Kind.String(), name, c.Color, c.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "show only active categories")
	return cmd
}

func addCategoryCmd() *cobra.Command {
	var (
		kindName    string
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}

			session, store, err := openSession(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			created, err := session.Categories.BeginCreate(ctx, model.Category{
				Name:        args[0],
				Description: description,
				Kind:        kind,
				Color:       color,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Created %s category %q (ID: %d)", created.Kind, created.Name, created.ID)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "category kind: income or expense (required)")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&color, "color", "", "display color in #RRGGBB format")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func editCategoryCmd() *cobra.Command {
	var (
		name        string
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category",
		Long:  `Update a category's name, description, or color. Its kind is fixed once created.`,
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

			mgr := session.Categories
			draft, err := mgr.BeginEdit(id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("description") {
				draft.Description = description
			}
			if cmd.Flags().Changed("color") {
				draft.Color = color
			}

			if err := mgr.CommitEdit(ctx, draft); err != nil {
				// The edit session is still open after a failed commit;
				// one-shot CLI invocations just discard it.
				_ = mgr.CancelEdit()
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated category %d", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&color, "color", "", "new color in #RRGGBB format")
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category. A category still referenced by transactions is
deactivated instead of removed, preserving history.`,
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

			outcome, err := session.Categories.Delete(ctx, id)
			if err != nil {
				return err
			}

			switch outcome {
			case ledger.Deactivated:
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("Category %d is referenced by transactions; deactivated instead of deleted", id)))
			default:
				fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted category %d", id)))
			}
			return nil
		},
	}
}
