package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record, list, edit and delete expenses",
	}
	cmd.AddCommand(expenseAddCmd())
	cmd.AddCommand(expenseListCmd())
	cmd.AddCommand(expenseEditCmd())
	cmd.AddCommand(expenseDeleteCmd())
	return cmd
}

func expenseAddCmd() *cobra.Command {
	var (
		amount, date, category     string
		description, payment, tags string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("--amount must be a decimal number, got %q", amount)
			}
			parsedDate, err := parseDateFlag("date", date)
			if err != nil {
				return err
			}

			created, err := a.expenses.Add(&domain.Expense{
				Amount:        parsedAmount,
				Date:          parsedDate,
				Category:      category,
				Description:   description,
				PaymentMethod: payment,
				Tags:          tags,
			})
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Recorded %s in %s on %s\n", created.Amount, created.Category, created.Date.Format(domain.DateFormat))
			return printAlerts(cmd, a)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "expense amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "expense date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&category, "category", "", "expense category (required)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	cmd.Flags().StringVar(&payment, "payment", "", "payment method")
	cmd.Flags().StringVar(&tags, "tags", "", "comma-separated tags")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func expenseListCmd() *cobra.Command {
	var (
		start, end, minAmount, maxAmount string
		category, payment, tags, sortBy  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses with optional filters and sorting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var filters domain.ExpenseFilters
			haveFilters := false
			if start != "" {
				parsed, err := parseDateFlag("start", start)
				if err != nil {
					return err
				}
				filters.StartDate = &parsed
				haveFilters = true
			}
			if end != "" {
				parsed, err := parseDateFlag("end", end)
				if err != nil {
					return err
				}
				filters.EndDate = &parsed
				haveFilters = true
			}
			if minAmount != "" {
				parsed, err := decimal.NewFromString(minAmount)
				if err != nil {
					return fmt.Errorf("--min must be a decimal number, got %q", minAmount)
				}
				filters.MinAmount = &parsed
				haveFilters = true
			}
			if maxAmount != "" {
				parsed, err := decimal.NewFromString(maxAmount)
				if err != nil {
					return fmt.Errorf("--max must be a decimal number, got %q", maxAmount)
				}
				filters.MaxAmount = &parsed
				haveFilters = true
			}
			if category != "" {
				filters.Category = &category
				haveFilters = true
			}
			if payment != "" {
				filters.PaymentMethod = &payment
				haveFilters = true
			}
			if tags != "" {
				filters.Tags = &tags
				haveFilters = true
			}

			sortField, err := domain.ParseSortField(sortBy)
			if err != nil {
				return fmt.Errorf("--sort must be one of: amount, date, category, description, payment_method, tags")
			}

			var filterArg *domain.ExpenseFilters
			if haveFilters {
				filterArg = &filters
			}
			expenses, err := a.expenses.View(filterArg, sortField)
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				cmd.Println("No expenses found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tDATE\tAMOUNT\tCATEGORY\tPAYMENT\tTAGS\tDESCRIPTION")
			for i, e := range expenses {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					i, e.Date.Format(domain.DateFormat), e.Amount, e.Category, e.PaymentMethod, e.Tags, e.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "latest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&minAmount, "min", "", "minimum amount")
	cmd.Flags().StringVar(&maxAmount, "max", "", "maximum amount")
	cmd.Flags().StringVar(&category, "category", "", "category substring, case-insensitive")
	cmd.Flags().StringVar(&payment, "payment", "", "exact payment method")
	cmd.Flags().StringVar(&tags, "tags", "", "tags substring, case-insensitive")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort field: amount, date, category, description, payment_method, tags")
	return cmd
}

func expenseEditCmd() *cobra.Command {
	var (
		amount, date, category     string
		description, payment, tags string
	)
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the expense at a list index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			var update domain.ExpenseUpdate
			if cmd.Flags().Changed("amount") {
				parsed, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("--amount must be a decimal number, got %q", amount)
				}
				update.Amount = &parsed
			}
			if cmd.Flags().Changed("date") {
				parsed, err := parseDateFlag("date", date)
				if err != nil {
					return err
				}
				update.Date = &parsed
			}
			if cmd.Flags().Changed("category") {
				update.Category = &category
			}
			if cmd.Flags().Changed("description") {
				update.Description = &description
			}
			if cmd.Flags().Changed("payment") {
				update.PaymentMethod = &payment
			}
			if cmd.Flags().Changed("tags") {
				update.Tags = &tags
			}

			updated, err := a.expenses.Update(index, update)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Updated expense %d: %s in %s on %s\n", index, updated.Amount, updated.Category, updated.Date.Format(domain.DateFormat))
			return printAlerts(cmd, a)
		},
	}
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&date, "date", "", "new date, YYYY-MM-DD")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&payment, "payment", "", "new payment method")
	cmd.Flags().StringVar(&tags, "tags", "", "new tags")
	return cmd
}

func expenseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the expense at a list index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			if err := a.expenses.Delete(index); err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Deleted expense %d. Later indices shifted down by one.\n", index)
			return nil
		},
	}
}
