package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Define, list, edit and delete budgets",
	}
	cmd.AddCommand(budgetAddCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetEditCmd())
	cmd.AddCommand(budgetDeleteCmd())
	return cmd
}

func budgetAddCmd() *cobra.Command {
	var (
		category, amount, period string
		start, end               string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Define a new budget",
		Long: `Define a budget for one category, or for all spending combined when
--category is "overall" or omitted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("--amount must be a decimal number, got %q", amount)
			}
			parsedPeriod, err := domain.ParseBudgetPeriod(period)
			if err != nil {
				return fmt.Errorf("--period must be one of: monthly, quarterly, yearly")
			}
			parsedStart, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}

			budget := &domain.Budget{
				Category:  category,
				Amount:    parsedAmount,
				Period:    parsedPeriod,
				StartDate: parsedStart,
			}
			if end != "" {
				parsedEnd, err := parseDateFlag("end", end)
				if err != nil {
					return err
				}
				budget.EndDate = &parsedEnd
			}

			created, err := a.budgets.Add(budget)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Defined %s %s budget of %s starting %s\n",
				created.Period, created.Category, created.Amount, created.StartDate.Format(domain.DateFormat))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", `budget category, "overall" for all spending`)
	cmd.Flags().StringVar(&amount, "amount", "", "budget amount (required)")
	cmd.Flags().StringVar(&period, "period", "monthly", "budget period: monthly, quarterly, yearly")
	cmd.Flags().StringVar(&start, "start", "", "start date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&end, "end", "", "end date, YYYY-MM-DD; omit for open-ended")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			budgets, err := a.budgets.List()
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				cmd.Println("No budgets defined.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tCATEGORY\tAMOUNT\tPERIOD\tSTART\tEND")
			for i, b := range budgets {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i, b.Category, b.Amount, b.Period, b.StartDate.Format(domain.DateFormat), formatEndDate(b))
			}
			return w.Flush()
		},
	}
}

func budgetEditCmd() *cobra.Command {
	var (
		category, amount, period string
		start, end               string
	)
	cmd := &cobra.Command{
		Use:   "edit INDEX",
		Short: "Edit the budget at a list index",
		Long: `Edit the budget at a list index. Only the supplied flags change;
pass --end "" to clear the end date and make the budget open-ended.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			index, err := parseIndexArg(args[0])
			if err != nil {
				return err
			}

			var update domain.BudgetUpdate
			if cmd.Flags().Changed("category") {
				update.Category = &category
			}
			if cmd.Flags().Changed("amount") {
				parsed, err := decimal.NewFromString(amount)
				if err != nil {
					return fmt.Errorf("--amount must be a decimal number, got %q", amount)
				}
				update.Amount = &parsed
			}
			if cmd.Flags().Changed("period") {
				parsed, err := domain.ParseBudgetPeriod(period)
				if err != nil {
					return fmt.Errorf("--period must be one of: monthly, quarterly, yearly")
				}
				update.Period = &parsed
			}
			if cmd.Flags().Changed("start") {
				parsed, err := parseDateFlag("start", start)
				if err != nil {
					return err
				}
				update.StartDate = &parsed
			}
			if cmd.Flags().Changed("end") {
				if end == "" {
					update.ClearEndDate = true
				} else {
					parsed, err := parseDateFlag("end", end)
					if err != nil {
						return err
					}
					update.EndDate = &parsed
				}
			}

			updated, err := a.budgets.Update(index, update)
			if err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Updated budget %d: %s %s budget of %s (%s to %s)\n",
				index, updated.Period, updated.Category, updated.Amount,
				updated.StartDate.Format(domain.DateFormat), formatEndDate(updated))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "new category")
	cmd.Flags().StringVar(&amount, "amount", "", "new amount")
	cmd.Flags().StringVar(&period, "period", "", "new period: monthly, quarterly, yearly")
	cmd.Flags().StringVar(&start, "start", "", "new start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", `new end date, YYYY-MM-DD; "" clears it`)
	return cmd
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INDEX",
		Short: "Delete the budget at a list index",
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

			if err := a.budgets.Delete(index); err != nil {
				return err
			}
			if err := a.save(); err != nil {
				return err
			}

			cmd.Printf("Deleted budget %d. Later indices shifted down by one.\n", index)
			return nil
		},
	}
}
