package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/spf13/cobra"
)

// printAlerts runs the overspend check and prints any alerts. Mutating
// expense commands call it so the warning appears right after the change
// that caused it.
func printAlerts(cmd *cobra.Command, a *app) error {
	alerts, err := a.evaluation.CheckAlerts()
	if err != nil {
		return err
	}
	for _, alert := range alerts {
		cmd.Printf("ALERT: %s budget of %s exceeded, spent %s\n", alert.Category, alert.Budget, alert.Spent)
	}
	return nil
}

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show budgets whose spending exceeds the budgeted amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			alerts, err := a.evaluation.CheckAlerts()
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				cmd.Println("No budgets exceeded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tBUDGET\tSPENT")
			for _, alert := range alerts {
				fmt.Fprintf(w, "%s\t%s\t%s\n", alert.Category, alert.Budget, alert.Spent)
			}
			return w.Flush()
		},
	}
}

func comparisonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comparison",
		Short: "Budget vs actual for active monthly budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			rows, err := a.evaluation.BudgetVsActual()
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				cmd.Println("No active monthly budgets.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tBUDGET\tACTUAL\tDIFFERENCE\tUSED %")
			for _, row := range rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					row.Category, row.Budget, row.Actual, row.Difference, row.Percentage)
			}
			return w.Flush()
		},
	}
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Spending reports",
	}
	cmd.AddCommand(reportSummaryCmd())
	cmd.AddCommand(reportCategoriesCmd())
	cmd.AddCommand(reportTrendsCmd())
	cmd.AddCommand(reportTopCmd())
	return cmd
}

func reportSummaryCmd() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate statistics over expenses, optionally date-bounded",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			var startAt, endAt *time.Time
			if start != "" {
				parsed, err := parseDateFlag("start", start)
				if err != nil {
					return err
				}
				startAt = &parsed
			}
			if end != "" {
				parsed, err := parseDateFlag("end", end)
				if err != nil {
					return err
				}
				endAt = &parsed
			}

			stats, err := a.reports.Summary(startAt, endAt)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Count\t%d\n", stats.Count)
			fmt.Fprintf(w, "Total\t%s\n", stats.Total)
			fmt.Fprintf(w, "Average\t%s\n", stats.Average)
			fmt.Fprintf(w, "Median\t%s\n", stats.Median)
			fmt.Fprintf(w, "Min\t%s\n", stats.Min)
			fmt.Fprintf(w, "Max\t%s\n", stats.Max)
			fmt.Fprintf(w, "Std dev\t%s\n", stats.StdDev)
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "earliest date, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "latest date, YYYY-MM-DD")
	return cmd
}

func reportCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Per-category totals, largest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			summaries, err := a.reports.CategorySummary()
			if err != nil {
				return err
			}
			if len(summaries) == 0 {
				cmd.Println("No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tTOTAL\tAVERAGE\tCOUNT\tSHARE %")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", s.Category, s.Total, s.Average, s.Count, s.Percentage)
			}
			return w.Flush()
		},
	}
}

func reportTrendsCmd() *cobra.Command {
	var period string
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Spending totals bucketed by month, quarter or year",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			parsedPeriod, err := domain.ParseTrendPeriod(period)
			if err != nil {
				return fmt.Errorf("--period must be one of: monthly, quarterly, yearly")
			}

			points, err := a.reports.Trends(parsedPeriod)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				cmd.Println("No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tTOTAL")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\n", p.Period, p.Total)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&period, "period", "monthly", "bucket size: monthly, quarterly, yearly")
	return cmd
}

func reportTopCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Largest expenses by amount",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			expenses, err := a.reports.TopN(n)
			if err != nil {
				return err
			}
			if len(expenses) == 0 {
				cmd.Println("No expenses recorded.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tAMOUNT\tCATEGORY\tDESCRIPTION")
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date.Format(domain.DateFormat), e.Amount, e.Category, e.Description)
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&n, "n", 5, "number of expenses to show")
	return cmd
}
