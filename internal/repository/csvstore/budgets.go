package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// budgetColumns is the CSV schema for budget rows. An empty end_date means
// the window is open-ended.
var budgetColumns = []string{"category", "amount", "period", "start_date", "end_date"}

// WriteBudgets renders budgets as CSV, header first, in store order.
func WriteBudgets(w io.Writer, budgets []*domain.Budget) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(budgetColumns); err != nil {
		return fmt.Errorf("writing budget header: %w", err)
	}
	for _, b := range budgets {
		end := ""
		if b.EndDate != nil {
			end = b.EndDate.Format(domain.DateFormat)
		}
		row := []string{
			b.Category,
			b.Amount.String(),
			string(b.Period),
			b.StartDate.Format(domain.DateFormat),
			end,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing budget row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadBudgets parses CSV budget rows by header name.
func ReadBudgets(r io.Reader) ([]*domain.Budget, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budget csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("budget csv: missing header")
	}

	cols, err := columnIndex(records[0], "category", "amount", "start_date")
	if err != nil {
		return nil, fmt.Errorf("budget csv: %w", err)
	}

	budgets := make([]*domain.Budget, 0, len(records)-1)
	for i, row := range records[1:] {
		amount, err := decimal.NewFromString(field(row, cols, "amount"))
		if err != nil {
			return nil, fmt.Errorf("budget csv row %d: invalid amount: %w", i+1, err)
		}
		start, err := time.ParseInLocation(domain.DateFormat, field(row, cols, "start_date"), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("budget csv row %d: invalid start_date: %w", i+1, err)
		}
		budget := &domain.Budget{
			Category:  field(row, cols, "category"),
			Amount:    amount,
			Period:    domain.BudgetPeriod(field(row, cols, "period")),
			StartDate: start,
		}
		if raw := field(row, cols, "end_date"); raw != "" {
			end, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
			if err != nil {
				return nil, fmt.Errorf("budget csv row %d: invalid end_date: %w", i+1, err)
			}
			budget.EndDate = &end
		}
		budgets = append(budgets, budget)
	}
	return budgets, nil
}
