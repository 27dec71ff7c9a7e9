package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// expenseColumns is the CSV schema for expense rows. Exports and imports use
// the same columns so a round trip reproduces the store field-for-field.
var expenseColumns = []string{"amount", "date", "category", "description", "payment_method", "tags"}

// WriteExpenses renders expenses as CSV, header first, in store order.
func WriteExpenses(w io.Writer, expenses []*domain.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(expenseColumns); err != nil {
		return fmt.Errorf("writing expense header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			e.Amount.String(),
			e.Date.Format(domain.DateFormat),
			e.Category,
			e.Description,
			e.PaymentMethod,
			e.Tags,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing expense row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadExpenses parses CSV expense rows. Columns are located by header name so
// column order does not matter. Any unparseable row is an error; the caller
// decides whether to fall back to an empty store.
func ReadExpenses(r io.Reader) ([]*domain.Expense, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expense csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("expense csv: missing header")
	}

	cols, err := columnIndex(records[0], "amount", "date", "category")
	if err != nil {
		return nil, fmt.Errorf("expense csv: %w", err)
	}

	expenses := make([]*domain.Expense, 0, len(records)-1)
	for i, row := range records[1:] {
		amount, err := decimal.NewFromString(field(row, cols, "amount"))
		if err != nil {
			return nil, fmt.Errorf("expense csv row %d: invalid amount: %w", i+1, err)
		}
		date, err := time.ParseInLocation(domain.DateFormat, field(row, cols, "date"), time.UTC)
		if err != nil {
			return nil, fmt.Errorf("expense csv row %d: invalid date: %w", i+1, err)
		}
		expenses = append(expenses, &domain.Expense{
			Amount:        amount,
			Date:          date,
			Category:      field(row, cols, "category"),
			Description:   field(row, cols, "description"),
			PaymentMethod: field(row, cols, "payment_method"),
			Tags:          field(row, cols, "tags"),
		})
	}
	return expenses, nil
}

// columnIndex maps header names to their positions, checking that every
// required column is present.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}

// field returns the named column of a row, empty when the column is absent.
func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
