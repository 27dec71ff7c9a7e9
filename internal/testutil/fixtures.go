package testutil

import (
	"testing"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/repository/memory"
	"github.com/shopspring/decimal"
)

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	amount, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid amount literal %q: %v", s, err)
	}
	return amount
}

// NewRepos returns a fresh, empty store pair.
func NewRepos() (*memory.ExpenseRepository, *memory.BudgetRepository) {
	return memory.NewExpenseRepository(), memory.NewBudgetRepository()
}

// AddExpense seeds one expense, failing the test on error.
func AddExpense(t *testing.T, repo *memory.ExpenseRepository, expense *domain.Expense) *domain.Expense {
	t.Helper()
	created, err := repo.Add(expense)
	if err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
	return created
}

// AddBudget seeds one budget, failing the test on error.
func AddBudget(t *testing.T, repo *memory.BudgetRepository, budget *domain.Budget) *domain.Budget {
	t.Helper()
	created, err := repo.Add(budget)
	if err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	return created
}
