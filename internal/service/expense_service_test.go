package service

import (
	"testing"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func TestExpenseService_AddRejectsNegativeAmount(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	_, err := svc.Add(&domain.Expense{
		Amount:   decimal.NewFromInt(-5),
		Date:     testutil.Date(2025, 12, 1),
		Category: "Misc",
	})
	if err != domain.ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestExpenseService_AddRejectsZeroDate(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	_, err := svc.Add(&domain.Expense{Amount: decimal.NewFromInt(5), Category: "Misc"})
	if err != domain.ErrInvalidDate {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestExpenseService_AddTruncatesDate(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	created, err := svc.Add(&domain.Expense{
		Amount:   decimal.NewFromInt(5),
		Date:     time.Date(2025, 12, 1, 13, 45, 0, 0, time.UTC),
		Category: "Misc",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !created.Date.Equal(testutil.Date(2025, 12, 1)) {
		t.Errorf("expected date-only value, got %v", created.Date)
	}
}

func TestExpenseService_UpdateRejectsNegativeAmount(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount: decimal.NewFromInt(5), Date: testutil.Date(2025, 12, 1), Category: "Misc",
	})

	negative := decimal.NewFromInt(-1)
	if _, err := svc.Update(0, domain.ExpenseUpdate{Amount: &negative}); err != domain.ErrInvalidAmount {
		t.Errorf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestExpenseService_DeletePropagatesOutOfRange(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	if err := svc.Delete(0); err != domain.ErrIndexOutOfRange {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestExpenseService_ViewPassesFilters(t *testing.T) {
	expenseRepo, _ := testutil.NewRepos()
	svc := NewExpenseService(expenseRepo)

	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount: decimal.NewFromInt(5), Date: testutil.Date(2025, 12, 1), Category: "Food",
	})
	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount: decimal.NewFromInt(9), Date: testutil.Date(2025, 12, 2), Category: "Travel",
	})

	category := "food"
	result, err := svc.View(&domain.ExpenseFilters{Category: &category}, domain.SortNone)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Errorf("expected 1 expense, got %d", len(result))
	}
}
