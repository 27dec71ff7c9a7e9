package service

import (
	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/util"
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo domain.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Add validates and records a new expense. Amounts must be non-negative and
// dates are truncated to the calendar day.
func (s *ExpenseService) Add(expense *domain.Expense) (*domain.Expense, error) {
	if expense.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if expense.Date.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	expense.Date = util.DateOnly(expense.Date)
	return s.expenseRepo.Add(expense)
}

// Get returns the expense at the given position.
func (s *ExpenseService) Get(index int) (*domain.Expense, error) {
	return s.expenseRepo.GetByIndex(index)
}

// Update overwrites only the supplied fields of the expense at the given
// position.
func (s *ExpenseService) Update(index int, update domain.ExpenseUpdate) (*domain.Expense, error) {
	if update.Amount != nil && update.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if update.Date != nil {
		day := util.DateOnly(*update.Date)
		update.Date = &day
	}
	return s.expenseRepo.Update(index, update)
}

// Delete removes the expense at the given position, compacting later indices.
func (s *ExpenseService) Delete(index int) error {
	return s.expenseRepo.Delete(index)
}

// View returns a filtered, optionally sorted copy of the store.
func (s *ExpenseService) View(filters *domain.ExpenseFilters, sortBy domain.SortField) ([]*domain.Expense, error) {
	return s.expenseRepo.List(filters, sortBy)
}
