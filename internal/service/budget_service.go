package service

import (
	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/util"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo domain.BudgetRepository
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo}
}

// Add validates and records a new budget. An empty category defaults to the
// overall sentinel; a present end date must not precede the start date.
func (s *BudgetService) Add(budget *domain.Budget) (*domain.Budget, error) {
	if budget.Category == "" {
		budget.Category = domain.CategoryOverall
	}
	if budget.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if _, err := domain.ParseBudgetPeriod(string(budget.Period)); err != nil {
		return nil, err
	}
	if budget.StartDate.IsZero() {
		return nil, domain.ErrInvalidDate
	}
	budget.StartDate = util.DateOnly(budget.StartDate)
	if budget.EndDate != nil {
		end := util.DateOnly(*budget.EndDate)
		if end.Before(budget.StartDate) {
			return nil, domain.ErrInvalidDateRange
		}
		budget.EndDate = &end
	}
	return s.budgetRepo.Add(budget)
}

// Get returns the budget at the given position.
func (s *BudgetService) Get(index int) (*domain.Budget, error) {
	return s.budgetRepo.GetByIndex(index)
}

// Update overwrites only the supplied fields of the budget at the given
// position, re-checking the window whenever either bound changes.
func (s *BudgetService) Update(index int, update domain.BudgetUpdate) (*domain.Budget, error) {
	if update.Amount != nil && update.Amount.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if update.Period != nil {
		if _, err := domain.ParseBudgetPeriod(string(*update.Period)); err != nil {
			return nil, err
		}
	}
	if update.StartDate != nil {
		day := util.DateOnly(*update.StartDate)
		update.StartDate = &day
	}
	if update.EndDate != nil {
		day := util.DateOnly(*update.EndDate)
		update.EndDate = &day
	}

	if update.StartDate != nil || update.EndDate != nil {
		current, err := s.budgetRepo.GetByIndex(index)
		if err != nil {
			return nil, err
		}
		start := current.StartDate
		if update.StartDate != nil {
			start = *update.StartDate
		}
		end := current.EndDate
		if update.ClearEndDate {
			end = nil
		} else if update.EndDate != nil {
			end = update.EndDate
		}
		if end != nil && end.Before(start) {
			return nil, domain.ErrInvalidDateRange
		}
	}

	return s.budgetRepo.Update(index, update)
}

// Delete removes the budget at the given position, compacting later indices.
func (s *BudgetService) Delete(index int) error {
	return s.budgetRepo.Delete(index)
}

// List returns the full budget store in insertion order.
func (s *BudgetService) List() ([]*domain.Budget, error) {
	return s.budgetRepo.List()
}
