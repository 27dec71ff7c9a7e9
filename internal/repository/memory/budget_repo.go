package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/gioia-app/gioia-backend/internal/domain"
)

// BudgetRepository is an in-memory ordered budget store with the same
// positional-index contract as ExpenseRepository.
type BudgetRepository struct {
	mu      sync.RWMutex
	budgets []*domain.Budget
}

// NewBudgetRepository creates an empty BudgetRepository.
func NewBudgetRepository() *BudgetRepository {
	return &BudgetRepository{}
}

// Add appends a budget and assigns it a stable ID.
func (r *BudgetRepository) Add(budget *domain.Budget) (*domain.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *budget
	stored.ID = uuid.New()
	r.budgets = append(r.budgets, &stored)
	return &stored, nil
}

// GetByIndex returns a copy of the budget at the given position.
func (r *BudgetRepository) GetByIndex(index int) (*domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.budgets) {
		return nil, domain.ErrIndexOutOfRange
	}
	copied := *r.budgets[index]
	return &copied, nil
}

// Update overwrites only the set fields of the budget at the given position.
func (r *BudgetRepository) Update(index int, update domain.BudgetUpdate) (*domain.Budget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.budgets) {
		return nil, domain.ErrIndexOutOfRange
	}

	budget := r.budgets[index]
	if update.Category != nil {
		budget.Category = *update.Category
	}
	if update.Amount != nil {
		budget.Amount = *update.Amount
	}
	if update.Period != nil {
		budget.Period = *update.Period
	}
	if update.StartDate != nil {
		budget.StartDate = *update.StartDate
	}
	if update.ClearEndDate {
		budget.EndDate = nil
	} else if update.EndDate != nil {
		end := *update.EndDate
		budget.EndDate = &end
	}

	copied := *budget
	return &copied, nil
}

// Delete removes the budget at the given position, compacting later indices.
func (r *BudgetRepository) Delete(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.budgets) {
		return domain.ErrIndexOutOfRange
	}
	r.budgets = append(r.budgets[:index], r.budgets[index+1:]...)
	return nil
}

// List returns a copy of the full store in insertion order.
func (r *BudgetRepository) List() ([]*domain.Budget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Budget, len(r.budgets))
	for i, budget := range r.budgets {
		copied := *budget
		result[i] = &copied
	}
	return result, nil
}

// ReplaceAll swaps the full store contents, assigning IDs to records that
// lack one.
func (r *BudgetRepository) ReplaceAll(budgets []*domain.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]*domain.Budget, len(budgets))
	for i, budget := range budgets {
		copied := *budget
		if copied.ID == uuid.Nil {
			copied.ID = uuid.New()
		}
		replacement[i] = &copied
	}
	r.budgets = replacement
	return nil
}
