package memory

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/gioia-app/gioia-backend/internal/domain"
)

// ExpenseRepository is an in-memory ordered expense store. A single instance
// is shared by all handlers in a process, so access is mutex-guarded.
type ExpenseRepository struct {
	mu       sync.RWMutex
	expenses []*domain.Expense
}

// NewExpenseRepository creates an empty ExpenseRepository.
func NewExpenseRepository() *ExpenseRepository {
	return &ExpenseRepository{}
}

// Add appends an expense and assigns it a stable ID.
func (r *ExpenseRepository) Add(expense *domain.Expense) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *expense
	stored.ID = uuid.New()
	r.expenses = append(r.expenses, &stored)
	return &stored, nil
}

// GetByIndex returns a copy of the expense at the given position.
func (r *ExpenseRepository) GetByIndex(index int) (*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if index < 0 || index >= len(r.expenses) {
		return nil, domain.ErrIndexOutOfRange
	}
	copied := *r.expenses[index]
	return &copied, nil
}

// Update overwrites only the set fields of the expense at the given position.
func (r *ExpenseRepository) Update(index int, update domain.ExpenseUpdate) (*domain.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.expenses) {
		return nil, domain.ErrIndexOutOfRange
	}

	expense := r.expenses[index]
	if update.Amount != nil {
		expense.Amount = *update.Amount
	}
	if update.Date != nil {
		expense.Date = *update.Date
	}
	if update.Category != nil {
		expense.Category = *update.Category
	}
	if update.Description != nil {
		expense.Description = *update.Description
	}
	if update.PaymentMethod != nil {
		expense.PaymentMethod = *update.PaymentMethod
	}
	if update.Tags != nil {
		expense.Tags = *update.Tags
	}

	copied := *expense
	return &copied, nil
}

// Delete removes the expense at the given position. All later records shift
// down by one.
func (r *ExpenseRepository) Delete(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.expenses) {
		return domain.ErrIndexOutOfRange
	}
	r.expenses = append(r.expenses[:index], r.expenses[index+1:]...)
	return nil
}

// List returns a filtered, optionally sorted copy of the store. The sort is
// stable: ties keep insertion order. The store is never mutated.
func (r *ExpenseRepository) List(filters *domain.ExpenseFilters, sortBy domain.SortField) ([]*domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Expense, 0, len(r.expenses))
	for _, expense := range r.expenses {
		if filters.Matches(expense) {
			copied := *expense
			result = append(result, &copied)
		}
	}

	if sortBy != domain.SortNone {
		sort.SliceStable(result, func(i, j int) bool {
			return sortBy.Less(result[i], result[j])
		})
	}
	return result, nil
}

// ReplaceAll swaps the full store contents, assigning IDs to records that
// lack one. Used by the import path.
func (r *ExpenseRepository) ReplaceAll(expenses []*domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replacement := make([]*domain.Expense, len(expenses))
	for i, expense := range expenses {
		copied := *expense
		if copied.ID == uuid.Nil {
			copied.ID = uuid.New()
		}
		replacement[i] = &copied
	}
	r.expenses = replacement
	return nil
}
