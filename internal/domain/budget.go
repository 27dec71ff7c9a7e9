package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryOverall is the sentinel category matching every expense regardless
// of its own category.
const CategoryOverall = "overall"

// BudgetPeriod is an advisory label on a budget. It does not roll the
// evaluation window forward; only StartDate/EndDate bound a budget.
type BudgetPeriod string

const (
	PeriodMonthly   BudgetPeriod = "monthly"
	PeriodQuarterly BudgetPeriod = "quarterly"
	PeriodYearly    BudgetPeriod = "yearly"
)

// ParseBudgetPeriod validates a caller-supplied period label.
func ParseBudgetPeriod(s string) (BudgetPeriod, error) {
	switch BudgetPeriod(s) {
	case PeriodMonthly, PeriodQuarterly, PeriodYearly:
		return BudgetPeriod(s), nil
	}
	return "", ErrInvalidPeriod
}

// Budget represents a spending ceiling for a category over a date window.
// A nil EndDate means the window is open-ended and evaluates through "today".
type Budget struct {
	ID        uuid.UUID       `json:"id"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Period    BudgetPeriod    `json:"period"`
	StartDate time.Time       `json:"startDate"`
	EndDate   *time.Time      `json:"endDate,omitempty"`
}

// IsOverall reports whether the budget applies to all categories combined.
func (b *Budget) IsOverall() bool {
	return b.Category == CategoryOverall
}

// Window resolves the inclusive evaluation window. today substitutes for a
// missing end date.
func (b *Budget) Window(today time.Time) (start, end time.Time) {
	start = b.StartDate
	end = today
	if b.EndDate != nil {
		end = *b.EndDate
	}
	return start, end
}

// ActiveOn reports whether the budget window contains the given day.
func (b *Budget) ActiveOn(today time.Time) bool {
	if b.StartDate.After(today) {
		return false
	}
	return b.EndDate == nil || !b.EndDate.Before(today)
}

// BudgetUpdate describes a partial update of a budget. Nil fields are left
// untouched. ClearEndDate removes the end date, making the window open-ended.
type BudgetUpdate struct {
	Category     *string
	Amount       *decimal.Decimal
	Period       *BudgetPeriod
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
}

// BudgetRepository is the contract for the ordered budget store. Same
// positional-index addressing as ExpenseRepository.
type BudgetRepository interface {
	Add(budget *Budget) (*Budget, error)
	GetByIndex(index int) (*Budget, error)
	Update(index int, update BudgetUpdate) (*Budget, error)
	Delete(index int) error
	List() ([]*Budget, error)
	ReplaceAll(budgets []*Budget) error
}
