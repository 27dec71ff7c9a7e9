package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single recorded expense.
type Expense struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Tags          string          `json:"tags,omitempty"`
}

// ExpenseUpdate describes a partial update of an expense. Nil fields are left
// untouched, so callers can update a single field without re-sending the rest.
type ExpenseUpdate struct {
	Amount        *decimal.Decimal
	Date          *time.Time
	Category      *string
	Description   *string
	PaymentMethod *string
	Tags          *string
}

// ExpenseFilters narrows the result of a listing. All set predicates are
// AND-combined; a nil filter set returns the full store contents.
type ExpenseFilters struct {
	StartDate     *time.Time
	EndDate       *time.Time
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Category      *string
	PaymentMethod *string
	Tags          *string
}

// SortField names an expense field records can be ordered by.
type SortField string

const (
	SortNone          SortField = ""
	SortByAmount      SortField = "amount"
	SortByDate        SortField = "date"
	SortByCategory    SortField = "category"
	SortByDescription SortField = "description"
	SortByPayment     SortField = "payment_method"
	SortByTags        SortField = "tags"
)

// ParseSortField validates a caller-supplied sort key. Unknown keys are
// rejected rather than silently ignored.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortNone, SortByAmount, SortByDate, SortByCategory, SortByDescription, SortByPayment, SortByTags:
		return SortField(s), nil
	}
	return SortNone, ErrUnknownSortField
}

// Matches reports whether the expense satisfies every set predicate.
// Category and tags match by case-insensitive substring, payment method by
// exact equality, dates and amounts by inclusive range.
func (f *ExpenseFilters) Matches(e *Expense) bool {
	if f == nil {
		return true
	}
	if f.StartDate != nil && e.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.Date.After(*f.EndDate) {
		return false
	}
	if f.MinAmount != nil && e.Amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && e.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}
	if f.Category != nil && !strings.Contains(strings.ToLower(e.Category), strings.ToLower(*f.Category)) {
		return false
	}
	if f.PaymentMethod != nil && e.PaymentMethod != *f.PaymentMethod {
		return false
	}
	if f.Tags != nil && !strings.Contains(strings.ToLower(e.Tags), strings.ToLower(*f.Tags)) {
		return false
	}
	return true
}

// Less orders two expenses by the given field, ascending. Equal values report
// false both ways so a stable sort preserves insertion order.
func (field SortField) Less(a, b *Expense) bool {
	switch field {
	case SortByAmount:
		return a.Amount.LessThan(b.Amount)
	case SortByDate:
		return a.Date.Before(b.Date)
	case SortByCategory:
		return a.Category < b.Category
	case SortByDescription:
		return a.Description < b.Description
	case SortByPayment:
		return a.PaymentMethod < b.PaymentMethod
	case SortByTags:
		return a.Tags < b.Tags
	}
	return false
}

// ExpenseRepository is the contract for the ordered expense store. Records are
// addressed by positional index; deleting compacts the indices of all later
// records, so indices must not be cached across mutations.
type ExpenseRepository interface {
	Add(expense *Expense) (*Expense, error)
	GetByIndex(index int) (*Expense, error)
	Update(index int, update ExpenseUpdate) (*Expense, error)
	Delete(index int) error
	List(filters *ExpenseFilters, sortBy SortField) ([]*Expense, error)
	ReplaceAll(expenses []*Expense) error
}
