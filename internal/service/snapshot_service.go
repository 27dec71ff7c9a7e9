package service

import (
	"io"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/repository/csvstore"
)

// SnapshotService moves both stores through their flat CSV form: streaming
// export/import for the API and CLI, plus directory snapshots used at boot
// and shutdown. Exports mirror the input schema exactly, so re-importing an
// export reproduces the store contents field-for-field.
type SnapshotService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository
	store       *csvstore.Store
}

// NewSnapshotService creates a new SnapshotService. store may be nil when no
// data directory is configured; only LoadFromDir/SaveToDir need it.
func NewSnapshotService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository, store *csvstore.Store) *SnapshotService {
	return &SnapshotService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		store:       store,
	}
}

// ExportExpenses writes the expense store as CSV.
func (s *SnapshotService) ExportExpenses(w io.Writer) error {
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return err
	}
	return csvstore.WriteExpenses(w, expenses)
}

// ExportBudgets writes the budget store as CSV.
func (s *SnapshotService) ExportBudgets(w io.Writer) error {
	budgets, err := s.budgetRepo.List()
	if err != nil {
		return err
	}
	return csvstore.WriteBudgets(w, budgets)
}

// ImportExpenses replaces the expense store with parsed CSV rows. A parse
// failure leaves the store untouched.
func (s *SnapshotService) ImportExpenses(r io.Reader) (int, error) {
	expenses, err := csvstore.ReadExpenses(r)
	if err != nil {
		return 0, err
	}
	if err := s.expenseRepo.ReplaceAll(expenses); err != nil {
		return 0, err
	}
	return len(expenses), nil
}

// ImportBudgets replaces the budget store with parsed CSV rows.
func (s *SnapshotService) ImportBudgets(r io.Reader) (int, error) {
	budgets, err := csvstore.ReadBudgets(r)
	if err != nil {
		return 0, err
	}
	if err := s.budgetRepo.ReplaceAll(budgets); err != nil {
		return 0, err
	}
	return len(budgets), nil
}

// LoadFromDir seeds both stores from the data directory. Missing or
// malformed files degrade to empty stores.
func (s *SnapshotService) LoadFromDir() error {
	if s.store == nil {
		return nil
	}
	if err := s.expenseRepo.ReplaceAll(s.store.LoadExpenses()); err != nil {
		return err
	}
	return s.budgetRepo.ReplaceAll(s.store.LoadBudgets())
}

// SaveToDir snapshots both stores to the data directory.
func (s *SnapshotService) SaveToDir() error {
	if s.store == nil {
		return nil
	}
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return err
	}
	if err := s.store.SaveExpenses(expenses); err != nil {
		return err
	}
	budgets, err := s.budgetRepo.List()
	if err != nil {
		return err
	}
	return s.store.SaveBudgets(budgets)
}
