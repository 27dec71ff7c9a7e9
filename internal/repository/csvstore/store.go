package csvstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	expensesFile = "expenses.csv"
	budgetsFile  = "budgets.csv"
)

// Store reads and writes the two flat CSV files backing the in-memory stores.
// Loading never fails the caller: a missing or malformed file degrades to an
// empty record set with a logged warning.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at the given data directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// LoadExpenses reads expenses.csv, substituting an empty set on any failure.
func (s *Store) LoadExpenses() []*domain.Expense {
	path := filepath.Join(s.dir, expensesFile)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to open expenses file, starting empty")
		}
		return nil
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed expenses file, starting empty")
		return nil
	}
	return expenses
}

// LoadBudgets reads budgets.csv, substituting an empty set on any failure.
func (s *Store) LoadBudgets() []*domain.Budget {
	path := filepath.Join(s.dir, budgetsFile)
	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to open budgets file, starting empty")
		}
		return nil
	}
	defer f.Close()

	budgets, err := ReadBudgets(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed budgets file, starting empty")
		return nil
	}
	return budgets
}

// SaveExpenses writes expenses.csv atomically.
func (s *Store) SaveExpenses(expenses []*domain.Expense) error {
	return s.writeAtomic(expensesFile, func(f *os.File) error {
		return WriteExpenses(f, expenses)
	})
}

// SaveBudgets writes budgets.csv atomically.
func (s *Store) SaveBudgets(budgets []*domain.Budget) error {
	return s.writeAtomic(budgetsFile, func(f *os.File) error {
		return WriteBudgets(f, budgets)
	})
}

// writeAtomic writes through a temp file and renames it into place so a
// failed save never truncates the previous snapshot.
func (s *Store) writeAtomic(name string, write func(*os.File) error) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("replacing %s: %w", name, err)
	}
	return nil
}
