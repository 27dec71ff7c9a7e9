package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/repository/csvstore"
	"github.com/gioia-app/gioia-backend/internal/repository/memory"
	"github.com/gioia-app/gioia-backend/internal/service"
)

// app wires one store pair and its services for a single CLI invocation.
// Stores are loaded from the data directory at startup and saved back after
// every mutating command.
type app struct {
	expenses   *service.ExpenseService
	budgets    *service.BudgetService
	evaluation *service.EvaluationService
	reports    *service.ReportService
	snapshots  *service.SnapshotService
}

func newApp() (*app, error) {
	expenseRepo := memory.NewExpenseRepository()
	budgetRepo := memory.NewBudgetRepository()
	store := csvstore.NewStore(dataDir)

	snapshots := service.NewSnapshotService(expenseRepo, budgetRepo, store)
	if err := snapshots.LoadFromDir(); err != nil {
		return nil, fmt.Errorf("loading data dir: %w", err)
	}

	return &app{
		expenses:   service.NewExpenseService(expenseRepo),
		budgets:    service.NewBudgetService(budgetRepo),
		evaluation: service.NewEvaluationService(expenseRepo, budgetRepo),
		reports:    service.NewReportService(expenseRepo),
		snapshots:  snapshots,
	}, nil
}

// save snapshots both stores back to the data directory.
func (a *app) save() error {
	if err := a.snapshots.SaveToDir(); err != nil {
		return fmt.Errorf("saving data dir: %w", err)
	}
	return nil
}

func parseIndexArg(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("index must be a number, got %q", arg)
	}
	return index, nil
}

func parseDateFlag(name, raw string) (time.Time, error) {
	date, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be in YYYY-MM-DD format, got %q", name, raw)
	}
	return date, nil
}

func formatEndDate(b *domain.Budget) string {
	if b.EndDate == nil {
		return "open"
	}
	return b.EndDate.Format(domain.DateFormat)
}
