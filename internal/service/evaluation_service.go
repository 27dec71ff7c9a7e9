package service

import (
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/util"
	"github.com/shopspring/decimal"
)

// EvaluationService computes per-budget actual spend, overspend alerts and
// the budget-vs-actual comparison table. It is a pure reader of the two
// stores: both outputs may legitimately be empty and neither ever errors on
// missing records.
type EvaluationService struct {
	expenseRepo domain.ExpenseRepository
	budgetRepo  domain.BudgetRepository

	// now is the evaluation instant, replaceable in tests.
	now func() time.Time
}

// NewEvaluationService creates a new EvaluationService
func NewEvaluationService(expenseRepo domain.ExpenseRepository, budgetRepo domain.BudgetRepository) *EvaluationService {
	return &EvaluationService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		now:         time.Now,
	}
}

// spentInWindow sums the amounts of expenses inside the budget's inclusive
// evaluation window. The overall sentinel matches every category; anything
// else requires exact, case-sensitive equality.
func (s *EvaluationService) spentInWindow(expenses []*domain.Expense, budget *domain.Budget, today time.Time) decimal.Decimal {
	start, end := budget.Window(today)
	spent := decimal.Zero
	for _, expense := range expenses {
		if !util.InWindow(expense.Date, start, end) {
			continue
		}
		if !budget.IsOverall() && expense.Category != budget.Category {
			continue
		}
		spent = spent.Add(expense.Amount)
	}
	return spent
}

// CheckAlerts evaluates every budget independently and reports those whose
// actual spend strictly exceeds the budgeted amount. Spending exactly the
// budget does not alert.
func (s *EvaluationService) CheckAlerts() ([]domain.Alert, error) {
	budgets, err := s.budgetRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return nil, err
	}

	today := util.DateOnly(s.now())
	alerts := []domain.Alert{}
	for _, budget := range budgets {
		spent := s.spentInWindow(expenses, budget, today)
		if spent.GreaterThan(budget.Amount) {
			alerts = append(alerts, domain.Alert{
				Category: budget.Category,
				Budget:   budget.Amount,
				Spent:    spent,
			})
		}
	}
	return alerts, nil
}

// BudgetVsActual builds the comparison table for monthly budgets whose window
// contains today. Percentage is actual/budget*100 rounded to one decimal
// place; a zero budget yields zero instead of a division fault. The overall
// sentinel is rendered "Overall" in this output only.
func (s *EvaluationService) BudgetVsActual() ([]domain.ComparisonRow, error) {
	budgets, err := s.budgetRepo.List()
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return nil, err
	}

	today := util.DateOnly(s.now())
	hundred := decimal.NewFromInt(100)
	rows := []domain.ComparisonRow{}
	for _, budget := range budgets {
		if budget.Period != domain.PeriodMonthly || !budget.ActiveOn(today) {
			continue
		}

		actual := s.spentInWindow(expenses, budget, today)

		percentage := decimal.Zero
		if !budget.Amount.IsZero() {
			percentage = actual.Div(budget.Amount).Mul(hundred).Round(1)
		}

		category := budget.Category
		if budget.IsOverall() {
			category = "Overall"
		}

		rows = append(rows, domain.ComparisonRow{
			Category:   category,
			Budget:     budget.Amount,
			Actual:     actual,
			Difference: actual.Sub(budget.Amount),
			Percentage: percentage,
		})
	}
	return rows, nil
}
