package service

import (
	"math"
	"sort"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/util"
	"github.com/shopspring/decimal"
)

// ReportService computes summary statistics, category breakdowns, time
// trends and top-N rankings over the expense store.
type ReportService struct {
	expenseRepo domain.ExpenseRepository
}

// NewReportService creates a new ReportService
func NewReportService(expenseRepo domain.ExpenseRepository) *ReportService {
	return &ReportService{expenseRepo: expenseRepo}
}

// Summary computes total, average, median, min, max and sample standard
// deviation over expenses, optionally restricted to an inclusive date range.
// An empty selection yields all-zero stats with Count == 0.
func (s *ReportService) Summary(start, end *time.Time) (*domain.SummaryStats, error) {
	var filters *domain.ExpenseFilters
	if start != nil || end != nil {
		filters = &domain.ExpenseFilters{StartDate: start, EndDate: end}
	}
	expenses, err := s.expenseRepo.List(filters, domain.SortNone)
	if err != nil {
		return nil, err
	}

	stats := &domain.SummaryStats{Count: len(expenses)}
	if len(expenses) == 0 {
		return stats, nil
	}

	amounts := make([]decimal.Decimal, len(expenses))
	total := decimal.Zero
	min := expenses[0].Amount
	max := expenses[0].Amount
	for i, expense := range expenses {
		amounts[i] = expense.Amount
		total = total.Add(expense.Amount)
		if expense.Amount.LessThan(min) {
			min = expense.Amount
		}
		if expense.Amount.GreaterThan(max) {
			max = expense.Amount
		}
	}

	n := decimal.NewFromInt(int64(len(amounts)))
	stats.Total = total
	stats.Average = total.Div(n)
	stats.Median = median(amounts)
	stats.Min = min
	stats.Max = max
	stats.StdDev = sampleStdDev(amounts, stats.Average)
	return stats, nil
}

// CategorySummary aggregates total, average, count and share of overall
// spending per category, ordered by descending total.
func (s *ReportService) CategorySummary() ([]domain.CategorySummary, error) {
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	grandTotal := decimal.Zero
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
		counts[expense.Category]++
		grandTotal = grandTotal.Add(expense.Amount)
	}

	hundred := decimal.NewFromInt(100)
	summaries := make([]domain.CategorySummary, 0, len(totals))
	for category, total := range totals {
		count := counts[category]
		percentage := decimal.Zero
		if !grandTotal.IsZero() {
			percentage = total.Div(grandTotal).Mul(hundred).Round(1)
		}
		summaries = append(summaries, domain.CategorySummary{
			Category:   category,
			Total:      total,
			Average:    total.Div(decimal.NewFromInt(int64(count))),
			Count:      count,
			Percentage: percentage,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Total.Equal(summaries[j].Total) {
			return summaries[i].Category < summaries[j].Category
		}
		return summaries[i].Total.GreaterThan(summaries[j].Total)
	})
	return summaries, nil
}

// Trends buckets spending by month, quarter or year and returns the buckets
// in chronological order.
func (s *ReportService) Trends(period domain.TrendPeriod) ([]domain.TrendPoint, error) {
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return nil, err
	}

	keyFor := util.MonthKey
	switch period {
	case domain.TrendQuarterly:
		keyFor = util.QuarterKey
	case domain.TrendYearly:
		keyFor = util.YearKey
	case domain.TrendMonthly:
	default:
		return nil, domain.ErrInvalidPeriod
	}

	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		key := keyFor(expense.Date)
		totals[key] = totals[key].Add(expense.Amount)
	}

	points := make([]domain.TrendPoint, 0, len(totals))
	for key, total := range totals {
		points = append(points, domain.TrendPoint{Period: key, Total: total})
	}
	// Bucket keys are zero-padded, so lexicographic order is chronological.
	sort.Slice(points, func(i, j int) bool { return points[i].Period < points[j].Period })
	return points, nil
}

// TopN returns the n largest expenses by amount. Asking for more records than
// exist returns everything.
func (s *ReportService) TopN(n int) ([]*domain.Expense, error) {
	if n <= 0 {
		return []*domain.Expense{}, nil
	}
	expenses, err := s.expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})
	if n < len(expenses) {
		expenses = expenses[:n]
	}
	return expenses, nil
}

// median returns the middle amount, or the mean of the two middle amounts
// for an even count. The input is copied before sorting.
func median(amounts []decimal.Decimal) decimal.Decimal {
	sorted := make([]decimal.Decimal, len(amounts))
	copy(sorted, amounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
}

// sampleStdDev computes the sample standard deviation (n-1 divisor); it is
// zero for fewer than two amounts.
func sampleStdDev(amounts []decimal.Decimal, mean decimal.Decimal) decimal.Decimal {
	if len(amounts) < 2 {
		return decimal.Zero
	}
	sumSquares := decimal.Zero
	for _, amount := range amounts {
		diff := amount.Sub(mean)
		sumSquares = sumSquares.Add(diff.Mul(diff))
	}
	variance := sumSquares.Div(decimal.NewFromInt(int64(len(amounts) - 1)))
	return decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
}
