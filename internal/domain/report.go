package domain

import (
	"github.com/shopspring/decimal"
)

// Alert reports an overspent budget: actual spend strictly exceeded the
// budgeted amount inside the evaluation window.
type Alert struct {
	Category string          `json:"category"`
	Budget   decimal.Decimal `json:"budget"`
	Spent    decimal.Decimal `json:"spent"`
}

// ComparisonRow is one line of the budget-vs-actual table for active monthly
// budgets. Percentage is actual/budget*100 rounded to one decimal place, or
// zero when the budget amount is zero.
type ComparisonRow struct {
	Category   string          `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
	Difference decimal.Decimal `json:"difference"`
	Percentage decimal.Decimal `json:"percentage"`
}

// SummaryStats holds aggregate statistics over a set of expense amounts.
// StdDev is the sample standard deviation and is zero for fewer than two
// records.
type SummaryStats struct {
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
	Average decimal.Decimal `json:"average"`
	Median  decimal.Decimal `json:"median"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
	StdDev  decimal.Decimal `json:"stdDev"`
}

// CategorySummary aggregates spending for one category. Percentage is the
// category's share of the grand total, zero when the grand total is zero.
type CategorySummary struct {
	Category   string          `json:"category"`
	Total      decimal.Decimal `json:"total"`
	Average    decimal.Decimal `json:"average"`
	Count      int             `json:"count"`
	Percentage decimal.Decimal `json:"percentage"`
}

// TrendPoint is one time bucket of the spending trend, keyed by month,
// quarter or year.
type TrendPoint struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
}

// TrendPeriod selects the bucket size for trend reports.
type TrendPeriod string

const (
	TrendMonthly   TrendPeriod = "monthly"
	TrendQuarterly TrendPeriod = "quarterly"
	TrendYearly    TrendPeriod = "yearly"
)

// ParseTrendPeriod validates a caller-supplied trend bucket size.
func ParseTrendPeriod(s string) (TrendPeriod, error) {
	switch TrendPeriod(s) {
	case TrendMonthly, TrendQuarterly, TrendYearly:
		return TrendPeriod(s), nil
	}
	return "", ErrInvalidPeriod
}
