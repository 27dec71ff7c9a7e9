package service

import (
	"testing"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/testutil"
	"github.com/shopspring/decimal"
)

func newReportService(t *testing.T) (*ReportService, *expenseSeeder) {
	t.Helper()
	expenseRepo, _ := testutil.NewRepos()
	return NewReportService(expenseRepo), &expenseSeeder{t, expenseRepo}
}

func TestSummary_Stats(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("100", testutil.Date(2025, 12, 1), "A")
	expenses.add("200", testutil.Date(2025, 12, 2), "B")
	expenses.add("300", testutil.Date(2025, 12, 3), "C")
	expenses.add("400", testutil.Date(2025, 12, 4), "D")

	stats, err := svc.Summary(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Count != 4 {
		t.Errorf("expected count 4, got %d", stats.Count)
	}
	if !stats.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected total 1000, got %s", stats.Total)
	}
	if !stats.Average.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected average 250, got %s", stats.Average)
	}
	if !stats.Median.Equal(decimal.NewFromInt(250)) {
		t.Errorf("expected median 250, got %s", stats.Median)
	}
	if !stats.Min.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected min 100, got %s", stats.Min)
	}
	if !stats.Max.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected max 400, got %s", stats.Max)
	}
	// Sample std dev of 100,200,300,400 is sqrt(50000/3) ~= 129.099
	low := testutil.Amount(t, "129.0")
	high := testutil.Amount(t, "129.2")
	if stats.StdDev.LessThan(low) || stats.StdDev.GreaterThan(high) {
		t.Errorf("expected std dev near 129.1, got %s", stats.StdDev)
	}
}

func TestSummary_OddCountMedian(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("10", testutil.Date(2025, 12, 1), "A")
	expenses.add("90", testutil.Date(2025, 12, 2), "A")
	expenses.add("20", testutil.Date(2025, 12, 3), "A")

	stats, err := svc.Summary(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !stats.Median.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected median 20, got %s", stats.Median)
	}
}

func TestSummary_DateRange(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("100", testutil.Date(2025, 11, 30), "A")
	expenses.add("200", testutil.Date(2025, 12, 10), "A")
	expenses.add("300", testutil.Date(2026, 1, 2), "A")

	start := testutil.Date(2025, 12, 1)
	end := testutil.Date(2025, 12, 31)
	stats, err := svc.Summary(&start, &end)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Count != 1 {
		t.Errorf("expected 1 expense in range, got %d", stats.Count)
	}
	if !stats.Total.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected total 200, got %s", stats.Total)
	}
}

func TestSummary_Empty(t *testing.T) {
	svc, _ := newReportService(t)

	stats, err := svc.Summary(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stats.Count != 0 {
		t.Errorf("expected count 0, got %d", stats.Count)
	}
	if !stats.Total.IsZero() {
		t.Errorf("expected zero total, got %s", stats.Total)
	}
}

func TestCategorySummary(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("300", testutil.Date(2025, 12, 1), "Jewelry Supplies")
	expenses.add("100", testutil.Date(2025, 12, 2), "Jewelry Supplies")
	expenses.add("100", testutil.Date(2025, 12, 3), "Marketing")

	summaries, err := svc.CategorySummary()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summaries))
	}
	// Ordered by descending total
	first := summaries[0]
	if first.Category != "Jewelry Supplies" {
		t.Errorf("expected Jewelry Supplies first, got %s", first.Category)
	}
	if !first.Total.Equal(decimal.NewFromInt(400)) {
		t.Errorf("expected total 400, got %s", first.Total)
	}
	if !first.Average.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected average 200, got %s", first.Average)
	}
	if first.Count != 2 {
		t.Errorf("expected count 2, got %d", first.Count)
	}
	if !first.Percentage.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected percentage 80, got %s", first.Percentage)
	}
	if !summaries[1].Percentage.Equal(decimal.NewFromInt(20)) {
		t.Errorf("expected percentage 20, got %s", summaries[1].Percentage)
	}
}

func TestCategorySummary_Empty(t *testing.T) {
	svc, _ := newReportService(t)

	summaries, err := svc.CategorySummary()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("expected no categories, got %d", len(summaries))
	}
}

func TestTrends_Monthly(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("100", testutil.Date(2025, 11, 15), "A")
	expenses.add("50", testutil.Date(2025, 12, 1), "A")
	expenses.add("70", testutil.Date(2025, 12, 20), "B")

	points, err := svc.Trends(domain.TrendMonthly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(points))
	}
	if points[0].Period != "2025-11" || !points[0].Total.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected 2025-11 total 100, got %s %s", points[0].Period, points[0].Total)
	}
	if points[1].Period != "2025-12" || !points[1].Total.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected 2025-12 total 120, got %s %s", points[1].Period, points[1].Total)
	}
}

func TestTrends_QuarterlyAndYearly(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("100", testutil.Date(2025, 2, 1), "A")
	expenses.add("200", testutil.Date(2025, 11, 1), "A")
	expenses.add("400", testutil.Date(2026, 1, 5), "A")

	quarters, err := svc.Trends(domain.TrendQuarterly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(quarters) != 3 {
		t.Fatalf("expected 3 quarter buckets, got %d", len(quarters))
	}
	if quarters[0].Period != "2025-Q1" {
		t.Errorf("expected 2025-Q1 first, got %s", quarters[0].Period)
	}

	years, err := svc.Trends(domain.TrendYearly)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(years) != 2 {
		t.Fatalf("expected 2 year buckets, got %d", len(years))
	}
	if !years[0].Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("expected 2025 total 300, got %s", years[0].Total)
	}
}

func TestTrends_InvalidPeriod(t *testing.T) {
	svc, _ := newReportService(t)

	if _, err := svc.Trends(domain.TrendPeriod("weekly")); err != domain.ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestTopN(t *testing.T) {
	svc, expenses := newReportService(t)

	expenses.add("50", testutil.Date(2025, 12, 1), "A")
	expenses.add("300", testutil.Date(2025, 12, 2), "B")
	expenses.add("120", testutil.Date(2025, 12, 3), "C")

	top, err := svc.TopN(2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(top))
	}
	if !top[0].Amount.Equal(decimal.NewFromInt(300)) || !top[1].Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("expected 300 then 120, got %s then %s", top[0].Amount, top[1].Amount)
	}

	all, err := svc.TopN(10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected all 3 expenses when n exceeds store size, got %d", len(all))
	}
}
