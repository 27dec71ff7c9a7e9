package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/repository/memory"
	"github.com/gioia-app/gioia-backend/internal/service"
	"github.com/gioia-app/gioia-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newSnapshotHandler() (*SnapshotHandler, *echo.Echo, *memory.ExpenseRepository, *memory.BudgetRepository) {
	e := echo.New()
	expenseRepo, budgetRepo := testutil.NewRepos()
	snapshotService := service.NewSnapshotService(expenseRepo, budgetRepo, nil)
	return NewSnapshotHandler(snapshotService), e, expenseRepo, budgetRepo
}

func TestExportExpenses_CSVAttachment(t *testing.T) {
	handler, e, expenseRepo, _ := newSnapshotHandler()

	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount:   testutil.Amount(t, "45.50"),
		Date:     mustDate(t, "2025-11-03"),
		Category: "Groceries",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ExportExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(echo.HeaderContentType); got != "text/csv" {
		t.Errorf("Expected Content-Type 'text/csv', got %s", got)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); !strings.Contains(got, "expenses.csv") {
		t.Errorf("Expected attachment filename in Content-Disposition, got %s", got)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "amount,date,category,description,payment_method,tags") {
		t.Errorf("Expected CSV header row, got %q", body)
	}
	if !strings.Contains(body, "45.5,2025-11-03,Groceries") {
		t.Errorf("Expected expense row in CSV, got %q", body)
	}
}

func TestImportExpenses_ReplacesStore(t *testing.T) {
	handler, e, expenseRepo, _ := newSnapshotHandler()

	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount:   testutil.Amount(t, "999.00"),
		Date:     mustDate(t, "2025-01-01"),
		Category: "Old",
	})

	csvBody := "amount,date,category,description,payment_method,tags\n" +
		"45.50,2025-11-03,Groceries,weekly shop,card,food\n" +
		"12.00,2025-11-04,Transport,bus,cash,\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/expenses", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ImportExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response ImportResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Imported != 2 {
		t.Errorf("Expected 2 imported rows, got %d", response.Imported)
	}

	expenses, err := expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("Expected store replaced with 2 expenses, got %d", len(expenses))
	}
	if expenses[0].Category != "Groceries" {
		t.Errorf("Expected first imported category 'Groceries', got %s", expenses[0].Category)
	}
}

func TestImportExpenses_MalformedLeavesStoreUntouched(t *testing.T) {
	handler, e, expenseRepo, _ := newSnapshotHandler()

	testutil.AddExpense(t, expenseRepo, &domain.Expense{
		Amount:   testutil.Amount(t, "999.00"),
		Date:     mustDate(t, "2025-01-01"),
		Category: "Old",
	})

	csvBody := "amount,date,category,description,payment_method,tags\n" +
		"not-a-number,2025-11-03,Groceries,,,\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/expenses", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ImportExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	expenses, err := expenseRepo.List(nil, domain.SortNone)
	if err != nil {
		t.Fatalf("Failed to list expenses: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Category != "Old" {
		t.Errorf("Expected store untouched after failed import")
	}
}

func TestImportBudgets_Success(t *testing.T) {
	handler, e, _, budgetRepo := newSnapshotHandler()

	csvBody := "category,amount,period,start_date,end_date\n" +
		"Groceries,400.00,monthly,2025-01-01,\n" +
		"overall,1500.00,monthly,2025-01-01,2025-12-31\n"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import/budgets", strings.NewReader(csvBody))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ImportBudgets(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	budgets, err := budgetRepo.List()
	if err != nil {
		t.Fatalf("Failed to list budgets: %v", err)
	}
	if len(budgets) != 2 {
		t.Fatalf("Expected 2 budgets, got %d", len(budgets))
	}
	if budgets[0].EndDate != nil {
		t.Errorf("Expected first budget open-ended")
	}
	if budgets[1].EndDate == nil {
		t.Errorf("Expected second budget to keep its end date")
	}
}

func TestExportBudgets_CSVAttachment(t *testing.T) {
	handler, e, _, budgetRepo := newSnapshotHandler()

	testutil.AddBudget(t, budgetRepo, &domain.Budget{
		Category:  "Groceries",
		Amount:    testutil.Amount(t, "400.00"),
		Period:    domain.PeriodMonthly,
		StartDate: mustDate(t, "2025-01-01"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/export/budgets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ExportBudgets(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "category,amount,period,start_date,end_date") {
		t.Errorf("Expected CSV header row, got %q", body)
	}
	if !strings.Contains(body, "Groceries,400,monthly,2025-01-01,") {
		t.Errorf("Expected budget row in CSV, got %q", body)
	}
}
