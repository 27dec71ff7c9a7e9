package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/service"
	"github.com/gioia-app/gioia-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newExpenseHandler() (*ExpenseHandler, *echo.Echo, *service.ExpenseService) {
	e := echo.New()
	expenseRepo, _ := testutil.NewRepos()
	expenseService := service.NewExpenseService(expenseRepo)
	return NewExpenseHandler(expenseService), e, expenseService
}

func TestCreateExpense_Success(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "45.50", "date": "2025-11-03", "category": "Groceries", "paymentMethod": "card", "tags": "food,weekly"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Index != 0 {
		t.Errorf("Expected index 0, got %d", response.Index)
	}
	if response.Amount != "45.5" {
		t.Errorf("Expected amount '45.5', got %s", response.Amount)
	}
	if response.Date != "2025-11-03" {
		t.Errorf("Expected date '2025-11-03', got %s", response.Date)
	}
	if response.Category != "Groceries" {
		t.Errorf("Expected category 'Groceries', got %s", response.Category)
	}
	if response.ID == "" {
		t.Error("Expected a generated ID")
	}
}

func TestCreateExpense_InvalidAmount(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "not-a-number", "date": "2025-11-03", "category": "Groceries"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_NegativeAmount(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "-5.00", "date": "2025-11-03", "category": "Groceries"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_BadDate(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "10.00", "date": "03/11/2025", "category": "Groceries"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateExpense_MissingCategory(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "10.00", "date": "2025-11-03"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestListExpenses_FiltersAndSort(t *testing.T) {
	handler, e, expenseService := newExpenseHandler()

	seed := []struct {
		amount, date, category string
	}{
		{"120.00", "2025-11-01", "Groceries"},
		{"40.00", "2025-11-05", "Transport"},
		{"80.00", "2025-11-10", "Groceries"},
	}
	for _, s := range seed {
		if _, err := expenseService.Add(&domain.Expense{
			Amount:   testutil.Amount(t, s.amount),
			Date:     mustDate(t, s.date),
			Category: s.category,
		}); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses?category=groc&sort=amount", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(response) != 2 {
		t.Fatalf("Expected 2 expenses, got %d", len(response))
	}
	if response[0].Amount != "80" || response[1].Amount != "120" {
		t.Errorf("Expected amounts sorted ascending, got %s then %s", response[0].Amount, response[1].Amount)
	}
}

func TestListExpenses_UnknownSortField(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses?sort=color", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ListExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestUpdateExpense_Partial(t *testing.T) {
	handler, e, expenseService := newExpenseHandler()

	if _, err := expenseService.Add(&domain.Expense{
		Amount:   testutil.Amount(t, "45.50"),
		Date:     mustDate(t, "2025-11-03"),
		Category: "Groceries",
	}); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	reqBody := `{"amount": "50.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/expenses/0", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("index")
	c.SetParamValues("0")

	if err := handler.UpdateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.Amount != "50" {
		t.Errorf("Expected amount '50', got %s", response.Amount)
	}
	if response.Category != "Groceries" {
		t.Errorf("Expected category untouched, got %s", response.Category)
	}
}

func TestUpdateExpense_IndexOutOfRange(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	reqBody := `{"amount": "50.00"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/expenses/3", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("index")
	c.SetParamValues("3")

	if err := handler.UpdateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestDeleteExpense_ShiftsIndices(t *testing.T) {
	handler, e, expenseService := newExpenseHandler()

	for _, category := range []string{"First", "Second", "Third"} {
		if _, err := expenseService.Add(&domain.Expense{
			Amount:   testutil.Amount(t, "10.00"),
			Date:     mustDate(t, "2025-11-03"),
			Category: category,
		}); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("index")
	c.SetParamValues("0")

	if err := handler.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected status 204, got %d", rec.Code)
	}

	remaining, err := expenseService.View(nil, domain.SortNone)
	if err != nil {
		t.Fatalf("Failed to list remaining expenses: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("Expected 2 remaining expenses, got %d", len(remaining))
	}
	if remaining[0].Category != "Second" {
		t.Errorf("Expected 'Second' at index 0 after delete, got %s", remaining[0].Category)
	}
}

func TestDeleteExpense_NotFound(t *testing.T) {
	handler, e, _ := newExpenseHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/0", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("index")
	c.SetParamValues("0")

	if err := handler.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.ParseInLocation(domain.DateFormat, s, time.UTC)
	if err != nil {
		t.Fatalf("invalid date literal %q: %v", s, err)
	}
	return date
}
