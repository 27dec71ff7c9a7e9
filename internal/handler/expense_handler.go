package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gioia-app/gioia-backend/internal/domain"
	"github.com/gioia-app/gioia-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpenseRequest represents the create expense request body
type CreateExpenseRequest struct {
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Tags          string `json:"tags,omitempty"`
}

// UpdateExpenseRequest represents the partial update request body. Absent
// fields are left untouched.
type UpdateExpenseRequest struct {
	Amount        *string `json:"amount,omitempty"`
	Date          *string `json:"date,omitempty"`
	Category      *string `json:"category,omitempty"`
	Description   *string `json:"description,omitempty"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
	Tags          *string `json:"tags,omitempty"`
}

// ExpenseResponse represents an expense in API responses. Index is the
// caller-facing position in the store; it shifts when earlier records are
// deleted.
type ExpenseResponse struct {
	Index         int    `json:"index"`
	ID            string `json:"id"`
	Amount        string `json:"amount"`
	Date          string `json:"date"`
	Category      string `json:"category"`
	Description   string `json:"description,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
	Tags          string `json:"tags,omitempty"`
}

func toExpenseResponse(index int, e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		Index:         index,
		ID:            e.ID.String(),
		Amount:        e.Amount.String(),
		Date:          e.Date.Format(domain.DateFormat),
		Category:      e.Category,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		Tags:          e.Tags,
	}
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, time.UTC)
	if err != nil {
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	if req.Category == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category is required"},
		})
	}

	expense := &domain.Expense{
		Amount:        amount,
		Date:          date,
		Category:      req.Category,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Tags:          req.Tags,
	}

	created, err := h.expenseService.Add(expense)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return NewValidationError(c, "Amount must be non-negative", []ValidationError{
				{Field: "amount", Message: "Must be non-negative"},
			})
		}
		log.Error().Err(err).Msg("Failed to create expense")
		return NewInternalError(c, "Failed to create expense")
	}

	expenses, err := h.expenseService.View(nil, domain.SortNone)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read back expense store")
		return NewInternalError(c, "Failed to create expense")
	}
	return c.JSON(http.StatusCreated, toExpenseResponse(len(expenses)-1, created))
}

// ListExpenses handles GET /api/v1/expenses with optional filter and sort
// query parameters.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	filters, err := parseExpenseFilters(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	sortBy, err := domain.ParseSortField(c.QueryParam("sort"))
	if err != nil {
		return NewValidationError(c, "Unknown sort field", []ValidationError{
			{Field: "sort", Message: "Must be one of: amount, date, category, description, payment_method, tags"},
		})
	}

	expenses, err := h.expenseService.View(filters, sortBy)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list expenses")
		return NewInternalError(c, "Failed to list expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(i, expense)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateExpense handles PUT /api/v1/expenses/:index
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError(c, "Invalid index", nil)
	}

	var req UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var update domain.ExpenseUpdate
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		update.Amount = &amount
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(domain.DateFormat, *req.Date, time.UTC)
		if err != nil {
			return NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		update.Date = &date
	}
	update.Category = req.Category
	update.Description = req.Description
	update.PaymentMethod = req.PaymentMethod
	update.Tags = req.Tags

	updated, err := h.expenseService.Update(index, update)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexOutOfRange):
			return NewNotFoundError(c, "No expense at that index")
		case errors.Is(err, domain.ErrInvalidAmount):
			return NewValidationError(c, "Amount must be non-negative", nil)
		}
		log.Error().Err(err).Int("index", index).Msg("Failed to update expense")
		return NewInternalError(c, "Failed to update expense")
	}
	return c.JSON(http.StatusOK, toExpenseResponse(index, updated))
}

// DeleteExpense handles DELETE /api/v1/expenses/:index
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError(c, "Invalid index", nil)
	}

	if err := h.expenseService.Delete(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return NewNotFoundError(c, "No expense at that index")
		}
		log.Error().Err(err).Int("index", index).Msg("Failed to delete expense")
		return NewInternalError(c, "Failed to delete expense")
	}
	return c.NoContent(http.StatusNoContent)
}

// parseExpenseFilters reads the optional filter query parameters.
func parseExpenseFilters(c echo.Context) (*domain.ExpenseFilters, error) {
	var filters domain.ExpenseFilters
	present := false

	if raw := c.QueryParam("start"); raw != "" {
		start, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, errors.New("invalid start date")
		}
		filters.StartDate = &start
		present = true
	}
	if raw := c.QueryParam("end"); raw != "" {
		end, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, errors.New("invalid end date")
		}
		filters.EndDate = &end
		present = true
	}
	if raw := c.QueryParam("min"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid min amount")
		}
		filters.MinAmount = &min
		present = true
	}
	if raw := c.QueryParam("max"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.New("invalid max amount")
		}
		filters.MaxAmount = &max
		present = true
	}
	if raw := c.QueryParam("category"); raw != "" {
		filters.Category = &raw
		present = true
	}
	if raw := c.QueryParam("paymentMethod"); raw != "" {
		filters.PaymentMethod = &raw
		present = true
	}
	if raw := c.QueryParam("tags"); raw != "" {
		filters.Tags = &raw
		present = true
	}

	if !present {
		return nil, nil
	}
	return &filters, nil
}
