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

// BudgetHandler handles budget HTTP requests, including overspend alerts and
// the budget-vs-actual comparison.
type BudgetHandler struct {
	budgetService     *service.BudgetService
	evaluationService *service.EvaluationService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService *service.BudgetService, evaluationService *service.EvaluationService) *BudgetHandler {
	return &BudgetHandler{
		budgetService:     budgetService,
		evaluationService: evaluationService,
	}
}

// CreateBudgetRequest represents the create budget request body
type CreateBudgetRequest struct {
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Period    string `json:"period"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

// UpdateBudgetRequest represents the partial update request body. A present
// but empty endDate clears the window's end, making it open-ended.
type UpdateBudgetRequest struct {
	Category  *string `json:"category,omitempty"`
	Amount    *string `json:"amount,omitempty"`
	Period    *string `json:"period,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// BudgetResponse represents a budget in API responses
type BudgetResponse struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Period    string `json:"period"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
}

// AlertResponse represents an overspend alert
type AlertResponse struct {
	Category string `json:"category"`
	Budget   string `json:"budget"`
	Spent    string `json:"spent"`
}

// ComparisonRowResponse represents one budget-vs-actual row
type ComparisonRowResponse struct {
	Category   string `json:"category"`
	Budget     string `json:"budget"`
	Actual     string `json:"actual"`
	Difference string `json:"difference"`
	Percentage string `json:"percentage"`
}

func toBudgetResponse(index int, b *domain.Budget) BudgetResponse {
	response := BudgetResponse{
		Index:     index,
		ID:        b.ID.String(),
		Category:  b.Category,
		Amount:    b.Amount.String(),
		Period:    string(b.Period),
		StartDate: b.StartDate.Format(domain.DateFormat),
	}
	if b.EndDate != nil {
		response.EndDate = b.EndDate.Format(domain.DateFormat)
	}
	return response
}

// CreateBudget handles POST /api/v1/budgets
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	start, err := time.ParseInLocation(domain.DateFormat, req.StartDate, time.UTC)
	if err != nil {
		return NewValidationError(c, "Invalid start date", []ValidationError{
			{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	budget := &domain.Budget{
		Category:  req.Category,
		Amount:    amount,
		Period:    domain.BudgetPeriod(req.Period),
		StartDate: start,
	}
	if req.EndDate != "" {
		end, err := time.ParseInLocation(domain.DateFormat, req.EndDate, time.UTC)
		if err != nil {
			return NewValidationError(c, "Invalid end date", []ValidationError{
				{Field: "endDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		budget.EndDate = &end
	}

	created, err := h.budgetService.Add(budget)
	if err != nil {
		if problem := budgetValidationProblem(c, err); problem != nil {
			return problem
		}
		log.Error().Err(err).Msg("Failed to create budget")
		return NewInternalError(c, "Failed to create budget")
	}

	budgets, err := h.budgetService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to read back budget store")
		return NewInternalError(c, "Failed to create budget")
	}
	return c.JSON(http.StatusCreated, toBudgetResponse(len(budgets)-1, created))
}

// ListBudgets handles GET /api/v1/budgets
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetService.List()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list budgets")
		return NewInternalError(c, "Failed to list budgets")
	}

	response := make([]BudgetResponse, len(budgets))
	for i, budget := range budgets {
		response[i] = toBudgetResponse(i, budget)
	}
	return c.JSON(http.StatusOK, response)
}

// UpdateBudget handles PUT /api/v1/budgets/:index
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError(c, "Invalid index", nil)
	}

	var req UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	var update domain.BudgetUpdate
	update.Category = req.Category
	if req.Amount != nil {
		amount, err := decimal.NewFromString(*req.Amount)
		if err != nil {
			return NewValidationError(c, "Invalid amount", []ValidationError{
				{Field: "amount", Message: "Must be a valid decimal number"},
			})
		}
		update.Amount = &amount
	}
	if req.Period != nil {
		period := domain.BudgetPeriod(*req.Period)
		update.Period = &period
	}
	if req.StartDate != nil {
		start, err := time.ParseInLocation(domain.DateFormat, *req.StartDate, time.UTC)
		if err != nil {
			return NewValidationError(c, "Invalid start date", []ValidationError{
				{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		update.StartDate = &start
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			update.ClearEndDate = true
		} else {
			end, err := time.ParseInLocation(domain.DateFormat, *req.EndDate, time.UTC)
			if err != nil {
				return NewValidationError(c, "Invalid end date", []ValidationError{
					{Field: "endDate", Message: "Must be in YYYY-MM-DD format"},
				})
			}
			update.EndDate = &end
		}
	}

	updated, err := h.budgetService.Update(index, update)
	if err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return NewNotFoundError(c, "No budget at that index")
		}
		if problem := budgetValidationProblem(c, err); problem != nil {
			return problem
		}
		log.Error().Err(err).Int("index", index).Msg("Failed to update budget")
		return NewInternalError(c, "Failed to update budget")
	}
	return c.JSON(http.StatusOK, toBudgetResponse(index, updated))
}

// DeleteBudget handles DELETE /api/v1/budgets/:index
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return NewValidationError(c, "Invalid index", nil)
	}

	if err := h.budgetService.Delete(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return NewNotFoundError(c, "No budget at that index")
		}
		log.Error().Err(err).Int("index", index).Msg("Failed to delete budget")
		return NewInternalError(c, "Failed to delete budget")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetAlerts handles GET /api/v1/budgets/alerts
func (h *BudgetHandler) GetAlerts(c echo.Context) error {
	alerts, err := h.evaluationService.CheckAlerts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to check budget alerts")
		return NewInternalError(c, "Failed to check budget alerts")
	}

	response := make([]AlertResponse, len(alerts))
	for i, alert := range alerts {
		response[i] = AlertResponse{
			Category: alert.Category,
			Budget:   alert.Budget.String(),
			Spent:    alert.Spent.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetComparison handles GET /api/v1/budgets/comparison
func (h *BudgetHandler) GetComparison(c echo.Context) error {
	rows, err := h.evaluationService.BudgetVsActual()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute budget comparison")
		return NewInternalError(c, "Failed to compute budget comparison")
	}

	response := make([]ComparisonRowResponse, len(rows))
	for i, row := range rows {
		response[i] = ComparisonRowResponse{
			Category:   row.Category,
			Budget:     row.Budget.String(),
			Actual:     row.Actual.String(),
			Difference: row.Difference.String(),
			Percentage: row.Percentage.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// budgetValidationProblem maps budget validation errors to 400 responses,
// returning nil for anything else.
func budgetValidationProblem(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Amount must be non-negative", []ValidationError{
			{Field: "amount", Message: "Must be non-negative"},
		})
	case errors.Is(err, domain.ErrInvalidPeriod):
		return NewValidationError(c, "Invalid period", []ValidationError{
			{Field: "period", Message: "Must be one of: monthly, quarterly, yearly"},
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(c, "End date must not precede start date", []ValidationError{
			{Field: "endDate", Message: "Must not precede startDate"},
		})
	case errors.Is(err, domain.ErrInvalidDate):
		return NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
		})
	}
	return nil
}
