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
)

// ReportHandler handles summary and trend report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SummaryResponse represents aggregate statistics in API responses
type SummaryResponse struct {
	Count   int    `json:"count"`
	Total   string `json:"total"`
	Average string `json:"average"`
	Median  string `json:"median"`
	Min     string `json:"min"`
	Max     string `json:"max"`
	StdDev  string `json:"stdDev"`
}

// CategorySummaryResponse represents one category aggregate
type CategorySummaryResponse struct {
	Category   string `json:"category"`
	Total      string `json:"total"`
	Average    string `json:"average"`
	Count      int    `json:"count"`
	Percentage string `json:"percentage"`
}

// TrendPointResponse represents one trend bucket
type TrendPointResponse struct {
	Period string `json:"period"`
	Total  string `json:"total"`
}

// GetSummary handles GET /api/v1/reports/summary with optional start/end
// query parameters.
func (h *ReportHandler) GetSummary(c echo.Context) error {
	start, end, err := parseDateRange(c)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}

	stats, err := h.reportService.Summary(start, end)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute summary")
		return NewInternalError(c, "Failed to compute summary")
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		Count:   stats.Count,
		Total:   stats.Total.String(),
		Average: stats.Average.String(),
		Median:  stats.Median.String(),
		Min:     stats.Min.String(),
		Max:     stats.Max.String(),
		StdDev:  stats.StdDev.String(),
	})
}

// GetCategories handles GET /api/v1/reports/categories
func (h *ReportHandler) GetCategories(c echo.Context) error {
	summaries, err := h.reportService.CategorySummary()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute category summary")
		return NewInternalError(c, "Failed to compute category summary")
	}

	response := make([]CategorySummaryResponse, len(summaries))
	for i, s := range summaries {
		response[i] = CategorySummaryResponse{
			Category:   s.Category,
			Total:      s.Total.String(),
			Average:    s.Average.String(),
			Count:      s.Count,
			Percentage: s.Percentage.String(),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetTrends handles GET /api/v1/reports/trends?period=monthly|quarterly|yearly
func (h *ReportHandler) GetTrends(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = string(domain.TrendMonthly)
	}
	trendPeriod, err := domain.ParseTrendPeriod(period)
	if err != nil {
		return NewValidationError(c, "Invalid period", []ValidationError{
			{Field: "period", Message: "Must be one of: monthly, quarterly, yearly"},
		})
	}

	points, err := h.reportService.Trends(trendPeriod)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute trends")
		return NewInternalError(c, "Failed to compute trends")
	}

	response := make([]TrendPointResponse, len(points))
	for i, p := range points {
		response[i] = TrendPointResponse{Period: p.Period, Total: p.Total.String()}
	}
	return c.JSON(http.StatusOK, response)
}

// GetTop handles GET /api/v1/reports/top?n=5
func (h *ReportHandler) GetTop(c echo.Context) error {
	n := 5
	if raw := c.QueryParam("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return NewValidationError(c, "Invalid n", []ValidationError{
				{Field: "n", Message: "Must be a positive integer"},
			})
		}
		n = parsed
	}

	expenses, err := h.reportService.TopN(n)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute top expenses")
		return NewInternalError(c, "Failed to compute top expenses")
	}

	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(i, expense)
	}
	return c.JSON(http.StatusOK, response)
}

// parseDateRange reads optional start/end query parameters.
func parseDateRange(c echo.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if raw := c.QueryParam("start"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, nil, errors.New("invalid start date")
		}
		start = &parsed
	}
	if raw := c.QueryParam("end"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, time.UTC)
		if err != nil {
			return nil, nil, errors.New("invalid end date")
		}
		end = &parsed
	}
	return start, end, nil
}
