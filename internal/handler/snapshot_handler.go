package handler

import (
	"net/http"

	"github.com/gioia-app/gioia-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SnapshotHandler handles CSV export and import HTTP requests
type SnapshotHandler struct {
	snapshotService *service.SnapshotService
}

// NewSnapshotHandler creates a new SnapshotHandler
func NewSnapshotHandler(snapshotService *service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

// ImportResponse reports how many rows an import replaced the store with.
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ExportExpenses handles GET /api/v1/export/expenses
func (h *SnapshotHandler) ExportExpenses(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="expenses.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.snapshotService.ExportExpenses(c.Response()); err != nil {
		log.Error().Err(err).Msg("Failed to export expenses")
		return err
	}
	return nil
}

// ExportBudgets handles GET /api/v1/export/budgets
func (h *SnapshotHandler) ExportBudgets(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="budgets.csv"`)
	c.Response().WriteHeader(http.StatusOK)

	if err := h.snapshotService.ExportBudgets(c.Response()); err != nil {
		log.Error().Err(err).Msg("Failed to export budgets")
		return err
	}
	return nil
}

// ImportExpenses handles POST /api/v1/import/expenses with a CSV body. The
// upload replaces the expense store wholesale; a malformed body leaves it
// untouched.
func (h *SnapshotHandler) ImportExpenses(c echo.Context) error {
	n, err := h.snapshotService.ImportExpenses(c.Request().Body)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	return c.JSON(http.StatusOK, ImportResponse{Imported: n})
}

// ImportBudgets handles POST /api/v1/import/budgets with a CSV body.
func (h *SnapshotHandler) ImportBudgets(c echo.Context) error {
	n, err := h.snapshotService.ImportBudgets(c.Request().Body)
	if err != nil {
		return NewValidationError(c, err.Error(), nil)
	}
	return c.JSON(http.StatusOK, ImportResponse{Imported: n})
}
