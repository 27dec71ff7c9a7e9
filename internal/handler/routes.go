package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, expenseHandler *ExpenseHandler, budgetHandler *BudgetHandler, reportHandler *ReportHandler, snapshotHandler *SnapshotHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Expense routes
	expenses := api.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.PUT("/:index", expenseHandler.UpdateExpense)
	expenses.DELETE("/:index", expenseHandler.DeleteExpense)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.GET("/alerts", budgetHandler.GetAlerts)
	budgets.GET("/comparison", budgetHandler.GetComparison)
	budgets.PUT("/:index", budgetHandler.UpdateBudget)
	budgets.DELETE("/:index", budgetHandler.DeleteBudget)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/categories", reportHandler.GetCategories)
	reports.GET("/trends", reportHandler.GetTrends)
	reports.GET("/top", reportHandler.GetTop)

	// Export/import routes
	api.GET("/export/expenses", snapshotHandler.ExportExpenses)
	api.GET("/export/budgets", snapshotHandler.ExportBudgets)
	api.POST("/import/expenses", snapshotHandler.ImportExpenses)
	api.POST("/import/budgets", snapshotHandler.ImportBudgets)
}
