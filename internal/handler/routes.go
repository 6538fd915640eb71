package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, databaseHandler *DatabaseHandler, transactionHandler *TransactionHandler, settingsHandler *SettingsHandler, dashboardHandler *DashboardHandler, reportHandler *ReportHandler, exportHandler *ExportHandler, receiptHandler *ReceiptHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Database registry routes
	databases := api.Group("/databases")
	databases.GET("", databaseHandler.GetConfig)
	databases.POST("", databaseHandler.CreateDatabase)
	databases.DELETE("/:id", databaseHandler.DeleteDatabase)
	databases.PUT("/current", databaseHandler.SetCurrentDatabase)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Settings routes
	settings := api.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetYearlySummary)
	dashboard.GET("/summary/:month", dashboardHandler.GetMonthlySummary)

	// Report routes
	reports := api.Group("/reports")
	reports.GET("/categories", reportHandler.GetCategorySpending)

	// Export and import routes
	api.GET("/export", exportHandler.ExportJSON)
	api.GET("/export/csv", exportHandler.ExportCSV)
	api.POST("/import", exportHandler.ImportJSON)

	// Receipt routes
	receipts := api.Group("/receipts")
	receipts.POST("", receiptHandler.SaveReceipt)
	receipts.GET("/:key", receiptHandler.GetReceipt)
	receipts.DELETE("/:key", receiptHandler.DeleteReceipt)
}
