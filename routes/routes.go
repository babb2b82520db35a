package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gawrycy/fin-health-pulse/handlers"
	"github.com/Gawrycy/fin-health-pulse/middleware"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/register", handlers.HandleRegister)
	auth.Post("/login", handlers.HandleLogin)

	// --- Benchmarks (any authenticated user) ---
	api.Get("/benchmarks/:industry", middleware.Authenticate, handlers.HandleGetBenchmark)

	// --- Client Routes ---
	client := api.Group("/client", middleware.Authenticate, middleware.CheckRole("client"))

	client.Get("/dashboard", handlers.HandleGetClientDashboard)

	client.Post("/reports/simulate", handlers.HandleSimulateReport)
	client.Get("/reports", handlers.HandleListReports)
	client.Get("/reports/:reportId/export", handlers.HandleExportReportPDF)

	client.Post("/analysis/narrative", handlers.HandleAnalysisNarrative)

	client.Get("/invoices", handlers.HandleListClientInvoices)
	client.Post("/invoices/:invoiceId/pay", handlers.HandleCreateInvoicePaymentIntent)

	// --- Admin Routes ---
	admin := api.Group("/admin", middleware.Authenticate, middleware.CheckRole("admin"))

	admin.Get("/dashboard/summary", handlers.HandleGetAdminDashboardSummary)

	admin.Get("/organizations", handlers.HandleListOrganizations)
	admin.Put("/organizations/:orgId/status", handlers.HandleSetOrganizationStatus)

	admin.Get("/plans", handlers.HandleListPlans)
	admin.Post("/plans", handlers.HandleCreatePlan)

	admin.Get("/invoices", handlers.HandleListInvoices)

	admin.Put("/benchmarks", handlers.HandleUpsertBenchmark)
}
