package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Gawrycy/fin-health-pulse/analysis"
	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
	"github.com/Gawrycy/fin-health-pulse/report"
	"github.com/Gawrycy/fin-health-pulse/utils"
)

// HandleSimulateReport generates a synthetic JPK_KR report for the selected
// industry, persists it for the authenticated user and returns it together
// with the derived metrics.
// POST /api/v1/client/reports/simulate
func HandleSimulateReport(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID, _ := c.Locals("userID").(string)

	var req models.SimulateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if !req.Industry.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown industry type"})
	}

	generated, err := analysis.SimulateJPKParsing(req.Industry)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	generated.ID = uuid.NewString()
	generated.UserID = userID

	err = db.QueryRow(ctx, `
		INSERT INTO financial_reports
			(id, user_id, period, revenue, gross_profit, admin_costs, payroll_costs,
			 inventory_value, accounts_receivable, accounts_payable)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`, generated.ID, generated.UserID, generated.Period, generated.Revenue, generated.GrossProfit,
		generated.AdminCosts, generated.PayrollCosts, generated.InventoryValue,
		generated.AccountsReceivable, generated.AccountsPayable,
	).Scan(&generated.CreatedAt)
	if err != nil {
		log.Printf("Error saving financial report for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save report"})
	}

	metrics, err := analysis.CalculateMetrics(generated)
	if err != nil {
		// Generated figures always satisfy the invariants, so this only
		// trips if the envelope constants are edited into nonsense.
		log.Printf("Generated report failed metric derivation: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to derive metrics"})
	}

	log.Printf("📊 [REPORT] Generated %s report %s for user %s", req.Industry, generated.ID, userID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": fiber.Map{
		"report":  generated,
		"metrics": metrics,
	}})
}

// HandleListReports returns the user's reports, newest first, paginated.
// GET /api/v1/client/reports
func HandleListReports(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID, _ := c.Locals("userID").(string)
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM financial_reports WHERE user_id = $1`, userID).Scan(&total); err != nil {
		log.Printf("Error counting reports for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}

	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, user_id, period, revenue, gross_profit, admin_costs, payroll_costs,
		       inventory_value, accounts_receivable, accounts_payable, created_at
		FROM financial_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error listing reports for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list reports"})
	}
	defer rows.Close()

	reports := make([]models.FinancialReport, 0)
	for rows.Next() {
		var r models.FinancialReport
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Period, &r.Revenue, &r.GrossProfit, &r.AdminCosts,
			&r.PayrollCosts, &r.InventoryValue, &r.AccountsReceivable, &r.AccountsPayable, &r.CreatedAt,
		); err != nil {
			log.Printf("Error scanning report row: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read reports"})
		}
		reports = append(reports, r)
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"reports":    reports,
		"pagination": pagination,
	}})
}

// fetchReportForUser loads one report owned by the given user.
func fetchReportForUser(ctx context.Context, reportID, userID string) (models.FinancialReport, error) {
	db := database.GetDB()

	var r models.FinancialReport
	err := db.QueryRow(ctx, `
		SELECT id, user_id, period, revenue, gross_profit, admin_costs, payroll_costs,
		       inventory_value, accounts_receivable, accounts_payable, created_at
		FROM financial_reports
		WHERE id = $1 AND user_id = $2
	`, reportID, userID).Scan(
		&r.ID, &r.UserID, &r.Period, &r.Revenue, &r.GrossProfit, &r.AdminCosts,
		&r.PayrollCosts, &r.InventoryValue, &r.AccountsReceivable, &r.AccountsPayable, &r.CreatedAt,
	)
	return r, err
}

// HandleExportReportPDF renders one report as the downloadable PDF document.
// GET /api/v1/client/reports/:reportId/export?industry=manufacturing
func HandleExportReportPDF(c *fiber.Ctx) error {
	ctx := context.Background()

	userID, _ := c.Locals("userID").(string)
	reportID := c.Params("reportId")

	industry := models.IndustryType(c.Query("industry", string(models.IndustryManufacturing)))
	if !industry.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown industry type"})
	}

	financialReport, err := fetchReportForUser(ctx, reportID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Report not found"})
		}
		log.Printf("Error fetching report %s: %v", reportID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch report"})
	}

	benchmark, err := fetchBenchmark(ctx, industry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No benchmark for this industry"})
		}
		log.Printf("Error fetching benchmark for %s: %v", industry, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch benchmark"})
	}

	metrics, err := analysis.CalculateMetrics(financialReport)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	recommendations := analysis.GenerateRecommendations(metrics, benchmark)

	companyName := fetchCompanyName(ctx, userID)

	pdfBytes, fileName, err := report.Generate(report.Data{
		CompanyName:     companyName,
		Report:          financialReport,
		Metrics:         metrics,
		Benchmark:       benchmark,
		Recommendations: recommendations,
	})
	if err != nil {
		log.Printf("Error rendering PDF for report %s: %v", reportID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to render PDF"})
	}

	log.Printf("📄 [EXPORT] Rendered %s (%d bytes) for user %s", fileName, len(pdfBytes), userID)

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(pdfBytes)
}

// fetchCompanyName returns the user's organization name, or "" when the
// user has no organization.
func fetchCompanyName(ctx context.Context, userID string) string {
	db := database.GetDB()

	var name string
	err := db.QueryRow(ctx, `
		SELECT o.name
		FROM users u
		JOIN organizations o ON o.id = u.organization_id
		WHERE u.id = $1
	`, userID).Scan(&name)
	if err != nil {
		return ""
	}
	return name
}
