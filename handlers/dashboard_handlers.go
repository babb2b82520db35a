package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Gawrycy/fin-health-pulse/analysis"
	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
)

// HandleGetClientDashboard returns everything the client dashboard needs in
// one payload: the latest report, derived metrics, the industry benchmark,
// per-metric statuses and the generated recommendations.
// GET /api/v1/client/dashboard?industry=manufacturing
func HandleGetClientDashboard(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID, _ := c.Locals("userID").(string)

	industry := models.IndustryType(c.Query("industry", string(models.IndustryManufacturing)))
	if !industry.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown industry type"})
	}

	var latest models.FinancialReport
	err := db.QueryRow(ctx, `
		SELECT id, user_id, period, revenue, gross_profit, admin_costs, payroll_costs,
		       inventory_value, accounts_receivable, accounts_payable, created_at
		FROM financial_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(
		&latest.ID, &latest.UserID, &latest.Period, &latest.Revenue, &latest.GrossProfit,
		&latest.AdminCosts, &latest.PayrollCosts, &latest.InventoryValue,
		&latest.AccountsReceivable, &latest.AccountsPayable, &latest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Fresh account: nothing uploaded yet, dashboard shows the empty state.
			return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"hasData": false}})
		}
		log.Printf("Error fetching latest report for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch latest report"})
	}

	metrics, err := analysis.CalculateMetrics(latest)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	benchmark, err := fetchBenchmark(ctx, industry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No benchmark for this industry"})
		}
		log.Printf("Error fetching benchmark for %s: %v", industry, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch benchmark"})
	}

	statuses := analysis.CompareAll(metrics, benchmark)
	recommendations := analysis.GenerateRecommendations(metrics, benchmark)

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"hasData":         true,
		"report":          latest,
		"metrics":         metrics,
		"benchmark":       benchmark,
		"statuses":        statuses,
		"recommendations": recommendations,
	}})
}
