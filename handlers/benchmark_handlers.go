package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
)

// fetchBenchmark loads the benchmark row for an industry. Returns
// pgx.ErrNoRows when no benchmark exists for the category.
func fetchBenchmark(ctx context.Context, industry models.IndustryType) (models.Benchmark, error) {
	db := database.GetDB()

	var b models.Benchmark
	err := db.QueryRow(ctx, `
		SELECT industry_type, industry_name, avg_margin, avg_admin_burden, avg_efficiency, avg_cash_cycle
		FROM industry_benchmarks
		WHERE industry_type = $1
	`, string(industry)).Scan(
		&b.IndustryType, &b.IndustryName, &b.AvgMargin, &b.AvgAdminBurden, &b.AvgEfficiency, &b.AvgCashCycle,
	)
	return b, err
}

// HandleGetBenchmark returns the benchmark row for an industry category.
// GET /api/v1/benchmarks/:industry
func HandleGetBenchmark(c *fiber.Ctx) error {
	industry := models.IndustryType(c.Params("industry"))
	if !industry.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown industry type"})
	}

	benchmark, err := fetchBenchmark(context.Background(), industry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No benchmark for this industry"})
		}
		log.Printf("Error fetching benchmark for %s: %v", industry, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch benchmark"})
	}

	return c.JSON(fiber.Map{"success": true, "data": benchmark})
}

// HandleUpsertBenchmark creates or updates an industry benchmark row.
// PUT /api/v1/admin/benchmarks
func HandleUpsertBenchmark(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.UpsertBenchmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if !req.IndustryType.Valid() || req.IndustryName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "industryType and industryName are required"})
	}

	_, err := db.Exec(ctx, `
		INSERT INTO industry_benchmarks (industry_type, industry_name, avg_margin, avg_admin_burden, avg_efficiency, avg_cash_cycle)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (industry_type) DO UPDATE SET
			industry_name = EXCLUDED.industry_name,
			avg_margin = EXCLUDED.avg_margin,
			avg_admin_burden = EXCLUDED.avg_admin_burden,
			avg_efficiency = EXCLUDED.avg_efficiency,
			avg_cash_cycle = EXCLUDED.avg_cash_cycle
	`, string(req.IndustryType), req.IndustryName, req.AvgMargin, req.AvgAdminBurden, req.AvgEfficiency, req.AvgCashCycle)
	if err != nil {
		log.Printf("Error upserting benchmark for %s: %v", req.IndustryType, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to save benchmark"})
	}

	return c.JSON(fiber.Map{"success": true})
}
