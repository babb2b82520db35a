package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"github.com/jackc/pgx/v5"
	"google.golang.org/api/option"

	"github.com/Gawrycy/fin-health-pulse/analysis"
	"github.com/Gawrycy/fin-health-pulse/config"
	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
)

// HandleAnalysisNarrative asks Gemini for a prose summary of the user's
// latest metrics against the industry benchmark. The rule-based
// recommendations stay authoritative; this endpoint only adds narrative.
// POST /api/v1/client/analysis/narrative
func HandleAnalysisNarrative(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	userID, _ := c.Locals("userID").(string)

	var req models.NarrativeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if !req.Industry.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Unknown industry type"})
	}

	var latest models.FinancialReport
	err := db.QueryRow(ctx, `
		SELECT id, period, revenue, gross_profit, admin_costs, payroll_costs,
		       inventory_value, accounts_receivable, accounts_payable
		FROM financial_reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID).Scan(
		&latest.ID, &latest.Period, &latest.Revenue, &latest.GrossProfit, &latest.AdminCosts,
		&latest.PayrollCosts, &latest.InventoryValue, &latest.AccountsReceivable, &latest.AccountsPayable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No financial report found"})
		}
		log.Printf("Error fetching latest report for narrative: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch report"})
	}

	metrics, err := analysis.CalculateMetrics(latest)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	benchmark, err := fetchBenchmark(ctx, req.Industry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No benchmark for this industry"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch benchmark"})
	}

	recommendations := analysis.GenerateRecommendations(metrics, benchmark)
	prompt := buildNarrativePrompt(latest, metrics, benchmark, recommendations)

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate analysis"})
	}

	narrative := extractText(resp)
	if narrative == "" {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "No content received from AI"})
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"narrative":       narrative,
		"metrics":         metrics,
		"recommendations": recommendations,
	}})
}

// buildNarrativePrompt assembles the financial context for the model.
func buildNarrativePrompt(
	r models.FinancialReport,
	m models.ParsedMetrics,
	b models.Benchmark,
	recs []models.AIRecommendation,
) string {
	var findings strings.Builder
	for _, rec := range recs {
		findings.WriteString(fmt.Sprintf("- [%s] %s (metric: %s, difference: %.2f)\n", rec.Type, rec.Title, rec.Metric, rec.Difference))
	}

	return fmt.Sprintf(`You are a financial controller assistant for Polish SMEs.
Write a short analysis (3-4 sentences, in Polish) of this company's financial standing for the period %s.

Company metrics:
- Gross margin: %.2f%% (industry average: %.2f%%)
- Admin burden: %.2f%% (industry average: %.2f%%)
- Employee efficiency: %.2fx (industry average: %.2fx)
- Cash conversion cycle: %.0f days (industry average: %.0f days)
- Revenue: %s

Rule-based findings already shown to the user:
%s
Do not repeat the findings verbatim; explain what they mean together and what to prioritise. Plain text only, no markdown.`,
		r.Period,
		m.GrossMargin, b.AvgMargin,
		m.AdminBurden, b.AvgAdminBurden,
		m.Efficiency, b.AvgEfficiency,
		m.CashCycle, b.AvgCashCycle,
		analysis.FormatCurrency(r.Revenue),
		findings.String(),
	)
}

// extractText concatenates the text parts of a Gemini response.
func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var out string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out += string(txt)
		}
	}
	return strings.TrimSpace(out)
}
