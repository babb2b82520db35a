package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
	"github.com/Gawrycy/fin-health-pulse/utils"
)

// HandleGetAdminDashboardSummary fetches summary data for the admin portal.
// GET /api/v1/admin/dashboard/summary
func HandleGetAdminDashboardSummary(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var summary struct {
		Organizations int     `json:"organizations"`
		ActiveClients int     `json:"activeClients"`
		ReportsTotal  int     `json:"reportsTotal"`
		OpenInvoices  int     `json:"openInvoices"`
		MRR           float64 `json:"mrr"`
	}

	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM organizations WHERE is_active`).Scan(&summary.Organizations); err != nil {
		log.Printf("Error counting organizations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch summary"})
	}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'client' AND is_active`).Scan(&summary.ActiveClients); err != nil {
		log.Printf("Error counting clients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch summary"})
	}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM financial_reports`).Scan(&summary.ReportsTotal); err != nil {
		log.Printf("Error counting reports: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch summary"})
	}
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE status = 'open'`).Scan(&summary.OpenInvoices); err != nil {
		log.Printf("Error counting invoices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch summary"})
	}

	// MRR: sum of plan prices over active organizations with a plan assigned.
	err := db.QueryRow(ctx, `
		SELECT COALESCE(SUM(p.price_monthly), 0)
		FROM organizations o
		JOIN plans p ON p.id = o.plan_id
		WHERE o.is_active
	`).Scan(&summary.MRR)
	if err != nil {
		log.Printf("Error computing MRR: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch summary"})
	}

	return c.JSON(fiber.Map{"success": true, "data": summary})
}

// HandleListOrganizations lists tenant organizations, paginated.
// GET /api/v1/admin/organizations
func HandleListOrganizations(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 20)

	var total int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&total); err != nil {
		log.Printf("Error counting organizations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list organizations"})
	}
	pagination := utils.CreatePagination(total, page, pageSize)

	rows, err := db.Query(ctx, `
		SELECT id, name, industry_type, plan_id, is_active, created_at, updated_at
		FROM organizations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, pagination.PageSize, pagination.Offset())
	if err != nil {
		log.Printf("Error listing organizations: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list organizations"})
	}
	defer rows.Close()

	orgs := make([]models.Organization, 0)
	for rows.Next() {
		var o models.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.IndustryType, &o.PlanID, &o.IsActive, &o.CreatedAt, &o.UpdatedAt); err != nil {
			log.Printf("Error scanning organization row: %v", err)
			continue
		}
		orgs = append(orgs, o)
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{
		"organizations": orgs,
		"pagination":    pagination,
	}})
}

// HandleSetOrganizationStatus activates or suspends a tenant.
// PUT /api/v1/admin/organizations/:orgId/status
func HandleSetOrganizationStatus(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	orgID := c.Params("orgId")

	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	tag, err := db.Exec(ctx, `UPDATE organizations SET is_active = $1, updated_at = NOW() WHERE id = $2`, body.IsActive, orgID)
	if err != nil {
		log.Printf("Error updating organization %s status: %v", orgID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update organization"})
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Organization not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleListPlans lists subscription plans.
// GET /api/v1/admin/plans
func HandleListPlans(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, `
		SELECT id, name, price_monthly, features, is_active, created_at
		FROM plans
		ORDER BY price_monthly
	`)
	if err != nil {
		log.Printf("Error listing plans: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list plans"})
	}
	defer rows.Close()

	plans := make([]models.Plan, 0)
	for rows.Next() {
		var p models.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceMonthly, &p.Features, &p.IsActive, &p.CreatedAt); err != nil {
			log.Printf("Error scanning plan row: %v", err)
			continue
		}
		plans = append(plans, p)
	}

	return c.JSON(fiber.Map{"success": true, "data": plans})
}

// HandleCreatePlan creates a subscription plan.
// POST /api/v1/admin/plans
func HandleCreatePlan(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req struct {
		Name         string   `json:"name"`
		PriceMonthly float64  `json:"price_monthly"`
		Features     []string `json:"features"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Plan name is required"})
	}
	if req.Features == nil {
		req.Features = []string{}
	}

	var plan models.Plan
	err := db.QueryRow(ctx, `
		INSERT INTO plans (name, price_monthly, features)
		VALUES ($1, $2, $3)
		RETURNING id, name, price_monthly, features, is_active, created_at
	`, req.Name, req.PriceMonthly, req.Features).Scan(
		&plan.ID, &plan.Name, &plan.PriceMonthly, &plan.Features, &plan.IsActive, &plan.CreatedAt,
	)
	if err != nil {
		log.Printf("Error creating plan: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create plan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": plan})
}

// HandleListInvoices lists invoices, optionally filtered by organization.
// GET /api/v1/admin/invoices
func HandleListInvoices(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	query := `
		SELECT id, organization_id, amount, currency, status, issued_at, paid_at
		FROM invoices
	`
	args := []interface{}{}
	if orgID := c.Query("organizationId"); orgID != "" {
		query += " WHERE organization_id = $1"
		args = append(args, orgID)
	}
	query += " ORDER BY issued_at DESC"

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("Error listing invoices: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to list invoices"})
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.OrganizationID, &inv.Amount, &inv.Currency, &inv.Status, &inv.IssuedAt, &inv.PaidAt); err != nil {
			log.Printf("Error scanning invoice row: %v", err)
			continue
		}
		invoices = append(invoices, inv)
	}

	return c.JSON(fiber.Map{"success": true, "data": invoices})
}
