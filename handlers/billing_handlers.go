package handlers

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"

	"github.com/Gawrycy/fin-health-pulse/database"
	"github.com/Gawrycy/fin-health-pulse/models"
)

func init() {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
}

// HandleListClientInvoices lists the invoices of the caller's organization.
// GET /api/v1/client/invoices
func HandleListClientInvoices(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	orgID, _ := c.Locals("organizationID").(string)
	if orgID == "" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"success": false, "message": "No organization assigned"})
	}

	rows, err := db.Query(ctx, `
		SELECT id, organization_id, amount, currency, status, issued_at, paid_at
		FROM invoices
		WHERE organization_id = $1
		ORDER BY issued_at DESC
	`, orgID)
	if err != nil {
		log.Printf("Error listing invoices for organization %s: %v", orgID, err)
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

// HandleCreateInvoicePaymentIntent creates a Stripe Payment Intent for one
// open invoice of the caller's organization.
// POST /api/v1/client/invoices/:invoiceId/pay
func HandleCreateInvoicePaymentIntent(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	orgID, _ := c.Locals("organizationID").(string)
	invoiceID := c.Params("invoiceId")

	var inv models.Invoice
	err := db.QueryRow(ctx, `
		SELECT id, organization_id, amount, currency, status, issued_at, paid_at
		FROM invoices
		WHERE id = $1 AND organization_id = $2
	`, invoiceID, orgID).Scan(&inv.ID, &inv.OrganizationID, &inv.Amount, &inv.Currency, &inv.Status, &inv.IssuedAt, &inv.PaidAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Invoice not found"})
		}
		log.Printf("Error fetching invoice %s: %v", invoiceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch invoice"})
	}

	if inv.Status != "open" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invoice is not payable"})
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(inv.Amount * 100)), // grosze
		Currency: stripe.String(inv.Currency),
	}
	params.AddMetadata("invoice_id", inv.ID)
	params.AddMetadata("organization_id", inv.OrganizationID)

	pi, err := paymentintent.New(params)
	if err != nil {
		log.Printf("Error creating payment intent for invoice %s: %v", invoiceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to create payment intent"})
	}

	log.Printf("💳 [BILLING] Payment intent %s created for invoice %s", pi.ID, inv.ID)
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"clientSecret": pi.ClientSecret}})
}
