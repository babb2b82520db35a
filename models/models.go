package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID         string `json:"userId"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId,omitempty"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	OrganizationName string `json:"organizationName"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Core Models ---

// User represents a user of the platform (client or back-office admin).
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Organization represents a tenant company.
type Organization struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IndustryType *string   `json:"industry_type,omitempty"`
	PlanID       *string   `json:"plan_id,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Plan is a subscription tier offered to organizations.
type Plan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PriceMonthly float64   `json:"price_monthly"`
	Features     []string  `json:"features"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Invoice is a billing document issued to an organization.
type Invoice struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	IssuedAt       time.Time  `json:"issued_at"`
	PaidAt         *time.Time `json:"paid_at,omitempty"`
}

// --- Request payloads ---

type SimulateReportRequest struct {
	Industry IndustryType `json:"industry"`
}

type NarrativeRequest struct {
	Industry IndustryType `json:"industry"`
}

type UpsertBenchmarkRequest struct {
	IndustryType   IndustryType `json:"industryType"`
	IndustryName   string       `json:"industryName"`
	AvgMargin      float64      `json:"avgMargin"`
	AvgAdminBurden float64      `json:"avgAdminBurden"`
	AvgEfficiency  float64      `json:"avgEfficiency"`
	AvgCashCycle   float64      `json:"avgCashCycle"`
}
