package models

import "time"

// IndustryType identifies one of the supported industry categories.
type IndustryType string

const (
	IndustryManufacturing IndustryType = "manufacturing"
	IndustryITServices    IndustryType = "it_services"
	IndustryEcommerce     IndustryType = "ecommerce"
)

// Valid reports whether the industry is one of the supported categories.
func (i IndustryType) Valid() bool {
	switch i {
	case IndustryManufacturing, IndustryITServices, IndustryEcommerce:
		return true
	}
	return false
}

// FinancialReport holds one posted period's raw figures for a tenant.
// All monetary values are PLN magnitudes for a single reporting currency.
type FinancialReport struct {
	ID                 string    `json:"id,omitempty"`
	UserID             string    `json:"user_id,omitempty"`
	Period             string    `json:"period"`
	Revenue            float64   `json:"revenue"`
	GrossProfit        float64   `json:"gross_profit"`
	AdminCosts         float64   `json:"admin_costs"`
	PayrollCosts       float64   `json:"payroll_costs"`
	InventoryValue     float64   `json:"inventory_value"`
	AccountsReceivable float64   `json:"accounts_receivable"`
	AccountsPayable    float64   `json:"accounts_payable"`
	CreatedAt          time.Time `json:"created_at,omitempty"`
}

// ParsedMetrics is the derived view of a FinancialReport. It is computed
// fresh from its source report and never persisted on its own.
type ParsedMetrics struct {
	GrossMargin float64 `json:"grossMargin"` // percent
	AdminBurden float64 `json:"adminBurden"` // percent
	Efficiency  float64 `json:"efficiency"`  // revenue / payroll
	CashCycle   float64 `json:"cashCycle"`   // days, floored at 0
}

// Benchmark is the industry reference point reports are compared against.
type Benchmark struct {
	IndustryType   IndustryType `json:"industryType"`
	IndustryName   string       `json:"industryName"`
	AvgMargin      float64      `json:"avgMargin"`
	AvgAdminBurden float64      `json:"avgAdminBurden"`
	AvgEfficiency  float64      `json:"avgEfficiency"`
	AvgCashCycle   float64      `json:"avgCashCycle"`
}

// RecommendationType tags the polarity of a generated insight.
type RecommendationType string

const (
	RecommendationWarning RecommendationType = "warning"
	RecommendationSuccess RecommendationType = "success"
	RecommendationInfo    RecommendationType = "info"
)

// AIRecommendation is one generated insight. Ordering within a result set is
// significant and deterministic for identical inputs.
type AIRecommendation struct {
	Type        RecommendationType `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Metric      string             `json:"metric"`
	Difference  float64            `json:"difference"`
}

// MetricStatus is the three-way standing of a metric against its benchmark.
type MetricStatus string

const (
	StatusPositive MetricStatus = "positive"
	StatusNegative MetricStatus = "negative"
	StatusNeutral  MetricStatus = "neutral"
)
