package analysis

import (
	"errors"
	"fmt"
	"math"

	"github.com/Gawrycy/fin-health-pulse/models"
)

var (
	// ErrInvalidReport marks a FinancialReport that violates its invariants
	// (negative figures, or gross profit above revenue).
	ErrInvalidReport = errors.New("invalid financial report")

	// ErrZeroDenominator marks a report whose metrics are undefined because
	// a denominator (revenue, payroll costs, or daily COGS) is zero.
	ErrZeroDenominator = errors.New("metric denominator is zero")
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func validateReport(report models.FinancialReport) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"revenue", report.Revenue},
		{"gross_profit", report.GrossProfit},
		{"admin_costs", report.AdminCosts},
		{"payroll_costs", report.PayrollCosts},
		{"inventory_value", report.InventoryValue},
		{"accounts_receivable", report.AccountsReceivable},
		{"accounts_payable", report.AccountsPayable},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s is negative", ErrInvalidReport, f.name)
		}
	}
	if report.GrossProfit > report.Revenue {
		return fmt.Errorf("%w: gross profit exceeds revenue", ErrInvalidReport)
	}
	return nil
}

// CalculateMetrics derives ParsedMetrics from a FinancialReport. Percentages
// and ratios are rounded to 2 decimal places; the cash conversion cycle is
// rounded to whole days and floored at 0.
//
// Reports with a zero revenue, zero payroll, or zero cost of goods sold have
// undefined metrics and are rejected with ErrZeroDenominator instead of
// letting NaN or Inf leak into comparisons and rendering.
func CalculateMetrics(report models.FinancialReport) (models.ParsedMetrics, error) {
	if err := validateReport(report); err != nil {
		return models.ParsedMetrics{}, err
	}
	if report.Revenue == 0 {
		return models.ParsedMetrics{}, fmt.Errorf("%w: revenue", ErrZeroDenominator)
	}
	if report.PayrollCosts == 0 {
		return models.ParsedMetrics{}, fmt.Errorf("%w: payroll costs", ErrZeroDenominator)
	}
	cogs := report.Revenue - report.GrossProfit
	if cogs == 0 {
		return models.ParsedMetrics{}, fmt.Errorf("%w: cost of goods sold", ErrZeroDenominator)
	}

	grossMargin := report.GrossProfit / report.Revenue * 100
	adminBurden := report.AdminCosts / report.Revenue * 100
	efficiency := report.Revenue / report.PayrollCosts

	dailyRevenue := report.Revenue / 365
	dailyCOGS := cogs / 365

	inventoryDays := report.InventoryValue / dailyCOGS
	receivableDays := report.AccountsReceivable / dailyRevenue
	payableDays := report.AccountsPayable / dailyCOGS

	cashCycle := math.Round(inventoryDays + receivableDays - payableDays)

	return models.ParsedMetrics{
		GrossMargin: round2(grossMargin),
		AdminBurden: round2(adminBurden),
		Efficiency:  round2(efficiency),
		CashCycle:   math.Max(0, cashCycle),
	}, nil
}
