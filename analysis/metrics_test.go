package analysis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gawrycy/fin-health-pulse/models"
)

// workedReport is the pinned end-to-end example used across the test suite.
var workedReport = models.FinancialReport{
	Period:             "2024-03",
	Revenue:            5000000,
	GrossProfit:        1000000,
	AdminCosts:         600000,
	PayrollCosts:       1250000,
	InventoryValue:     191780,
	AccountsReceivable: 410959,
	AccountsPayable:    147945,
}

func TestCalculateMetrics_WorkedExample(t *testing.T) {
	metrics, err := CalculateMetrics(workedReport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, 20.00, metrics.GrossMargin)
	assert.Equal(t, 12.00, metrics.AdminBurden)
	assert.Equal(t, 4.00, metrics.Efficiency)

	// inventoryDays ≈ 17.50, receivableDays ≈ 30.00, payableDays ≈ 13.50,
	// summing to just under 34 before rounding.
	assert.Equal(t, 34.0, metrics.CashCycle)
}

func TestCalculateMetrics_Deterministic(t *testing.T) {
	first, err := CalculateMetrics(workedReport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := CalculateMetrics(workedReport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, first, second)
}

func TestCalculateMetrics_CashCycleFlooredAtZero(t *testing.T) {
	report := models.FinancialReport{
		Revenue:         1000000,
		GrossProfit:     200000,
		AdminCosts:      100000,
		PayrollCosts:    250000,
		AccountsPayable: 800000, // payable days dwarf the rest
	}
	metrics, err := CalculateMetrics(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 0.0, metrics.CashCycle)
}

func TestCalculateMetrics_InvalidReport(t *testing.T) {
	negative := workedReport
	negative.AdminCosts = -1
	_, err := CalculateMetrics(negative)
	if !errors.Is(err, ErrInvalidReport) {
		t.Fatalf("expected ErrInvalidReport for negative value, got %v", err)
	}

	inflated := workedReport
	inflated.GrossProfit = inflated.Revenue + 1
	_, err = CalculateMetrics(inflated)
	if !errors.Is(err, ErrInvalidReport) {
		t.Fatalf("expected ErrInvalidReport for gross profit above revenue, got %v", err)
	}
}

func TestCalculateMetrics_ZeroDenominators(t *testing.T) {
	cases := map[string]models.FinancialReport{
		"zero revenue": {Revenue: 0, PayrollCosts: 100},
		"zero payroll": {Revenue: 1000, GrossProfit: 200, PayrollCosts: 0},
		"zero cogs":    {Revenue: 1000, GrossProfit: 1000, PayrollCosts: 100},
	}

	for name, report := range cases {
		_, err := CalculateMetrics(report)
		if !errors.Is(err, ErrZeroDenominator) {
			t.Fatalf("%s: expected ErrZeroDenominator, got %v", name, err)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "5 000 000 zł", FormatCurrency(5000000))
	assert.Equal(t, "999 zł", FormatCurrency(999))
	assert.Equal(t, "1 234 zł", FormatCurrency(1234.4))
	assert.Equal(t, "-1 234 zł", FormatCurrency(-1234))
	assert.Equal(t, "0 zł", FormatCurrency(0))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.3%", FormatPercent(12.345))
	assert.Equal(t, "0.0%", FormatPercent(0))
}
