package analysis

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Gawrycy/fin-health-pulse/models"
)

// industryRanges holds the per-industry envelopes used to generate
// statistically plausible JPK_KR figures. Revenue bases are PLN.
type industryRange struct {
	revenueBase     float64
	revenueVariance float64
	marginMin       float64
	marginMax       float64
	adminMin        float64
	adminMax        float64
	efficiencyMin   float64
	efficiencyMax   float64
	cashCycleMin    float64
	cashCycleMax    float64
}

var industryRanges = map[models.IndustryType]industryRange{
	models.IndustryManufacturing: {
		revenueBase:     5000000,
		revenueVariance: 2000000,
		marginMin:       18, marginMax: 28,
		adminMin: 8, adminMax: 14,
		efficiencyMin: 3.5, efficiencyMax: 6.0,
		cashCycleMin: 50, cashCycleMax: 90,
	},
	models.IndustryITServices: {
		revenueBase:     3000000,
		revenueVariance: 1500000,
		marginMin:       30, marginMax: 48,
		adminMin: 14, adminMax: 24,
		efficiencyMin: 1.8, efficiencyMax: 3.2,
		cashCycleMin: 25, cashCycleMax: 50,
	},
	models.IndustryEcommerce: {
		revenueBase:     8000000,
		revenueVariance: 4000000,
		marginMin:       12, marginMax: 25,
		adminMin: 9, adminMax: 17,
		efficiencyMin: 7.0, efficiencyMax: 12.0,
		cashCycleMin: 15, cashCycleMax: 35,
	},
}

func roundCurrency(v float64) float64 {
	return math.Round(v)
}

func randomInRange(min, max float64) float64 {
	return rand.Float64()*(max-min) + min
}

func randomVariance(base, variance float64) float64 {
	return base + (rand.Float64()-0.5)*2*variance
}

// SimulateJPKParsing produces a plausible FinancialReport for the given
// industry. JPK_KR files are never actually parsed; the figures are drawn
// from the industry envelope so downstream metrics land in realistic bands.
func SimulateJPKParsing(industry models.IndustryType) (models.FinancialReport, error) {
	ranges, ok := industryRanges[industry]
	if !ok {
		return models.FinancialReport{}, fmt.Errorf("unknown industry type: %q", industry)
	}

	revenue := roundCurrency(randomVariance(ranges.revenueBase, ranges.revenueVariance))

	grossMarginPercent := randomInRange(ranges.marginMin, ranges.marginMax)
	grossProfit := roundCurrency(revenue * grossMarginPercent / 100)

	adminBurdenPercent := randomInRange(ranges.adminMin, ranges.adminMax)
	adminCosts := roundCurrency(revenue * adminBurdenPercent / 100)

	efficiency := randomInRange(ranges.efficiencyMin, ranges.efficiencyMax)
	payrollCosts := roundCurrency(revenue / efficiency)

	// Inventory, receivables and payables are derived from a sampled cash
	// cycle split into fixed sub-periods. The 40/50/30 split does not sum to
	// 100 on purpose: payables partially offset the other two. The 0.7 and
	// 0.6 factors are calibration constants carried over unchanged.
	cashCycle := math.Round(randomInRange(ranges.cashCycleMin, ranges.cashCycleMax))
	dailyRevenue := revenue / 365

	inventoryDays := cashCycle * 0.4
	inventoryValue := roundCurrency(dailyRevenue * inventoryDays * 0.7) // at cost

	receivableDays := cashCycle * 0.5
	accountsReceivable := roundCurrency(dailyRevenue * receivableDays)

	payableDays := cashCycle * 0.3
	accountsPayable := roundCurrency(dailyRevenue * payableDays * 0.6)

	now := time.Now()
	period := fmt.Sprintf("%d-%02d", now.Year(), int(now.Month()))

	return models.FinancialReport{
		Period:             period,
		Revenue:            revenue,
		GrossProfit:        grossProfit,
		AdminCosts:         adminCosts,
		PayrollCosts:       payrollCosts,
		InventoryValue:     inventoryValue,
		AccountsReceivable: accountsReceivable,
		AccountsPayable:    accountsPayable,
	}, nil
}
