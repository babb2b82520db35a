package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gawrycy/fin-health-pulse/models"
)

func TestCompareToBenchmark(t *testing.T) {
	cases := []struct {
		name      string
		value     float64
		benchmark float64
		inverted  bool
		want      models.MetricStatus
	}{
		{"equal is neutral", 100, 100, false, models.StatusNeutral},
		{"equal is neutral inverted", 60, 60, true, models.StatusNeutral},
		{"within 10% band", 104, 100, false, models.StatusNeutral},
		{"within 10% band below", 95, 100, true, models.StatusNeutral},
		{"above band", 111, 100, false, models.StatusPositive},
		{"below band", 89, 100, false, models.StatusNegative},
		{"above band inverted", 111, 100, true, models.StatusNegative},
		{"below band inverted", 89, 100, true, models.StatusPositive},

		// Zero benchmark: zero-width neutral band, only an exact match is
		// neutral; any nonzero value classifies per polarity.
		{"zero benchmark zero value", 0, 0, false, models.StatusNeutral},
		{"zero benchmark positive value", 5, 0, false, models.StatusPositive},
		{"zero benchmark positive value inverted", 5, 0, true, models.StatusNegative},
		{"zero benchmark negative value", -5, 0, false, models.StatusNegative},
		{"zero benchmark negative value inverted", -5, 0, true, models.StatusPositive},
	}

	for _, tc := range cases {
		got := CompareToBenchmark(tc.value, tc.benchmark, tc.inverted)
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestCompareToBenchmark_Idempotent(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t,
			CompareToBenchmark(21.5, 25, false),
			CompareToBenchmark(21.5, 25, false),
		)
	}
}

func TestCompareAll_Polarity(t *testing.T) {
	metrics := models.ParsedMetrics{
		GrossMargin: 30, // well above 20 -> positive
		AdminBurden: 20, // well above 10, inverted -> negative
		Efficiency:  3,  // well below 5 -> negative
		CashCycle:   30, // well below 60, inverted -> positive
	}
	benchmark := models.Benchmark{
		AvgMargin:      20,
		AvgAdminBurden: 10,
		AvgEfficiency:  5,
		AvgCashCycle:   60,
	}

	statuses := CompareAll(metrics, benchmark)
	assert.Equal(t, models.StatusPositive, statuses.GrossMargin)
	assert.Equal(t, models.StatusNegative, statuses.AdminBurden)
	assert.Equal(t, models.StatusNegative, statuses.Efficiency)
	assert.Equal(t, models.StatusPositive, statuses.CashCycle)
}
