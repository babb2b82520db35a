package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gawrycy/fin-health-pulse/models"
)

var testBenchmark = models.Benchmark{
	IndustryType:   models.IndustryManufacturing,
	IndustryName:   "Produkcja",
	AvgMargin:      25,
	AvgAdminBurden: 10,
	AvgEfficiency:  4.5,
	AvgCashCycle:   60,
}

func TestGenerateRecommendations_Ordering(t *testing.T) {
	// margin diff -4 (warning), admin diff -5 (success),
	// efficiency diff +0.2 (none), cash diff +15 (warning).
	metrics := models.ParsedMetrics{
		GrossMargin: 21,
		AdminBurden: 5,
		Efficiency:  4.7,
		CashCycle:   75,
	}

	recs := GenerateRecommendations(metrics, testBenchmark)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d: %+v", len(recs), recs)
	}

	assert.Equal(t, models.RecommendationWarning, recs[0].Type)
	assert.Equal(t, "grossMargin", recs[0].Metric)
	assert.InDelta(t, -4, recs[0].Difference, 1e-9)

	assert.Equal(t, models.RecommendationSuccess, recs[1].Type)
	assert.Equal(t, "adminBurden", recs[1].Metric)
	assert.InDelta(t, -5, recs[1].Difference, 1e-9)

	assert.Equal(t, models.RecommendationWarning, recs[2].Type)
	assert.Equal(t, "cashCycle", recs[2].Metric)
	assert.InDelta(t, 15, recs[2].Difference, 1e-9)
}

func TestGenerateRecommendations_InfoFallback(t *testing.T) {
	metrics := models.ParsedMetrics{
		GrossMargin: testBenchmark.AvgMargin,
		AdminBurden: testBenchmark.AvgAdminBurden,
		Efficiency:  testBenchmark.AvgEfficiency,
		CashCycle:   testBenchmark.AvgCashCycle,
	}

	recs := GenerateRecommendations(metrics, testBenchmark)
	if len(recs) != 1 {
		t.Fatalf("expected exactly one info recommendation, got %d", len(recs))
	}
	assert.Equal(t, models.RecommendationInfo, recs[0].Type)
	assert.Equal(t, "general", recs[0].Metric)
	assert.Equal(t, 0.0, recs[0].Difference)
}

func TestGenerateRecommendations_InfoNotAppendedWithSuccesses(t *testing.T) {
	// All successes, no warnings: the info item is still appended because
	// the trigger is "no warnings", not "no recommendations".
	metrics := models.ParsedMetrics{
		GrossMargin: testBenchmark.AvgMargin + 6,
		AdminBurden: testBenchmark.AvgAdminBurden - 4,
		Efficiency:  testBenchmark.AvgEfficiency + 2,
		CashCycle:   testBenchmark.AvgCashCycle - 10,
	}

	recs := GenerateRecommendations(metrics, testBenchmark)
	if len(recs) != 5 {
		t.Fatalf("expected 4 successes + 1 info, got %d", len(recs))
	}
	for _, rec := range recs[:4] {
		assert.Equal(t, models.RecommendationSuccess, rec.Type)
	}
	assert.Equal(t, models.RecommendationInfo, recs[4].Type)
}

func TestGenerateRecommendations_StrictBoundaries(t *testing.T) {
	// Every cutoff is a strict inequality: diffs sitting exactly on a
	// threshold produce no recommendation for that metric.
	metrics := models.ParsedMetrics{
		GrossMargin: testBenchmark.AvgMargin - 3,   // -3, not < -3
		AdminBurden: testBenchmark.AvgAdminBurden + 2, // +2, not > 2
		Efficiency:  testBenchmark.AvgEfficiency - 0.5, // -0.5, not < -0.5
		CashCycle:   testBenchmark.AvgCashCycle + 10,   // +10, not > 10
	}

	recs := GenerateRecommendations(metrics, testBenchmark)
	if len(recs) != 1 {
		t.Fatalf("expected only the info fallback, got %d: %+v", len(recs), recs)
	}
	assert.Equal(t, models.RecommendationInfo, recs[0].Type)
}

func TestGenerateRecommendations_WorkedExample(t *testing.T) {
	metrics, err := CalculateMetrics(workedReport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recs := GenerateRecommendations(metrics, testBenchmark)

	// margin diff -5 -> warning; admin diff +2 -> none (strict >);
	// efficiency diff -0.5 -> none (strict <); cash diff 34-60 = -26 -> success.
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d: %+v", len(recs), recs)
	}

	assert.Equal(t, models.RecommendationWarning, recs[0].Type)
	assert.Equal(t, "grossMargin", recs[0].Metric)
	assert.InDelta(t, -5, recs[0].Difference, 1e-9)

	assert.Equal(t, models.RecommendationSuccess, recs[1].Type)
	assert.Equal(t, "cashCycle", recs[1].Metric)
	assert.InDelta(t, -26, recs[1].Difference, 1e-9)
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	metrics := models.ParsedMetrics{GrossMargin: 18, AdminBurden: 14, Efficiency: 3.2, CashCycle: 80}
	assert.Equal(t,
		GenerateRecommendations(metrics, testBenchmark),
		GenerateRecommendations(metrics, testBenchmark),
	)
}
