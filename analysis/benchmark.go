package analysis

import (
	"math"

	"github.com/Gawrycy/fin-health-pulse/models"
)

// CompareToBenchmark classifies a metric value against its benchmark
// counterpart. The neutral band is 10% of the benchmark magnitude. For
// inverted metrics (admin burden, cash cycle) lower is better.
//
// This is the single authoritative status classification; dashboard payloads
// and the PDF renderer both call it so the two surfaces can never drift.
func CompareToBenchmark(value, benchmarkValue float64, inverted bool) models.MetricStatus {
	diff := value - benchmarkValue
	if diff == 0 {
		return models.StatusNeutral
	}
	threshold := benchmarkValue * 0.1
	if math.Abs(diff) < threshold {
		return models.StatusNeutral
	}
	if inverted {
		if diff < 0 {
			return models.StatusPositive
		}
		return models.StatusNegative
	}
	if diff > 0 {
		return models.StatusPositive
	}
	return models.StatusNegative
}

// MetricStatuses bundles the four per-metric standings used by the client
// dashboard cards and the benchmark comparison table.
type MetricStatuses struct {
	GrossMargin models.MetricStatus `json:"grossMargin"`
	AdminBurden models.MetricStatus `json:"adminBurden"`
	Efficiency  models.MetricStatus `json:"efficiency"`
	CashCycle   models.MetricStatus `json:"cashCycle"`
}

// CompareAll classifies every metric against the benchmark. Margin and
// efficiency are higher-is-better; admin burden and cash cycle are inverted.
func CompareAll(metrics models.ParsedMetrics, benchmark models.Benchmark) MetricStatuses {
	return MetricStatuses{
		GrossMargin: CompareToBenchmark(metrics.GrossMargin, benchmark.AvgMargin, false),
		AdminBurden: CompareToBenchmark(metrics.AdminBurden, benchmark.AvgAdminBurden, true),
		Efficiency:  CompareToBenchmark(metrics.Efficiency, benchmark.AvgEfficiency, false),
		CashCycle:   CompareToBenchmark(metrics.CashCycle, benchmark.AvgCashCycle, true),
	}
}
