package report

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gawrycy/fin-health-pulse/analysis"
	"github.com/Gawrycy/fin-health-pulse/models"
)

var testReport = models.FinancialReport{
	Period:             "2024-03",
	Revenue:            5000000,
	GrossProfit:        1000000,
	AdminCosts:         600000,
	PayrollCosts:       1250000,
	InventoryValue:     191780,
	AccountsReceivable: 410959,
	AccountsPayable:    147945,
}

var testBenchmark = models.Benchmark{
	IndustryType:   models.IndustryManufacturing,
	IndustryName:   "Produkcja",
	AvgMargin:      25,
	AvgAdminBurden: 10,
	AvgEfficiency:  4.5,
	AvgCashCycle:   60,
}

var fileNamePattern = regexp.MustCompile(`^SmartController_Report_2024-03_\d+\.pdf$`)

func buildTestData(t *testing.T, companyName string) Data {
	t.Helper()

	metrics, err := analysis.CalculateMetrics(testReport)
	if err != nil {
		t.Fatalf("unexpected error deriving metrics: %v", err)
	}

	return Data{
		CompanyName:     companyName,
		Report:          testReport,
		Metrics:         metrics,
		Benchmark:       testBenchmark,
		Recommendations: analysis.GenerateRecommendations(metrics, testBenchmark),
	}
}

func TestGenerate(t *testing.T) {
	pdfBytes, fileName, err := Generate(buildTestData(t, "Testowa Sp. z o.o."))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, len(pdfBytes), 1000)
	assert.True(t, fileNamePattern.MatchString(fileName), "unexpected filename %q", fileName)
}

func TestGenerate_NoCompanyName(t *testing.T) {
	pdfBytes, _, err := Generate(buildTestData(t, ""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestGenerate_EmptyRecommendations(t *testing.T) {
	data := buildTestData(t, "Testowa Sp. z o.o.")
	data.Recommendations = nil

	pdfBytes, _, err := Generate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.True(t, bytes.HasPrefix(pdfBytes, []byte("%PDF")))
}

func TestGenerate_UniqueFileNames(t *testing.T) {
	data := buildTestData(t, "Testowa Sp. z o.o.")

	_, first, err := Generate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := Generate(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Millisecond timestamps may collide on fast machines, but the pattern
	// must hold for both exports.
	assert.True(t, fileNamePattern.MatchString(first))
	assert.True(t, fileNamePattern.MatchString(second))
}
