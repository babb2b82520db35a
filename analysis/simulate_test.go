package analysis

import (
	"regexp"
	"testing"

	"github.com/Gawrycy/fin-health-pulse/models"
)

var periodPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func TestSimulateJPKParsing_Invariants(t *testing.T) {
	industries := []models.IndustryType{
		models.IndustryManufacturing,
		models.IndustryITServices,
		models.IndustryEcommerce,
	}

	for _, industry := range industries {
		for i := 0; i < 200; i++ {
			report, err := SimulateJPKParsing(industry)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", industry, err)
			}

			if report.Revenue <= 0 {
				t.Fatalf("%s: revenue must be positive, got %f", industry, report.Revenue)
			}
			if report.GrossProfit < 0 || report.GrossProfit > report.Revenue {
				t.Fatalf("%s: gross profit %f out of [0, %f]", industry, report.GrossProfit, report.Revenue)
			}
			if report.AdminCosts < 0 || report.PayrollCosts <= 0 {
				t.Fatalf("%s: negative costs: admin=%f payroll=%f", industry, report.AdminCosts, report.PayrollCosts)
			}
			if report.InventoryValue < 0 || report.AccountsReceivable < 0 || report.AccountsPayable < 0 {
				t.Fatalf("%s: negative working-capital figure", industry)
			}
			if !periodPattern.MatchString(report.Period) {
				t.Fatalf("%s: malformed period %q", industry, report.Period)
			}
		}
	}
}

func TestSimulateJPKParsing_MetricsDerivable(t *testing.T) {
	// Every generated report must survive metric derivation: the envelopes
	// guarantee nonzero revenue, payroll and COGS.
	for i := 0; i < 200; i++ {
		report, err := SimulateJPKParsing(models.IndustryITServices)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := CalculateMetrics(report); err != nil {
			t.Fatalf("generated report not derivable: %v (report=%+v)", err, report)
		}
	}
}

func TestSimulateJPKParsing_UnknownIndustry(t *testing.T) {
	_, err := SimulateJPKParsing(models.IndustryType("agriculture"))
	if err == nil {
		t.Fatalf("expected error for unknown industry")
	}
}
