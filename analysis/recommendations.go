package analysis

import "github.com/Gawrycy/fin-health-pulse/models"

// GenerateRecommendations turns a (metrics, benchmark) pair into an ordered
// list of insights. Metrics are evaluated in a fixed order: gross margin,
// admin burden, efficiency, cash cycle. The cutoffs are policy thresholds
// independent of the 10% neutral band used by CompareToBenchmark.
func GenerateRecommendations(metrics models.ParsedMetrics, benchmark models.Benchmark) []models.AIRecommendation {
	recommendations := []models.AIRecommendation{}

	marginDiff := metrics.GrossMargin - benchmark.AvgMargin
	if marginDiff < -3 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationWarning,
			Title:       "Marża poniżej średniej rynkowej",
			Description: "Twoja marża jest poniżej średniej rynkowej. AI sugeruje sprawdzenie kosztów bezpośrednich i cen zakupu materiałów.",
			Metric:      "grossMargin",
			Difference:  marginDiff,
		})
	} else if marginDiff > 5 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationSuccess,
			Title:       "Doskonała marża!",
			Description: "Twoja marża przewyższa średnią branżową. Utrzymuj obecną strategię cenową.",
			Metric:      "grossMargin",
			Difference:  marginDiff,
		})
	}

	adminDiff := metrics.AdminBurden - benchmark.AvgAdminBurden
	if adminDiff > 2 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationWarning,
			Title:       "Wysokie koszty administracyjne",
			Description: "Koszty administracyjne przekraczają standardy branżowe. Rozważ wdrożenie automatyzacji procesów back-office lub modelu TDABC.",
			Metric:      "adminBurden",
			Difference:  adminDiff,
		})
	} else if adminDiff < -3 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationSuccess,
			Title:       "Efektywna administracja",
			Description: "Twoje koszty administracyjne są niższe od średniej branżowej. To dobry znak efektywności operacyjnej.",
			Metric:      "adminBurden",
			Difference:  adminDiff,
		})
	}

	effDiff := metrics.Efficiency - benchmark.AvgEfficiency
	if effDiff < -0.5 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationWarning,
			Title:       "Niska efektywność pracy",
			Description: "Stosunek przychodów do kosztów wynagrodzeń jest niższy od średniej. Rozważ optymalizację procesów lub przegląd struktury zatrudnienia.",
			Metric:      "efficiency",
			Difference:  effDiff,
		})
	} else if effDiff > 1 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationSuccess,
			Title:       "Wysoka produktywność zespołu",
			Description: "Twój zespół generuje więcej przychodów na złotówkę wynagrodzenia niż konkurencja.",
			Metric:      "efficiency",
			Difference:  effDiff,
		})
	}

	cycleDiff := metrics.CashCycle - benchmark.AvgCashCycle
	if cycleDiff > 10 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationWarning,
			Title:       "Wydłużony cykl konwersji gotówki",
			Description: "Twój cykl konwersji gotówki jest dłuższy od średniej. Rozważ negocjacje z dostawcami lub usprawnienie windykacji należności.",
			Metric:      "cashCycle",
			Difference:  cycleDiff,
		})
	} else if cycleDiff < -5 {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationSuccess,
			Title:       "Zoptymalizowany przepływ gotówki",
			Description: "Twój cykl konwersji gotówki jest krótszy od średniej branżowej. To pozytywnie wpływa na płynność finansową.",
			Metric:      "cashCycle",
			Difference:  cycleDiff,
		})
	}

	// The fallback fires on "no warnings", not "no recommendations": a list
	// full of successes still gets the general health note appended.
	hasWarning := false
	for _, rec := range recommendations {
		if rec.Type == models.RecommendationWarning {
			hasWarning = true
			break
		}
	}
	if !hasWarning {
		recommendations = append(recommendations, models.AIRecommendation{
			Type:        models.RecommendationInfo,
			Title:       "Ogólna kondycja finansowa",
			Description: "Twoje wskaźniki finansowe są zgodne ze standardami branżowymi. Kontynuuj monitoring i szukaj możliwości dalszej optymalizacji.",
			Metric:      "general",
			Difference:  0,
		})
	}

	return recommendations
}
