// Package report renders the downloadable "Mapa Rentowności" PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Gawrycy/fin-health-pulse/analysis"
	"github.com/Gawrycy/fin-health-pulse/models"
)

// Data bundles everything one report document needs. CompanyName may be
// empty; the metadata block falls back to a placeholder.
type Data struct {
	CompanyName     string
	Report          models.FinancialReport
	Metrics         models.ParsedMetrics
	Benchmark       models.Benchmark
	Recommendations []models.AIRecommendation
}

type rgb struct{ r, g, b int }

var (
	navy      = rgb{30, 41, 59}
	emerald   = rgb{16, 185, 129}
	softRed   = rgb{239, 68, 68}
	muted     = rgb{100, 116, 139}
	lightBg   = rgb{248, 250, 252}
	warnBg    = rgb{254, 242, 242}
	successBg = rgb{236, 253, 245}
	white     = rgb{255, 255, 255}
)

// Polish month names in genitive form, as used in long-form dates.
var polishMonths = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

func polishLongDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), polishMonths[t.Month()-1], t.Year())
}

func statusLabel(s models.MetricStatus) (string, rgb) {
	switch s {
	case models.StatusPositive:
		return "Dobry", emerald
	case models.StatusNegative:
		return "Alert", softRed
	default:
		return "Neutralny", muted
	}
}

type renderer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	y      float64
	margin float64
	pageW  float64
	pageH  float64
}

func (r *renderer) fill(c rgb)   { r.pdf.SetFillColor(c.r, c.g, c.b) }
func (r *renderer) text(c rgb)   { r.pdf.SetTextColor(c.r, c.g, c.b) }
func (r *renderer) stroke(c rgb) { r.pdf.SetDrawColor(c.r, c.g, c.b) }

// ensureSpace adds a page when the next block would collide with the footer.
func (r *renderer) ensureSpace(required float64) {
	if r.y+required > r.pageH-30 {
		r.pdf.AddPage()
		r.y = r.margin
	}
}

// Generate lays out the full report and returns the PDF bytes together with
// the download filename. The unix-millis suffix keeps repeated exports of
// the same period from colliding. On error no bytes are returned.
func Generate(data Data) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	r := &renderer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor("cp1250"),
		margin: 20,
	}
	r.pageW, r.pageH = pdf.GetPageSize()

	pdf.SetFooterFunc(func() {
		r.stroke(navy)
		pdf.SetLineWidth(0.3)
		pdf.Line(r.margin, r.pageH-25, r.pageW-r.margin, r.pageH-25)

		r.text(navy)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(r.margin, r.pageH-18, r.tr("Chcesz odzyskać zysk? Umów sesję z Controllerem."))

		r.text(muted)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Text(r.pageW-r.margin-25, r.pageH-18, fmt.Sprintf("Strona %d z {nb}", pdf.PageNo()))

		pdf.SetFont("Helvetica", "", 8)
		pdf.Text(r.margin, r.pageH-10, r.tr("SmartController AI © 2025"))
	})

	pdf.AddPage()

	r.renderHeader()
	r.renderTitleAndMetadata(data)
	r.renderExecutiveSummary(data)
	r.renderBenchmarkTable(data)
	r.renderInsights(data)
	r.renderRoadmap()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("pdf generation failed: %w", err)
	}

	fileName := fmt.Sprintf("SmartController_Report_%s_%d.pdf", data.Report.Period, time.Now().UnixMilli())
	return buf.Bytes(), fileName, nil
}

func (r *renderer) renderHeader() {
	pdf := r.pdf

	r.fill(navy)
	pdf.Rect(0, 0, r.pageW, 45, "F")

	r.text(white)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Text(r.margin, 22, "SmartController AI")

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(r.margin, 32, "Financial Health Check")

	r.y = 60
}

func (r *renderer) renderTitleAndMetadata(data Data) {
	pdf := r.pdf

	r.text(navy)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(r.margin, r.y, r.tr("Raport: Mapa Rentowności Twojej Firmy"))
	r.y += 12

	pdf.SetFont("Helvetica", "", 10)
	r.text(muted)

	companyName := data.CompanyName
	if companyName == "" {
		companyName = "Nie podano"
	}

	metadataLines := []string{
		fmt.Sprintf("Firma: %s", companyName),
		fmt.Sprintf("Branża: %s", data.Benchmark.IndustryName),
		fmt.Sprintf("Okres: %s", data.Report.Period),
		fmt.Sprintf("Data generacji: %s", polishLongDate(time.Now())),
	}
	for _, line := range metadataLines {
		pdf.Text(r.margin, r.y, r.tr(line))
		r.y += 5
	}
	r.y += 10
}

func (r *renderer) renderExecutiveSummary(data Data) {
	pdf := r.pdf
	r.ensureSpace(50)

	r.fill(lightBg)
	pdf.RoundedRect(r.margin, r.y, r.pageW-2*r.margin, 40, 3, "1234", "F")

	r.y += 8
	r.text(navy)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(r.margin+8, r.y, "Podsumowanie Wykonawcze")

	r.y += 8
	pdf.SetFont("Helvetica", "", 10)
	r.text(muted)

	marginDiff := data.Metrics.GrossMargin - data.Benchmark.AvgMargin
	var leakageText string
	if marginDiff < 0 {
		leakageText = fmt.Sprintf(
			"Wykryto wyciek marży na poziomie %.1f p.p. poniżej średniej branżowej (%.1f%%). "+
				"Twoja marża brutto wynosi %.1f%%. Potencjał do odzyskania rentowności jest znaczący.",
			-marginDiff, data.Benchmark.AvgMargin, data.Metrics.GrossMargin)
	} else {
		leakageText = fmt.Sprintf(
			"Twoja marża brutto (%.1f%%) przewyższa średnią branżową (%.1f%%) o %.1f p.p. "+
				"Firma wykazuje dobrą kondycję finansową w porównaniu z konkurencją.",
			data.Metrics.GrossMargin, data.Benchmark.AvgMargin, marginDiff)
	}

	lines := pdf.SplitText(r.tr(leakageText), r.pageW-2*r.margin-16)
	for _, line := range lines {
		pdf.Text(r.margin+8, r.y, line)
		r.y += 5
	}

	r.y += 35 - float64(len(lines))*5
}

func (r *renderer) renderBenchmarkTable(data Data) {
	pdf := r.pdf
	r.ensureSpace(80)

	r.text(navy)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(r.margin, r.y, r.tr("Porównanie z Benchmarkiem Branżowym"))
	r.y += 8

	statuses := analysis.CompareAll(data.Metrics, data.Benchmark)

	type row struct {
		name      string
		yours     string
		benchmark string
		status    models.MetricStatus
	}
	rows := []row{
		{
			"Marża Brutto",
			fmt.Sprintf("%.1f%%", data.Metrics.GrossMargin),
			fmt.Sprintf("%.1f%%", data.Benchmark.AvgMargin),
			statuses.GrossMargin,
		},
		{
			"Efektywność Pracownika",
			fmt.Sprintf("%.2fx", data.Metrics.Efficiency),
			fmt.Sprintf("%.2fx", data.Benchmark.AvgEfficiency),
			statuses.Efficiency,
		},
		{
			"Obciążenie Administracyjne",
			fmt.Sprintf("%.1f%%", data.Metrics.AdminBurden),
			fmt.Sprintf("%.1f%%", data.Benchmark.AvgAdminBurden),
			statuses.AdminBurden,
		},
		{
			"Cykl Konwersji Gotówki",
			fmt.Sprintf("%d dni", int(data.Metrics.CashCycle)),
			fmt.Sprintf("%d dni", int(data.Benchmark.AvgCashCycle)),
			statuses.CashCycle,
		},
	}

	colWidths := []float64{55, 35, 40, 30}
	headers := []string{"Wskaźnik", "Twój Wynik", "Średnia Branżowa", "Status"}

	pdf.SetXY(r.margin, r.y)
	r.fill(navy)
	r.text(white)
	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range headers {
		align := "C"
		if i == 0 {
			align = "L"
		}
		pdf.CellFormat(colWidths[i], 9, r.tr(h), "", 0, align, true, 0, "")
	}
	r.y += 9

	pdf.SetFont("Helvetica", "", 10)
	for i, row := range rows {
		pdf.SetXY(r.margin, r.y)
		striped := i%2 == 1
		if striped {
			r.fill(lightBg)
		}

		r.text(navy)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(colWidths[0], 8, r.tr(row.name), "", 0, "L", striped, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(colWidths[1], 8, r.tr(row.yours), "", 0, "C", striped, 0, "")
		pdf.CellFormat(colWidths[2], 8, r.tr(row.benchmark), "", 0, "C", striped, 0, "")

		label, color := statusLabel(row.status)
		if row.status == models.StatusNeutral {
			r.text(navy)
			pdf.SetFont("Helvetica", "", 10)
		} else {
			r.text(color)
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.CellFormat(colWidths[3], 8, label, "", 0, "C", striped, 0, "")
		r.y += 8
	}

	r.y += 15
}

func (r *renderer) renderInsights(data Data) {
	pdf := r.pdf
	r.ensureSpace(60)

	r.text(navy)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(r.margin, r.y, r.tr("Wykryte Wycieki Marży"))
	r.y += 10

	var warnings, successes []models.AIRecommendation
	for _, rec := range data.Recommendations {
		switch rec.Type {
		case models.RecommendationWarning:
			warnings = append(warnings, rec)
		case models.RecommendationSuccess:
			successes = append(successes, rec)
		}
	}

	if len(warnings) > 0 {
		r.renderInsightGroup("Obszary wymagające uwagi:", warnings, softRed, warnBg)
	}
	if len(successes) > 0 {
		r.y += 5
		r.renderInsightGroup("Mocne strony:", successes, emerald, successBg)
	}
}

func (r *renderer) renderInsightGroup(heading string, recs []models.AIRecommendation, accent, background rgb) {
	pdf := r.pdf

	pdf.SetFont("Helvetica", "B", 11)
	r.text(accent)
	pdf.Text(r.margin, r.y, r.tr(heading))
	r.y += 7

	pdf.SetFontSize(10)
	for _, rec := range recs {
		r.ensureSpace(20)

		r.fill(background)
		pdf.RoundedRect(r.margin, r.y-4, r.pageW-2*r.margin, 18, 2, "1234", "F")

		r.text(accent)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Text(r.margin+4, r.y, r.tr("• "+rec.Title))
		r.y += 5

		r.text(muted)
		pdf.SetFont("Helvetica", "", 10)
		descLines := pdf.SplitText(r.tr(rec.Description), r.pageW-2*r.margin-12)
		for _, line := range descLines {
			pdf.Text(r.margin+8, r.y, line)
			r.y += 4
		}
		r.y += 8
	}
}

func (r *renderer) renderRoadmap() {
	pdf := r.pdf
	r.ensureSpace(80)
	r.y += 10

	r.text(navy)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(r.margin, r.y, "Strategiczna Mapa Drogowa")
	r.y += 12

	steps := []struct {
		step        string
		title       string
		description string
	}{
		{"1", "Alokacja MPK", "Wprowadź miejsca powstawania kosztów (MPK) dla precyzyjnego śledzenia kosztów w każdym dziale."},
		{"2", "Budżetowanie AI", "Wykorzystaj sztuczną inteligencję do predykcji budżetu i automatycznego wykrywania odchyleń."},
		{"3", "Model TDABC", "Wdróż Time-Driven Activity-Based Costing dla dokładnej alokacji kosztów pośrednich."},
	}

	for i, item := range steps {
		r.ensureSpace(35)

		r.fill(emerald)
		pdf.Circle(r.margin+8, r.y+6, 8, "F")
		r.text(white)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(r.margin+5.5, r.y+9, item.step)

		r.text(navy)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(r.margin+22, r.y+4, r.tr(item.title))

		r.text(muted)
		pdf.SetFont("Helvetica", "", 10)
		descLines := pdf.SplitText(r.tr(item.description), r.pageW-r.margin-45)
		descY := r.y + 10
		for _, line := range descLines {
			pdf.Text(r.margin+22, descY, line)
			descY += 5
		}

		r.y += 28

		if i < len(steps)-1 {
			r.stroke(emerald)
			pdf.SetLineWidth(0.5)
			pdf.Line(r.margin+8, r.y-14, r.margin+8, r.y-4)
		}
	}
}
