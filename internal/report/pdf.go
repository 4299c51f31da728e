package report

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a calculation report of the analysis
func WritePDF(w io.Writer, a *footing.Analysis, meta Meta) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Foundation Settlement & Tipping Analysis", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Foundation Settlement & Tipping Analysis")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", meta.Project)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", meta.Generated.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Report ID: %s", meta.ID))
	pdf.Ln(10)

	// Input data
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input data")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	g, m := a.Geometry, a.Material
	inputs := [][2]string{
		{"Footing length L", fmt.Sprintf("%.2f m", g.Length)},
		{"Footing width B", fmt.Sprintf("%.2f m", g.Width)},
		{"Footing depth H", fmt.Sprintf("%.2f m", g.Depth)},
		{"Elastic modulus E", fmt.Sprintf("%.0f kN/m²", m.ElasticModulus)},
		{"Soil bearing capacity (not checked)", fmt.Sprintf("%.0f kN/m²", m.SoilBearingCapacity)},
		{"Concrete fck / steel fy", fmt.Sprintf("%.0f / %.0f N/mm²", m.Fck, m.Fy)},
		{"Kern B/6 / tipping limit B/3", fmt.Sprintf("%.4f / %.4f m", g.Kern(), g.TippingLimit())},
	}
	for _, row := range inputs {
		pdf.CellFormat(80, 6, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Results table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Results per load case")
	pdf.Ln(8)

	headers := []string{"Load case", "M (kNm)", "V (kN)", "f", "e (m)", "sig,max (kN/m²)", "sig,min (kN/m²)", "S (m)", "Tipping", "alpha (°)"}
	widths := []float64{34, 17, 17, 10, 15, 22, 22, 17, 16, 14}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, r := range a.Results {
		cells := []string{
			r.Load.Name,
			fmt.Sprintf("%.1f", r.Load.Moment),
			fmt.Sprintf("%.1f", r.Load.Vertical),
			fmt.Sprintf("%.2f", r.CorrectionFactor),
			fmt.Sprintf("%.4f", r.Eccentricity),
			fmt.Sprintf("%.2f", r.SigmaMax),
			fmt.Sprintf("%.2f", r.SigmaMin),
			fmt.Sprintf("%.4f", r.Settlement),
			r.Tipping.String(),
			fmt.Sprintf("%.2f", r.RotationAngle),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	if gov, ok := a.Governing(); ok {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Governing settlement: %s, S = %.4f m", gov.Load.Name, gov.Settlement)))
		pdf.Ln(6)
	}
	status := "No load case exceeds the tipping limit e > B/3."
	if a.AnyTippingRisk() {
		status = "WARNING: at least one load case exceeds the tipping limit e > B/3."
	}
	pdf.Cell(0, 6, status)
	pdf.Ln(6)

	return pdf.Output(w)
}
