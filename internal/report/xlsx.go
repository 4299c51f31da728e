package report

import (
	"io"

	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/xuri/excelize/v2"
)

const (
	ResultsSheet = "Results"
	InputSheet   = "Input"
)

// ResultHeaders are the column titles of the results sheet
var ResultHeaders = []interface{}{
	"Load case", "M (kN-m)", "H (kN)", "V (kN)", "Factor",
	"e (m)", "σmax (kN/m²)", "σmin (kN/m²)", "S (m)", "Tipping", "α (°)",
}

// WriteXLSX writes the analysis as a workbook with an input and a results sheet
func WriteXLSX(w io.Writer, a *footing.Analysis, meta Meta) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), ResultsSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(ResultsSheet, "A1", &ResultHeaders); err != nil {
		return err
	}
	for i, r := range a.Results {
		row := []interface{}{
			r.Load.Name,
			r.Load.Moment,
			r.Load.Horizontal,
			r.Load.Vertical,
			r.CorrectionFactor,
			r.Eccentricity,
			r.SigmaMax,
			r.SigmaMin,
			r.Settlement,
			r.Tipping.String(),
			r.RotationAngle,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(ResultsSheet, "A", "A", 22); err != nil {
		return err
	}

	if _, err := f.NewSheet(InputSheet); err != nil {
		return err
	}
	g, m := a.Geometry, a.Material
	inputs := [][]interface{}{
		{"Project", meta.Project},
		{"Report ID", meta.ID},
		{"Generated", meta.Generated.Format("2006-01-02 15:04:05")},
		{"Length L (m)", g.Length},
		{"Width B (m)", g.Width},
		{"Depth H (m)", g.Depth},
		{"Elastic modulus E (kN/m²)", m.ElasticModulus},
		{"Soil bearing capacity (kN/m²)", m.SoilBearingCapacity},
		{"fck (N/mm²)", m.Fck},
		{"fy (N/mm²)", m.Fy},
	}
	for i, row := range inputs {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(InputSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(InputSheet, "A", "A", 30); err != nil {
		return err
	}

	return f.Write(w)
}
