package project

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/xuri/excelize/v2"
)

// readCasesXLSX reads load cases from the first sheet of a workbook.
// expected columns: name, moment (kN-m), horizontal (kN), vertical (kN), factor (optional)
// The first row is a header.
func readCasesXLSX(r io.Reader) ([]Case, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no load case rows", sheet)
	}

	var cases []Case
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		c, err := parseCaseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func parseCaseRow(row []string) (Case, error) {
	if len(row) < 4 {
		return Case{}, fmt.Errorf("expected at least 4 columns, got %d", len(row))
	}

	moment, err := toFloat(row[1])
	if err != nil {
		return Case{}, fmt.Errorf("moment: %w", err)
	}
	horizontal, err := toFloat(row[2])
	if err != nil {
		return Case{}, fmt.Errorf("horizontal force: %w", err)
	}
	vertical, err := toFloat(row[3])
	if err != nil {
		return Case{}, fmt.Errorf("vertical force: %w", err)
	}

	c := Case{
		LoadCase: footing.LoadCase{
			Name:       strings.TrimSpace(row[0]),
			Moment:     moment,
			Horizontal: horizontal,
			Vertical:   vertical,
		},
	}
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		factor, err := toFloat(row[4])
		if err != nil {
			return Case{}, fmt.Errorf("factor: %w", err)
		}
		c.Factor = &factor
	}
	return c, nil
}

func toFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
