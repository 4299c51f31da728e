package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gofound/internal/din"
	"github.com/alexiusacademia/gofound/internal/footing"
	"github.com/xuri/excelize/v2"
)

// referenceAnalysis panics on error; the reference input is known to be valid
func referenceAnalysis() *footing.Analysis {
	a, err := footing.Analyze(din.DefaultGeometry(), din.Cases(din.LoadCases), footing.Config{
		Material: din.DefaultMaterial(),
		Factors:  din.Factors(din.LoadCases),
	})
	if err != nil {
		panic(err)
	}
	return a
}

func ExampleText() {
	a := referenceAnalysis()
	fmt.Print(Text(a))
	// Output:
	// Crane Operation: Settlement = 0.0483 m, Max Pressure = 100.36 kN/m², Tipping Risk: NO, Rotation Angle = 1.69°
	// Storm Rear: Settlement = 0.0399 m, Max Pressure = 98.67 kN/m², Tipping Risk: NO, Rotation Angle = 2.26°
	// Storm Front: Settlement = 0.0387 m, Max Pressure = 98.67 kN/m², Tipping Risk: NO, Rotation Angle = 2.54°
	// During Assembly: Settlement = 0.0457 m, Max Pressure = 91.25 kN/m², Tipping Risk: NO, Rotation Angle = 1.14°
}

func TestLine_TippingRisk(t *testing.T) {
	r := footing.CaseResult{
		Load:          footing.LoadCase{Name: "Overload"},
		Settlement:    0.1,
		SigmaMax:      200,
		Tipping:       footing.Risk,
		RotationAngle: -3.456,
	}

	want := "Overload: Settlement = 0.1000 m, Max Pressure = 200.00 kN/m², Tipping Risk: YES, Rotation Angle = -3.46°"
	if got := Line(r); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNewMeta(t *testing.T) {
	m1, m2 := NewMeta("TC-2"), NewMeta("TC-2")

	if m1.ID == "" || m1.ID == m2.ID {
		t.Errorf("expected unique report IDs, got %q and %q", m1.ID, m2.ID)
	}
	if m1.Project != "TC-2" {
		t.Errorf("expected project name, got %q", m1.Project)
	}
	if m1.Generated.IsZero() {
		t.Errorf("expected generation time to be set")
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	meta := Meta{ID: "test-id", Project: "Reference", Generated: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}

	if err := WritePDF(&buf, referenceAnalysis(), meta); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	meta := Meta{ID: "test-id", Project: "Reference", Generated: time.Now()}

	if err := WriteXLSX(&buf, referenceAnalysis(), meta); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(ResultsSheet)
	if err != nil {
		t.Fatalf("read results: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	if rows[1][0] != "Crane Operation" || rows[4][0] != "During Assembly" {
		t.Errorf("unexpected case order: %q ... %q", rows[1][0], rows[4][0])
	}
	if rows[1][9] != "NO_RISK" {
		t.Errorf("expected NO_RISK verdict, got %q", rows[1][9])
	}

	id, err := f.GetCellValue(InputSheet, "B2")
	if err != nil {
		t.Fatalf("read input sheet: %v", err)
	}
	if id != "test-id" {
		t.Errorf("expected report ID on input sheet, got %q", id)
	}
}

func TestText_Empty(t *testing.T) {
	if got := Text(&footing.Analysis{}); strings.TrimSpace(got) != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}
