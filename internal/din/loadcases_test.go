package din

import (
	"testing"

	"github.com/alexiusacademia/gofound/internal/footing"
)

func TestCases_PreservesOrder(t *testing.T) {
	cases := Cases(LoadCases)
	if len(cases) != len(LoadCases) {
		t.Fatalf("expected %d cases, got %d", len(LoadCases), len(cases))
	}
	for i, d := range LoadCases {
		if cases[i].Name != d.Name || cases[i].Moment != d.Moment || cases[i].Vertical != d.Vertical {
			t.Errorf("case %d: expected %+v, got %+v", i, d, cases[i])
		}
	}
	if err := cases.Validate(); err != nil {
		t.Errorf("expected reference cases to be valid, got %v", err)
	}
}

func TestFactors(t *testing.T) {
	ft := Factors(LoadCases)

	want := map[string]float64{
		"Crane Operation": 1.25,
		"Storm Rear":      1.05,
		"Storm Front":     1.02,
		"During Assembly": 1.3,
	}
	for name, f := range want {
		if got := ft.Factor(name); got != f {
			t.Errorf("%s: expected %v, got %v", name, f, got)
		}
	}
	if ft.Factor("Transport") != footing.DefaultCorrectionFactor {
		t.Errorf("expected default factor for unlisted case")
	}
}

func TestDefaults(t *testing.T) {
	if err := DefaultGeometry().Validate(); err != nil {
		t.Errorf("expected reference geometry to be valid, got %v", err)
	}
	m := DefaultMaterial()
	if m.ElasticModulus != 20000 || m.SoilBearingCapacity != 250 || m.Fck != 25 || m.Fy != 500 {
		t.Errorf("unexpected reference material %+v", m)
	}
}
