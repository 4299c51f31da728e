package footing

import (
	"encoding/json"
	"testing"
)

func TestGeometry(t *testing.T) {
	g := Geometry{Length: 8, Width: 6, Depth: 1.5}

	if err := g.Validate(); err != nil {
		t.Fatalf("expected valid geometry, got %v", err)
	}
	if g.Area() != 48 {
		t.Errorf("expected area 48, got %v", g.Area())
	}
	if g.Kern() != 1 {
		t.Errorf("expected kern 1, got %v", g.Kern())
	}
	if g.TippingLimit() != 2 {
		t.Errorf("expected tipping limit 2, got %v", g.TippingLimit())
	}

	want := [4]Point{{0, 0}, {8, 0}, {8, 6}, {0, 6}}
	if g.Corners() != want {
		t.Errorf("expected corners %v, got %v", want, g.Corners())
	}
}

func TestFactorTable(t *testing.T) {
	ft := NewFactorTable(map[string]float64{"Storm Rear": 1.05})

	if ft.Factor("Storm Rear") != 1.05 {
		t.Errorf("expected 1.05, got %v", ft.Factor("Storm Rear"))
	}
	if ft.Factor("Unknown") != DefaultCorrectionFactor {
		t.Errorf("expected default factor for unknown case, got %v", ft.Factor("Unknown"))
	}
	if ft.Has("Unknown") {
		t.Errorf("expected Has to be false for unknown case")
	}

	var zero FactorTable
	if zero.Factor("anything") != DefaultCorrectionFactor {
		t.Errorf("expected zero-value table to fall back to default")
	}

	updated := ft.With("Crane Operation", 1.25)
	if ft.Has("Crane Operation") {
		t.Errorf("expected With to leave the original table unchanged")
	}
	if updated.Len() != 2 {
		t.Errorf("expected 2 factors, got %d", updated.Len())
	}
	names := updated.Names()
	if names[0] != "Crane Operation" || names[1] != "Storm Rear" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestFactorTable_CopiesInput(t *testing.T) {
	src := map[string]float64{"A": 2}
	ft := NewFactorTable(src)
	src["A"] = 3

	if ft.Factor("A") != 2 {
		t.Errorf("expected table to be isolated from source map, got %v", ft.Factor("A"))
	}
}

func TestVerdict_Text(t *testing.T) {
	data, err := json.Marshal(map[string]Verdict{"a": Risk, "b": NoRisk})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"a":"RISK","b":"NO_RISK"}` {
		t.Errorf("unexpected JSON %s", data)
	}

	var v Verdict
	if err := v.UnmarshalText([]byte("RISK")); err != nil || v != Risk {
		t.Errorf("expected RISK, got %v (%v)", v, err)
	}
	if err := v.UnmarshalText([]byte("maybe")); err == nil {
		t.Errorf("expected error for unknown verdict")
	}
}
