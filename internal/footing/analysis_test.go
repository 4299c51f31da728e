package footing

import (
	"errors"
	"testing"
)

func referenceCases() LoadCases {
	return LoadCases{
		{Name: "Crane Operation", Moment: 5681.0, Horizontal: 65.0, Vertical: 2975.2},
		{Name: "Storm Rear", Moment: 6380.0, Horizontal: 150.0, Vertical: 2925.2},
		{Name: "Storm Front", Moment: 6980.0, Horizontal: 100.0, Vertical: 2925.2},
		{Name: "During Assembly", Moment: 3980.0, Horizontal: 50.0, Vertical: 2705.2},
	}
}

func referenceConfig() Config {
	return Config{
		Material: Material{ElasticModulus: 20000, SoilBearingCapacity: 250, Fck: 25, Fy: 500},
		Factors: NewFactorTable(map[string]float64{
			"Crane Operation": 1.25,
			"Storm Rear":      1.05,
			"Storm Front":     1.02,
			"During Assembly": 1.3,
		}),
	}
}

var referenceGeometry = Geometry{Length: 7.7, Width: 7.7, Depth: 1.4}

func TestAnalyze_ReferenceCases(t *testing.T) {
	a, err := Analyze(referenceGeometry, referenceCases(), referenceConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(a.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(a.Results))
	}

	want := []struct {
		name       string
		settlement float64
		rotation   float64
	}{
		{"Crane Operation", 0.04829870129870129, 1.6904045536514836},
		{"Storm Rear", 0.03988909090909091, 2.2594778029762765},
		{"Storm Front", 0.038749402597402595, 2.5443189978649436},
		{"During Assembly", 0.04567220779220779, 1.1388969431876363},
	}

	for i, w := range want {
		r := a.Results[i]
		if r.Name() != w.name {
			t.Errorf("result %d: expected case %q, got %q", i, w.name, r.Name())
		}
		if !almostEqual(r.Settlement, w.settlement, tol) {
			t.Errorf("%s: expected settlement %v, got %v", w.name, w.settlement, r.Settlement)
		}
		if !almostEqual(r.RotationAngle, w.rotation, tol) {
			t.Errorf("%s: expected rotation %v, got %v", w.name, w.rotation, r.RotationAngle)
		}
		if r.Tipping != NoRisk {
			t.Errorf("%s: expected NO_RISK, got %v", w.name, r.Tipping)
		}
		if r.SigmaMin != 0 {
			t.Errorf("%s: expected triangular sigma_min 0, got %v", w.name, r.SigmaMin)
		}
	}

	if a.AnyTippingRisk() {
		t.Errorf("expected no tipping risk in reference cases")
	}
}

func TestAnalyze_DefaultFactorForUnknownCase(t *testing.T) {
	cases := LoadCases{{Name: "Maintenance", Moment: 1000, Vertical: 2000}}
	a, err := Analyze(referenceGeometry, cases, referenceConfig())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.Results[0].CorrectionFactor != DefaultCorrectionFactor {
		t.Errorf("expected default factor %v, got %v", DefaultCorrectionFactor, a.Results[0].CorrectionFactor)
	}

	p, _ := ComputeSettlement(1000, 2000, 7.7, 7.7, 20000, 1.0)
	if a.Results[0].Settlement != p.Settlement {
		t.Errorf("expected settlement with factor 1.0 (%v), got %v", p.Settlement, a.Results[0].Settlement)
	}
}

func TestAnalyze_ParallelMatchesSequential(t *testing.T) {
	cfg := referenceConfig()
	seq, err := Analyze(referenceGeometry, referenceCases(), cfg)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}

	cfg.Parallel = true
	par, err := Analyze(referenceGeometry, referenceCases(), cfg)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	for i := range seq.Results {
		if seq.Results[i] != par.Results[i] {
			t.Errorf("result %d differs: %+v vs %+v", i, seq.Results[i], par.Results[i])
		}
	}
}

func TestAnalyze_CasesAreIndependent(t *testing.T) {
	cfg := referenceConfig()
	all, err := Analyze(referenceGeometry, referenceCases(), cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	single, err := Analyze(referenceGeometry, referenceCases()[2:3], cfg)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	r, ok := all.Result("Storm Front")
	if !ok {
		t.Fatalf("expected Storm Front in results")
	}
	if r != single.Results[0] {
		t.Errorf("expected same result in isolation, got %+v vs %+v", r, single.Results[0])
	}
}

func TestAnalyze_TippingRisk(t *testing.T) {
	cases := LoadCases{{Name: "Overload", Moment: 3000, Vertical: 1000}}
	a, err := Analyze(Geometry{Length: 6, Width: 6, Depth: 1}, cases, referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if a.Results[0].Tipping != Risk {
		t.Errorf("expected RISK for e = 3 > B/3 = 2, got %v", a.Results[0].Tipping)
	}
	if !a.AnyTippingRisk() {
		t.Errorf("expected AnyTippingRisk to be true")
	}
}

func TestAnalyze_ValidationFailsFast(t *testing.T) {
	tests := []struct {
		name  string
		geom  Geometry
		cases LoadCases
	}{
		{"zero length", Geometry{Length: 0, Width: 7.7, Depth: 1.4}, referenceCases()},
		{"negative width", Geometry{Length: 7.7, Width: -1, Depth: 1.4}, referenceCases()},
		{"zero depth", Geometry{Length: 7.7, Width: 7.7, Depth: 0}, referenceCases()},
		{"no cases", referenceGeometry, LoadCases{}},
		{"zero vertical force", referenceGeometry, append(referenceCases(), LoadCase{Name: "Lift-off", Moment: 10})},
		{"negative vertical force", referenceGeometry, LoadCases{{Name: "Uplift", Moment: 10, Vertical: -5}}},
		{"duplicate names", referenceGeometry, append(referenceCases(), referenceCases()[0])},
		{"empty name", referenceGeometry, LoadCases{{Moment: 10, Vertical: 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Analyze(tt.geom, tt.cases, referenceConfig())
			if err == nil {
				t.Fatalf("expected validation error, got nil")
			}
			if a != nil {
				t.Errorf("expected no partial results, got %+v", a)
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAnalyze_ZeroVerticalForceNamesCase(t *testing.T) {
	cases := LoadCases{{Name: "Lift-off", Moment: 10, Vertical: 0}}
	_, err := Analyze(referenceGeometry, cases, referenceConfig())

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if ve.Case != "Lift-off" {
		t.Errorf("expected case name on error, got %q", ve.Case)
	}
}

func TestAnalyze_ZeroFactorIsDomainError(t *testing.T) {
	cfg := referenceConfig()
	cfg.Factors = cfg.Factors.With("Storm Rear", 0)

	for _, parallel := range []bool{false, true} {
		cfg.Parallel = parallel
		a, err := Analyze(referenceGeometry, referenceCases(), cfg)
		if a != nil {
			t.Errorf("parallel=%v: expected no results, got %+v", parallel, a)
		}

		var de *DomainError
		if !errors.As(err, &de) {
			t.Fatalf("parallel=%v: expected *DomainError, got %T (%v)", parallel, err, err)
		}
		if de.Case != "Storm Rear" {
			t.Errorf("parallel=%v: expected case Storm Rear, got %q", parallel, de.Case)
		}
	}
}

func TestAnalyze_NegativeFactorRejected(t *testing.T) {
	cfg := referenceConfig()
	cfg.Factors = cfg.Factors.With("Crane Operation", -1)

	if _, err := Analyze(referenceGeometry, referenceCases(), cfg); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestAnalyze_ZeroModulus(t *testing.T) {
	cfg := referenceConfig()
	cfg.Material.ElasticModulus = 0

	if _, err := Analyze(referenceGeometry, referenceCases(), cfg); !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestAnalysis_Governing(t *testing.T) {
	a, err := Analyze(referenceGeometry, referenceCases(), referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	gov, ok := a.Governing()
	if !ok {
		t.Fatalf("expected a governing case")
	}
	if gov.Name() != "Crane Operation" {
		t.Errorf("expected Crane Operation to govern settlement, got %q", gov.Name())
	}

	if _, ok := (&Analysis{}).Governing(); ok {
		t.Errorf("expected no governing case for empty analysis")
	}
}

func TestAnalysis_Series(t *testing.T) {
	a, err := Analyze(referenceGeometry, referenceCases(), referenceConfig())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	s, e, r := a.Settlements(), a.Eccentricities(), a.RotationAngles()
	if len(s) != 4 || len(e) != 4 || len(r) != 4 {
		t.Fatalf("expected 4 values per series, got %d, %d, %d", len(s), len(e), len(r))
	}
	for i, res := range a.Results {
		if s[i] != res.Settlement || e[i] != res.Eccentricity || r[i] != res.RotationAngle {
			t.Errorf("series %d out of order", i)
		}
	}
}
