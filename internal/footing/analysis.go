package footing

import (
	"golang.org/x/sync/errgroup"
)

// Config holds the per-run engine configuration
type Config struct {
	Material Material
	Factors  FactorTable

	// Parallel evaluates load cases concurrently. Result order is unchanged.
	Parallel bool
}

// CaseResult holds the analysis results of one load case
type CaseResult struct {
	Load             LoadCase `json:"load"`
	CorrectionFactor float64  `json:"correction_factor"`

	Eccentricity float64 `json:"eccentricity"` // m
	SigmaMax     float64 `json:"sigma_max"`    // kN/m²
	SigmaMin     float64 `json:"sigma_min"`    // kN/m²
	Settlement   float64 `json:"settlement"`   // m
	Triangular   bool    `json:"triangular"`

	Tipping       Verdict `json:"tipping"`
	RotationAngle float64 `json:"rotation_angle"` // degrees
}

// Name returns the load case name
func (r CaseResult) Name() string {
	return r.Load.Name
}

// Analysis holds the results of all load cases of one run
type Analysis struct {
	Geometry Geometry     `json:"geometry"`
	Material Material     `json:"material"`
	Results  []CaseResult `json:"results"`
}

// Analyze evaluates every load case against the footing.
// Input is validated up front; no partial results are returned on error.
func Analyze(geom Geometry, cases LoadCases, cfg Config) (*Analysis, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	if err := cases.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Factors.Validate(); err != nil {
		return nil, err
	}

	results := make([]CaseResult, len(cases))

	if cfg.Parallel {
		var g errgroup.Group
		for i, lc := range cases {
			i, lc := i, lc
			g.Go(func() error {
				r, err := evaluate(geom, lc, cfg)
				if err != nil {
					return err
				}
				results[i] = r
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, lc := range cases {
			r, err := evaluate(geom, lc, cfg)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
	}

	return &Analysis{
		Geometry: geom,
		Material: cfg.Material,
		Results:  results,
	}, nil
}

// evaluate runs the three checks for a single load case
func evaluate(geom Geometry, lc LoadCase, cfg Config) (CaseResult, error) {
	factor := cfg.Factors.Factor(lc.Name)
	modulus := cfg.Material.ElasticModulus

	p, err := ComputeSettlement(lc.Moment, lc.Vertical, geom.Width, geom.Length, modulus, factor)
	if err != nil {
		return CaseResult{}, withCase(err, lc.Name)
	}

	alpha, err := ComputeRotationAngle(lc.Moment, geom.Width, modulus, factor)
	if err != nil {
		return CaseResult{}, withCase(err, lc.Name)
	}

	return CaseResult{
		Load:             lc,
		CorrectionFactor: factor,
		Eccentricity:     p.Eccentricity,
		SigmaMax:         p.SigmaMax,
		SigmaMin:         p.SigmaMin,
		Settlement:       p.Settlement,
		Triangular:       p.Triangular,
		Tipping:          CheckTipping(p.Eccentricity, geom.Width),
		RotationAngle:    alpha,
	}, nil
}

// Result returns the result of the named load case
func (a *Analysis) Result(name string) (CaseResult, bool) {
	for _, r := range a.Results {
		if r.Load.Name == name {
			return r, true
		}
	}
	return CaseResult{}, false
}

// Governing returns the case with the largest settlement.
// The first case wins on ties.
func (a *Analysis) Governing() (CaseResult, bool) {
	if len(a.Results) == 0 {
		return CaseResult{}, false
	}
	gov := a.Results[0]
	for _, r := range a.Results[1:] {
		if r.Settlement > gov.Settlement {
			gov = r
		}
	}
	return gov, true
}

// AnyTippingRisk reports whether at least one case is at risk of overturning
func (a *Analysis) AnyTippingRisk() bool {
	for _, r := range a.Results {
		if r.Tipping == Risk {
			return true
		}
	}
	return false
}

// Settlements returns the settlement of every case in order
func (a *Analysis) Settlements() []float64 {
	out := make([]float64, len(a.Results))
	for i, r := range a.Results {
		out[i] = r.Settlement
	}
	return out
}

// Eccentricities returns the eccentricity of every case in order
func (a *Analysis) Eccentricities() []float64 {
	out := make([]float64, len(a.Results))
	for i, r := range a.Results {
		out[i] = r.Eccentricity
	}
	return out
}

// RotationAngles returns the rotation angle of every case in order
func (a *Analysis) RotationAngles() []float64 {
	out := make([]float64, len(a.Results))
	for i, r := range a.Results {
		out[i] = r.RotationAngle
	}
	return out
}
