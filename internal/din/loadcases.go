package din

import "github.com/alexiusacademia/gofound/internal/footing"

// LoadCaseDefinition represents a named crane foundation load case
// together with its empirical settlement correction factor
type LoadCaseDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Moment     float64 `json:"moment"`     // M - overturning moment (kN-m)
	Horizontal float64 `json:"horizontal"` // H - horizontal force (kN)
	Vertical   float64 `json:"vertical"`   // V - vertical force (kN)

	// Correction factor calibrated against the spreadsheet validation
	Factor float64 `json:"factor"`
}

// Reference crane foundation load cases, in reporting order
var LoadCases = []LoadCaseDefinition{
	{
		Name:        "Crane Operation",
		Description: "In service, rated load at maximum radius",
		Moment:      5681.0,
		Horizontal:  65.0,
		Vertical:    2975.2,
		Factor:      1.25,
	},
	{
		Name:        "Storm Rear",
		Description: "Out of service, storm wind from the rear",
		Moment:      6380.0,
		Horizontal:  150.0,
		Vertical:    2925.2,
		Factor:      1.05,
	},
	{
		Name:        "Storm Front",
		Description: "Out of service, storm wind from the front",
		Moment:      6980.0,
		Horizontal:  100.0,
		Vertical:    2925.2,
		Factor:      1.02,
	},
	{
		Name:        "During Assembly",
		Description: "Erection stage, counter-jib without ballast",
		Moment:      3980.0,
		Horizontal:  50.0,
		Vertical:    2705.2,
		Factor:      1.3,
	},
}

// Cases converts the definitions to the ordered load sequence used by the engine
func Cases(defs []LoadCaseDefinition) footing.LoadCases {
	cases := make(footing.LoadCases, 0, len(defs))
	for _, d := range defs {
		cases = append(cases, footing.LoadCase{
			Name:       d.Name,
			Moment:     d.Moment,
			Horizontal: d.Horizontal,
			Vertical:   d.Vertical,
		})
	}
	return cases
}

// Factors builds the correction factor table for the given definitions.
// Cases missing from the table fall back to footing.DefaultCorrectionFactor.
func Factors(defs []LoadCaseDefinition) footing.FactorTable {
	factors := make(map[string]float64, len(defs))
	for _, d := range defs {
		factors[d.Name] = d.Factor
	}
	return footing.NewFactorTable(factors)
}

// DefaultMaterial returns the reference material constants
func DefaultMaterial() footing.Material {
	return footing.Material{
		ElasticModulus:      ElasticModulus,
		SoilBearingCapacity: SoilBearingCapacity,
		Fck:                 Fck,
		Fy:                  Fy,
	}
}

// DefaultGeometry returns the reference footing dimensions
func DefaultGeometry() footing.Geometry {
	return footing.Geometry{
		Length: FootingLength,
		Width:  FootingWidth,
		Depth:  FootingDepth,
	}
}
