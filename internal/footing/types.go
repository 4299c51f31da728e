package footing

import (
	"fmt"
	"math"
	"sort"
)

// DefaultCorrectionFactor applies to load cases without a configured factor
const DefaultCorrectionFactor = 1.0

// Geometry represents a rectangular footing in plan
// Width B is the dimension in the direction of the overturning moment.
type Geometry struct {
	Length float64 `json:"length" yaml:"length"` // L (m)
	Width  float64 `json:"width" yaml:"width"`   // B (m)
	Depth  float64 `json:"depth" yaml:"depth"`   // H (m)
}

// Point represents a 2D plan coordinate (m)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate checks that every dimension is a positive finite number
func (g Geometry) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"length", g.Length},
		{"width", g.Width},
		{"depth", g.Depth},
	}
	for _, d := range dims {
		if !(d.value > 0) || math.IsInf(d.value, 0) {
			return &ValidationError{msg: fmt.Sprintf("footing %s must be positive, got %g", d.name, d.value)}
		}
	}
	return nil
}

// Area returns the contact area B·L (m²)
func (g Geometry) Area() float64 {
	return g.Width * g.Length
}

// Kern returns the middle-third limit B/6 for the linear pressure distribution
func (g Geometry) Kern() float64 {
	return g.Width / 6
}

// TippingLimit returns the eccentricity B/3 beyond which the footing is at risk of overturning
func (g Geometry) TippingLimit() float64 {
	return g.Width / 3
}

// Corners returns the plan corners counter-clockwise from the origin
func (g Geometry) Corners() [4]Point {
	return [4]Point{
		{X: 0, Y: 0},
		{X: g.Length, Y: 0},
		{X: g.Length, Y: g.Width},
		{X: 0, Y: g.Width},
	}
}

// LoadCase represents the resultant actions of one named load case
// at the footing base
type LoadCase struct {
	Name       string  `json:"name" yaml:"name"`
	Moment     float64 `json:"moment" yaml:"moment"`         // M (kN-m)
	Horizontal float64 `json:"horizontal" yaml:"horizontal"` // H (kN), carried but unused
	Vertical   float64 `json:"vertical" yaml:"vertical"`     // V (kN)
}

// LoadCases is an ordered sequence of load cases. Results and reports
// follow this order.
type LoadCases []LoadCase

// Validate checks names and vertical forces of all cases
func (cs LoadCases) Validate() error {
	if len(cs) == 0 {
		return &ValidationError{msg: "at least one load case is required"}
	}
	seen := make(map[string]bool, len(cs))
	for i, lc := range cs {
		if lc.Name == "" {
			return &ValidationError{msg: fmt.Sprintf("load case %d has no name", i+1)}
		}
		if seen[lc.Name] {
			return &ValidationError{Case: lc.Name, msg: "duplicate load case name"}
		}
		seen[lc.Name] = true

		if lc.Vertical == 0 {
			return &ValidationError{Case: lc.Name, msg: "vertical force must not be zero"}
		}
		if !(lc.Vertical > 0) || math.IsInf(lc.Vertical, 0) {
			return &ValidationError{Case: lc.Name, msg: fmt.Sprintf("vertical force must be positive, got %g", lc.Vertical)}
		}
		if math.IsNaN(lc.Moment) || math.IsInf(lc.Moment, 0) {
			return &ValidationError{Case: lc.Name, msg: "moment must be a finite number"}
		}
	}
	return nil
}

// Names returns the case names in order
func (cs LoadCases) Names() []string {
	names := make([]string, len(cs))
	for i, lc := range cs {
		names[i] = lc.Name
	}
	return names
}

// FactorTable maps load case names to settlement correction factors.
// Names without an entry resolve to DefaultCorrectionFactor.
type FactorTable struct {
	factors map[string]float64
}

// NewFactorTable creates a table from a copy of the given map
func NewFactorTable(factors map[string]float64) FactorTable {
	t := FactorTable{factors: make(map[string]float64, len(factors))}
	for name, f := range factors {
		t.factors[name] = f
	}
	return t
}

// Factor returns the configured factor for name, or DefaultCorrectionFactor
func (t FactorTable) Factor(name string) float64 {
	if f, ok := t.factors[name]; ok {
		return f
	}
	return DefaultCorrectionFactor
}

// Has reports whether a factor is configured for name
func (t FactorTable) Has(name string) bool {
	_, ok := t.factors[name]
	return ok
}

// With returns a copy of the table with name set to f
func (t FactorTable) With(name string, f float64) FactorTable {
	n := NewFactorTable(t.factors)
	n.factors[name] = f
	return n
}

// Len returns the number of configured factors
func (t FactorTable) Len() int {
	return len(t.factors)
}

// Names returns the configured case names in sorted order
func (t FactorTable) Names() []string {
	names := make([]string, 0, len(t.factors))
	for name := range t.factors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate rejects negative or non-finite factors. A zero factor is
// accepted here and surfaces as a DomainError in the rotation formula.
func (t FactorTable) Validate() error {
	for _, name := range t.Names() {
		f := t.factors[name]
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return &ValidationError{Case: name, msg: fmt.Sprintf("correction factor must be non-negative, got %g", f)}
		}
	}
	return nil
}

// Material holds the constants passed to the engine.
// Only ElasticModulus enters the formulas; the remaining values are
// reported with the results and never compared against.
type Material struct {
	ElasticModulus      float64 `json:"elastic_modulus" yaml:"elastic_modulus"`             // E (kN/m²)
	SoilBearingCapacity float64 `json:"soil_bearing_capacity" yaml:"soil_bearing_capacity"` // kN/m²
	Fck                 float64 `json:"fck" yaml:"fck"`                                     // N/mm²
	Fy                  float64 `json:"fy" yaml:"fy"`                                       // N/mm²
}

// Verdict is the outcome of the tipping check
type Verdict int

const (
	NoRisk Verdict = iota
	Risk
)

func (v Verdict) String() string {
	if v == Risk {
		return "RISK"
	}
	return "NO_RISK"
}

// MarshalText implements encoding.TextMarshaler
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Verdict) UnmarshalText(text []byte) error {
	switch string(text) {
	case "RISK":
		*v = Risk
	case "NO_RISK":
		*v = NoRisk
	default:
		return fmt.Errorf("unknown tipping verdict %q", text)
	}
	return nil
}
