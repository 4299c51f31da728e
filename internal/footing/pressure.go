package footing

import (
	"fmt"
	"math"
)

// Pressure holds the soil contact pressure and settlement of one load case
type Pressure struct {
	Eccentricity float64 // e = M/V (m)
	SigmaMax     float64 // Maximum edge pressure (kN/m²)
	SigmaMin     float64 // Minimum edge pressure (kN/m²)
	Settlement   float64 // S (m)

	// Triangular is true when the resultant lies outside the middle third
	// and the soil contact gapes at one edge
	Triangular bool
}

// ComputeSettlement calculates eccentricity, edge pressures and settlement
//
//	e ≤ B/6:  σ = V/(B·L)·(1 ± 6e/B)
//	e > B/6:  σmax = 2V/(B·L), σmin = 0
//	S = σmax·B·f / E
func ComputeSettlement(m, v, b, l, modulus, factor float64) (Pressure, error) {
	if v == 0 {
		return Pressure{}, &ValidationError{msg: "vertical force must not be zero"}
	}
	if !finite(v) || !finite(m) {
		return Pressure{}, &ValidationError{msg: fmt.Sprintf("loads must be finite: M=%g, V=%g", m, v)}
	}
	if !(b > 0) || !(l > 0) || !finite(b) || !finite(l) {
		return Pressure{}, &ValidationError{msg: fmt.Sprintf("invalid footing dimensions: B=%g, L=%g", b, l)}
	}
	if !(modulus > 0) || !finite(modulus) {
		return Pressure{}, &DomainError{msg: fmt.Sprintf("elastic modulus must be positive, got %g", modulus)}
	}
	if !(factor >= 0) || !finite(factor) {
		return Pressure{}, &ValidationError{msg: fmt.Sprintf("correction factor must be non-negative, got %g", factor)}
	}

	p := Pressure{}
	p.Eccentricity = m / v

	if p.Eccentricity <= b/6 {
		// Resultant within the middle third
		base := v / (b * l)
		p.SigmaMax = base * (1 + 6*p.Eccentricity/b)
		p.SigmaMin = base * (1 - 6*p.Eccentricity/b)

		// 6e/B can round just above 1 at e == B/6
		p.SigmaMin = math.Max(p.SigmaMin, 0)
	} else {
		p.SigmaMax = 2 * v / (b * l)
		p.SigmaMin = 0
		p.Triangular = true
	}

	p.Settlement = p.SigmaMax * b * factor / modulus

	return p, nil
}

// CheckTipping returns Risk when the eccentricity exceeds B/3
func CheckTipping(e, b float64) Verdict {
	if e > b/3 {
		return Risk
	}
	return NoRisk
}

// ComputeRotationAngle returns the footing rotation in degrees
//
//	tan α = M / (B·E·f)
func ComputeRotationAngle(m, b, modulus, factor float64) (float64, error) {
	if !finite(m) {
		return 0, &ValidationError{msg: fmt.Sprintf("moment must be finite, got %g", m)}
	}
	stiffness := b * modulus * factor
	if stiffness == 0 || !finite(stiffness) {
		return 0, &DomainError{msg: fmt.Sprintf("rotation undefined for B·E·f = 0 (B=%g, E=%g, f=%g)", b, modulus, factor)}
	}

	tanAlpha := m / stiffness
	return math.Atan(tanAlpha) * (180 / math.Pi), nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
