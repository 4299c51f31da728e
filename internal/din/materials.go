package din

// Default material and soil constants

const (
	// ElasticModulus of the subsoil used in the settlement and rotation formulas
	// DIN 4019 stiffness modulus, kN/m²
	ElasticModulus = 20000.0

	// SoilBearingCapacity is the allowable soil pressure (kN/m²)
	// Reported only. No formula compares against it.
	SoilBearingCapacity = 250.0

	// Concrete grade of the footing (N/mm²)
	Fck = 25.0

	// Reinforcement steel grade (N/mm²)
	Fy = 500.0
)

// Default footing geometry of the reference crane foundation (m)
const (
	FootingLength = 7.7
	FootingWidth  = 7.7
	FootingDepth  = 1.4
)
