package physics

// Physical constants.
const (
	// G is the standard gravitational acceleration in m/s².
	G = 9.81

	// RGas is the universal gas constant in J/(mol·K).
	RGas = 8.314
)
