package physics

import "math"

// RefTemperature is the temperature (°C) at which reference viscosities are
// quoted.
const RefTemperature = 25.0

// Viscosity converts a reference viscosity to the operating viscosity at a
// given temperature using a simplified Arrhenius law:
//
//	μ = μ_ref × exp(k × (T_ref - T) × 10)
//
// refVisc is in mPa·s (the usual datasheet unit); the result is in Pa·s.
// Strictly positive for any finite input, monotonically decreasing in
// temperature when tempCoeff > 0.
func Viscosity(refVisc, temp, tempCoeff, refTemp float64) float64 {
	visc := refVisc * 0.001 // mPa·s to Pa·s
	return visc * math.Exp(tempCoeff*(refTemp-temp)*10)
}
