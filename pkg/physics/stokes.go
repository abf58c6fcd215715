package physics

import "math"

// StokesVelocity computes the unhindered terminal settling/rising velocity
// (m/s) of a sphere of the given diameter (m) in a continuous phase:
//
//	V_t = |d² × Δρ × a × φ / (18 × μ)|
//
// densityDiff (kg/m³) may be negative for rising droplets; the sign is
// discarded, the model is agnostic to direction. viscosity is dynamic
// viscosity in Pa·s, accel in m/s², sphericity the shape correction
// (1.0 for a perfect sphere). A zero viscosity is the caller's problem.
func StokesVelocity(diameter, densityDiff, viscosity, accel, sphericity float64) float64 {
	v := diameter * diameter * densityDiff * accel * sphericity / (18 * viscosity)
	return math.Abs(v)
}
