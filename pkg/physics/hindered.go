package physics

import "math"

// HinderedVelocity applies the Richardson-Zaki concentration correction to an
// unhindered Stokes velocity:
//
//	V_h = V_s × (1 - φ/φ_max)^n
//
// At or above the maximum packing fraction the suspension jams and the
// velocity is exactly 0. Output is in [0, stokesVel] and monotone
// non-increasing in fraction.
func HinderedVelocity(stokesVel, fraction, maxPacking, exponent float64) float64 {
	if fraction >= maxPacking {
		return 0
	}
	return stokesVel * math.Pow(1-fraction/maxPacking, exponent)
}
