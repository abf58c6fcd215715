package physics

import "math"

// CentrifugalAccel computes the centrifugal acceleration at the bowl wall in
// m/s² for a bowl of the given diameter (mm) spinning at rpm:
//
//	a = ω²r, ω = 2πN/60
//
// Non-negative for any real rpm; zero rpm yields zero acceleration.
func CentrifugalAccel(bowlDiameterMM, rpm float64) float64 {
	r := bowlDiameterMM / 2000 // mm to m, diameter to radius
	omega := rpm * 2 * math.Pi / 60
	return omega * omega * r
}

// GForce expresses the centrifugal acceleration as a multiple of standard
// gravity.
func GForce(bowlDiameterMM, rpm float64) float64 {
	return CentrifugalAccel(bowlDiameterMM, rpm) / G
}
