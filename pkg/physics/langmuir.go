package physics

// Langmuir isotherm defaults for demulsifier adsorption on the oil-water
// interface.
const (
	LangmuirK    = 0.05
	LangmuirQMax = 0.95
)

// LangmuirCoverage computes the fractional surface coverage of a dosed
// chemical:
//
//	θ = (K × C) / (1 + K × C) × θ_max
//
// Zero for dose ≤ 0, clamped to qMax, asymptotically approaching qMax as
// the dose grows.
func LangmuirCoverage(dosePPM, k, qMax float64) float64 {
	if dosePPM <= 0 {
		return 0
	}
	coverage := (k * dosePPM) / (1 + k*dosePPM) * qMax
	if coverage > qMax {
		return qMax
	}
	return coverage
}
