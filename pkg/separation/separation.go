// Package separation predicts oil/water/solids separation performance of a
// disc-stack centrifuge from feed composition, equipment geometry and an
// operating setpoint. Compute is a pure function: identical inputs yield
// bit-identical results, and invocations are independent and safe to run
// concurrently.
package separation

import (
	"math"

	"github.com/karratha-wtp/stokescalc/pkg/physics"
	"github.com/karratha-wtp/stokescalc/pkg/types"
)

// Efficiency caps. Oil carryover is harder to fully eliminate than solids,
// hence the asymmetric bounds.
const (
	maxOilEfficiency    = 99.5
	maxSolidsEfficiency = 99.9
)

// Compute runs the separation-efficiency pipeline. It performs no input
// validation: non-physical inputs (zero viscosity, negative geometry,
// fractions not summing to 1) propagate as non-physical outputs.
func Compute(feed FeedProperties, equipment EquipmentConfig, conditions OperatingConditions) Result {
	// 1. Operating viscosity from the Arrhenius law.
	viscosity := physics.Viscosity(
		feed.OilViscosity,
		conditions.Temperature,
		feed.ViscosityTempCoeff,
		physics.RefTemperature,
	)

	// 2. Centrifugal acceleration and g-force.
	r := equipment.BowlDiameter / 2000 // m
	accel := physics.CentrifugalAccel(equipment.BowlDiameter, conditions.BowlSpeed)
	gForce := accel / physics.G

	// 3. Density deltas against salinity-adjusted water density.
	waterDensityAdj := feed.WaterDensity + feed.Salinity*0.0007
	oilDeltaRho := waterDensityAdj - feed.OilDensity
	solidsDeltaRho := feed.SolidsDensity - waterDensityAdj

	// 4. Unhindered Stokes velocities, D50s converted microns to m.
	oilD := feed.OilDropletD50 * 1e-6
	solidsD := feed.SolidsD50 * 1e-6

	oilVStokes := physics.StokesVelocity(oilD, oilDeltaRho, viscosity, accel, feed.OilSphericity)
	solidsVStokes := physics.StokesVelocity(solidsD, solidsDeltaRho, viscosity, accel, feed.SolidsSphericity)

	// 5. Hindered settling. Oil droplets contribute partial hindrance to the
	// effective solids loading.
	totalSolids := feed.SolidsFraction + feed.OilFraction*0.1

	oilVHindered := physics.HinderedVelocity(oilVStokes, totalSolids, feed.MaxPackingFraction, feed.HinderedSettlingN)
	solidsVHindered := physics.HinderedVelocity(solidsVStokes, totalSolids, feed.MaxPackingFraction, feed.HinderedSettlingN)

	// 6. Residence time and effective radial separation distance. Flow is
	// floored at 0.001 m³/s to keep the division finite.
	bowlVol := math.Pi * r * r * (equipment.BowlLength / 1000) // m³
	flow := conditions.FeedFlow / 3600                         // m³/h to m³/s
	residenceTime := bowlVol / math.Max(flow, 0.001)
	separationDist := r * 0.3

	// 7. Base efficiencies from sigma theory: logistic curve centered at
	// sigma = 1 (50% efficiency).
	oilSigma := oilVHindered * residenceTime / separationDist
	solidsSigma := solidsVHindered * residenceTime / separationDist

	oilEffBase := 100 / (1 + math.Exp(-2.5*(oilSigma-1)))
	solidsEffBase := 100 / (1 + math.Exp(-2.5*(solidsSigma-1)))

	// 8. Chemical dosing. Demulsifier coverage mitigates the efficiency loss
	// from stable emulsions; flocculant gives solids a bounded uplift
	// saturating at 50 ppm.
	demulsifierEffect := 0.0
	if feed.DemulsifierDose > 0 {
		coverage := physics.LangmuirCoverage(feed.DemulsifierDose, physics.LangmuirK, physics.LangmuirQMax)
		demulsifierEffect = feed.DemulsifierEff * coverage
	}

	interfacialFactor := feed.InterfacialTension / 25.0
	emulsionFactor := 1 - feed.EmulsionStability*0.3*(1-demulsifierEffect)/interfacialFactor

	flocculantFactor := 1.0
	if feed.FlocculantDose > 0 {
		flocEff := feed.FlocculantEff * math.Min(1, feed.FlocculantDose/50) * 0.2
		flocculantFactor = 1 + flocEff
	}

	// 9. Temperature factor, anchored at 60°C.
	tempFactor := 1 + (conditions.Temperature-60)*0.008

	// 10. Flow factor, anchored at 10 m³/h and floored at 0.6.
	flowFactor := math.Max(0.6, 1-(conditions.FeedFlow-10)*0.04)

	// 11. Final clamped efficiencies.
	oilEfficiency := clamp(oilEffBase*flowFactor*emulsionFactor*tempFactor, 0, maxOilEfficiency)
	solidsEfficiency := clamp(solidsEffBase*flowFactor*flocculantFactor*tempFactor, 0, maxSolidsEfficiency)

	// 12. Water quality: oil carryover concentrated into the net water
	// output, volume ppm corrected to mass by the density ratio.
	oilCarryover := conditions.FeedFlow * feed.OilFraction * (1 - oilEfficiency/100)
	oilRecovered := conditions.FeedFlow * feed.OilFraction * (oilEfficiency / 100)
	solidsRecovered := conditions.FeedFlow * feed.SolidsFraction * (solidsEfficiency / 100)
	waterOutput := conditions.FeedFlow - oilRecovered - solidsRecovered

	waterQuality := 0.0
	if waterOutput > 0 {
		waterQuality = (oilCarryover / waterOutput) * 1e6 * (feed.OilDensity / feed.WaterDensity)
	}

	return Result{
		OilEfficiency:          oilEfficiency,
		SolidsEfficiency:       solidsEfficiency,
		WaterQualityPPM:        waterQuality,
		GForce:                 gForce,
		ResidenceTime:          residenceTime,
		OilSettlingVelocity:    types.Velocity(oilVHindered),
		SolidsSettlingVelocity: types.Velocity(solidsVHindered),
		Viscosity:              types.Viscosity(viscosity),
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
