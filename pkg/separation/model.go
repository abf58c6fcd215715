package separation

import "github.com/karratha-wtp/stokescalc/pkg/types"

// FeedProperties describes the composition and physico-chemical state of the
// feed stream.
// Units:
//   - fractions: volume fractions, intended to sum to 1.0 (not enforced)
//   - densities: kg/m³
//   - D50 sizes: microns
//   - OilViscosity: mPa·s at 25°C
//   - InterfacialTension: mN/m
//   - doses: ppm
//   - Salinity: mg/L
type FeedProperties struct {
	WaterFraction  float64
	OilFraction    float64
	SolidsFraction float64

	WaterDensity  float64
	OilDensity    float64
	SolidsDensity float64

	OilDropletD50 float64
	SolidsD50     float64

	OilViscosity       float64
	ViscosityTempCoeff float64

	EmulsionStability  float64 // 0..1
	InterfacialTension float64

	DemulsifierDose float64
	DemulsifierEff  float64
	FlocculantDose  float64
	FlocculantEff   float64

	MaxPackingFraction float64
	HinderedSettlingN  float64 // Richardson-Zaki exponent

	OilSphericity    float64
	SolidsSphericity float64

	Salinity float64
}

// EquipmentConfig is the static geometry and rated limits of the centrifuge.
type EquipmentConfig struct {
	BowlDiameter float64 // mm
	BowlLength   float64 // mm
	MaxRPM       int
	MinRPM       int
	MaxFlow      float64 // m³/h
}

// OperatingConditions is the operator-chosen setpoint for one calculation.
// Values are expected within equipment limits; this is not enforced.
type OperatingConditions struct {
	Temperature float64 // °C
	BowlSpeed   float64 // RPM
	FeedFlow    float64 // m³/h
}

// Result is the output of one pipeline run. All fields are derived, full
// precision; display rounding is a presentation concern.
type Result struct {
	OilEfficiency    float64 // %
	SolidsEfficiency float64 // %
	WaterQualityPPM  float64 // oil-in-water, ppm
	GForce           float64
	ResidenceTime    float64 // s

	OilSettlingVelocity    types.Velocity // hindered, m/s
	SolidsSettlingVelocity types.Velocity // hindered, m/s
	Viscosity              types.Viscosity
}

// DefaultFeed returns feed properties for the design-basis produced-water
// stream.
func DefaultFeed() FeedProperties {
	return FeedProperties{
		WaterFraction:  0.75,
		OilFraction:    0.20,
		SolidsFraction: 0.05,

		WaterDensity:  1000.0,
		OilDensity:    890.0,
		SolidsDensity: 2650.0,

		OilDropletD50: 25.0,
		SolidsD50:     80.0,

		OilViscosity:       50.0,
		ViscosityTempCoeff: 0.025,

		EmulsionStability:  0.3,
		InterfacialTension: 25.0,

		DemulsifierDose: 50.0,
		DemulsifierEff:  0.7,
		FlocculantDose:  0.0,
		FlocculantEff:   0.8,

		MaxPackingFraction: 0.64,
		HinderedSettlingN:  4.65,

		OilSphericity:    1.0,
		SolidsSphericity: 0.8,

		Salinity: 35000.0,
	}
}

// DefaultEquipment returns the geometry of the installed disc-stack unit.
func DefaultEquipment() EquipmentConfig {
	return EquipmentConfig{
		BowlDiameter: 400.0,
		BowlLength:   1100.0,
		MaxRPM:       5000,
		MinRPM:       1500,
		MaxFlow:      15.0,
	}
}

// DefaultConditions returns the nominal operating setpoint.
func DefaultConditions() OperatingConditions {
	return OperatingConditions{
		Temperature: 65.0,
		BowlSpeed:   3500.0,
		FeedFlow:    12.0,
	}
}
