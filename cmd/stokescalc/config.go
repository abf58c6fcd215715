package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/karratha-wtp/stokescalc/pkg/separation"
)

// scenario is the on-disk TOML schema. Tables are pre-filled with the
// defaults before decoding, so partial files only override what they name.
type scenario struct {
	Feed       feedTable       `toml:"feed"`
	Equipment  equipmentTable  `toml:"equipment"`
	Conditions conditionsTable `toml:"conditions"`
}

type feedTable struct {
	WaterFraction  float64 `toml:"water_fraction"`
	OilFraction    float64 `toml:"oil_fraction"`
	SolidsFraction float64 `toml:"solids_fraction"`

	WaterDensity  float64 `toml:"water_density"`
	OilDensity    float64 `toml:"oil_density"`
	SolidsDensity float64 `toml:"solids_density"`

	OilDropletD50 float64 `toml:"oil_droplet_d50"`
	SolidsD50     float64 `toml:"solids_d50"`

	OilViscosity       float64 `toml:"oil_viscosity"`
	ViscosityTempCoeff float64 `toml:"viscosity_temp_coeff"`

	EmulsionStability  float64 `toml:"emulsion_stability"`
	InterfacialTension float64 `toml:"interfacial_tension"`

	DemulsifierDose float64 `toml:"demulsifier_dose"`
	DemulsifierEff  float64 `toml:"demulsifier_eff"`
	FlocculantDose  float64 `toml:"flocculant_dose"`
	FlocculantEff   float64 `toml:"flocculant_eff"`

	MaxPackingFraction float64 `toml:"max_packing_fraction"`
	HinderedSettlingN  float64 `toml:"hindered_settling_exp"`

	OilSphericity    float64 `toml:"oil_sphericity"`
	SolidsSphericity float64 `toml:"solids_sphericity"`

	Salinity float64 `toml:"salinity"`
}

type equipmentTable struct {
	BowlDiameter float64 `toml:"bowl_diameter"`
	BowlLength   float64 `toml:"bowl_length"`
	MaxRPM       int     `toml:"max_rpm"`
	MinRPM       int     `toml:"min_rpm"`
	MaxFlow      float64 `toml:"max_flow"`
}

type conditionsTable struct {
	Temperature float64 `toml:"temperature"`
	BowlSpeed   float64 `toml:"bowl_speed"`
	FeedFlow    float64 `toml:"feed_flow"`
}

func defaultScenario() scenario {
	feed := separation.DefaultFeed()
	eq := separation.DefaultEquipment()
	cond := separation.DefaultConditions()
	return scenario{
		Feed:       feedTable(feed),
		Equipment:  equipmentTable(eq),
		Conditions: conditionsTable(cond),
	}
}

// loadScenario reads a TOML scenario file over the defaults.
func loadScenario(path string) (scenario, error) {
	s := defaultScenario()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

func (s scenario) records() (separation.FeedProperties, separation.EquipmentConfig, separation.OperatingConditions) {
	return separation.FeedProperties(s.Feed),
		separation.EquipmentConfig(s.Equipment),
		separation.OperatingConditions(s.Conditions)
}
