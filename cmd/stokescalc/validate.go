package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/karratha-wtp/stokescalc/pkg/physics"
	"github.com/karratha-wtp/stokescalc/pkg/separation"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Run the fixed battery of sanity checks against known values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate()
		},
	}
}

type check struct {
	name string
	pass bool
	note string
}

func runValidate() error {
	var checks []check

	// G-force at the rated point.
	gf := physics.GForce(400, 3500)
	checks = append(checks, check{
		name: "g_force",
		pass: scalar.EqualWithinAbs(gf, 2742, 100),
		note: fmt.Sprintf("%.0f g (expected ~2742)", gf),
	})

	// Viscosity must fall with temperature.
	visc25 := physics.Viscosity(50, 25, 0.025, physics.RefTemperature)
	visc65 := physics.Viscosity(50, 65, 0.025, physics.RefTemperature)
	checks = append(checks, check{
		name: "viscosity_temp",
		pass: visc65 < visc25,
		note: fmt.Sprintf("%.2f mPa·s @ 25°C → %.2f mPa·s @ 65°C", visc25*1000, visc65*1000),
	})

	// Stokes velocity of a 25 µm droplet at ~100 g.
	vStokes := physics.StokesVelocity(25e-6, 100, 0.001, 1000, 1.0)
	checks = append(checks, check{
		name: "stokes_velocity",
		pass: vStokes > 0,
		note: fmt.Sprintf("%.4f mm/s", vStokes*1000),
	})

	// Hindered settling must slow the droplet down.
	vHindered := physics.HinderedVelocity(vStokes, 0.2, 0.64, 4.65)
	checks = append(checks, check{
		name: "hindered_settling",
		pass: vHindered < vStokes,
		note: fmt.Sprintf("%.4f mm/s (factor: %.2f)", vHindered*1000, vHindered/vStokes),
	})

	// Langmuir coverage at the default demulsifier dose.
	coverage := physics.LangmuirCoverage(50, physics.LangmuirK, physics.LangmuirQMax)
	checks = append(checks, check{
		name: "langmuir",
		pass: coverage > 0 && coverage < 1,
		note: fmt.Sprintf("%.1f%% coverage", coverage*100),
	})

	// Full pipeline at the design-basis defaults.
	res := separation.Compute(separation.DefaultFeed(), separation.DefaultEquipment(), separation.DefaultConditions())
	checks = append(checks, check{
		name: "separation",
		pass: res.OilEfficiency > 80 && res.WaterQualityPPM < 100,
		note: fmt.Sprintf("oil %.1f%%, solids %.1f%%, OiW %.0f ppm, %.0f g, %.1f s",
			res.OilEfficiency, res.SolidsEfficiency, res.WaterQualityPPM, res.GForce, res.ResidenceTime),
	})

	passed := 0
	for _, c := range checks {
		status := "ok  "
		if c.pass {
			passed++
		} else {
			status = "FAIL"
		}
		fmt.Printf("%s %-18s %s\n", status, c.name, c.note)
	}
	fmt.Printf("\nValidation: %d/%d tests passed\n", passed, len(checks))
	return nil
}
