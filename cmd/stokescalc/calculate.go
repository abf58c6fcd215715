package main

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/karratha-wtp/stokescalc/pkg/separation"
)

type calcOpts struct {
	// operating conditions
	temp float64
	rpm  float64
	flow float64

	// feed properties
	oilFrac     float64
	waterFrac   float64
	dropletSize float64
	viscosity   float64
	demulsifier float64
	flocculant  float64

	// equipment
	bowlDiameter float64
	bowlLength   float64

	// outputs
	jsonOut    bool
	configPath string
}

func newCalculateCmd() *cobra.Command {
	var o calcOpts

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run one separation calculation and print a report",
		Long: `Calculate predicts oil/water/solids separation performance for a single
operating setpoint. Defaults describe the design-basis feed and the installed
unit; override individual values with flags or load a full scenario with
--config.

Examples:
  stokescalc calculate --temp 65 --rpm 3500 --flow 12
  stokescalc calculate --temp 70 --rpm 4000 --json
  stokescalc calculate --config scenario.toml --flow 14`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd, o)
		},
	}

	registerInputFlags(cmd, &o)
	cmd.Flags().BoolVar(&o.jsonOut, "json", false, "also emit the result record as JSON")

	return cmd
}

// registerInputFlags declares the calculation input surface. Flag defaults
// match the record defaults so --help doubles as the datasheet.
func registerInputFlags(cmd *cobra.Command, o *calcOpts) {
	feed := separation.DefaultFeed()
	eq := separation.DefaultEquipment()
	cond := separation.DefaultConditions()

	cmd.Flags().Float64Var(&o.temp, "temp", cond.Temperature, "operating temperature (°C)")
	cmd.Flags().Float64Var(&o.rpm, "rpm", cond.BowlSpeed, "bowl speed (RPM)")
	cmd.Flags().Float64Var(&o.flow, "flow", cond.FeedFlow, "feed flow rate (m³/h)")

	cmd.Flags().Float64Var(&o.oilFrac, "oil-frac", feed.OilFraction, "oil volume fraction [0..1]")
	cmd.Flags().Float64Var(&o.waterFrac, "water-frac", feed.WaterFraction, "water volume fraction [0..1]")
	cmd.Flags().Float64Var(&o.dropletSize, "droplet-size", feed.OilDropletD50, "oil droplet D50 (µm)")
	cmd.Flags().Float64Var(&o.viscosity, "viscosity", feed.OilViscosity, "oil viscosity at 25°C (mPa·s)")
	cmd.Flags().Float64Var(&o.demulsifier, "demulsifier", feed.DemulsifierDose, "demulsifier dose (ppm)")
	cmd.Flags().Float64Var(&o.flocculant, "flocculant", feed.FlocculantDose, "flocculant dose (ppm)")

	cmd.Flags().Float64Var(&o.bowlDiameter, "bowl-diameter", eq.BowlDiameter, "bowl diameter (mm)")
	cmd.Flags().Float64Var(&o.bowlLength, "bowl-length", eq.BowlLength, "bowl length (mm)")

	cmd.Flags().StringVar(&o.configPath, "config", "", "TOML scenario file (flags override file values)")
}

// buildInputs resolves defaults, scenario file and explicit flags, in that
// order of precedence.
func buildInputs(cmd *cobra.Command, o calcOpts) (separation.FeedProperties, separation.EquipmentConfig, separation.OperatingConditions, error) {
	s := defaultScenario()
	if o.configPath != "" {
		loaded, err := loadScenario(o.configPath)
		if err != nil {
			return separation.FeedProperties{}, separation.EquipmentConfig{}, separation.OperatingConditions{}, err
		}
		s = loaded
	}
	feed, eq, cond := s.records()

	set := cmd.Flags().Changed
	if set("temp") {
		cond.Temperature = o.temp
	}
	if set("rpm") {
		cond.BowlSpeed = o.rpm
	}
	if set("flow") {
		cond.FeedFlow = o.flow
	}
	if set("oil-frac") {
		feed.OilFraction = o.oilFrac
	}
	if set("water-frac") {
		feed.WaterFraction = o.waterFrac
	}
	if set("oil-frac") || set("water-frac") {
		// Solids make up whatever the named phases leave over.
		feed.SolidsFraction = 1 - feed.OilFraction - feed.WaterFraction
	}
	if set("droplet-size") {
		feed.OilDropletD50 = o.dropletSize
	}
	if set("viscosity") {
		feed.OilViscosity = o.viscosity
	}
	if set("demulsifier") {
		feed.DemulsifierDose = o.demulsifier
	}
	if set("flocculant") {
		feed.FlocculantDose = o.flocculant
	}
	if set("bowl-diameter") {
		eq.BowlDiameter = o.bowlDiameter
	}
	if set("bowl-length") {
		eq.BowlLength = o.bowlLength
	}

	if err := checkInputs(feed, eq, cond); err != nil {
		return separation.FeedProperties{}, separation.EquipmentConfig{}, separation.OperatingConditions{}, err
	}
	return feed, eq, cond, nil
}

// checkInputs is the argument-level validation the core deliberately omits.
func checkInputs(feed separation.FeedProperties, eq separation.EquipmentConfig, cond separation.OperatingConditions) error {
	if feed.OilFraction < 0 || feed.OilFraction > 1 {
		return fmt.Errorf("oil fraction %g outside [0,1]", feed.OilFraction)
	}
	if feed.WaterFraction < 0 || feed.WaterFraction > 1 {
		return fmt.Errorf("water fraction %g outside [0,1]", feed.WaterFraction)
	}
	if feed.OilFraction+feed.WaterFraction > 1 {
		return fmt.Errorf("oil + water fractions exceed 1 (%g)", feed.OilFraction+feed.WaterFraction)
	}
	if feed.OilViscosity <= 0 {
		return fmt.Errorf("oil viscosity must be > 0, got %g mPa·s", feed.OilViscosity)
	}
	if eq.BowlDiameter <= 0 || eq.BowlLength <= 0 {
		return fmt.Errorf("bowl geometry must be positive (diameter %g mm, length %g mm)", eq.BowlDiameter, eq.BowlLength)
	}
	if eq.MinRPM > eq.MaxRPM {
		return fmt.Errorf("min RPM %d exceeds max RPM %d", eq.MinRPM, eq.MaxRPM)
	}
	if cond.FeedFlow < 0 {
		return fmt.Errorf("feed flow must be >= 0, got %g m³/h", cond.FeedFlow)
	}
	return nil
}

func runCalculate(cmd *cobra.Command, o calcOpts) error {
	feed, eq, cond, err := buildInputs(cmd, o)
	if err != nil {
		return err
	}

	res := separation.Compute(feed, eq, cond)
	printReport(cond, res)

	if o.jsonOut {
		b, err := json.MarshalIndent(resultRow(res), "", "  ")
		if err != nil {
			return err
		}
		fmt.Println("\nJSON Output:")
		fmt.Println(string(b))
	}
	return nil
}

func printReport(cond separation.OperatingConditions, res separation.Result) {
	line := "============================================================"
	fmt.Println(line)
	fmt.Println("CENTRIFUGE SEPARATION CALCULATION RESULTS")
	fmt.Println(line)
	fmt.Println("\nOperating Conditions:")
	fmt.Printf("  Temperature:    %g°C\n", cond.Temperature)
	fmt.Printf("  Bowl Speed:     %g RPM\n", cond.BowlSpeed)
	fmt.Printf("  Feed Flow:      %g m³/h\n", cond.FeedFlow)
	fmt.Println("\nCalculated Results:")
	fmt.Printf("  G-force:        %.0f g\n", res.GForce)
	fmt.Printf("  Residence Time: %.1f seconds\n", res.ResidenceTime)
	fmt.Printf("  Viscosity:      %.2f mPa·s\n", res.Viscosity.MPaS())
	fmt.Println("\nSeparation Performance:")
	fmt.Printf("  Oil Efficiency:      %.1f%%\n", res.OilEfficiency)
	fmt.Printf("  Solids Efficiency:   %.1f%%\n", res.SolidsEfficiency)
	fmt.Printf("  Water Quality (OiW): %.0f ppm\n", res.WaterQualityPPM)
	fmt.Println(line)
}

// row is the structured rendering of a Result. Rounding happens here, at the
// presentation boundary; the core keeps full precision.
type row struct {
	OilEfficiency          float64 `json:"oil_efficiency"`
	SolidsEfficiency       float64 `json:"solids_efficiency"`
	WaterQualityPPM        float64 `json:"water_quality_ppm"`
	GForce                 float64 `json:"g_force"`
	ResidenceTime          float64 `json:"residence_time"`
	OilSettlingVelocity    float64 `json:"oil_settling_velocity"`    // mm/s
	SolidsSettlingVelocity float64 `json:"solids_settling_velocity"` // mm/s
	Viscosity              float64 `json:"viscosity"`                // mPa·s
}

func resultRow(res separation.Result) row {
	return row{
		OilEfficiency:          roundTo(res.OilEfficiency, 2),
		SolidsEfficiency:       roundTo(res.SolidsEfficiency, 2),
		WaterQualityPPM:        roundTo(res.WaterQualityPPM, 1),
		GForce:                 math.Round(res.GForce),
		ResidenceTime:          roundTo(res.ResidenceTime, 1),
		OilSettlingVelocity:    res.OilSettlingVelocity.MmPerS(),
		SolidsSettlingVelocity: res.SolidsSettlingVelocity.MmPerS(),
		Viscosity:              res.Viscosity.MPaS(),
	}
}

func roundTo(x float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(x*pow) / pow
}
