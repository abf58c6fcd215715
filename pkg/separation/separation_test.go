package separation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expect re-derives the full pipeline independently of Compute so the two can
// be cross-checked step by step.
func expect(feed FeedProperties, eq EquipmentConfig, cond OperatingConditions) Result {
	visc := feed.OilViscosity * 0.001 * math.Exp(feed.ViscosityTempCoeff*(25-cond.Temperature)*10)

	r := eq.BowlDiameter / 2000
	omega := cond.BowlSpeed * 2 * math.Pi / 60
	accel := omega * omega * r

	waterRho := feed.WaterDensity + feed.Salinity*0.0007
	oilV := math.Abs(feed.OilDropletD50 * 1e-6 * feed.OilDropletD50 * 1e-6 * (waterRho - feed.OilDensity) * accel * feed.OilSphericity / (18 * visc))
	solV := math.Abs(feed.SolidsD50 * 1e-6 * feed.SolidsD50 * 1e-6 * (feed.SolidsDensity - waterRho) * accel * feed.SolidsSphericity / (18 * visc))

	total := feed.SolidsFraction + feed.OilFraction*0.1
	hindrance := 0.0
	if total < feed.MaxPackingFraction {
		hindrance = math.Pow(1-total/feed.MaxPackingFraction, feed.HinderedSettlingN)
	}
	oilV *= hindrance
	solV *= hindrance

	vol := math.Pi * r * r * eq.BowlLength / 1000
	rt := vol / math.Max(cond.FeedFlow/3600, 0.001)
	dist := 0.3 * r

	oilBase := 100 / (1 + math.Exp(-2.5*(oilV*rt/dist-1)))
	solBase := 100 / (1 + math.Exp(-2.5*(solV*rt/dist-1)))

	demEffect := 0.0
	if feed.DemulsifierDose > 0 {
		cov := math.Min(0.95, (0.05*feed.DemulsifierDose)/(1+0.05*feed.DemulsifierDose)*0.95)
		demEffect = feed.DemulsifierEff * cov
	}
	emulsion := 1 - feed.EmulsionStability*0.3*(1-demEffect)/(feed.InterfacialTension/25)

	floc := 1.0
	if feed.FlocculantDose > 0 {
		floc = 1 + feed.FlocculantEff*math.Min(1, feed.FlocculantDose/50)*0.2
	}

	tempF := 1 + (cond.Temperature-60)*0.008
	flowF := math.Max(0.6, 1-(cond.FeedFlow-10)*0.04)

	oilEff := math.Min(99.5, math.Max(0, oilBase*flowF*emulsion*tempF))
	solEff := math.Min(99.9, math.Max(0, solBase*flowF*floc*tempF))

	carry := cond.FeedFlow * feed.OilFraction * (1 - oilEff/100)
	rec := cond.FeedFlow * feed.OilFraction * oilEff / 100
	solRec := cond.FeedFlow * feed.SolidsFraction * solEff / 100
	out := cond.FeedFlow - rec - solRec
	wq := 0.0
	if out > 0 {
		wq = carry / out * 1e6 * feed.OilDensity / feed.WaterDensity
	}

	return Result{
		OilEfficiency:    oilEff,
		SolidsEfficiency: solEff,
		WaterQualityPPM:  wq,
		GForce:           accel / 9.81,
		ResidenceTime:    rt,
	}
}

func TestCompute_DefaultScenario_WithLogs(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()
	res := Compute(feed, eq, cond)

	want := expect(feed, eq, cond)
	require.InDelta(t, want.OilEfficiency, res.OilEfficiency, 1e-9)
	require.InDelta(t, want.SolidsEfficiency, res.SolidsEfficiency, 1e-9)
	require.InDelta(t, want.WaterQualityPPM, res.WaterQualityPPM, 1e-6)
	require.InDelta(t, want.GForce, res.GForce, 1e-9)
	require.InDelta(t, want.ResidenceTime, res.ResidenceTime, 1e-9)

	// Design-basis expectations at the nominal setpoint.
	assert.InDelta(t, 2742, res.GForce, 100)
	assert.Greater(t, res.OilEfficiency, 80.0)
	assert.LessOrEqual(t, res.OilEfficiency, 99.5)
	assert.LessOrEqual(t, res.SolidsEfficiency, 99.9)
	assert.Positive(t, res.WaterQualityPPM)
	assert.Positive(t, res.ResidenceTime)
	assert.Positive(t, float64(res.Viscosity))

	t.Logf("oil eff      : %.2f %%", res.OilEfficiency)
	t.Logf("solids eff   : %.2f %%", res.SolidsEfficiency)
	t.Logf("OiW          : %.1f ppm", res.WaterQualityPPM)
	t.Logf("g-force      : %.0f g", res.GForce)
	t.Logf("residence    : %.1f s", res.ResidenceTime)
	t.Logf("viscosity    : %s", res.Viscosity.Humanized())
}

func TestCompute_Idempotent(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()
	first := Compute(feed, eq, cond)
	second := Compute(feed, eq, cond)
	require.Equal(t, first, second, "identical inputs must yield bit-identical results")
}

func TestCompute_MaxFlowBoundary(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()
	cond.FeedFlow = eq.MaxFlow

	res := Compute(feed, eq, cond)
	assert.GreaterOrEqual(t, res.OilEfficiency, 0.0)
	assert.LessOrEqual(t, res.OilEfficiency, 99.5)
	assert.GreaterOrEqual(t, res.SolidsEfficiency, 0.0)
	assert.LessOrEqual(t, res.SolidsEfficiency, 99.9)
}

func TestCompute_TemperatureMonotone(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()

	cond.Temperature = 60
	prev := Compute(feed, eq, cond).OilEfficiency
	for temp := 61.0; temp <= 70; temp++ {
		cond.Temperature = temp
		cur := Compute(feed, eq, cond).OilEfficiency
		assert.GreaterOrEqual(t, cur, prev, "oil efficiency must not decrease at %g°C", temp)
		prev = cur
	}
}

func TestCompute_DemulsifierHelps(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()

	feed.DemulsifierDose = 0
	undosed := Compute(feed, eq, cond)
	feed.DemulsifierDose = 50
	dosed := Compute(feed, eq, cond)

	assert.GreaterOrEqual(t, dosed.OilEfficiency, undosed.OilEfficiency)
	assert.LessOrEqual(t, dosed.WaterQualityPPM, undosed.WaterQualityPPM)
}

func TestCompute_FlocculantHelps(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()

	undosed := Compute(feed, eq, cond)
	feed.FlocculantDose = 25
	dosed := Compute(feed, eq, cond)

	assert.GreaterOrEqual(t, dosed.SolidsEfficiency, undosed.SolidsEfficiency)
	assert.LessOrEqual(t, dosed.SolidsEfficiency, 99.9)
}

func TestCompute_StoppedBowl(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()
	cond.BowlSpeed = 0

	res := Compute(feed, eq, cond)
	assert.Zero(t, res.GForce)
	assert.Zero(t, float64(res.OilSettlingVelocity))
	assert.Zero(t, float64(res.SolidsSettlingVelocity))
	assert.GreaterOrEqual(t, res.OilEfficiency, 0.0)
}

func TestCompute_JammedFeed(t *testing.T) {
	feed, eq, cond := DefaultFeed(), DefaultEquipment(), DefaultConditions()
	feed.SolidsFraction = feed.MaxPackingFraction

	res := Compute(feed, eq, cond)
	assert.Zero(t, float64(res.OilSettlingVelocity), "jammed suspension must not settle")
	assert.Zero(t, float64(res.SolidsSettlingVelocity))
}
