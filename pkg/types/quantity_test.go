package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocity_UnitAccessors(t *testing.T) {
	v := Velocity(0.0325)
	assert.InDelta(t, 32.5, v.MmPerS(), 1e-12)
	assert.InDelta(t, 32500, v.UmPerS(), 1e-9)
}

func TestVelocity_Humanized(t *testing.T) {
	cases := []struct {
		in   Velocity
		want string
	}{
		{Velocity(1.5), "1.500 m/s"},
		{Velocity(1.0), "1.000 m/s"},
		{Velocity(0.0325), "32.500 mm/s"},
		{Velocity(0.001), "1.000 mm/s"},
		{Velocity(2.5e-5), "25.000 µm/s"},
		{Velocity(0), "0.000 µm/s"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Humanized())
	}
}

func TestViscosity_UnitAccessors(t *testing.T) {
	m := Viscosity(0.05)
	assert.InDelta(t, 50, m.MPaS(), 1e-12)
}

func TestViscosity_Humanized(t *testing.T) {
	assert.Equal(t, "1.200 Pa·s", Viscosity(1.2).Humanized())
	assert.Equal(t, "50.000 mPa·s", Viscosity(0.05).Humanized())
}
