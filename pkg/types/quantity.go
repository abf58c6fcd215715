package types

import "fmt"

// Velocity is a float64 wrapper representing a velocity in m/s.
type Velocity float64

// Humanized returns a human-readable string with automatic unit
// (m/s, mm/s, µm/s).
func (v Velocity) Humanized() string {
	f := float64(v)
	switch {
	case f >= 1:
		return fmt.Sprintf("%.3f m/s", f)
	case f >= 1e-3:
		return fmt.Sprintf("%.3f mm/s", f*1e3)
	default:
		return fmt.Sprintf("%.3f µm/s", f*1e6)
	}
}

// MmPerS returns the velocity in millimetres per second.
func (v Velocity) MmPerS() float64 { return float64(v) * 1e3 }

// UmPerS returns the velocity in micrometres per second.
func (v Velocity) UmPerS() float64 { return float64(v) * 1e6 }

// Viscosity is a float64 wrapper representing a dynamic viscosity in Pa·s.
type Viscosity float64

// Humanized returns a human-readable string with automatic unit
// (Pa·s, mPa·s).
func (m Viscosity) Humanized() string {
	f := float64(m)
	if f >= 1 {
		return fmt.Sprintf("%.3f Pa·s", f)
	}
	return fmt.Sprintf("%.3f mPa·s", f*1e3)
}

// MPaS returns the viscosity in millipascal-seconds (equal to centipoise).
func (m Viscosity) MPaS() float64 { return float64(m) * 1e3 }
