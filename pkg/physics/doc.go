// Package physics holds the closed-form physical sub-models used by the
// separation pipeline: Arrhenius viscosity, centrifugal acceleration,
// Stokes terminal velocity, Richardson-Zaki hindered settling and the
// Langmuir adsorption isotherm.
//
// Every function is a pure mapping over its numeric inputs. The package
// performs no validation: clamping and flooring policies are part of the
// individual model contracts, but genuinely non-physical inputs (zero
// viscosity, negative diameters) propagate as non-physical outputs.
package physics
