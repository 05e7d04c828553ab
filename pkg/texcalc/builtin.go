package texcalc

import "calclab.net/texcalc/internal/store"

// builtinConstants is the default physical-constant catalog, loaded unless
// WithoutBuiltinConstants is used. User constants with the same key shadow
// these.
var builtinConstants = []store.Constant{
	{Key: "c", Label: "speed of light (m/s)", Value: 299792458},
	{Key: "g", Label: "standard gravity (m/s²)", Value: 9.80665},
	{Key: "G", Label: "gravitational constant (N·m²/kg²)", Value: 6.67430e-11},
	{Key: "h", Label: "Planck constant (J·s)", Value: 6.62607015e-34},
	{Key: "N_A", Label: "Avogadro constant (1/mol)", Value: 6.02214076e23},
	{Key: "k_B", Label: "Boltzmann constant (J/K)", Value: 1.380649e-23},
	{Key: "q_e", Label: "elementary charge (C)", Value: 1.602176634e-19},
	{Key: "R", Label: "gas constant (J/(mol·K))", Value: 8.31446261815324},
}

// BuiltinConstants returns a copy of the default catalog, for callers that
// want to seed a store or show the list.
func BuiltinConstants() []store.Constant {
	out := make([]store.Constant, len(builtinConstants))
	copy(out, builtinConstants)
	return out
}
