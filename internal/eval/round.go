package eval

import (
	"math"
	"strconv"
)

const (
	// epsilon is the distance from an integer below which a result is
	// treated as floating-point noise.
	epsilon = 1e-12
	// noiseFloor bounds the zero snap from below. Cancellation noise from
	// unit-scale arithmetic (sin(pi), 0.1+0.2-0.3) lands near the 1e-16
	// machine-epsilon scale; genuinely tiny results, such as physical
	// constants down at 1e-19..1e-34, sit far beneath it and must survive.
	noiseFloor = 1e-17
)

// Round cleans a computed result for presentation: magnitudes in the
// cancellation-noise band collapse to zero, values within epsilon of a
// nonzero integer snap to it, and everything else is reformatted at 14
// significant digits to shed accumulated binary noise.
func Round(x float64) float64 {
	a := math.Abs(x)
	if a >= noiseFloor && a < epsilon {
		return 0
	}
	if r := math.Round(x); r != 0 && math.Abs(x-r) < epsilon {
		return r
	}
	y, err := strconv.ParseFloat(strconv.FormatFloat(x, 'g', 14, 64), 64)
	if err != nil {
		return x
	}
	return y
}
