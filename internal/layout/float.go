package layout

import "math"

// undefined marks an unconstrained or not-yet-computed float dimension
// inside the engine. It never escapes into Layout.
var undefined = math.NaN()

// epsilon is the tolerance used when comparing cached constraints and
// when snapping positions to the cell grid.
const epsilon = 0.0001

func isDefined(f float64) bool {
	return !math.IsNaN(f)
}

// sameFloat treats two undefined values as equal.
func sameFloat(a, b float64) bool {
	if !isDefined(a) || !isDefined(b) {
		return !isDefined(a) && !isDefined(b)
	}
	return math.Abs(a-b) < epsilon
}

// maxDefined returns the larger of a and b, ignoring an undefined operand.
func maxDefined(a, b float64) float64 {
	if isDefined(a) && isDefined(b) {
		return math.Max(a, b)
	}
	if isDefined(a) {
		return a
	}
	return b
}

// minDefined returns the smaller of a and b, ignoring an undefined operand.
func minDefined(a, b float64) float64 {
	if isDefined(a) && isDefined(b) {
		return math.Min(a, b)
	}
	if isDefined(a) {
		return a
	}
	return b
}

// orZero maps undefined, infinite and negative values to zero.
func orZero(f float64) float64 {
	if !isDefined(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}

// finiteOr returns f unless it is undefined or infinite.
func finiteOr(f, fallback float64) float64 {
	if !isDefined(f) || math.IsInf(f, 0) {
		return fallback
	}
	return f
}
