package geometry

import "math"

// Every approximate comparison in this package goes through this one
// constant. It is absolute, not scale-relative: at coordinates much larger
// than 1/Epsilon the point-equality test stops being meaningful, and callers
// working at those magnitudes need to know that.
const Epsilon = 1e-10

// To compensate for imprecision in floats, scalar equality is tolerance
// based. Without this, nearly-vertical and nearly-horizontal lines would
// fall into the general-case intercept formulas and blow up.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
