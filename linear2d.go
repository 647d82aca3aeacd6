// A small 2D analytic geometry package for Go.
//
// This package provides two value types, a planar point and an infinite line
// through two distinct points, together with the tolerance-based predicates
// needed to reason about coincidence, incidence, and orientation without
// being bitten by floating point rounding.
package linear2d

import "github.com/osuushi/linear2d/geometry"

type Point = geometry.Point
type Line = geometry.Line

// Every approximate comparison uses this absolute tolerance. It is a
// constant of the package, not a per-call knob.
const Epsilon = geometry.Epsilon

// Sentinel returned by XIntercept and YIntercept when the line never
// crosses (or entirely is) the axis in question.
const NoIntercept = geometry.NoIntercept

// Build the line through two distinct points.
//
// The two points must be farther than Epsilon apart. The core treats a
// violation as a programmer error and panics; this wrapper recovers and
// hands the violation back as an error for callers who want to validate
// untrusted coordinates. A non-nil error means no usable Line was produced.
func NewLine(a, b Point) (result Line, err error) {
	defer func() {
		recoveredErr := geometry.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = Line{}
			err = recoveredErr
		}
	}()
	return geometry.NewLine(a, b), nil
}
