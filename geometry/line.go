package geometry

import (
	"fmt"
	"math"
)

// NoIntercept is returned by XIntercept and YIntercept when the line runs
// (approximately) parallel to the axis in question, so there is either no
// crossing at all or the whole line is the axis. Collapsing both cases to the
// largest finite float keeps infinities and NaNs out of caller arithmetic;
// check against this value rather than math.IsInf.
const NoIntercept = math.MaxFloat64

// NewLine builds the line through two distinct points. Passing coincident
// points (under Epsilon) is a contract breach and panics; callers that want
// an error instead should go through the root package's constructor.
func NewLine(a, b Point) Line {
	if a.Equal(b) {
		fatalf("degenerate line: defining points %s and %s coincide", a, b)
	}
	return Line{A: a, B: b}
}

// Vertical reports whether the line's defining points have (approximately)
// the same X coordinate.
func (l Line) Vertical() bool {
	return Equal(l.A.X, l.B.X)
}

// Horizontal reports whether the line's defining points have (approximately)
// the same Y coordinate.
func (l Line) Horizontal() bool {
	return Equal(l.A.Y, l.B.Y)
}

// Sine returns the sine of the angle from the positive x axis to the line,
// measured counterclockwise. The direction is canonicalized toward the
// defining point with the greater X, so swapping A and B changes nothing.
// Vertical lines always get the upward orientation: the result is exactly 1,
// never -1.
func (l Line) Sine() float64 {
	if l.Vertical() {
		return 1.0
	}
	if l.B.X > l.A.X {
		return (l.B.Y - l.A.Y) / l.B.Sub(l.A).Norm()
	}
	return (l.A.Y - l.B.Y) / l.B.Sub(l.A).Norm()
}

// XIntercept returns the x coordinate where the line crosses y = 0, or
// NoIntercept if the line is (approximately) horizontal.
func (l Line) XIntercept() float64 {
	if l.Horizontal() {
		return NoIntercept
	}

	m := (l.B.X - l.A.X) / (l.B.Y - l.A.Y)
	return l.A.X - m*l.A.Y
}

// YIntercept returns the y coordinate where the line crosses x = 0, or
// NoIntercept if the line is (approximately) vertical.
func (l Line) YIntercept() float64 {
	if l.Vertical() {
		return NoIntercept
	}

	m := (l.B.Y - l.A.Y) / (l.B.X - l.A.X)
	return l.A.Y - m*l.A.X
}

// Crosses reports whether c lies on the infinite line through A and B.
//
// Points within Epsilon of either defining point count as on the line; that
// shortcut runs first, so incidence near A or B is slightly more permissive
// than the angular test alone. For everything else, let t be the angle
// between AB and BC:
//
//	||(B-A)·(C-B)| - |B-A||C-B|| / (|B-A||C-B|) = ||cos(t)| - 1|
//
// and c is collinear exactly when t is 0 or pi, i.e. |cos(t)| = 1. Scaling
// the tolerance by the product of the two lengths keeps the test meaningful
// far from the origin, and the difference form avoids the cancellation a
// cross product suffers when AB and BC are nearly collinear.
func (l Line) Crosses(c Point) bool {
	if l.A.Equal(c) || l.B.Equal(c) {
		return true
	}

	ab := l.B.Sub(l.A).Norm()
	bc := c.Sub(l.B).Norm()
	d := l.B.Sub(l.A).Dot(c.Sub(l.B))

	return math.Abs(math.Abs(d)-ab*bc) < Epsilon*ab*bc
}

// Equal reports whether l and s describe the same infinite line, i.e. both
// of s's defining points lie on l. Symmetric and reflexive; like point
// equality it is tolerance based and therefore not transitive.
func (l Line) Equal(s Line) bool {
	return l.Crosses(s.A) && l.Crosses(s.B)
}

func (l Line) String() string {
	return fmt.Sprintf("line through %s and %s", l.A, l.B)
}
