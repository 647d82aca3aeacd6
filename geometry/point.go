package geometry

import (
	"fmt"
	"math"
)

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the scalar product of p and q taken as vectors from the origin.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Norm returns the Euclidean distance from the origin to p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return q.Sub(p).Norm()
}

// Equal reports whether p and q coincide, i.e. the distance between them is
// under Epsilon. Reflexive and symmetric, but not transitive: two points can
// each sit within tolerance of a third while being more than Epsilon apart
// from each other. Don't build chains of equalities on top of this.
func (p Point) Equal(q Point) bool {
	return p.Distance(q) < Epsilon
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}
