package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Fixed seed so failures reproduce.
func randomPoints(n int) []Point {
	rng := rand.New(rand.NewSource(42))
	points := make([]Point, n)
	for i := range points {
		// Bounded magnitudes; the absolute epsilon is meaningless at
		// extreme coordinates.
		points[i] = Point{rng.Float64()*2000 - 1000, rng.Float64()*2000 - 1000}
	}
	return points
}

func TestSub(t *testing.T) {
	a := Point{5, 3}
	b := Point{2, 7}
	assert.Equal(t, Point{3, -4}, a.Sub(b))
	assert.Equal(t, Point{-3, 4}, b.Sub(a))
}

func TestDot(t *testing.T) {
	a := Point{1, 2}
	b := Point{3, 4}
	assert.Equal(t, 11.0, a.Dot(b))
	assert.Equal(t, 0.0, Point{1, 0}.Dot(Point{0, 1}))
	assert.Equal(t, -1.0, Point{1, 0}.Dot(Point{-1, 0}))
}

func TestNorm(t *testing.T) {
	assert.Equal(t, 5.0, Point{3, 4}.Norm())
	assert.Equal(t, 0.0, Point{}.Norm())
	assert.InDelta(t, math.Sqrt2, Point{1, 1}.Norm(), Epsilon)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Point{1, 1}.Distance(Point{4, 5}))
	assert.Equal(t, Point{1, 1}.Distance(Point{4, 5}), Point{4, 5}.Distance(Point{1, 1}))
}

func TestEqual(t *testing.T) {
	a := Point{3, 4}
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(Point{3, 4 + 1e-12}))
	assert.False(t, a.Equal(Point{3, 4 + 1e-9}))
	assert.False(t, a.Equal(Point{4, 3}))
}

func TestEqualIsReflexiveAndSymmetric(t *testing.T) {
	points := randomPoints(200)
	for _, p := range points {
		assert.True(t, p.Equal(p), "point %s must equal itself", p)
	}
	for i, p := range points {
		for _, q := range points[i+1:] {
			assert.Equal(t, p.Equal(q), q.Equal(p), "equality of %s and %s must be symmetric", p, q)
		}
	}
}

func TestSubIsAntiCommutative(t *testing.T) {
	points := randomPoints(100)
	for i, p := range points {
		for _, q := range points[i+1:] {
			pq := p.Sub(q)
			qp := q.Sub(p)
			assert.Equal(t, -qp.X, pq.X)
			assert.Equal(t, -qp.Y, pq.Y)
		}
	}
}

func TestDotIsCommutativeAndBilinear(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points := randomPoints(50)
	for i, p := range points {
		for _, q := range points[i+1:] {
			assert.Equal(t, p.Dot(q), q.Dot(p))

			// Scaling one argument scales the product, up to rounding.
			k := rng.Float64()*10 - 5
			scaled := Point{k * p.X, k * p.Y}
			want := k * p.Dot(q)
			assert.InDelta(t, want, scaled.Dot(q), 1e-9*math.Abs(want)+1e-6)
		}
	}
}

func TestNormIsNonNegative(t *testing.T) {
	for _, p := range randomPoints(200) {
		assert.GreaterOrEqual(t, p.Norm(), 0.0)
		assert.Zero(t, p.Sub(p).Norm())
	}
}
