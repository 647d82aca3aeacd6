package geometry

// A point in the plane. Points are plain values: copying one is free, and
// none of the methods mutate the receiver.
type Point struct {
	X float64
	Y float64
}

// A line is the infinite set of points collinear with two distinct defining
// points. The defining points are stored exactly as given to NewLine; no
// canonicalization happens, so A and B are whatever the caller passed.
// Immutable by convention: no method writes to the struct.
type Line struct {
	A Point
	B Point
}
