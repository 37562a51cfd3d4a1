package advanced

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Rounds to the nearest hundredth of a unit. Distances and handle lengths are
// compared at this precision throughout, so that floating point dust left over
// from earlier edits doesn't count as geometry.
func roundHundredths(x float64) float64 {
	return math.Round(x*100) / 100
}

// Theta returns the direction from a to b, in radians from the positive X
// axis, in the range (-π, π]. When a == b the result is 0.
func Theta(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Polar returns the point at the given angle and distance from p.
func (p Point) Polar(angle, length float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X + length*cos,
		Y: p.Y + length*sin,
	}
}

// Midpoint returns the midpoint of two points.
func (p Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (p.X + o.X),
		Y: 0.5 * (p.Y + o.Y),
	}
}

// Centroid returns the arithmetic mean of the anchors of the given points.
func Centroid(points []*AnchorPoint) Point {
	var c Point
	for _, p := range points {
		c.X += p.Anchor.X
		c.Y += p.Anchor.Y
	}
	n := float64(len(points))
	return Point{X: c.X / n, Y: c.Y / n}
}

// Angle and length of a handle relative to its anchor.
func handlePolar(anchor, handle Point) (angle, length float64) {
	return Theta(anchor, handle), Distance(anchor, handle)
}
