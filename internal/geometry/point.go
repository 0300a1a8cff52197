// Package geometry implements the 2-D primitives the building graph
// is built from: polygon area via ear-clip triangulation,
// point-in-polygon, segment intersection, and nearest point on a
// segment.
package geometry

import "math"

// Point is a 2-D point. Zones and transits carry an extra z
// (level/height) handled by the callers; the geometry kernel itself
// only reasons about (X, Y).
type Point struct {
	X, Y float64
}

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Equal reports whether p and q coincide within floating-point
// tolerance.
func (p Point) Equal(q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Cross returns the z component of the 3-D cross product of p and q,
// treated as vectors from the origin.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Dot returns the dot product of p and q, treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SignedTriangleArea returns the signed area of triangle (a, b, c):
// positive for counter-clockwise winding, negative for clockwise.
func SignedTriangleArea(a, b, c Point) float64 {
	return 0.5 * ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y))
}

// TriangleArea returns the unsigned area of triangle (a, b, c), per
// the closed-form triangle-area expression.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs(SignedTriangleArea(a, b, c))
}

// RoundSignificant rounds v to n significant digits, for the
// deterministic-output requirement on computed areas.
func RoundSignificant(v float64, n int) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Ceil(math.Log10(math.Abs(v)))
	power := float64(n) - mag
	factor := math.Pow(10, power)
	return math.Round(v*factor) / factor
}
