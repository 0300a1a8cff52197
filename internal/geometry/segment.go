package geometry

import "math"

// Segment is a line segment between two points.
type Segment struct {
	A, B Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.A.Dist(s.B)
}

// Intersects reports whether two segments intersect: their
// axis-aligned bounding boxes must overlap on both axes, AND the
// endpoints of each segment must lie on opposite sides of the other
// (signed-triangle-area products <= 0).
func Intersects(s1, s2 Segment) bool {
	if !boxesOverlap(s1, s2) {
		return false
	}

	d1 := SignedTriangleArea(s2.A, s2.B, s1.A)
	d2 := SignedTriangleArea(s2.A, s2.B, s1.B)
	d3 := SignedTriangleArea(s1.A, s1.B, s2.A)
	d4 := SignedTriangleArea(s1.A, s1.B, s2.B)

	return d1*d2 <= 0 && d3*d4 <= 0
}

func boxesOverlap(s1, s2 Segment) bool {
	min1x, max1x := minmax(s1.A.X, s1.B.X)
	min1y, max1y := minmax(s1.A.Y, s1.B.Y)
	min2x, max2x := minmax(s2.A.X, s2.B.X)
	min2y, max2y := minmax(s2.A.Y, s2.B.Y)

	return max1x >= min2x && max2x >= min1x && max1y >= min2y && max2y >= min1y
}

func minmax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// NearestPointOnSegment projects p onto the infinite line through s,
// clamps the parameter to [0, 1], and returns the resulting point —
// an endpoint of s or a clamped interior projection.
func NearestPointOnSegment(p Point, s Segment) Point {
	ab := s.B.Sub(s.A)
	lenSq := ab.Dot(ab)
	if lenSq < epsilon*epsilon {
		return s.A // degenerate segment
	}

	t := p.Sub(s.A).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))

	return Point{
		X: s.A.X + t*ab.X,
		Y: s.A.Y + t*ab.Y,
	}
}

// ProjectOnto projects segment s onto segment onto (clamping both
// endpoints of s to [0,1] along onto's direction) and returns the
// length of the projected span. Used by the transit-width
// calculation to project a transit edge onto
// the wall edge it intersects.
func ProjectOnto(s, onto Segment) float64 {
	pa := NearestPointOnSegment(s.A, onto)
	pb := NearestPointOnSegment(s.B, onto)
	return pa.Dist(pb)
}
