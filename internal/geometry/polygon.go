package geometry

import "fmt"

// Triangle is one output of ear-clip triangulation.
type Triangle [3]Point

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	return TriangleArea(t[0], t[1], t[2])
}

// Triangulate ear-clips a simple polygon given as an ordered list of
// distinct vertices (the closing vertex must already be removed by
// the caller). It is orientation-agnostic and handles non-convex
// polygons with right-angle cut-outs (doorway notches). Behavior on
// self-intersecting polygons is undefined.
func Triangulate(polygon []Point) ([]Triangle, error) {
	n := len(polygon)
	if n < 3 {
		return nil, fmt.Errorf("geometry: polygon needs at least 3 vertices, got %d", n)
	}
	if n == 3 {
		return []Triangle{{polygon[0], polygon[1], polygon[2]}}, nil
	}

	// Ear clipping works on a consistent winding order; compute it
	// once and clip against the CCW-oriented ring so the interior
	// test below (signed area > 0) is stable regardless of the
	// caller's original winding.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if signedPolygonArea(polygon) < 0 {
		reverse(idx)
	}

	var triangles []Triangle
	guard := 0
	maxGuard := n * n // ear-clipping is O(n^2) worst case; bound the loop defensively
	for len(idx) > 3 && guard < maxGuard {
		guard++
		earFound := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i-1+len(idx))%len(idx)]
			curr := idx[i]
			next := idx[(i+1)%len(idx)]

			a, b, c := polygon[prev], polygon[curr], polygon[next]
			if SignedTriangleArea(a, b, c) <= 0 {
				continue // reflex or degenerate vertex, not an ear
			}

			isEar := true
			for _, j := range idx {
				if j == prev || j == curr || j == next {
					continue
				}
				if pointInTriangleStrict(polygon[j], a, b, c) {
					isEar = false
					break
				}
			}

			if isEar {
				triangles = append(triangles, Triangle{a, b, c})
				idx = append(idx[:i], idx[i+1:]...)
				earFound = true
				break
			}
		}
		if !earFound {
			// Numerically degenerate polygon (collinear runs,
			// duplicate points); clip the first remaining vertex to
			// make progress rather than looping forever.
			i := 1 % len(idx)
			prev := idx[(i-1+len(idx))%len(idx)]
			curr := idx[i]
			next := idx[(i+1)%len(idx)]
			triangles = append(triangles, Triangle{polygon[prev], polygon[curr], polygon[next]})
			idx = append(idx[:i], idx[i+1:]...)
		}
	}
	if len(idx) == 3 {
		triangles = append(triangles, Triangle{polygon[idx[0]], polygon[idx[1]], polygon[idx[2]]})
	}

	return triangles, nil
}

func reverse(idx []int) {
	for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
		idx[i], idx[j] = idx[j], idx[i]
	}
}

func signedPolygonArea(polygon []Point) float64 {
	sum := 0.0
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// pointInTriangleStrict reports whether p lies inside triangle
// (a, b, c) or on its boundary, used only to decide ear-candidacy
// during triangulation (a vertex on an ear's boundary also
// disqualifies it).
func pointInTriangleStrict(p, a, b, c Point) bool {
	d1 := SignedTriangleArea(p, a, b)
	d2 := SignedTriangleArea(p, b, c)
	d3 := SignedTriangleArea(p, c, a)

	hasNeg := d1 < -epsilon || d2 < -epsilon || d3 < -epsilon
	hasPos := d1 > epsilon || d2 > epsilon || d3 > epsilon

	return !(hasNeg && hasPos)
}

// PolygonArea triangulates the closed polygon (first point repeated
// as last), sums the unsigned triangle areas, and rounds to nDigits
// significant digits for deterministic output.
func PolygonArea(closedRing []Point, nDigits int) (float64, error) {
	open := openRing(closedRing)
	triangles, err := Triangulate(open)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, t := range triangles {
		total += t.Area()
	}
	return RoundSignificant(total, nDigits), nil
}

// openRing drops a trailing vertex equal to the first, if present,
// matching the "first point repeated as last" closed-ring contract.
func openRing(ring []Point) []Point {
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		return ring[:len(ring)-1]
	}
	return ring
}

// PointInPolygon reports whether p lies inside (or on the boundary
// of) the polygon described by its triangle list:
// inside iff it lies in the closed sense inside any triangle, tested
// via same-side-of-every-edge after normalizing to CCW orientation.
func PointInPolygon(p Point, triangles []Triangle) bool {
	for _, t := range triangles {
		if PointInTriangle(p, t) {
			return true
		}
	}
	return false
}

// PointInTriangle implements the closed (boundary-inclusive)
// boundary-inclusive point-in-triangle test: normalize to CCW, then
// require all three edge-signs to be non-negative.
func PointInTriangle(p Point, t Triangle) bool {
	a, b, c := t[0], t[1], t[2]
	if SignedTriangleArea(a, b, c) < 0 {
		b, c = c, b
	}
	s1 := SignedTriangleArea(a, b, p)
	s2 := SignedTriangleArea(b, c, p)
	s3 := SignedTriangleArea(c, a, p)
	return s1 >= -epsilon && s2 >= -epsilon && s3 >= -epsilon
}
