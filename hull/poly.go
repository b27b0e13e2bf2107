package hull

import (
	"math"

	"github.com/quasilyte/gmath"
)

// Orientation returns the cross product of the vectors o->a and o->b. It is
// positive when o, a, b make a counter-clockwise turn, negative for a
// clockwise turn and zero when the points are collinear.
func Orientation(o, a, b gmath.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Contains checks whether p lies inside or on the boundary of a
// counter-clockwise hull as returned by GiftWrap. Hulls without area contain
// the points of their segments.
func Contains(hull []gmath.Vec, p gmath.Vec) bool {
	n := len(hull)
	switch {
	case n == 0:
		return false
	case n == 1:
		return hull[0] == p
	}

	if Area(hull) == 0 {
		for idx := range hull {
			if onSegment(hull[idx], hull[(idx+1)%n], p) {
				return true
			}
		}

		return false
	}

	for idx := range hull {
		a := hull[idx]
		b := hull[(idx+1)%n]
		if Orientation(a, b, p) < 0 {
			// right of a->b is outside
			return false
		}
	}

	return true
}

// IsConvex reports whether the closed polygon never turns clockwise.
// Collinear runs are allowed.
func IsConvex(polygon []gmath.Vec) bool {
	n := len(polygon)
	for idx := range polygon {
		a := polygon[idx]
		b := polygon[(idx+1)%n]
		c := polygon[(idx+2)%n]
		if Orientation(a, b, c) < 0 {
			return false
		}
	}

	return true
}

// Area returns the signed shoelace area of the closed polygon. It is positive
// for counter-clockwise polygons.
func Area(polygon []gmath.Vec) float64 {
	var sum float64

	n := len(polygon)
	for idx, a := range polygon {
		b := polygon[(idx+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

func onSegment(a, b, p gmath.Vec) bool {
	if Orientation(a, b, p) != 0 {
		return false
	}

	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}
