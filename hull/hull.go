// Package hull computes planar convex hulls by gift wrapping.
//
// The hull is returned counter-clockwise, starting at the first point with
// the smallest y coordinate. Functions in this package never modify their
// input and keep no state between calls, so they are safe to use from
// multiple goroutines.
package hull

import (
	"math"

	"github.com/juju/errors"
	"github.com/quasilyte/gmath"
)

// ErrInvalidInput is matched by errors returned for point sets that contain
// a NaN or infinite coordinate.
const ErrInvalidInput = errors.NotValid

// Compute validates points and returns their convex hull.
func Compute(points []gmath.Vec) ([]gmath.Vec, error) {
	if err := Validate(points); err != nil {
		return nil, errors.Trace(err)
	}

	return GiftWrap(points), nil
}

// Validate checks that every coordinate is finite.
func Validate(points []gmath.Vec) error {
	for idx, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return errors.NotValidf("point %d (%v, %v)", idx, p.X, p.Y)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// GiftWrap returns the convex hull of points using the Jarvis march.
//
// Exact angle ties are resolved in favour of the point farthest from the
// current vertex, so collinear points inside an edge are dropped. The anchor
// always starts the hull, even when it lies inside the bottom edge. So when
// all points lie on one horizontal line and the anchor is not an end of it,
// the hull is the anchor followed by both ends. Any other collinear input
// gives just its two ends. Two distinct points give a two vertex hull,
// identical points collapse into one.
//
// Runs in O(n*h) for n points and h hull vertices. NaN coordinates do not
// make it panic or loop, but the result is meaningless; use Compute to
// reject them.
func GiftWrap(points []gmath.Vec) []gmath.Vec {
	n := len(points)
	if n == 0 {
		return nil
	}

	// working copy with room for the sentinel at index n
	work := make([]gmath.Vec, n+1)
	copy(work, points)

	anchor := lowestPoint(points)
	work[0], work[anchor] = work[anchor], work[0]
	work[n] = work[0]

	// number of hull vertices already moved to the front of work
	placed := 1

	var sweep float64
	for first := true; ; first = false {
		current := work[placed-1]

		winner := -1
		var winnerAngle, winnerDist float64

		for idx := placed; idx <= n; idx++ {
			candidate := work[idx]
			if candidate == current {
				continue
			}

			angle := Theta(current, candidate)
			if !first {
				if angle == 0 {
					// straight to the right, only possible on the way back
					// to the anchor along the bottom edge
					angle = 360
				}

				if angle <= sweep {
					continue
				}
			}

			dist := current.DistanceSquaredTo(candidate)

			if winner != -1 {
				if angle > winnerAngle {
					continue
				}

				// On a tie the farthest point wins. The sentinel comes last
				// and also wins equal distances (duplicates of the anchor)
				// and the way back along the bottom edge, where anything
				// beyond the anchor already lies on the first hull edge.
				if angle == winnerAngle && dist <= winnerDist &&
					!(idx == n && (angle == 360 || dist == winnerDist)) {
					continue
				}
			}

			winner = idx
			winnerAngle = angle
			winnerDist = dist
		}

		if winner == -1 || winner == n {
			break
		}

		work[placed], work[winner] = work[winner], work[placed]
		placed++
		sweep = winnerAngle
	}

	return append([]gmath.Vec(nil), work[:placed]...)
}

// lowestPoint returns the index of the first point with the smallest y.
func lowestPoint(points []gmath.Vec) int {
	lowest := 0
	for idx, p := range points {
		if p.Y < points[lowest].Y {
			lowest = idx
		}
	}

	return lowest
}
