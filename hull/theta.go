package hull

import (
	"math"

	"github.com/quasilyte/gmath"
)

// Theta returns a pseudo-angle in degrees for the direction from one point to
// another. It orders directions exactly like the true angle from the positive
// x-axis, in [0, 360), but only needs a division. Only X and Y are looked at.
func Theta(from, to gmath.Vec) float64 {
	dx := to.X - from.X
	dy := to.Y - from.Y

	ax := math.Abs(dx)
	ay := math.Abs(dy)

	var t float64
	if ax+ay != 0 {
		t = dy / (ax + ay)
	}

	switch {
	case dx < 0:
		t = 2 - t
	case dy < 0:
		t = 4 + t
	}

	return t * 90
}
