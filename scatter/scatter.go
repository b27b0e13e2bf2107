// Package scatter generates point clouds to feed the hull computation.
package scatter

import (
	"math/rand/v2"

	"github.com/furui/fastnoiselite-go"
	"github.com/quasilyte/gmath"
)

// maxAttemptsPerPoint bounds the rejection sampling in Clustered.
const maxAttemptsPerPoint = 64

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Uniform returns n points spread uniformly over area.
func Uniform(rng *rand.Rand, area gmath.Rect, n int) []gmath.Vec {
	points := make([]gmath.Vec, 0, max(n, 0))
	for range n {
		points = append(points, randomIn(rng, area))
	}

	return points
}

// Clustered returns n points in area that gather where a noise field is
// high. A sample is kept with a probability equal to the noise value at its
// position. Once the attempt budget is spent the remaining points are taken
// uniformly, so exactly n points are returned.
func Clustered(rng *rand.Rand, area gmath.Rect, n int) []gmath.Vec {
	type F = fastnoiselite.FNLfloat

	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Seed = rng.Int32()

	// a handful of clumps across the area, whatever its size
	noise.Frequency = 3 / max(area.Width(), area.Height(), 1)

	points := make([]gmath.Vec, 0, max(n, 0))

	budget := n * maxAttemptsPerPoint
	for len(points) < n {
		candidate := randomIn(rng, area)

		if budget > 0 {
			budget--

			// noise is in [-1, 1], keep only the upper part of the field
			value := float64(noise.GetNoise2D(F(candidate.X), F(candidate.Y)))
			if rng.Float64() >= value {
				continue
			}
		}

		points = append(points, candidate)
	}

	return points
}

func randomIn(rng *rand.Rand, area gmath.Rect) gmath.Vec {
	return gmath.Vec{
		X: randf(rng, area.Min.X, area.Max.X),
		Y: randf(rng, area.Min.Y, area.Max.Y),
	}
}

func randf[T ~float64 | ~float32](rng *rand.Rand, min, max T) T {
	return T(rng.Float64())*(max-min) + min
}
