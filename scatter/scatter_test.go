package scatter

import (
	"testing"

	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/require"
)

var testArea = gmath.Rect{
	Min: gmath.Vec{X: -5, Y: -5},
	Max: gmath.Vec{X: 5, Y: 5},
}

func TestGenerators(t *testing.T) {
	for _, tc := range []struct {
		name     string
		generate func(seed uint64, n int) []gmath.Vec
	}{
		{"uniform", func(seed uint64, n int) []gmath.Vec {
			return Uniform(RandWithSeed(seed), testArea, n)
		}},
		{"clustered", func(seed uint64, n int) []gmath.Vec {
			return Clustered(RandWithSeed(seed), testArea, n)
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			points := tc.generate(42, 500)
			require.Len(t, points, 500)

			for _, p := range points {
				require.GreaterOrEqual(t, p.X, testArea.Min.X)
				require.Less(t, p.X, testArea.Max.X)
				require.GreaterOrEqual(t, p.Y, testArea.Min.Y)
				require.Less(t, p.Y, testArea.Max.Y)
			}

			require.Equal(t, points, tc.generate(42, 500), "same seed, same cloud")
			require.NotEqual(t, points, tc.generate(43, 500))

			require.Empty(t, tc.generate(1, 0))
			require.Empty(t, tc.generate(1, -3))
		})
	}
}

func TestClusteredIsNotUniform(t *testing.T) {
	// count points per cell of a 4x4 grid, clustering leaves some cells
	// far emptier than others
	var cells [16]int
	for _, p := range Clustered(RandWithSeed(7), testArea, 2000) {
		cx := int((p.X - testArea.Min.X) / 2.5)
		cy := int((p.Y - testArea.Min.Y) / 2.5)
		cells[cy*4+cx]++
	}

	lowest, highest := cells[0], cells[0]
	for _, count := range cells {
		lowest = min(lowest, count)
		highest = max(highest, count)
	}

	require.Greater(t, highest, 2*lowest+1)
}

func TestClusteredFillsAnyArea(t *testing.T) {
	for _, area := range []gmath.Rect{
		{Min: gmath.Vec{X: 0, Y: 0}, Max: gmath.Vec{X: 0.5, Y: 0.2}},
		{Min: gmath.Vec{X: -1000, Y: 20}, Max: gmath.Vec{X: 1000, Y: 40}},
	} {
		points := Clustered(RandWithSeed(3), area, 200)
		require.Len(t, points, 200)

		for _, p := range points {
			require.True(t, area.Contains(p), "%v outside %v", p, area)
		}
	}
}
