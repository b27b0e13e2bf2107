package hull

import (
	"testing"

	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/require"
)

func vec(x, y float64) gmath.Vec {
	return gmath.Vec{X: x, Y: y}
}

func TestOrientation(t *testing.T) {
	require.Positive(t, Orientation(vec(0, 0), vec(1, 0), vec(0, 1)))
	require.Negative(t, Orientation(vec(0, 0), vec(0, 1), vec(1, 0)))
	require.Zero(t, Orientation(vec(0, 0), vec(1, 1), vec(3, 3)))
}

func TestContains(t *testing.T) {
	square := []gmath.Vec{vec(0, 0), vec(4, 0), vec(4, 4), vec(0, 4)}
	segment := []gmath.Vec{vec(0, 0), vec(2, 2)}
	flat := []gmath.Vec{vec(1, 0), vec(2, 0), vec(0, 0)}

	for _, tc := range []struct {
		name     string
		hull     []gmath.Vec
		point    gmath.Vec
		contains bool
	}{
		{"empty", nil, vec(0, 0), false},
		{"single hit", []gmath.Vec{vec(1, 1)}, vec(1, 1), true},
		{"single miss", []gmath.Vec{vec(1, 1)}, vec(1, 2), false},
		{"segment inside", segment, vec(1, 1), true},
		{"segment end", segment, vec(2, 2), true},
		{"segment extension", segment, vec(3, 3), false},
		{"segment off line", segment, vec(1, 0), false},
		{"flat inside", flat, vec(0.5, 0), true},
		{"flat outside", flat, vec(5, 0), false},
		{"square center", square, vec(2, 2), true},
		{"square vertex", square, vec(4, 4), true},
		{"square edge", square, vec(4, 1), true},
		{"square outside", square, vec(5, 1), false},
		{"square below", square, vec(2, -0.1), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.contains, Contains(tc.hull, tc.point))
		})
	}
}

func TestIsConvex(t *testing.T) {
	require.True(t, IsConvex(nil))
	require.True(t, IsConvex([]gmath.Vec{vec(0, 0), vec(1, 0)}))
	require.True(t, IsConvex([]gmath.Vec{vec(0, 0), vec(2, 0), vec(4, 0), vec(2, 3)}))
	require.False(t, IsConvex([]gmath.Vec{vec(0, 0), vec(4, 0), vec(2, 1), vec(4, 4), vec(0, 4)}))
	require.False(t, IsConvex([]gmath.Vec{vec(0, 0), vec(0, 4), vec(4, 4), vec(4, 0)}), "clockwise")
}

func TestArea(t *testing.T) {
	require.Zero(t, Area(nil))
	require.Equal(t, 16.0, Area([]gmath.Vec{vec(0, 0), vec(4, 0), vec(4, 4), vec(0, 4)}))
	require.Equal(t, -16.0, Area([]gmath.Vec{vec(0, 0), vec(0, 4), vec(4, 4), vec(4, 0)}))
	require.Zero(t, Area([]gmath.Vec{vec(1, 0), vec(2, 0), vec(0, 0)}))
}
