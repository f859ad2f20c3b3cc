package hull

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	for _, tc := range []struct {
		name     string
		points   []r3.Vector
		expected [4]int
	}{
		{
			name:     "tetrahedron",
			points:   tetrahedron(),
			expected: [4]int{0, 1, 2, 3},
		},
		{
			name: "skips coincident",
			points: []r3.Vector{
				{}, {X: 1e-7}, {X: 1}, {Y: 1}, {Z: 1},
			},
			expected: [4]int{0, 2, 3, 4},
		},
		{
			name: "skips collinear",
			points: []r3.Vector{
				{}, {X: 1}, {X: 2}, {X: -1}, {Y: 1}, {Z: 1},
			},
			expected: [4]int{0, 1, 4, 5},
		},
		{
			name: "skips coplanar",
			points: []r3.Vector{
				{}, {X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 5, Y: -3, Z: 1e-8}, {X: 0.5, Y: 0.5, Z: -2},
			},
			expected: [4]int{0, 1, 2, 5},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			idx, err := seed(tc.points, Epsilon)
			require.NoError(t, err)
			require.Equal(t, tc.expected, idx)
		})
	}
}

func TestReorder(t *testing.T) {
	points := []r3.Vector{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}, {X: 6}}

	reordered := reorder(points, [4]int{0, 2, 3, 6})
	require.Equal(t, []r3.Vector{{X: 0}, {X: 2}, {X: 3}, {X: 6}, {X: 1}, {X: 4}, {X: 5}}, reordered)

	// the input is untouched
	require.Equal(t, []r3.Vector{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}, {X: 5}, {X: 6}}, points)
}

func TestEdges(t *testing.T) {
	live := edges{}

	face := Face{A: 0, B: 1, C: 2}
	live.add(face)

	require.True(t, live.live(Edge{From: 0, To: 1}))
	require.True(t, live.live(Edge{From: 1, To: 2}))
	require.True(t, live.live(Edge{From: 2, To: 0}))
	require.False(t, live.live(Edge{From: 1, To: 0}))

	live.kill(face)
	require.Empty(t, live)
}
