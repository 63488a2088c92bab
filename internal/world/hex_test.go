package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighborsByParity(t *testing.T) {
	tests := []struct {
		name  string
		coord HexCoord
		want  [6]HexCoord
	}{
		{
			name:  "even column",
			coord: HexCoord{Col: 2, Row: 2},
			want: [6]HexCoord{
				{2, 1}, {3, 1}, {3, 2}, {2, 3}, {1, 2}, {1, 1},
			},
		},
		{
			name:  "odd column",
			coord: HexCoord{Col: 3, Row: 2},
			want: [6]HexCoord{
				{3, 1}, {4, 2}, {4, 3}, {3, 3}, {2, 3}, {2, 2},
			},
		},
		{
			name:  "negative odd column",
			coord: HexCoord{Col: -1, Row: 0},
			want: [6]HexCoord{
				{-1, -1}, {0, 0}, {0, 1}, {-1, 1}, {-2, 1}, {-2, 0},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coord.Neighbors())
		})
	}
}

func TestNeighborDirection(t *testing.T) {
	c := HexCoord{Col: 5, Row: 5}
	assert.Equal(t, HexCoord{Col: 5, Row: 4}, c.Neighbor(DirN))
	assert.Equal(t, HexCoord{Col: 6, Row: 6}, c.Neighbor(DirSE))
	assert.Equal(t, HexCoord{Col: 4, Row: 5}, c.Neighbor(DirNW))
}

// Both parity tables must be mutual inverses: every even->odd step has a
// matching odd->even step back.
func TestAdjacencySymmetryExhaustive(t *testing.T) {
	b := Bounds{Width: 12, Height: 12}
	var coords []HexCoord
	for col := -2; col < b.Width; col++ {
		for row := -2; row < b.Height; row++ {
			coords = append(coords, HexCoord{Col: col, Row: row})
		}
	}

	for _, a := range coords {
		for _, c := range coords {
			if IsAdjacent(a, c) != IsAdjacent(c, a) {
				t.Fatalf("asymmetric adjacency between %v and %v", a, c)
			}
		}
	}
}

func TestAdjacencyMatchesDistance(t *testing.T) {
	b := Bounds{Width: 10, Height: 10}
	b.Each(func(a HexCoord) {
		b.Each(func(c HexCoord) {
			if IsAdjacent(a, c) != (Distance(a, c) == 1) {
				t.Fatalf("IsAdjacent(%v,%v)=%v but Distance=%d", a, c, IsAdjacent(a, c), Distance(a, c))
			}
		})
	})
}

func TestNeighborsDistinct(t *testing.T) {
	for _, c := range []HexCoord{{0, 0}, {1, 0}, {4, 7}, {7, 4}} {
		seen := make(map[HexCoord]bool)
		for _, n := range c.Neighbors() {
			assert.False(t, seen[n], "duplicate neighbor %v of %v", n, c)
			assert.NotEqual(t, c, n)
			seen[n] = true
		}
		assert.Len(t, seen, 6)
	}
}

func TestCubeInvariant(t *testing.T) {
	b := Bounds{Width: 9, Height: 9}
	b.Each(func(c HexCoord) {
		cube := c.Cube()
		assert.Zero(t, cube.Q+cube.R+cube.S, "cube coords of %v", c)
	})
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b HexCoord
		want int
	}{
		{HexCoord{0, 0}, HexCoord{0, 0}, 0},
		{HexCoord{0, 0}, HexCoord{1, 0}, 1},
		{HexCoord{0, 0}, HexCoord{0, 3}, 3},
		{HexCoord{0, 0}, HexCoord{3, 0}, 3},
		{HexCoord{0, 0}, HexCoord{4, 0}, 4},
		{HexCoord{1, 0}, HexCoord{1, 1}, 1},
		{HexCoord{0, 0}, HexCoord{2, 2}, 3},
		{HexCoord{2, 5}, HexCoord{7, 1}, 6},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Distance(tc.a, tc.b), "Distance(%v, %v)", tc.a, tc.b)
		assert.Equal(t, tc.want, Distance(tc.b, tc.a), "Distance(%v, %v)", tc.b, tc.a)
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	b := Bounds{Width: 7, Height: 7}
	var coords []HexCoord
	b.Each(func(c HexCoord) { coords = append(coords, c) })

	for _, a := range coords {
		for _, m := range coords {
			for _, c := range coords {
				if Distance(a, c) > Distance(a, m)+Distance(m, c) {
					t.Fatalf("triangle inequality fails for %v %v %v", a, m, c)
				}
			}
		}
	}
}

func TestNeighborsInBounds(t *testing.T) {
	b := Bounds{Width: 5, Height: 4}

	corner := NeighborsInBounds(HexCoord{0, 0}, b)
	assert.Equal(t, []HexCoord{{1, 0}, {0, 1}}, corner)

	inner := NeighborsInBounds(HexCoord{2, 2}, b)
	assert.Len(t, inner, 6)

	for _, n := range NeighborsInBounds(HexCoord{4, 3}, b) {
		assert.True(t, b.Contains(n))
	}
}

func TestCoordsInRange(t *testing.T) {
	b := Bounds{Width: 10, Height: 10}
	center := HexCoord{Col: 5, Row: 5}

	zero := CoordsInRange(center, 0, b)
	assert.Equal(t, []HexCoord{center}, zero)

	one := CoordsInRange(center, 1, b)
	assert.Len(t, one, 7)

	two := CoordsInRange(center, 2, b)
	assert.Len(t, two, 19)
	for _, c := range two {
		assert.LessOrEqual(t, Distance(center, c), 2)
	}

	edge := CoordsInRange(HexCoord{0, 0}, 1, b)
	assert.Len(t, edge, 3)

	assert.Empty(t, CoordsInRange(center, -1, b))
}

func TestBounds(t *testing.T) {
	b := Bounds{Width: 3, Height: 2}
	require.Equal(t, 6, b.Area())

	var order []HexCoord
	b.Each(func(c HexCoord) { order = append(order, c) })
	assert.Equal(t, []HexCoord{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}, order)

	assert.False(t, b.Contains(HexCoord{3, 0}))
	assert.False(t, b.Contains(HexCoord{0, -1}))
	assert.False(t, b.Interior(HexCoord{1, 1}))
	assert.True(t, Bounds{Width: 3, Height: 3}.Interior(HexCoord{1, 1}))
	assert.Zero(t, Bounds{Width: -1, Height: 4}.Area())
}

func TestParseHexCoord(t *testing.T) {
	for _, in := range []string{"3,4", " 3 , 4 ", "(3,4)"} {
		got, err := ParseHexCoord(in)
		require.NoError(t, err, in)
		assert.Equal(t, HexCoord{3, 4}, got)
	}

	c := HexCoord{Col: -2, Row: 7}
	got, err := ParseHexCoord(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, got)

	for _, in := range []string{"", "3", "a,4", "3,b", "3;4"} {
		_, err := ParseHexCoord(in)
		assert.Error(t, err, in)
	}
}
