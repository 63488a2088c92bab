package pathfind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexfront/internal/world"
)

func mustParse(t *testing.T, rows ...string) *world.Map {
	t.Helper()
	m, err := world.ParseGlyphs(rows...)
	require.NoError(t, err)
	return m
}

func c(col, row int) world.HexCoord {
	return world.HexCoord{Col: col, Row: row}
}

func TestBuildGraph(t *testing.T) {
	m := mustParse(t, `"""`, `"^"`, `"""`)
	g := BuildGraph(m)

	assert.Equal(t, 9, g.NodeCount())
	assert.True(t, g.Has(c(1, 1)))
	assert.False(t, g.Has(c(3, 0)))

	edges := g.Edges(c(1, 1))
	require.Len(t, edges, 6)
	for _, e := range edges {
		assert.Equal(t, 1, e.Cost)
	}

	// Edge cost is the destination's cost.
	for _, e := range g.Edges(c(0, 1)) {
		if e.To == c(1, 1) {
			assert.Equal(t, 4, e.Cost)
		}
	}
}

func TestFrontierOrder(t *testing.T) {
	f := newFrontier()
	f.push(c(0, 0), 3)
	f.push(c(1, 0), 1)
	f.push(c(2, 0), 1)
	f.push(c(3, 0), 0)

	var got []world.HexCoord
	for {
		e, ok := f.pop()
		if !ok {
			break
		}
		got = append(got, e.coord)
	}
	assert.Equal(t, []world.HexCoord{c(3, 0), c(1, 0), c(2, 0), c(0, 0)}, got)
}

func TestShortestPathAvoidsMountain(t *testing.T) {
	m := mustParse(t, `"^"`, `"""`)
	e := NewEngine(m)

	path := e.ShortestPath(c(0, 0), c(2, 0))
	assert.Equal(t, []world.HexCoord{c(0, 0), c(0, 1), c(1, 1), c(2, 1), c(2, 0)}, path)

	cost, err := e.PathCost(c(0, 0), c(2, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, cost)
}

func TestShortestPathEdgeCases(t *testing.T) {
	m := mustParse(t, `"n"`)
	e := NewEngine(m)

	assert.Equal(t, []world.HexCoord{c(1, 0)}, e.ShortestPath(c(1, 0), c(1, 0)))
	assert.Nil(t, e.ShortestPath(c(0, 0), c(5, 0)))
	assert.Equal(t, []world.HexCoord{c(0, 0), c(1, 0), c(2, 0)}, e.ShortestPath(c(0, 0), c(2, 0)))

	// Occupancy does not block a path.
	require.NoError(t, m.Place("u", c(1, 0)))
	assert.Len(t, e.ShortestPath(c(0, 0), c(2, 0)), 3)
}

func TestPathCost(t *testing.T) {
	m := mustParse(t, `"^"`, `"""`)
	e := NewEngine(m)

	tests := []struct {
		name     string
		from, to world.HexCoord
		want     int
		err      error
	}{
		{"same tile", c(0, 0), c(0, 0), 0, nil},
		{"adjacent mountain", c(0, 0), c(1, 0), 4, nil},
		{"adjacent grass", c(0, 0), c(0, 1), 1, nil},
		{"around mountain", c(0, 0), c(2, 0), 4, nil},
		{"off map origin", c(-1, 0), c(0, 0), Unreachable, ErrInvalidPosition},
		{"off map target", c(0, 0), c(0, 7), Unreachable, ErrInvalidPosition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.PathCost(tc.from, tc.to)
			assert.Equal(t, tc.want, got)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPathCostDisjointRegions(t *testing.T) {
	m := mustParse(t, `"""`)
	delete(m.Tiles, c(1, 0))
	e := NewEngine(m)

	assert.Nil(t, e.ShortestPath(c(0, 0), c(2, 0)))
	cost, err := e.PathCost(c(0, 0), c(2, 0))
	assert.ErrorIs(t, err, ErrUnreachable)
	assert.Equal(t, Unreachable, cost)
}

func TestReachable(t *testing.T) {
	m := mustParse(t, `"""`, `"""`, `"""`)
	e := NewEngine(m)

	one := e.Reachable(c(1, 1), 1)
	assert.Equal(t, 6, one.Size())
	assert.False(t, one.Has(c(1, 1)), "origin excluded")

	two := e.Reachable(c(1, 1), 2)
	assert.Equal(t, 8, two.Size())

	assert.Zero(t, e.Reachable(c(1, 1), 0).Size())
	assert.Zero(t, e.Reachable(c(1, 1), -3).Size())
	assert.Zero(t, e.Reachable(c(9, 9), 5).Size())
}

func TestReachableSkipsOccupied(t *testing.T) {
	m := mustParse(t, `"""`, `"""`, `"""`)
	require.NoError(t, m.Place("self", c(1, 1)))
	require.NoError(t, m.Place("other", c(1, 0)))
	e := NewEngine(m)

	got := e.Reachable(c(1, 1), 1)
	assert.Equal(t, 5, got.Size())
	assert.False(t, got.Has(c(1, 0)))
}

func TestReachableHillLagoonRiver(t *testing.T) {
	m := mustParse(t, `-"n=`)
	e := NewEngine(m)

	got := Sorted(e.Reachable(c(1, 0), 4))
	assert.Equal(t, []world.HexCoord{c(0, 0), c(2, 0)}, got)

	assert.Equal(t, []world.HexCoord{c(2, 0), c(0, 0)}, e.AdjacentDestinations(c(1, 0), 4))
	assert.Equal(t, []world.HexCoord{c(2, 0)}, e.AdjacentDestinations(c(1, 0), 3))
	assert.Empty(t, e.AdjacentDestinations(c(1, 0), 1))
	assert.Nil(t, e.AdjacentDestinations(c(8, 0), 4))

	assert.True(t, e.Reachable(c(1, 0), 5).Has(c(3, 0)))
}

func TestReachableMonotonic(t *testing.T) {
	cfg := world.SmallTestConfig()
	m := world.Synthesize(cfg)
	e := NewEngine(m)
	from := c(cfg.Width/2, cfg.Height/2)

	prev := e.Reachable(from, 0)
	for budget := 1; budget <= 12; budget++ {
		next := e.Reachable(from, budget)
		prev.Each(func(p world.HexCoord) {
			assert.True(t, next.Has(p), "budget %d lost %v", budget, p)
		})
		assert.GreaterOrEqual(t, next.Size(), prev.Size())
		prev = next
	}
}

func TestReachableMatchesPathCost(t *testing.T) {
	cfg := world.SmallTestConfig()
	m := world.Synthesize(cfg)
	e := NewEngine(m)
	from := c(3, 3)
	const budget = 7

	reach := e.Reachable(from, budget)
	reach.Each(func(p world.HexCoord) {
		cost, err := e.PathCost(from, p)
		require.NoError(t, err)
		assert.LessOrEqual(t, cost, budget, "%v", p)
	})
}

func TestEngineRebuild(t *testing.T) {
	e := NewEngine(mustParse(t, `""`))
	assert.Equal(t, 2, e.Graph().NodeCount())

	next := mustParse(t, `"""`, `"""`)
	e.Rebuild(next)
	assert.Same(t, next, e.Map())
	assert.Equal(t, 6, e.Graph().NodeCount())
}

func TestSorted(t *testing.T) {
	m := mustParse(t, `"""`, `"""`)
	e := NewEngine(m)
	assert.Equal(t, []world.HexCoord{c(0, 0), c(1, 0), c(2, 0), c(0, 1), c(2, 1)}, Sorted(e.Reachable(c(1, 1), 1)))
}
