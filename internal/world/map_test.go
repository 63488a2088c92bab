package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapOccupancy(t *testing.T) {
	m, err := ParseGlyphs(`"""`, `"""`)
	require.NoError(t, err)

	c := HexCoord{Col: 1, Row: 1}
	require.NoError(t, m.Place("scout", c))
	assert.True(t, m.Occupied(c))
	assert.Error(t, m.Place("knight", c), "tile already taken")
	assert.Error(t, m.Place("knight", HexCoord{Col: 9, Row: 9}), "no such tile")
	assert.Error(t, m.Place("", HexCoord{}), "empty id")

	pos, ok := m.Locate("scout")
	require.True(t, ok)
	assert.Equal(t, c, pos)

	_, ok = m.Locate("knight")
	assert.False(t, ok)

	m.Vacate(c)
	assert.False(t, m.Occupied(c))
	m.Vacate(HexCoord{Col: -1, Row: -1})
}

func TestMapNeighbors(t *testing.T) {
	m, err := ParseGlyphs(`~~~`, `~^~`, `~~~`)
	require.NoError(t, err)

	assert.Len(t, m.Neighbors(HexCoord{1, 1}), 6)
	assert.Len(t, m.Neighbors(HexCoord{0, 0}), 2)
	assert.True(t, m.Contains(HexCoord{2, 2}))
	assert.False(t, m.Contains(HexCoord{3, 2}))
	assert.True(t, m.InBounds(HexCoord{0, 2}))
}

func TestTerrainCounts(t *testing.T) {
	m, err := ParseGlyphs(`~~n`, `"^n`)
	require.NoError(t, err)

	counts := TerrainCounts(m)
	assert.Equal(t, 2, counts[TerrainWater])
	assert.Equal(t, 2, counts[TerrainHill])
	assert.Equal(t, 1, counts[TerrainMountain])
	assert.Equal(t, []TerrainKind{TerrainWater, TerrainGrassland, TerrainHill, TerrainMountain}, SortedKinds(counts))
}

func TestAdjacencyViolationsAndClosure(t *testing.T) {
	clean, err := ParseGlyphs(`"""`, `"n"`, `"""`)
	require.NoError(t, err)
	assert.Empty(t, AdjacencyViolations(clean))
	assert.Equal(t, 1.0, InteriorClosure(clean))

	broken, err := ParseGlyphs(`"""`, `"~"`, `"""`)
	require.NoError(t, err)
	assert.Equal(t, []HexCoord{{1, 1}}, AdjacencyViolations(broken))
	assert.Equal(t, 0.0, InteriorClosure(broken))

	// A lone tile has no neighbors and is exempt.
	single, err := ParseGlyphs(`^`)
	require.NoError(t, err)
	assert.Empty(t, AdjacencyViolations(single))
	assert.Equal(t, 1.0, InteriorClosure(single))
}

func TestParseGlyphsRoundTrip(t *testing.T) {
	rows := []string{`~-."`, `=:n^`}
	m, err := ParseGlyphs(rows...)
	require.NoError(t, err)
	assert.Equal(t, rows, Glyphs(m))

	tile := m.Get(HexCoord{Col: 3, Row: 1})
	assert.Equal(t, TerrainMountain, tile.Terrain)
	assert.True(t, tile.Terrain.InBand(tile.Elevation))

	_, err = ParseGlyphs(`~~`, `~`)
	assert.Error(t, err)
	_, err = ParseGlyphs(`~x`)
	assert.Error(t, err)

	empty, err := ParseGlyphs()
	require.NoError(t, err)
	assert.Zero(t, empty.TileCount())
}

func TestRender(t *testing.T) {
	m, err := ParseGlyphs(`~^~`, `"""`)
	require.NoError(t, err)
	require.NoError(t, m.Place("u1", HexCoord{Col: 0, Row: 1}))

	lines := strings.Split(strings.TrimRight(Render(m), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "~   ~", lines[0])
	assert.Equal(t, "  ^", lines[1])
	assert.Equal(t, `@   "`, lines[2])
	assert.Equal(t, `  "`, lines[3])
}
