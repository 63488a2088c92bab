package world

import (
	"fmt"
	"sort"
)

// Tile is a single hex on the map.
type Tile struct {
	Coord     HexCoord    `json:"coord"`
	Terrain   TerrainKind `json:"terrain"`
	Elevation float64     `json:"elevation"` // Post-smoothing elevation, for reporting only

	// Occupant is the ID of the unit standing here, or empty.
	// At most one unit may occupy a tile.
	Occupant string `json:"occupant,omitempty"`

	// Settlement on this hex, if any.
	SettlementID *uint64 `json:"settlement_id,omitempty"`
}

// Occupied reports whether a unit stands on the tile.
func (t *Tile) Occupied() bool {
	return t.Occupant != ""
}

// MovementCost returns the cost of entering this tile.
func (t *Tile) MovementCost() int {
	return t.Terrain.MovementCost()
}

// Map holds the complete hex grid. Tiles are created once by synthesis;
// afterwards only occupancy and settlements change.
type Map struct {
	Tiles  map[HexCoord]*Tile `json:"-"`
	Bounds Bounds             `json:"bounds"`
}

// NewMap creates an empty map with the given extent.
func NewMap(width, height int) *Map {
	b := Bounds{Width: width, Height: height}
	return &Map{
		Tiles:  make(map[HexCoord]*Tile, b.Area()),
		Bounds: b,
	}
}

// Get returns the tile at the given coordinate, or nil if absent.
func (m *Map) Get(coord HexCoord) *Tile {
	return m.Tiles[coord]
}

// Set places a tile at its coordinate.
func (m *Map) Set(tile *Tile) {
	m.Tiles[tile.Coord] = tile
}

// Contains reports whether the map holds a tile at coord.
func (m *Map) Contains(coord HexCoord) bool {
	_, ok := m.Tiles[coord]
	return ok
}

// InBounds reports whether coord lies within the map's rectangle.
func (m *Map) InBounds(coord HexCoord) bool {
	return m.Bounds.Contains(coord)
}

// Occupied reports whether a unit stands at coord. Absent tiles are unoccupied.
func (m *Map) Occupied(coord HexCoord) bool {
	t := m.Get(coord)
	return t != nil && t.Occupied()
}

// Place puts a unit on an empty tile.
func (m *Map) Place(unitID string, coord HexCoord) error {
	if unitID == "" {
		return fmt.Errorf("place at %v: empty unit id", coord)
	}
	t := m.Get(coord)
	if t == nil {
		return fmt.Errorf("place %s: no tile at %v", unitID, coord)
	}
	if t.Occupied() {
		return fmt.Errorf("place %s: tile %v occupied by %s", unitID, coord, t.Occupant)
	}
	t.Occupant = unitID
	return nil
}

// Vacate clears the occupant of coord, if any.
func (m *Map) Vacate(coord HexCoord) {
	if t := m.Get(coord); t != nil {
		t.Occupant = ""
	}
}

// Locate scans the map in row-major order for the tile holding unitID.
func (m *Map) Locate(unitID string) (HexCoord, bool) {
	var (
		found HexCoord
		ok    bool
	)
	m.Bounds.Each(func(c HexCoord) {
		if ok {
			return
		}
		if t := m.Get(c); t != nil && t.Occupant == unitID {
			found, ok = c, true
		}
	})
	return found, ok
}

// Neighbors returns the tiles adjacent to coord, in direction order.
func (m *Map) Neighbors(coord HexCoord) []*Tile {
	result := make([]*Tile, 0, 6)
	for _, n := range coord.Neighbors() {
		if t := m.Get(n); t != nil {
			result = append(result, t)
		}
	}
	return result
}

// TileCount returns the total number of tiles in the map.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// String returns a summary of the map.
func (m *Map) String() string {
	return fmt.Sprintf("Map(%dx%d, tiles=%d)", m.Bounds.Width, m.Bounds.Height, m.TileCount())
}

// TerrainCounts returns a summary of terrain kind distribution.
func TerrainCounts(m *Map) map[TerrainKind]int {
	counts := make(map[TerrainKind]int)
	for _, t := range m.Tiles {
		counts[t.Terrain]++
	}
	return counts
}

// SortedKinds returns the keys of a count table in enumeration order.
func SortedKinds(counts map[TerrainKind]int) []TerrainKind {
	kinds := make([]TerrainKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// satisfied reports whether the tile at c has at least one neighbor whose
// kind is in its own allowed set. A tile with no neighbors is exempt.
func (m *Map) satisfied(c HexCoord) bool {
	t := m.Get(c)
	if t == nil {
		return true
	}
	neighbors := m.Neighbors(c)
	if len(neighbors) == 0 {
		return true
	}
	for _, n := range neighbors {
		if t.Terrain.Allows(n.Terrain) {
			return true
		}
	}
	return false
}

// AdjacencyViolations returns the coordinates whose tile has no allowed
// neighbor, in row-major order.
func AdjacencyViolations(m *Map) []HexCoord {
	var result []HexCoord
	m.Bounds.Each(func(c HexCoord) {
		if m.Contains(c) && !m.satisfied(c) {
			result = append(result, c)
		}
	})
	return result
}

// InteriorClosure returns the fraction of interior tiles that satisfy the
// adjacency rules. A map without interior tiles reports 1.
func InteriorClosure(m *Map) float64 {
	total, ok := 0, 0
	m.Bounds.Each(func(c HexCoord) {
		if !m.Bounds.Interior(c) || !m.Contains(c) {
			return
		}
		total++
		if m.satisfied(c) {
			ok++
		}
	})
	if total == 0 {
		return 1
	}
	return float64(ok) / float64(total)
}
