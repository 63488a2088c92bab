package world

// relaxAdjacency repairs tiles that have no neighbor of an allowed kind.
// A violating tile takes the first kind that fits its elevation band and
// that some neighbor accepts, scanning neighbors in direction order.
// Runs at most maxPasses row-major passes and stops early on a clean pass.
// Returns the number of passes run. Violations left after the cap are
// accepted as they are.
func relaxAdjacency(m *Map, g *elevationGrid, maxPasses int) int {
	passes := 0
	for passes < maxPasses {
		passes++
		changed := 0
		m.Bounds.Each(func(c HexCoord) {
			if m.satisfied(c) {
				return
			}
			tile := m.Get(c)
			if k, ok := replacementKind(m, c, g.at(c)); ok && k != tile.Terrain {
				tile.Terrain = k
				changed++
			}
		})
		if changed == 0 {
			break
		}
	}
	return passes
}

// replacementKind finds a kind for the tile at c that suits elevation and
// is accepted by at least one neighbor's rule set.
func replacementKind(m *Map, c HexCoord, elevation float64) (TerrainKind, bool) {
	current := m.Get(c).Terrain
	candidates := KindsForElevation(elevation)
	for _, n := range m.Neighbors(c) {
		for _, k := range candidates {
			if k == current {
				continue
			}
			if n.Terrain.Allows(k) {
				return k, true
			}
		}
	}
	return current, false
}
