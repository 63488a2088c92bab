package world

import "math/rand"

const (
	// deepWaterDepth is how far below sea level a flooded cell must lie to
	// become open water rather than lagoon.
	deepWaterDepth = 5.0

	// Valley test for river placement: a cell qualifies when at least
	// valleyMinHigherNeighbors neighbors rise valleyRise or more above it.
	valleyRise               = 5.0
	valleyMinHigherNeighbors = 3

	// riverMaxElevation is the exclusive upper bound for river cells.
	riverMaxElevation = 60.0
)

// applyWaterFlow floods outward from every cell at or below sea level,
// crossing to a neighbor whose elevation is within threshold of the
// current cell. Reached cells at or below sea level become Water (deep)
// or Lagoon (shallow). Reached land above sea level keeps its kind.
func applyWaterFlow(m *Map, g *elevationGrid, seaLevel, threshold float64) {
	b := g.bounds
	reached := make([]bool, b.Area())
	var queue []HexCoord

	b.Each(func(c HexCoord) {
		if g.at(c) <= seaLevel {
			reached[b.index(c)] = true
			queue = append(queue, c)
		}
	})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		e := g.at(current)
		for _, nc := range NeighborsInBounds(current, b) {
			if reached[b.index(nc)] {
				continue
			}
			diff := g.at(nc) - e
			if diff < 0 {
				diff = -diff
			}
			if diff > threshold {
				continue
			}
			reached[b.index(nc)] = true
			queue = append(queue, nc)
		}
	}

	b.Each(func(c HexCoord) {
		if !reached[b.index(c)] {
			return
		}
		tile := m.Get(c)
		e := g.at(c)
		switch {
		case e <= seaLevel-deepWaterDepth:
			tile.Terrain = TerrainWater
		case e <= seaLevel:
			tile.Terrain = TerrainLagoon
		}
	})
}

// placeRivers turns interior valley cells above the waterline into river,
// each with probability rate. One draw per qualifying cell, row-major.
func placeRivers(m *Map, g *elevationGrid, seaLevel, rate float64, rng *rand.Rand) {
	b := g.bounds
	b.Each(func(c HexCoord) {
		if !b.Interior(c) {
			return
		}
		e := g.at(c)
		if e <= seaLevel || e >= riverMaxElevation {
			return
		}
		if !isValley(g, c) {
			return
		}
		if rng.Float64() < rate {
			m.Get(c).Terrain = TerrainRiver
		}
	})
}

// isValley reports whether enough neighbors rise well above c.
func isValley(g *elevationGrid, c HexCoord) bool {
	e := g.at(c)
	higher := 0
	for _, nc := range NeighborsInBounds(c, g.bounds) {
		if g.at(nc) >= e+valleyRise {
			higher++
		}
	}
	return higher >= valleyMinHigherNeighbors
}
