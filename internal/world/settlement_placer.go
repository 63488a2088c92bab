// Settlement placement: finds suitable start sites on a synthesized map.
package world

import (
	"math/rand"
	"sort"
)

// SettlementSeed holds the parameters for an initial settlement placement.
type SettlementSeed struct {
	ID    uint64
	Coord HexCoord
	Size  SettlementSize
	Score float64 // Desirability score
	Name  string
}

// SettlementSize categorizes settlement scale.
type SettlementSize uint8

const (
	SizeVillage SettlementSize = iota
	SizeTown
	SizeCity
)

func (s SettlementSize) String() string {
	switch s {
	case SizeCity:
		return "City"
	case SizeTown:
		return "Town"
	default:
		return "Village"
	}
}

// MinSettlementDistance is the smallest hex distance allowed between two sites.
const MinSettlementDistance = 3

// PlaceSettlements picks up to count sites on m, best first, and records
// each on its tile. The best fifth become cities, the next third towns.
func PlaceSettlements(m *Map, seed int64, count int) []SettlementSeed {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed + seedOffsetSettlements))

	type scored struct {
		coord HexCoord
		score float64
		order int
	}
	var candidates []scored
	m.Bounds.Each(func(c HexCoord) {
		t := m.Get(c)
		if t == nil || t.Occupied() || t.SettlementID != nil {
			return
		}
		if s := settlementScore(m, c, t); s > 0 {
			candidates = append(candidates, scored{c, s, len(candidates)})
		}
	})

	// Sort by score descending, row-major order among equals.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].order < candidates[j].order
	})

	numCities := count / 5
	if numCities < 1 {
		numCities = 1
	}
	numTowns := count / 3

	var seeds []SettlementSeed
	for _, c := range candidates {
		if len(seeds) >= count {
			break
		}
		if tooClose(c.coord, seeds, MinSettlementDistance) {
			continue
		}
		size := SizeVillage
		switch {
		case len(seeds) < numCities:
			size = SizeCity
		case len(seeds) < numCities+numTowns:
			size = SizeTown
		}
		seeds = append(seeds, SettlementSeed{
			ID:    uint64(len(seeds) + 1),
			Coord: c.coord,
			Size:  size,
			Score: c.score,
		})
	}

	names := generateNames(rng, len(seeds))
	for i := range seeds {
		if i < len(names) {
			seeds[i].Name = names[i]
		}
		id := seeds[i].ID
		m.Get(seeds[i].Coord).SettlementID = &id
	}

	return seeds
}

// settlementScore evaluates how desirable a tile is for a settlement.
// Prefers open grassland with fresh water or coast nearby.
func settlementScore(m *Map, coord HexCoord, t *Tile) float64 {
	score := 0.0

	switch t.Terrain {
	case TerrainGrassland:
		score += 3.0
	case TerrainShoreline:
		score += 2.5 // Harbors
	case TerrainRiver:
		score += 2.0
	case TerrainDesert:
		score += 1.0
	case TerrainHill:
		score += 1.5 // Defensible
	default:
		return 0
	}

	// Bonus for nearby terrain diversity.
	var kinds kindSet
	waterAccess := false
	for _, n := range m.Neighbors(coord) {
		if !n.Terrain.IsWater() {
			kinds |= setOf(n.Terrain)
		}
		switch n.Terrain {
		case TerrainRiver, TerrainLagoon, TerrainShoreline:
			waterAccess = true
		}
	}
	for _, k := range AllTerrainKinds() {
		if kinds.has(k) {
			score += 0.3
		}
	}

	if waterAccess {
		score += 0.5
	}

	return score
}

func tooClose(coord HexCoord, existing []SettlementSeed, minDist int) bool {
	for _, s := range existing {
		if Distance(coord, s.Coord) < minDist {
			return true
		}
	}
	return false
}

// generateNames draws distinct two-part names, at most one per syllable pair.
func generateNames(rng *rand.Rand, count int) []string {
	prefixes := []string{
		"Amber", "Birch", "Cinder", "Dun", "Ember", "Fen", "Glen",
		"Hart", "Ivy", "Kestrel", "Lark", "Marrow", "North", "Orchard",
		"Pike", "Quarry", "Raven", "Salt", "Tallow", "Umber", "Vale",
		"Willow", "Yarrow", "Bram", "Cold", "Dusk", "Flint", "Heron",
	}
	suffixes := []string{
		"mere", "holt", "combe", "garth", "hythe", "ley", "thorpe",
		"stow", "shaw", "by", "ton", "den", "minster", "wold",
		"side", "hurst", "worth", "ness", "fold", "cote", "barrow",
		"mouth", "stone", "hold", "more", "low", "gill", "haugh",
	}
	if limit := len(prefixes) * len(suffixes); count > limit {
		count = limit
	}

	used := make(map[string]bool)
	names := make([]string, 0, count)

	for len(names) < count {
		name := prefixes[rng.Intn(len(prefixes))] + suffixes[rng.Intn(len(suffixes))]
		if !used[name] {
			used[name] = true
			names = append(names, name)
		}
	}

	return names
}
