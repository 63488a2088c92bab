package world

import (
	"fmt"
	"strings"
)

// TerrainKind classifies a hex tile. The set is closed.
type TerrainKind uint8

const (
	TerrainWater     TerrainKind = iota // Open sea
	TerrainLagoon                       // Shallow standing water
	TerrainShoreline                    // Wet fringe between water and land
	TerrainRiver                        // Freshwater channel
	TerrainDesert                       // Dry lowland
	TerrainGrassland                    // Open fertile land
	TerrainHill                         // Broken high ground
	TerrainMountain                     // Peaks
)

// NumTerrainKinds is the size of the terrain enumeration.
const NumTerrainKinds = int(TerrainMountain) + 1

// TerrainInfo holds the fixed per-kind constants.
type TerrainInfo struct {
	Name         string
	MovementCost int     // Points spent to enter a tile of this kind (>= 1)
	DefenseBonus int     // Added to a defender standing here (>= 0)
	MinElevation float64 // Closed elevation band used for classification
	MaxElevation float64
	Glyph        rune
}

// Bands overlap on purpose so that classification has a choice to make,
// e.g. Desert and Grassland share most of their range.
var terrainTable = [NumTerrainKinds]TerrainInfo{
	TerrainWater:     {Name: "Water", MovementCost: 6, DefenseBonus: 0, MinElevation: 0, MaxElevation: 30, Glyph: '~'},
	TerrainLagoon:    {Name: "Lagoon", MovementCost: 4, DefenseBonus: 0, MinElevation: 25, MaxElevation: 38, Glyph: '-'},
	TerrainShoreline: {Name: "Shoreline", MovementCost: 1, DefenseBonus: 0, MinElevation: 33, MaxElevation: 42, Glyph: '.'},
	TerrainRiver:     {Name: "River", MovementCost: 3, DefenseBonus: 1, MinElevation: 38, MaxElevation: 60, Glyph: '='},
	TerrainDesert:    {Name: "Desert", MovementCost: 2, DefenseBonus: 0, MinElevation: 40, MaxElevation: 65, Glyph: ':'},
	TerrainGrassland: {Name: "Grassland", MovementCost: 1, DefenseBonus: 0, MinElevation: 40, MaxElevation: 70, Glyph: '"'},
	TerrainHill:      {Name: "Hill", MovementCost: 2, DefenseBonus: 2, MinElevation: 62, MaxElevation: 85, Glyph: 'n'},
	TerrainMountain:  {Name: "Mountain", MovementCost: 4, DefenseBonus: 3, MinElevation: 80, MaxElevation: 150, Glyph: '^'},
}

// adjacencyRules lists which kinds may border each kind. The table is
// symmetric: if A allows B then B allows A.
var adjacencyRules = [NumTerrainKinds]kindSet{
	TerrainWater:     setOf(TerrainWater, TerrainLagoon, TerrainShoreline),
	TerrainLagoon:    setOf(TerrainWater, TerrainLagoon, TerrainShoreline, TerrainRiver),
	TerrainShoreline: setOf(TerrainWater, TerrainLagoon, TerrainShoreline, TerrainRiver, TerrainDesert, TerrainGrassland),
	TerrainRiver:     setOf(TerrainLagoon, TerrainShoreline, TerrainRiver, TerrainDesert, TerrainGrassland, TerrainHill),
	TerrainDesert:    setOf(TerrainShoreline, TerrainRiver, TerrainDesert, TerrainGrassland, TerrainHill),
	TerrainGrassland: setOf(TerrainShoreline, TerrainRiver, TerrainDesert, TerrainGrassland, TerrainHill),
	TerrainHill:      setOf(TerrainRiver, TerrainDesert, TerrainGrassland, TerrainHill, TerrainMountain),
	TerrainMountain:  setOf(TerrainHill, TerrainMountain),
}

// kindSet is a bitset over TerrainKind.
type kindSet uint16

func setOf(kinds ...TerrainKind) kindSet {
	var s kindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k TerrainKind) bool {
	return s&(1<<k) != 0
}

// AllTerrainKinds returns every kind in enumeration order.
func AllTerrainKinds() []TerrainKind {
	kinds := make([]TerrainKind, NumTerrainKinds)
	for i := range kinds {
		kinds[i] = TerrainKind(i)
	}
	return kinds
}

// Valid reports whether k is a member of the enumeration.
func (k TerrainKind) Valid() bool {
	return int(k) < NumTerrainKinds
}

// Info returns the constant table entry for k.
func (k TerrainKind) Info() TerrainInfo {
	if !k.Valid() {
		return TerrainInfo{Name: "Unknown", MovementCost: 1, Glyph: '?'}
	}
	return terrainTable[k]
}

func (k TerrainKind) String() string { return k.Info().Name }

// MovementCost returns the points needed to enter a tile of kind k.
func (k TerrainKind) MovementCost() int { return k.Info().MovementCost }

// DefenseBonus returns the defensive modifier of kind k.
func (k TerrainKind) DefenseBonus() int { return k.Info().DefenseBonus }

// InBand reports whether elevation falls inside k's closed elevation band.
func (k TerrainKind) InBand(elevation float64) bool {
	info := k.Info()
	return elevation >= info.MinElevation && elevation <= info.MaxElevation
}

// Allows reports whether a tile of kind k may border a tile of kind other.
func (k TerrainKind) Allows(other TerrainKind) bool {
	if !k.Valid() {
		return false
	}
	return adjacencyRules[k].has(other)
}

// AllowedNeighbors returns the kinds that may border k, in enumeration order.
func AllowedNeighbors(k TerrainKind) []TerrainKind {
	var result []TerrainKind
	for _, other := range AllTerrainKinds() {
		if k.Allows(other) {
			result = append(result, other)
		}
	}
	return result
}

// KindsForElevation returns every kind whose band contains elevation,
// in enumeration order.
func KindsForElevation(elevation float64) []TerrainKind {
	var result []TerrainKind
	for _, k := range AllTerrainKinds() {
		if k.InBand(elevation) {
			result = append(result, k)
		}
	}
	return result
}

// ParseTerrainKind resolves a terrain name, ignoring case.
func ParseTerrainKind(name string) (TerrainKind, error) {
	for _, k := range AllTerrainKinds() {
		if strings.EqualFold(k.String(), strings.TrimSpace(name)) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain kind %q", name)
}

// IsWater reports whether k is open or standing water.
func (k TerrainKind) IsWater() bool {
	return k == TerrainWater || k == TerrainLagoon
}
