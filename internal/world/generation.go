// Terrain synthesis using layered simplex noise.
// Generates an elevation field, classifies terrain from it, runs hydrology,
// then relaxes adjacency violations. Fully deterministic in
// (seed, width, height, profile).
package world

import (
	"log/slog"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// BaseSeaLevel is the elevation of the waterline before profile adjustment.
const BaseSeaLevel = 30.0

// Each random sub-step draws from its own source so that changing one step
// never shifts the others.
const (
	seedOffsetElevation   = 0
	seedOffsetTerrain     = 1
	seedOffsetRivers      = 100
	seedOffsetSettlements = 200
)

const (
	DefaultSmoothingPasses  = 2
	DefaultRelaxationPasses = 5
)

// GenConfig holds map synthesis parameters.
type GenConfig struct {
	Width   int
	Height  int
	Seed    int64
	Profile GenerationProfile // Zero value means the registry default

	SmoothingPasses  int // Neighborhood-mean passes over the elevation field
	RelaxationPasses int // Upper bound on adjacency repair passes
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:            40,
		Height:           24,
		Seed:             42,
		Profile:          DefaultRegistry().Default(),
		SmoothingPasses:  DefaultSmoothingPasses,
		RelaxationPasses: DefaultRelaxationPasses,
	}
}

// SmallTestConfig returns a tiny map for rapid iteration.
func SmallTestConfig() GenConfig {
	cfg := DefaultGenConfig()
	cfg.Width = 20
	cfg.Height = 10
	return cfg
}

// SeaLevel returns the effective waterline for this configuration.
func (cfg GenConfig) SeaLevel() float64 {
	return BaseSeaLevel + cfg.Profile.SeaLevelAdjustment
}

// FlowThreshold returns the largest elevation step the flood will cross.
func (cfg GenConfig) FlowThreshold() float64 {
	return 2 * cfg.Profile.WaterFlowIntensity
}

// elevationGrid is the dense elevation field. It only lives for the
// duration of a synthesis run.
type elevationGrid struct {
	bounds Bounds
	values []float64
}

func newElevationGrid(b Bounds) *elevationGrid {
	return &elevationGrid{bounds: b, values: make([]float64, b.Area())}
}

func (g *elevationGrid) at(c HexCoord) float64 {
	return g.values[g.bounds.index(c)]
}

func (g *elevationGrid) set(c HexCoord, v float64) {
	g.values[g.bounds.index(c)] = v
}

// Synthesize creates a complete terrain map.
func Synthesize(cfg GenConfig) *Map {
	if cfg.Profile.Name == "" {
		cfg.Profile = DefaultRegistry().Default()
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}

	elev := generateElevation(cfg)
	smoothElevation(elev, cfg.SmoothingPasses)

	terrainRNG := rand.New(rand.NewSource(cfg.Seed + seedOffsetTerrain))
	m := classifyTerrain(elev, cfg.Profile, terrainRNG)

	seaLevel := cfg.SeaLevel()
	applyWaterFlow(m, elev, seaLevel, cfg.FlowThreshold())

	riverRNG := rand.New(rand.NewSource(cfg.Seed + seedOffsetRivers))
	placeRivers(m, elev, seaLevel, cfg.Profile.RiverGenerationRate, riverRNG)

	passes := relaxAdjacency(m, elev, cfg.RelaxationPasses)

	counts := TerrainCounts(m)
	for _, k := range SortedKinds(counts) {
		slog.Debug("terrain", "type", k.String(), "count", counts[k])
	}
	slog.Debug("map synthesized",
		"profile", cfg.Profile.Name,
		"seed", cfg.Seed,
		"size", m.String(),
		"relax_passes", passes,
		"violations", len(AdjacencyViolations(m)),
	)

	return m
}

// generateElevation samples coherent noise at every coordinate and scales
// it into [0, 100·multiplier).
func generateElevation(cfg GenConfig) *elevationGrid {
	noise := opensimplex.NewNormalized(cfg.Seed + seedOffsetElevation)
	g := newElevationGrid(Bounds{Width: cfg.Width, Height: cfg.Height})

	octaves := cfg.Profile.Octaves
	if octaves < 1 {
		octaves = 1
	}

	g.bounds.Each(func(c HexCoord) {
		x, y := c.center()
		v := octaveNoise(noise, x, y, octaves, cfg.Profile.NoiseFrequency, 0.5)
		g.set(c, v*100*cfg.Profile.ElevationMultiplier)
	})
	return g
}

// smoothElevation replaces each cell with the mean of itself and its
// in-bounds neighbors, once per pass. Removes single-cell spikes.
func smoothElevation(g *elevationGrid, passes int) {
	next := make([]float64, len(g.values))
	for pass := 0; pass < passes; pass++ {
		g.bounds.Each(func(c HexCoord) {
			sum := g.at(c)
			n := 1
			for _, nc := range NeighborsInBounds(c, g.bounds) {
				sum += g.at(nc)
				n++
			}
			next[g.bounds.index(c)] = sum / float64(n)
		})
		g.values, next = next, g.values
	}
}

// classifyTerrain picks a kind for every cell from the kinds whose band
// contains its elevation, weighted by the profile bias.
func classifyTerrain(g *elevationGrid, p GenerationProfile, rng *rand.Rand) *Map {
	m := NewMap(g.bounds.Width, g.bounds.Height)
	g.bounds.Each(func(c HexCoord) {
		e := g.at(c)
		m.Set(&Tile{
			Coord:     c,
			Terrain:   pickTerrain(e, p, rng),
			Elevation: e,
		})
	})
	return m
}

// pickTerrain draws uniformly from a pool in which each candidate kind is
// replicated round(bias) times, at least once. Elevations no band covers
// fall back to Desert.
func pickTerrain(elevation float64, p GenerationProfile, rng *rand.Rand) TerrainKind {
	candidates := KindsForElevation(elevation)
	if len(candidates) == 0 {
		return TerrainDesert
	}
	if len(candidates) == 1 {
		return candidates[0]
	}

	var pool []TerrainKind
	for _, k := range candidates {
		copies := int(math.Round(p.Bias(k)))
		if copies < 1 {
			copies = 1
		}
		for i := 0; i < copies; i++ {
			pool = append(pool, k)
		}
	}
	return pool[rng.Intn(len(pool))]
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
