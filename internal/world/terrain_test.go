package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainTable(t *testing.T) {
	for _, k := range AllTerrainKinds() {
		info := k.Info()
		assert.GreaterOrEqual(t, info.MovementCost, 1, "%s movement cost", k)
		assert.GreaterOrEqual(t, info.DefenseBonus, 0, "%s defense bonus", k)
		assert.LessOrEqual(t, info.MinElevation, info.MaxElevation, "%s band", k)
	}

	assert.Equal(t, 2, TerrainHill.MovementCost())
	assert.Equal(t, 4, TerrainLagoon.MovementCost())
	assert.Equal(t, 3, TerrainRiver.MovementCost())
	assert.Equal(t, 3, TerrainMountain.DefenseBonus())
}

func TestAdjacencyRulesSymmetric(t *testing.T) {
	for _, a := range AllTerrainKinds() {
		assert.True(t, a.Allows(a), "%s should border itself", a)
		for _, b := range AllTerrainKinds() {
			assert.Equal(t, a.Allows(b), b.Allows(a), "%s/%s", a, b)
		}
	}
}

func TestAllowedNeighbors(t *testing.T) {
	assert.Equal(t, []TerrainKind{TerrainHill, TerrainMountain}, AllowedNeighbors(TerrainMountain))
	assert.Equal(t, []TerrainKind{TerrainWater, TerrainLagoon, TerrainShoreline}, AllowedNeighbors(TerrainWater))
	assert.False(t, TerrainKind(200).Allows(TerrainWater))
}

func TestKindsForElevation(t *testing.T) {
	tests := []struct {
		elevation float64
		want      []TerrainKind
	}{
		{0, []TerrainKind{TerrainWater}},
		{30, []TerrainKind{TerrainWater, TerrainLagoon}},
		{41, []TerrainKind{TerrainShoreline, TerrainRiver, TerrainDesert, TerrainGrassland}},
		{63, []TerrainKind{TerrainDesert, TerrainGrassland, TerrainHill}},
		{150, []TerrainKind{TerrainMountain}},
		{151, nil},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, KindsForElevation(tc.elevation), "elevation %v", tc.elevation)
	}
}

func TestParseTerrainKind(t *testing.T) {
	for _, k := range AllTerrainKinds() {
		got, err := ParseTerrainKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseTerrainKind("  grassLAND ")
	require.NoError(t, err)
	assert.Equal(t, TerrainGrassland, got)

	_, err = ParseTerrainKind("swamp")
	assert.Error(t, err)
}

func TestTerrainKindUnknown(t *testing.T) {
	k := TerrainKind(99)
	assert.False(t, k.Valid())
	assert.Equal(t, "Unknown", k.String())
	assert.Equal(t, 1, k.MovementCost())
}
