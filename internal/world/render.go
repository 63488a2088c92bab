package world

import (
	"fmt"
	"strings"
)

// GlyphKind resolves a terrain glyph.
func GlyphKind(r rune) (TerrainKind, bool) {
	for _, k := range AllTerrainKinds() {
		if k.Info().Glyph == r {
			return k, true
		}
	}
	return 0, false
}

// ParseGlyphs builds a map from compact rows of terrain glyphs, one rune
// per column. All rows must have the same length. Elevation is set to the
// midpoint of each kind's band.
func ParseGlyphs(rows ...string) (*Map, error) {
	if len(rows) == 0 {
		return NewMap(0, 0), nil
	}
	width := len([]rune(rows[0]))
	m := NewMap(width, len(rows))
	for row, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d: width %d, want %d", row, len(runes), width)
		}
		for col, r := range runes {
			kind, ok := GlyphKind(r)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", row, col, r)
			}
			info := kind.Info()
			m.Set(&Tile{
				Coord:     HexCoord{Col: col, Row: row},
				Terrain:   kind,
				Elevation: (info.MinElevation + info.MaxElevation) / 2,
			})
		}
	}
	return m, nil
}

// Glyphs returns the compact row form accepted by ParseGlyphs.
func Glyphs(m *Map) []string {
	rows := make([]string, m.Bounds.Height)
	for row := range rows {
		var sb strings.Builder
		for col := 0; col < m.Bounds.Width; col++ {
			sb.WriteRune(glyphAt(m, HexCoord{Col: col, Row: row}))
		}
		rows[row] = sb.String()
	}
	return rows
}

// Render draws the map as text. Each map row takes two lines: even columns
// on the first, odd columns (which sit half a hex lower) on the second.
// Occupied tiles show '@' and settlements '#'.
func Render(m *Map) string {
	var sb strings.Builder
	width := m.Bounds.Width*2 - 1
	if width < 0 {
		width = 0
	}
	for row := 0; row < m.Bounds.Height; row++ {
		for parity := 0; parity < 2; parity++ {
			line := []rune(strings.Repeat(" ", width))
			for col := parity; col < m.Bounds.Width; col += 2 {
				line[col*2] = displayGlyph(m, HexCoord{Col: col, Row: row})
			}
			sb.WriteString(strings.TrimRight(string(line), " "))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func displayGlyph(m *Map, c HexCoord) rune {
	t := m.Get(c)
	switch {
	case t == nil:
		return ' '
	case t.Occupied():
		return '@'
	case t.SettlementID != nil:
		return '#'
	default:
		return t.Terrain.Info().Glyph
	}
}

func glyphAt(m *Map, c HexCoord) rune {
	t := m.Get(c)
	if t == nil {
		return ' '
	}
	return t.Terrain.Info().Glyph
}
