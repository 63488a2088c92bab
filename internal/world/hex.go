// Package world provides the hex grid, terrain, and map synthesis.
// Uses offset coordinates (col, row) on a flat-top grid where odd columns
// sit half a hex lower than even ones ("odd-q").
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// HexCoord is a position on the hex grid in offset coordinates.
type HexCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Col, h.Row)
}

// ParseHexCoord reads a coordinate written as "col,row". Surrounding
// parentheses and spaces are ignored, so String output parses back.
func ParseHexCoord(s string) (HexCoord, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")
	colStr, rowStr, ok := strings.Cut(trimmed, ",")
	if !ok {
		return HexCoord{}, fmt.Errorf("parse coord %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colStr))
	if err != nil {
		return HexCoord{}, fmt.Errorf("parse coord %q: column: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowStr))
	if err != nil {
		return HexCoord{}, fmt.Errorf("parse coord %q: row: %w", s, err)
	}
	return HexCoord{Col: col, Row: row}, nil
}

// CubeCoord is the three-axis form of a hex position. Q+R+S is always 0.
type CubeCoord struct {
	Q, R, S int
}

// Cube converts an offset coordinate to cube coordinates.
func (h HexCoord) Cube() CubeCoord {
	q := h.Col
	r := h.Row - (h.Col-(h.Col&1))/2
	return CubeCoord{Q: q, R: r, S: -q - r}
}

// Direction indexes the six neighbor slots returned by Neighbors.
type Direction uint8

const (
	DirN Direction = iota
	DirNE
	DirSE
	DirS
	DirSW
	DirNW
)

// Row/column deltas per direction. Odd columns are shifted down, so the
// diagonal neighbors of an odd column sit one row lower than for an even one.
var (
	evenColNeighbors = [6]HexCoord{
		{Col: 0, Row: -1},  // N
		{Col: 1, Row: -1},  // NE
		{Col: 1, Row: 0},   // SE
		{Col: 0, Row: 1},   // S
		{Col: -1, Row: 0},  // SW
		{Col: -1, Row: -1}, // NW
	}
	oddColNeighbors = [6]HexCoord{
		{Col: 0, Row: -1}, // N
		{Col: 1, Row: 0},  // NE
		{Col: 1, Row: 1},  // SE
		{Col: 0, Row: 1},  // S
		{Col: -1, Row: 1}, // SW
		{Col: -1, Row: 0}, // NW
	}
)

// Neighbors returns the six adjacent coordinates in direction order
// N, NE, SE, S, SW, NW. Coordinates may lie outside any map.
func (h HexCoord) Neighbors() [6]HexCoord {
	deltas := &evenColNeighbors
	if h.Col&1 == 1 {
		deltas = &oddColNeighbors
	}
	var result [6]HexCoord
	for i, d := range deltas {
		result[i] = HexCoord{Col: h.Col + d.Col, Row: h.Row + d.Row}
	}
	return result
}

// Neighbor returns the adjacent coordinate in the given direction.
func (h HexCoord) Neighbor(dir Direction) HexCoord {
	return h.Neighbors()[dir%6]
}

// IsAdjacent reports whether b is one of a's six neighbors.
func IsAdjacent(a, b HexCoord) bool {
	for _, n := range a.Neighbors() {
		if n == b {
			return true
		}
	}
	return false
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b HexCoord) int {
	ca, cb := a.Cube(), b.Cube()
	return (abs(ca.Q-cb.Q) + abs(ca.R-cb.R) + abs(ca.S-cb.S)) / 2
}

// Bounds is the rectangular extent of a map: columns [0, Width), rows [0, Height).
type Bounds struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether c lies inside the bounds.
func (b Bounds) Contains(c HexCoord) bool {
	return c.Col >= 0 && c.Col < b.Width && c.Row >= 0 && c.Row < b.Height
}

// Interior reports whether c is inside the bounds and not on the outer ring.
func (b Bounds) Interior(c HexCoord) bool {
	return c.Col > 0 && c.Col < b.Width-1 && c.Row > 0 && c.Row < b.Height-1
}

// Area returns the number of coordinates covered.
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Each calls fn for every coordinate in row-major order.
// Anything whose output depends on visit order goes through here, never
// through iteration of a Go map.
func (b Bounds) Each(fn func(c HexCoord)) {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			fn(HexCoord{Col: col, Row: row})
		}
	}
}

// index maps an in-bounds coordinate to its row-major slice offset.
func (b Bounds) index(c HexCoord) int {
	return c.Row*b.Width + c.Col
}

// NeighborsInBounds returns c's neighbors that lie inside the bounds,
// in direction order.
func NeighborsInBounds(c HexCoord, b Bounds) []HexCoord {
	result := make([]HexCoord, 0, 6)
	for _, n := range c.Neighbors() {
		if b.Contains(n) {
			result = append(result, n)
		}
	}
	return result
}

// CoordsInRange returns every in-bounds coordinate within radius of center,
// in row-major order. Scans the whole grid; not meant for hot paths.
func CoordsInRange(center HexCoord, radius int, b Bounds) []HexCoord {
	var result []HexCoord
	if radius < 0 {
		return result
	}
	b.Each(func(c HexCoord) {
		if Distance(center, c) <= radius {
			result = append(result, c)
		}
	})
	return result
}

// center returns the cartesian centre of a flat-top hex of unit size.
// Used to sample noise so that neighboring hexes sit equally far apart.
func (h HexCoord) center() (x, y float64) {
	x = 1.5 * float64(h.Col)
	y = sqrt3 * (float64(h.Row) + 0.5*float64(h.Col&1))
	return x, y
}

const sqrt3 = 1.7320508075688772

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
