package pathfind

import (
	"errors"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hexfront/internal/world"
)

// Unreachable is the cost reported alongside an error from PathCost.
const Unreachable = -1

var (
	// ErrInvalidPosition means a coordinate has no tile on the map.
	ErrInvalidPosition = errors.New("pathfind: position not on map")
	// ErrUnreachable means no path joins two tiles.
	ErrUnreachable = errors.New("pathfind: no path")
)

// Engine runs queries against one map. The graph is built on first use
// and kept until Rebuild. Not safe for concurrent use.
type Engine struct {
	m     *world.Map
	graph *Graph
}

// NewEngine creates an engine over m.
func NewEngine(m *world.Map) *Engine {
	return &Engine{m: m}
}

// Map returns the map the engine queries.
func (e *Engine) Map() *world.Map {
	return e.m
}

// Rebuild points the engine at a regenerated map and drops the old graph.
func (e *Engine) Rebuild(m *world.Map) {
	e.m = m
	e.graph = nil
}

// Graph returns the path graph, building it if needed.
func (e *Engine) Graph() *Graph {
	if e.graph == nil {
		e.graph = BuildGraph(e.m)
	}
	return e.graph
}

// ShortestPath returns the cheapest route from one tile to another,
// including both endpoints. Entering a tile costs its movement cost.
// Occupancy is ignored. Returns nil when either end is off the map or no
// route exists.
func (e *Engine) ShortestPath(from, to world.HexCoord) []world.HexCoord {
	g := e.Graph()
	if !g.Has(from) || !g.Has(to) {
		return nil
	}
	if from == to {
		return []world.HexCoord{from}
	}

	dist := map[world.HexCoord]int{from: 0}
	prev := make(map[world.HexCoord]world.HexCoord)
	f := newFrontier()
	f.push(from, 0)

	found := false
	for {
		cur, ok := f.pop()
		if !ok {
			break
		}
		if cur.cost > dist[cur.coord] {
			continue // stale entry
		}
		if cur.coord == to {
			found = true
			break
		}
		for _, edge := range g.Edges(cur.coord) {
			next := cur.cost + edge.Cost
			if old, seen := dist[edge.To]; seen && next >= old {
				continue
			}
			dist[edge.To] = next
			prev[edge.To] = cur.coord
			f.push(edge.To, next)
		}
	}
	if !found {
		return nil
	}

	var path []world.HexCoord
	for c := to; c != from; c = prev[c] {
		path = append(path, c)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost returns the movement needed to travel from one tile to
// another: the destination cost for adjacent tiles, otherwise the sum of
// every tile entered along ShortestPath. The origin is never charged.
func (e *Engine) PathCost(from, to world.HexCoord) (int, error) {
	if !e.m.Contains(from) || !e.m.Contains(to) {
		return Unreachable, ErrInvalidPosition
	}
	if from == to {
		return 0, nil
	}
	if world.IsAdjacent(from, to) {
		return e.m.Get(to).MovementCost(), nil
	}

	path := e.ShortestPath(from, to)
	if len(path) == 0 {
		return Unreachable, ErrUnreachable
	}
	return e.costAlong(path), nil
}

// costAlong sums the movement cost of every tile after the first.
func (e *Engine) costAlong(path []world.HexCoord) int {
	total := 0
	for _, c := range path[1:] {
		total += e.m.Get(c).MovementCost()
	}
	return total
}

// Reachable returns every tile a unit at from can enter with budget
// movement points, stepping only through unoccupied tiles. The origin is
// never part of the result.
//
// A tile is settled the first time it is reached and never re-queued.
// That is exact here because entering a tile costs the same from every
// direction, so the first parent popped off the heap is the cheapest.
// Revisit this if costs ever depend on the edge taken.
func (e *Engine) Reachable(from world.HexCoord, budget int) mapset.Set[world.HexCoord] {
	result := mapset.New[world.HexCoord]()
	g := e.Graph()
	if budget <= 0 || !g.Has(from) {
		return result
	}

	seen := mapset.New[world.HexCoord]()
	seen.Put(from)
	f := newFrontier()
	f.push(from, 0)

	for {
		cur, ok := f.pop()
		if !ok {
			break
		}
		for _, edge := range g.Edges(cur.coord) {
			if seen.Has(edge.To) || e.m.Occupied(edge.To) {
				continue
			}
			next := cur.cost + edge.Cost
			if next > budget {
				continue
			}
			seen.Put(edge.To)
			result.Put(edge.To)
			f.push(edge.To, next)
		}
	}
	return result
}

// AdjacentDestinations returns the neighbors of from that a unit with
// budget points may step onto: on the map, unoccupied, and affordable.
// Results follow neighbor direction order.
func (e *Engine) AdjacentDestinations(from world.HexCoord, budget int) []world.HexCoord {
	if !e.m.Contains(from) {
		return nil
	}
	var result []world.HexCoord
	for _, n := range from.Neighbors() {
		t := e.m.Get(n)
		if t == nil || t.Occupied() {
			continue
		}
		if budget >= t.MovementCost() {
			result = append(result, n)
		}
	}
	return result
}

// Sorted returns the members of a coordinate set in row-major order.
func Sorted(s mapset.Set[world.HexCoord]) []world.HexCoord {
	result := make([]world.HexCoord, 0, s.Size())
	s.Each(func(c world.HexCoord) {
		result = append(result, c)
	})
	sortRowMajor(result)
	return result
}

func sortRowMajor(coords []world.HexCoord) {
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Row != coords[j].Row {
			return coords[i].Row < coords[j].Row
		}
		return coords[i].Col < coords[j].Col
	})
}
