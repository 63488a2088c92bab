// Package pathfind answers shortest-path, path-cost and budgeted
// reachability queries over a terrain map.
package pathfind

import (
	"log/slog"

	"github.com/zyedidia/generic/heap"

	"github.com/talgya/hexfront/internal/world"
)

// Edge is a directed step into an adjacent tile. Cost is the movement
// cost of the destination, so it does not depend on where the step
// started.
type Edge struct {
	To   world.HexCoord
	Cost int
}

// Graph is the weighted adjacency structure derived from a map. It only
// reflects terrain; occupancy is read live from the map at query time.
type Graph struct {
	edges map[world.HexCoord][]Edge
	order []world.HexCoord // nodes in row-major order
}

// BuildGraph derives the graph for m. Edges of each node are listed in
// neighbor direction order.
func BuildGraph(m *world.Map) *Graph {
	g := &Graph{edges: make(map[world.HexCoord][]Edge, m.TileCount())}
	edgeCount := 0
	m.Bounds.Each(func(c world.HexCoord) {
		if !m.Contains(c) {
			return
		}
		g.order = append(g.order, c)
		var out []Edge
		for _, n := range c.Neighbors() {
			t := m.Get(n)
			if t == nil {
				continue
			}
			out = append(out, Edge{To: n, Cost: t.MovementCost()})
		}
		g.edges[c] = out
		edgeCount += len(out)
	})
	slog.Debug("path graph built", "nodes", len(g.order), "edges", edgeCount)
	return g
}

// Has reports whether c is a node of the graph.
func (g *Graph) Has(c world.HexCoord) bool {
	_, ok := g.edges[c]
	return ok
}

// Edges returns the outgoing edges of c.
func (g *Graph) Edges(c world.HexCoord) []Edge {
	return g.edges[c]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.order)
}

// frontierEntry is a queued coordinate with its accumulated cost. seq
// records insertion order and breaks cost ties.
type frontierEntry struct {
	coord world.HexCoord
	cost  int
	seq   int
}

// frontier is a binary min-heap keyed by accumulated cost, shared by the
// shortest-path and reachability searches.
type frontier struct {
	h   *heap.Heap[frontierEntry]
	seq int
}

func newFrontier() *frontier {
	return &frontier{
		h: heap.New[frontierEntry](func(a, b frontierEntry) bool {
			if a.cost != b.cost {
				return a.cost < b.cost
			}
			return a.seq < b.seq
		}),
	}
}

func (f *frontier) push(c world.HexCoord, cost int) {
	f.h.Push(frontierEntry{coord: c, cost: cost, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() (frontierEntry, bool) {
	return f.h.Pop()
}
