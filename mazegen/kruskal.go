package mazegen

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/mazepath/dsu"
	"github.com/katalvlaran/mazepath/grid"
)

// newNodeSet opens every node cell and registers it as a singleton set.
func newNodeSet(g *grid.Grid, nodes []grid.Point) *dsu.DisjointSet {
	ds := dsu.New()
	for _, n := range nodes {
		g.Set(n, grid.Open)
		ds.Add(n)
	}

	return ds
}

// wallEdge is a transient candidate passage between two adjacent node cells.
type wallEdge struct {
	from, to grid.Point
	weight   int
}

// kruskal carves a perfect maze by treating every odd/odd cell as a node,
// assigning random weights to all candidate passages, and unioning endpoint
// sets in ascending weight order. Because each surviving passage is chosen
// with equal probability, the resulting maze is unbiased.
//
// Steps mirror the classic MST formulation:
//  1. Open every node cell; register it in the disjoint set.
//  2. Enumerate east/south passages between adjacent nodes with rng weights.
//  3. Stable-sort passages by ascending weight (deterministic per seed).
//  4. For each passage, if the endpoints are in different sets, union them
//     and carve the connecting wall.
//
// Complexity: O(n² log n) time for the sort, O(n²) memory.
func kruskal(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	nodes := nodeCells(size)

	ds := newNodeSet(g, nodes)

	edges := make([]wallEdge, 0, 2*len(nodes))
	for _, n := range nodes {
		// East and south only: every passage enumerated exactly once.
		if e := (grid.Point{X: n.X + 2, Y: n.Y}); e.X < size {
			edges = append(edges, wallEdge{from: n, to: e, weight: rng.Int()})
		}
		if s := (grid.Point{X: n.X, Y: n.Y + 2}); s.Y < size {
			edges = append(edges, wallEdge{from: n, to: s, weight: rng.Int()})
		}
	}

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].weight < edges[j].weight
	})

	for _, e := range edges {
		if ds.Union(e.from, e.to) {
			carveBetween(g, e.from, e.to)
		}
	}
}
