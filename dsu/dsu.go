// Package dsu implements a disjoint-set (union-find) structure keyed by
// grid.Point, with iterative path compression and union by rank.
package dsu

import "github.com/katalvlaran/mazepath/grid"

// DisjointSet partitions grid points into equivalence classes that can be
// merged and queried in near-constant amortized time. Its lifetime is scoped
// to a single generation run (Kruskal carving), so it never shrinks.
type DisjointSet struct {
	parent map[grid.Point]grid.Point
	rank   map[grid.Point]int
}

// New returns an empty DisjointSet.
func New() *DisjointSet {
	return &DisjointSet{
		parent: make(map[grid.Point]grid.Point),
		rank:   make(map[grid.Point]int),
	}
}

// Add inserts p as its own singleton set. Adding an existing element is a
// no-op.
func (d *DisjointSet) Add(p grid.Point) {
	if _, ok := d.parent[p]; ok {
		return
	}
	d.parent[p] = p
	d.rank[p] = 0
}

// Find returns the representative of the set containing p, applying path
// compression (grandparent hops) along the way. Unknown elements are
// auto-added as singletons first.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(p grid.Point) grid.Point {
	if _, ok := d.parent[p]; !ok {
		d.Add(p)

		return p
	}
	// Walk up until the root, pointing each node at its grandparent.
	for d.parent[p] != p {
		d.parent[p] = d.parent[d.parent[p]]
		p = d.parent[p]
	}

	return p
}

// Union merges the sets containing a and b, attaching the shorter tree under
// the taller one. Reports whether a merge happened (false when a and b were
// already in the same set).
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b grid.Point) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		d.parent[rb] = ra
		d.rank[ra]++
	}

	return true
}

// Connected reports whether a and b currently share a representative.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Connected(a, b grid.Point) bool {
	return d.Find(a) == d.Find(b)
}
