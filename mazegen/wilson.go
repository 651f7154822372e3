package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// wilson carves a maze via loop-erased random walks. Starting from a single
// carved node, each round walks randomly from an unvisited node until the
// walk hits the carved region; whenever the walk revisits a cell of its own
// trail, the loop is erased (the trail is truncated back to the revisited
// cell) before continuing. The committed trails form a spanning tree sampled
// uniformly over all spanning trees of the node lattice.
//
// Complexity: O(n²) expected carving work; walk length is probabilistic.
func wilson(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	order := shuffledNodes(size, rng)

	visited := make(map[grid.Point]bool, len(order))
	first := order[0]
	g.Set(first, grid.Open)
	visited[first] = true

	for _, origin := range order[1:] {
		if visited[origin] {
			continue
		}

		// Random walk with loop erasure. trailIdx tracks each cell's
		// position in the trail so a revisit can truncate in O(loop).
		trail := []grid.Point{origin}
		trailIdx := map[grid.Point]int{origin: 0}
		cur := origin
		for {
			nbrs := nodeNeighbors(size, cur)
			next := nbrs[rng.Intn(len(nbrs))]

			if visited[next] {
				// Reached the carved region: commit the whole trail.
				for i := 0; i+1 < len(trail); i++ {
					carveBetween(g, trail[i], trail[i+1])
					visited[trail[i]] = true
				}
				last := trail[len(trail)-1]
				carveBetween(g, last, next)
				visited[last] = true

				break
			}

			if at, onTrail := trailIdx[next]; onTrail {
				// Loop: erase everything after the revisited cell.
				for _, p := range trail[at+1:] {
					delete(trailIdx, p)
				}
				trail = trail[:at+1]
				cur = next

				continue
			}

			trailIdx[next] = len(trail)
			trail = append(trail, next)
			cur = next
		}
	}
}
