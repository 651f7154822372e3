package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// huntAndKill random-walks through unvisited node cells, carving as it goes,
// until the walk is boxed in; it then hunts in raster order for the first
// uncarved node adjacent to the carved region, connects it, and resumes
// walking from there. Generation ends when the hunt finds nothing.
//
// Complexity: O(n² · hunt scans); the raster hunt makes the worst case
// O(n⁴/16) but typical runs stay near O(n²).
func huntAndKill(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	nodes := nodeCells(size)
	visited := make(map[grid.Point]bool, len(nodes))

	cur := grid.Point{X: 1, Y: 1}
	g.Set(cur, grid.Open)
	visited[cur] = true

	for {
		// Kill phase: walk into random unvisited neighbors while possible.
		for {
			fresh := make([]grid.Point, 0, 4)
			for _, nbr := range nodeNeighbors(size, cur) {
				if !visited[nbr] {
					fresh = append(fresh, nbr)
				}
			}
			if len(fresh) == 0 {
				break
			}
			next := fresh[rng.Intn(len(fresh))]
			carveBetween(g, cur, next)
			visited[next] = true
			cur = next
		}

		// Hunt phase: first unvisited node (raster order) touching the
		// carved region becomes the new walk origin.
		found := false
		for _, cand := range nodes {
			if visited[cand] {
				continue
			}
			carved := make([]grid.Point, 0, 4)
			for _, nbr := range nodeNeighbors(size, cand) {
				if visited[nbr] {
					carved = append(carved, nbr)
				}
			}
			if len(carved) == 0 {
				continue
			}
			carveBetween(g, cand, carved[rng.Intn(len(carved))])
			visited[cand] = true
			cur = cand
			found = true

			break
		}
		if !found {
			return
		}
	}
}
