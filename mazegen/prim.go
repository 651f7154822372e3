package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// prim grows a spanning tree from the top-left node. It keeps a frontier of
// uncarved node cells adjacent to the tree; each iteration picks a random
// frontier cell, connects it to a random already-carved neighbor, and adds
// the cell's own uncarved neighbors to the frontier.
//
// Complexity: O(n²) expected time, O(n²) memory.
func prim(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	visited := make(map[grid.Point]bool)
	inFrontier := make(map[grid.Point]bool)
	frontier := make([]grid.Point, 0, size)

	addFrontier := func(p grid.Point) {
		for _, nbr := range nodeNeighbors(size, p) {
			if !visited[nbr] && !inFrontier[nbr] {
				inFrontier[nbr] = true
				frontier = append(frontier, nbr)
			}
		}
	}

	root := grid.Point{X: 1, Y: 1}
	g.Set(root, grid.Open)
	visited[root] = true
	addFrontier(root)

	for len(frontier) > 0 {
		// Swap-remove a random frontier cell.
		i := rng.Intn(len(frontier))
		cell := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		delete(inFrontier, cell)

		// Connect to a random neighbor that is already part of the tree.
		carved := make([]grid.Point, 0, 4)
		for _, nbr := range nodeNeighbors(size, cell) {
			if visited[nbr] {
				carved = append(carved, nbr)
			}
		}
		if len(carved) == 0 {
			continue
		}
		carveBetween(g, cell, carved[rng.Intn(len(carved))])
		visited[cell] = true
		addFrontier(cell)
	}
}
