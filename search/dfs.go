package search

import "github.com/katalvlaran/mazepath/grid"

// depthFirst explores with a LIFO frontier, diving down the deepest branch
// first. The returned path is valid but carries no shortest-path guarantee.
// Neighbors are pushed in reverse N/E/S/W order so the northern branch is
// explored first, keeping the dive direction deterministic.
// Complexity: O(n²) time and memory.
func depthFirst(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	cameFrom := make(map[grid.Point]grid.Point)
	expanded := make(map[grid.Point]bool)
	stack := []grid.Point{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if expanded[cur] {
			continue
		}
		expanded[cur] = true

		if err := visit(cur); err != nil {
			return nil, err
		}
		if cur == end {
			return rebuildPath(cameFrom, start, end), nil
		}

		nbrs := g.Neighbors(cur)
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if !expanded[nbr] {
				cameFrom[nbr] = cur
				stack = append(stack, nbr)
			}
		}
	}

	return nil, nil
}
