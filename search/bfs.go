package search

import "github.com/katalvlaran/mazepath/grid"

// breadthFirst explores with a FIFO frontier, guaranteeing a shortest path
// by edge count. Cells are committed (visited) when dequeued; the run ends
// when End is dequeued or the frontier drains (empty path, valid negative
// result).
// Complexity: O(n²) time and memory.
func breadthFirst(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	cameFrom := make(map[grid.Point]grid.Point)
	discovered := map[grid.Point]bool{start: true}
	queue := []grid.Point{start}

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if err := visit(cur); err != nil {
			return nil, err
		}
		if cur == end {
			return rebuildPath(cameFrom, start, end), nil
		}
		for _, nbr := range g.Neighbors(cur) {
			if !discovered[nbr] {
				discovered[nbr] = true
				cameFrom[nbr] = cur
				queue = append(queue, nbr)
			}
		}
	}

	return nil, nil
}
