package search

import "github.com/katalvlaran/mazepath/grid"

// bidirectional grows two FIFO frontiers simultaneously, one from Start and
// one from End, alternating one frontier level per side. When the searches
// touch, the meeting cell minimizing combined depth is selected, so the
// concatenated path (start-side chain reversed + end-side chain) matches
// the BFS-shortest edge count.
// Complexity: O(n²) time and memory, typically exploring far fewer cells
// than one-sided BFS.
func bidirectional(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	if start == end {
		if err := visit(start); err != nil {
			return nil, err
		}

		return []grid.Point{start}, nil
	}

	distS := map[grid.Point]int{start: 0}
	distE := map[grid.Point]int{end: 0}
	parentS := make(map[grid.Point]grid.Point)
	parentE := make(map[grid.Point]grid.Point)
	frontierS := []grid.Point{start}
	frontierE := []grid.Point{end}

	// expand advances one side by a full level, returning the next frontier.
	expand := func(frontier []grid.Point, dist map[grid.Point]int, parent map[grid.Point]grid.Point) ([]grid.Point, error) {
		next := make([]grid.Point, 0, len(frontier))
		for _, cur := range frontier {
			if err := visit(cur); err != nil {
				return nil, err
			}
			for _, nbr := range g.Neighbors(cur) {
				if _, known := dist[nbr]; known {
					continue
				}
				dist[nbr] = dist[cur] + 1
				parent[nbr] = cur
				next = append(next, nbr)
			}
		}

		return next, nil
	}

	// meet scans for cells discovered by both sides and returns the one with
	// the minimum combined depth. Map iteration order is randomized, so ties
	// break on (Y, X) to keep the selected cell, and thus the returned path,
	// identical across runs.
	meet := func() (grid.Point, bool) {
		var best grid.Point
		bestSum := -1
		small, large := distS, distE
		if len(distE) < len(distS) {
			small, large = distE, distS
		}
		for p, d := range small {
			d2, ok := large[p]
			if !ok {
				continue
			}
			sum := d + d2
			better := bestSum < 0 || sum < bestSum ||
				(sum == bestSum && (p.Y < best.Y || (p.Y == best.Y && p.X < best.X)))
			if better {
				bestSum, best = sum, p
			}
		}

		return best, bestSum >= 0
	}

	expandStart := true
	for len(frontierS) > 0 && len(frontierE) > 0 {
		var err error
		if expandStart {
			frontierS, err = expand(frontierS, distS, parentS)
		} else {
			frontierE, err = expand(frontierE, distE, parentE)
		}
		if err != nil {
			return nil, err
		}
		expandStart = !expandStart

		if m, ok := meet(); ok {
			return joinPaths(parentS, parentE, start, end, m), nil
		}
	}

	return nil, nil
}

// joinPaths concatenates the start-side predecessor chain (reversed) with
// the end-side chain through the meeting cell.
func joinPaths(parentS, parentE map[grid.Point]grid.Point, start, end, m grid.Point) []grid.Point {
	path := rebuildPath(parentS, start, m)
	for cur := m; cur != end; {
		next, ok := parentE[cur]
		if !ok {
			break
		}
		path = append(path, next)
		cur = next
	}

	return path
}
