package search

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/grid"
)

// dijkstra expands the lowest cumulative cost first (uniform edge cost 1).
// Guarantees a shortest path.
// Complexity: O(n² log n) time, O(n²) memory.
func dijkstra(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	return bestFirst(g, visit, func(gCost float64, _ grid.Point) float64 {
		return gCost
	})
}

// aStar orders the frontier by cumulative cost plus the Manhattan distance
// to End. On a 4-connected uniform-cost grid the heuristic is admissible,
// so optimality is preserved.
// Complexity: O(n² log n) time, O(n²) memory.
func aStar(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	end := g.End()

	return bestFirst(g, visit, func(gCost float64, p grid.Point) float64 {
		return gCost + float64(p.Manhattan(end))
	})
}

// greedyBestFirst orders purely by the heuristic, ignoring accumulated
// cost: fast, but the returned path may be longer than the shortest.
// Complexity: O(n² log n) time, O(n²) memory.
func greedyBestFirst(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	end := g.End()

	return bestFirst(g, visit, func(_ float64, p grid.Point) float64 {
		return float64(p.Manhattan(end))
	})
}

// bestFirst is the shared priority-frontier walk behind Dijkstra, A*, and
// Greedy Best-First. It uses lazy decrease-key: improved entries are pushed
// again and stale pops are skipped via the closed set. Ties break FIFO
// (see pointQueue), keeping expansion order deterministic.
func bestFirst(g *grid.Grid, visit visitFunc, priority func(gCost float64, p grid.Point) float64) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	dist := map[grid.Point]float64{start: 0}
	cameFrom := make(map[grid.Point]grid.Point)
	closed := make(map[grid.Point]bool)

	pq := &pointQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{point: start, f: priority(0, start)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		cur := item.point
		if closed[cur] {
			continue // stale lazy-decrease-key entry
		}
		closed[cur] = true

		if err := visit(cur); err != nil {
			return nil, err
		}
		if cur == end {
			return rebuildPath(cameFrom, start, end), nil
		}

		for _, nbr := range g.Neighbors(cur) {
			if closed[nbr] {
				continue
			}
			nextCost := dist[cur] + 1
			if old, ok := dist[nbr]; !ok || nextCost < old {
				dist[nbr] = nextCost
				cameFrom[nbr] = cur
				heap.Push(pq, &pqItem{point: nbr, f: priority(nextCost, nbr)})
			}
		}
	}

	return nil, nil
}
