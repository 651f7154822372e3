package search

import (
	"container/heap"

	"github.com/katalvlaran/mazepath/grid"
)

// thetaStar runs an A*-style priority search with any-angle shortcuts: when
// a candidate neighbor has line-of-sight to the current cell's parent, it is
// attached directly to that parent with Euclidean cost, letting the path cut
// corners instead of hugging the lattice. Path reconstruction interpolates
// the cells along each shortcut (with the same rasterizer used for the
// line-of-sight test, so the two can never disagree) and the returned path
// stays a contiguous cell sequence.
// Complexity: O(n² log n · line length) time, O(n²) memory.
func thetaStar(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	gScore := map[grid.Point]float64{start: 0}
	parent := map[grid.Point]grid.Point{start: start}
	closed := make(map[grid.Point]bool)

	pq := &pointQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{point: start, f: start.Euclidean(end)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		cur := item.point
		if closed[cur] {
			continue
		}
		closed[cur] = true

		if err := visit(cur); err != nil {
			return nil, err
		}
		if cur == end {
			return interpolateWaypoints(parent, start, end), nil
		}

		for _, nbr := range g.Neighbors(cur) {
			if closed[nbr] {
				continue
			}
			// Path 2 (any-angle): attach nbr straight to cur's parent when
			// the line between them crosses only open cells.
			anchor := parent[cur]
			cost := gScore[anchor] + anchor.Euclidean(nbr)
			from := anchor
			if !lineOfSight(g, anchor, nbr) {
				// Path 1: ordinary lattice step through cur.
				from = cur
				cost = gScore[cur] + 1
			}
			if old, ok := gScore[nbr]; !ok || cost < old {
				gScore[nbr] = cost
				parent[nbr] = from
				heap.Push(pq, &pqItem{point: nbr, f: cost + nbr.Euclidean(end)})
			}
		}
	}

	return nil, nil
}

// lineOfSight reports whether every cell rasterized between a and b is
// walkable.
func lineOfSight(g *grid.Grid, a, b grid.Point) bool {
	for _, p := range linePoints(a, b) {
		if !g.Walkable(p) {
			return false
		}
	}

	return true
}

// linePoints rasterizes the segment a→b with integer Bresenham stepping,
// endpoints included. The load-bearing contract is that a line-of-sight
// test and path interpolation both see exactly these cells.
func linePoints(a, b grid.Point) []grid.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	sx, sy := 1, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}
	if dy < 0 {
		dy, sy = -dy, -1
	}

	pts := make([]grid.Point, 0, dx+dy+1)
	x, y := a.X, a.Y
	errAcc := dx - dy
	for {
		pts = append(pts, grid.Point{X: x, Y: y})
		if x == b.X && y == b.Y {
			return pts
		}
		e2 := 2 * errAcc
		if e2 > -dy {
			errAcc -= dy
			x += sx
		}
		if e2 < dx {
			errAcc += dx
			y += sy
		}
	}
}

// interpolateWaypoints walks the Theta* parent chain from dest back to
// origin and expands each waypoint pair into its rasterized cell run, so
// non-adjacent connected waypoints still render as a contiguous path.
func interpolateWaypoints(parent map[grid.Point]grid.Point, origin, dest grid.Point) []grid.Point {
	waypoints := []grid.Point{dest}
	for cur := dest; cur != origin; {
		prev, ok := parent[cur]
		if !ok || prev == cur {
			break
		}
		waypoints = append(waypoints, prev)
		cur = prev
	}
	for i, j := 0, len(waypoints)-1; i < j; i, j = i+1, j-1 {
		waypoints[i], waypoints[j] = waypoints[j], waypoints[i]
	}

	path := []grid.Point{waypoints[0]}
	for i := 0; i+1 < len(waypoints); i++ {
		seg := linePoints(waypoints[i], waypoints[i+1])
		path = append(path, seg[1:]...)
	}

	return path
}
