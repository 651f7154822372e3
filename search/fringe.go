package search

import (
	"container/list"
	"math"

	"github.com/katalvlaran/mazepath/grid"
)

// fringeEntry caches the best known cost and predecessor of a fringe cell.
type fringeEntry struct {
	gCost  float64
	parent grid.Point
	isRoot bool
}

// fringeSearch maintains one ordered working list of candidate cells
// partitioned by an f-limit: cells at or under the limit are expanded in
// place (children spliced in right after the current element), cells above
// it are deferred to the next pass, whose limit becomes the minimum
// deferred f. The behavior is A*-like with a leaner memory profile — no
// heap, just the linked list and the cost cache.
// Complexity: O(n² · passes) time, O(n²) memory.
func fringeSearch(g *grid.Grid, visit visitFunc) ([]grid.Point, error) {
	start, end := g.Start(), g.End()
	h := func(p grid.Point) float64 { return float64(p.Manhattan(end)) }

	now := list.New()
	inNow := map[grid.Point]*list.Element{start: now.PushBack(start)}
	cache := map[grid.Point]fringeEntry{start: {gCost: 0, isRoot: true}}
	fLimit := h(start)

	for now.Len() > 0 {
		fMin := math.Inf(1)

		for e := now.Front(); e != nil; {
			cur := e.Value.(grid.Point)
			entry := cache[cur]
			if f := entry.gCost + h(cur); f > fLimit {
				// Over the limit: defer to the next pass.
				if f < fMin {
					fMin = f
				}
				e = e.Next()

				continue
			}

			if err := visit(cur); err != nil {
				return nil, err
			}
			if cur == end {
				return rebuildFringePath(cache, start, end), nil
			}

			for _, nbr := range g.Neighbors(cur) {
				nextCost := entry.gCost + 1
				if known, ok := cache[nbr]; ok && nextCost >= known.gCost {
					continue
				}
				cache[nbr] = fringeEntry{gCost: nextCost, parent: cur}
				if old, ok := inNow[nbr]; ok {
					now.Remove(old)
				}
				inNow[nbr] = now.InsertAfter(nbr, e)
			}

			next := e.Next()
			now.Remove(e)
			delete(inNow, cur)
			e = next
		}

		if math.IsInf(fMin, 1) {
			break // nothing deferred and nothing left to expand
		}
		fLimit = fMin
	}

	return nil, nil
}

// rebuildFringePath reconstructs origin→dest from the fringe cost cache.
func rebuildFringePath(cache map[grid.Point]fringeEntry, origin, dest grid.Point) []grid.Point {
	path := []grid.Point{dest}
	for cur := dest; cur != origin; {
		entry, ok := cache[cur]
		if !ok || entry.isRoot {
			break
		}
		path = append(path, entry.parent)
		cur = entry.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
