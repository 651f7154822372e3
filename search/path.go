package search

import "github.com/katalvlaran/mazepath/grid"

// rebuildPath walks the predecessor map from dest back to origin and
// reverses the chain into origin→dest order.
// Complexity: O(path length).
func rebuildPath(cameFrom map[grid.Point]grid.Point, origin, dest grid.Point) []grid.Point {
	path := []grid.Point{dest}
	for cur := dest; cur != origin; {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
