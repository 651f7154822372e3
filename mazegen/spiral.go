package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// spiralBacktrack is a depth-first carver with a fixed direction-cycling
// preference: from the direction of the previous step it always tries the
// next clockwise direction first (up → right → down → left), so corridors
// curl into spirals before the explicit stack backtracks. The result is
// still a valid DFS-carved perfect maze; only the bias is different.
//
// Complexity: O(n²) time, O(n²) stack memory worst case.
func spiralBacktrack(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	visited := make(map[grid.Point]bool)
	stack := make([]grid.Point, 0, size)

	cur := grid.Point{X: 1, Y: 1}
	g.Set(cur, grid.Open)
	visited[cur] = true
	lastDir := rng.Intn(4)

	for {
		carved := false
		for i := 0; i < 4; i++ {
			dir := (lastDir + 1 + i) % 4
			d := nodeOffsets[dir]
			next := grid.Point{X: cur.X + d[0], Y: cur.Y + d[1]}
			if next.X < 1 || next.X >= size || next.Y < 1 || next.Y >= size || visited[next] {
				continue
			}
			carveBetween(g, cur, next)
			visited[next] = true
			stack = append(stack, cur)
			cur = next
			lastDir = dir
			carved = true

			break
		}
		if carved {
			continue
		}
		if len(stack) == 0 {
			return
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}
