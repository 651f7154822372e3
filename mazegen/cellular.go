package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

const (
	// caWallChance is the base probability a seeded cell starts as a wall.
	caWallChance = 0.45
	// caBiasedWallChance applies near the Start/End corners so endpoints sit
	// in mostly open terrain.
	caBiasedWallChance = 0.2
	// caPasses is the number of smoothing iterations.
	caPasses = 4
)

// cellular seeds wall/open noise (biased open near the endpoint corners) and
// smooths it with a neighbor-count automaton: a cell becomes a wall when its
// 8-neighborhood holds more walls than the pass threshold, otherwise it
// opens. The final pass uses asymmetric thresholds so only strong majorities
// flip, which smooths cavern edges without eroding them. Disconnected
// caverns are left for the unconditional repair pass.
//
// Complexity: O(caPasses · n²) time, O(n²) memory.
func cellular(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	startCorner := grid.Point{X: 1, Y: 1}
	endCorner := grid.Point{X: size - 2, Y: size - 2}
	bias := size / 4
	if bias < 2 {
		bias = 2
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := grid.Point{X: x, Y: y}
			chance := caWallChance
			if p.Manhattan(startCorner) <= bias || p.Manhattan(endCorner) <= bias {
				chance = caBiasedWallChance
			}
			if rng.Float64() < chance {
				g.Set(p, grid.Wall)
			} else {
				g.Set(p, grid.Open)
			}
		}
	}

	for pass := 0; pass < caPasses; pass++ {
		next := make([][]grid.CellState, size)
		for y := 0; y < size; y++ {
			next[y] = make([]grid.CellState, size)
			for x := 0; x < size; x++ {
				walls := wallCount8(g, x, y)
				switch {
				case pass < caPasses-1:
					// Symmetric majority rule.
					if walls > 4 {
						next[y][x] = grid.Wall
					} else {
						next[y][x] = grid.Open
					}
				case walls > 5:
					next[y][x] = grid.Wall
				case walls < 4:
					next[y][x] = grid.Open
				default:
					next[y][x] = g.At(grid.Point{X: x, Y: y})
				}
			}
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				g.Set(grid.Point{X: x, Y: y}, next[y][x])
			}
		}
	}
}

// wallCount8 counts walls in the 8-neighborhood of (x,y); out-of-bounds
// cells count as walls, which keeps the automaton closing the border.
func wallCount8(g *grid.Grid, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(grid.Point{X: x + dx, Y: y + dy}) == grid.Wall {
				count++
			}
		}
	}

	return count
}
