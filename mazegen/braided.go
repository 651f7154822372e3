package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// braidChance is the fixed probability of opening each dead end into a loop.
const braidChance = 0.5

// braid first runs Prim generation, then scans for dead ends (open cells
// with exactly one walkable neighbor) and, with braidChance each, knocks out
// one adjacent wall so the maze gains loops and multiple solution paths.
//
// Complexity: O(n²) on top of prim.
func braid(g *grid.Grid, rng *rand.Rand) {
	prim(g, rng)

	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.Walkable(p) || len(g.Neighbors(p)) != 1 {
				continue
			}
			if rng.Float64() >= braidChance {
				continue
			}

			// A wall is worth removing only if it touches some other open
			// cell, so the opening actually closes a loop.
			candidates := make([]grid.Point, 0, 3)
			for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				w := grid.Point{X: x + d[0], Y: y + d[1]}
				if !g.InBounds(w) || g.At(w) != grid.Wall {
					continue
				}
				if len(g.Neighbors(w)) >= 2 {
					candidates = append(candidates, w)
				}
			}
			if len(candidates) > 0 {
				g.Set(candidates[rng.Intn(len(candidates))], grid.Open)
			}
		}
	}
}
