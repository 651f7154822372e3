package mazegen

import "github.com/katalvlaran/mazepath/grid"

// repair enforces the connectivity invariant after any generator: flood-fill
// from Start, and while some open region stays unreached, carve an L-shaped
// corridor between the nearest (Manhattan) pair of cells across the two
// regions, then re-flood. Each bridge merges at least two regions, so the
// loop terminates after at most the initial region count iterations.
//
// Cellular is the usual customer; for the carving algorithms this is a pure
// safety net that changes nothing.
//
// Complexity: O(regions · n²) time.
func repair(g *grid.Grid) {
	start := g.Start()
	for {
		reached := g.Reachable(start)
		inside, outside := splitOpenCells(g, reached)
		if len(outside) == 0 {
			return
		}

		// Nearest pair across the frontier. Both slices are in raster order
		// and the comparison is strict, so ties resolve to the first raster
		// pair and the carve is reproducible for a given seed.
		var from, to grid.Point
		best := -1
		for _, r := range inside {
			for _, u := range outside {
				if d := r.Manhattan(u); best < 0 || d < best {
					best, from, to = d, r, u
				}
			}
		}
		carveCorridor(g, from, to)
	}
}

// splitOpenCells partitions the walkable cells into reached and unreached,
// both in raster order.
func splitOpenCells(g *grid.Grid, reached map[grid.Point]bool) (inside, outside []grid.Point) {
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.Walkable(p) {
				continue
			}
			if reached[p] {
				inside = append(inside, p)
			} else {
				outside = append(outside, p)
			}
		}
	}

	return inside, outside
}

// carveCorridor opens a direct L-path from a to b: horizontal leg first,
// then vertical.
func carveCorridor(g *grid.Grid, a, b grid.Point) {
	x, y := a.X, a.Y
	for x != b.X {
		if x < b.X {
			x++
		} else {
			x--
		}
		openIfWall(g, grid.Point{X: x, Y: y})
	}
	for y != b.Y {
		if y < b.Y {
			y++
		} else {
			y--
		}
		openIfWall(g, grid.Point{X: x, Y: y})
	}
}

func openIfWall(g *grid.Grid, p grid.Point) {
	if g.At(p) == grid.Wall {
		g.Set(p, grid.Open)
	}
}
