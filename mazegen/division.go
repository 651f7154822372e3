package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// extraGapChance is the probability that a division wall receives a second
// gap, introducing loops (the multi-path variant of recursive division).
const extraGapChance = 0.1

// divide opens the whole interior behind a border wall, then recursively
// splits each chamber with a full wall carrying one random gap. Orientation
// follows the chamber's aspect ratio (wide chambers get vertical walls,
// tall ones horizontal, square ones a coin flip). Walls sit on even
// coordinates and gaps on odd ones so corridors stay aligned with the node
// lattice.
//
// Complexity: O(n²) time, O(log n) recursion depth.
func divide(g *grid.Grid, rng *rand.Rand) {
	size := g.Size()
	g.Fill(grid.Open)
	for i := 0; i < size; i++ {
		g.Set(grid.Point{X: i, Y: 0}, grid.Wall)
		g.Set(grid.Point{X: i, Y: size - 1}, grid.Wall)
		g.Set(grid.Point{X: 0, Y: i}, grid.Wall)
		g.Set(grid.Point{X: size - 1, Y: i}, grid.Wall)
	}
	divideChamber(g, rng, 1, 1, size-2, size-2)
}

// divideChamber splits the inclusive chamber [x0,x1]×[y0,y1].
func divideChamber(g *grid.Grid, rng *rand.Rand, x0, y0, x1, y1 int) {
	width, height := x1-x0+1, y1-y0+1
	if width < 3 && height < 3 {
		return
	}

	horizontal := height > width
	if width == height {
		horizontal = rng.Intn(2) == 0
	}
	if horizontal && height < 3 {
		horizontal = false
	} else if !horizontal && width < 3 {
		horizontal = true
	}

	if horizontal {
		wy := evenBetween(rng, y0, y1)
		if wy < 0 {
			return
		}
		gap := oddBetween(rng, x0, x1)
		drawWall(g, rng, x0, x1, wy, gap, true)
		divideChamber(g, rng, x0, y0, x1, wy-1)
		divideChamber(g, rng, x0, wy+1, x1, y1)

		return
	}

	wx := evenBetween(rng, x0, x1)
	if wx < 0 {
		return
	}
	gap := oddBetween(rng, y0, y1)
	drawWall(g, rng, y0, y1, wx, gap, false)
	divideChamber(g, rng, x0, y0, wx-1, y1)
	divideChamber(g, rng, wx+1, y0, x1, y1)
}

// drawWall fills coordinate fixed across [lo,hi], leaving the gap open and,
// with extraGapChance, one additional random opening.
func drawWall(g *grid.Grid, rng *rand.Rand, lo, hi, fixed, gap int, horizontal bool) {
	extra := -1
	if rng.Float64() < extraGapChance {
		extra = lo + rng.Intn(hi-lo+1)
	}
	for i := lo; i <= hi; i++ {
		if i == gap || i == extra {
			continue
		}
		if horizontal {
			g.Set(grid.Point{X: i, Y: fixed}, grid.Wall)
		} else {
			g.Set(grid.Point{X: fixed, Y: i}, grid.Wall)
		}
	}
}

// evenBetween picks a random even coordinate strictly inside (lo, hi);
// -1 when none exists.
func evenBetween(rng *rand.Rand, lo, hi int) int {
	first := lo + 1
	if first%2 != 0 {
		first++
	}
	if first >= hi {
		return -1
	}
	n := (hi - 1 - first) / 2

	return first + 2*rng.Intn(n+1)
}

// oddBetween picks a random odd coordinate in [lo, hi], falling back to any
// coordinate when the range holds no odd value.
func oddBetween(rng *rand.Rand, lo, hi int) int {
	first := lo
	if first%2 == 0 {
		first++
	}
	if first > hi {
		return lo + rng.Intn(hi-lo+1)
	}
	n := (hi - first) / 2

	return first + 2*rng.Intn(n+1)
}
