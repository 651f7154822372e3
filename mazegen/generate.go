package mazegen

import (
	"math/rand"

	"github.com/katalvlaran/mazepath/grid"
)

// Generate produces a size×size maze with the selected algorithm. Every
// returned grid satisfies the engine invariants: exactly one Start and one
// End, neither on a Wall, and every open cell reachable from Start (the
// connectivity repair pass runs unconditionally as a safety net).
//
// Returns ErrInvalidSize for size < grid.MinSize and ErrUnknownAlgorithm for
// values outside the Algorithm enum.
// Complexity: O(size²) for most algorithms, O(size² log size) for Kruskal.
func Generate(size int, algo Algorithm, opts ...Option) (*grid.Grid, error) {
	if size < grid.MinSize {
		return nil, ErrInvalidSize
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.New(size)
	if err != nil {
		return nil, err
	}

	switch algo {
	case Kruskal:
		kruskal(g, o.Rand)
	case Prim:
		prim(g, o.Rand)
	case Wilson:
		wilson(g, o.Rand)
	case RecursiveDivision:
		divide(g, o.Rand)
	case Braided:
		braid(g, o.Rand)
	case Cellular:
		cellular(g, o.Rand)
	case HuntAndKill:
		huntAndKill(g, o.Rand)
	case SpiralBacktracker:
		spiralBacktrack(g, o.Rand)
	default:
		return nil, ErrUnknownAlgorithm
	}

	if err = stampEndpoints(g); err != nil {
		return nil, err
	}
	repair(g)

	// Defensive re-check of the endpoint invariant (see spec of grid.FromCells).
	if g.At(g.Start()) != grid.Start || g.At(g.End()) != grid.End {
		return nil, grid.ErrEndpointWall
	}

	return g, nil
}

// nodeCells lists the odd/odd carving sublattice in raster order. Carving
// algorithms treat these as graph nodes and the cells between them as walls.
func nodeCells(size int) []grid.Point {
	nodes := make([]grid.Point, 0, (size/2)*(size/2))
	for y := 1; y < size; y += 2 {
		for x := 1; x < size; x += 2 {
			nodes = append(nodes, grid.Point{X: x, Y: y})
		}
	}

	return nodes
}

// nodeOffsets lists the four node-lattice steps (two cells) in N,E,S,W order.
var nodeOffsets = [4][2]int{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// nodeNeighbors returns the in-bounds node cells two steps from p.
func nodeNeighbors(size int, p grid.Point) []grid.Point {
	out := make([]grid.Point, 0, 4)
	for _, d := range nodeOffsets {
		q := grid.Point{X: p.X + d[0], Y: p.Y + d[1]}
		if q.X >= 1 && q.X < size && q.Y >= 1 && q.Y < size {
			out = append(out, q)
		}
	}

	return out
}

// carveBetween opens both node cells and the wall cell between them.
func carveBetween(g *grid.Grid, a, b grid.Point) {
	mid := grid.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	g.Set(a, grid.Open)
	g.Set(mid, grid.Open)
	g.Set(b, grid.Open)
}

// stampEndpoints places Start near the top-left node and End near the
// bottom-right corner, carving either open if the algorithm left a wall
// there (repair then restores connectivity).
func stampEndpoints(g *grid.Grid) error {
	size := g.Size()
	start := grid.Point{X: 1, Y: 1}
	end := grid.Point{X: size - 2, Y: size - 2}
	if end == start {
		// Minimum-size grids have a single interior cell; push End south.
		end = grid.Point{X: size - 2, Y: size - 1}
	}
	if g.At(start) == grid.Wall {
		g.Set(start, grid.Open)
	}
	if g.At(end) == grid.Wall {
		g.Set(end, grid.Open)
	}
	if err := g.SetStart(start); err != nil {
		return err
	}

	return g.SetEnd(end)
}

// shuffledNodes returns nodeCells in a rng-shuffled order.
func shuffledNodes(size int, rng *rand.Rand) []grid.Point {
	nodes := nodeCells(size)
	rng.Shuffle(len(nodes), func(i, j int) {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	})

	return nodes
}
