package mazegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/mazegen"
)

// allAlgorithms lists every generation strategy once, in enum order.
var allAlgorithms = []mazegen.Algorithm{
	mazegen.Kruskal,
	mazegen.Prim,
	mazegen.Wilson,
	mazegen.RecursiveDivision,
	mazegen.Braided,
	mazegen.Cellular,
	mazegen.HuntAndKill,
	mazegen.SpiralBacktracker,
}

// perfectAlgorithms are the carvers that must yield exactly one path
// between any two open cells.
var perfectAlgorithms = []mazegen.Algorithm{
	mazegen.Kruskal,
	mazegen.Prim,
	mazegen.Wilson,
	mazegen.HuntAndKill,
	mazegen.SpiralBacktracker,
}

// openStats walks the grid and returns the number of open (non-Wall) cells
// and the number of orthogonal open-open adjacencies.
func openStats(g *grid.Grid) (cells, edges int) {
	size := g.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := grid.Point{X: x, Y: y}
			if !g.Walkable(p) {
				continue
			}
			cells++
			// Count east/south pairs only so each edge is seen once.
			if g.Walkable(grid.Point{X: x + 1, Y: y}) {
				edges++
			}
			if g.Walkable(grid.Point{X: x, Y: y + 1}) {
				edges++
			}
		}
	}

	return cells, edges
}

func TestGenerate_Errors(t *testing.T) {
	g, err := mazegen.Generate(2, mazegen.Kruskal)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, mazegen.ErrInvalidSize)

	g, err = mazegen.Generate(9, mazegen.Algorithm(99))
	assert.Nil(t, g)
	assert.ErrorIs(t, err, mazegen.ErrUnknownAlgorithm)
}

// TestGenerate_ConnectivityInvariant is the core contract: for every
// algorithm and a spread of sizes, a flood fill from Start must reach End
// and every other open cell.
func TestGenerate_ConnectivityInvariant(t *testing.T) {
	for _, algo := range allAlgorithms {
		for _, size := range []int{5, 8, 9, 16, 21} {
			t.Run(algo.String(), func(t *testing.T) {
				g, err := mazegen.Generate(size, algo, mazegen.WithSeed(int64(size)))
				require.NoError(t, err)

				reached := g.Reachable(g.Start())
				assert.True(t, reached[g.End()], "End must be reachable from Start (size %d)\n%s", size, g)

				cells, _ := openStats(g)
				assert.Equal(t, cells, len(reached), "every open cell must be reachable (size %d)", size)
			})
		}
	}
}

// TestGenerate_EndpointInvariant checks exactly one Start and one End,
// stamped at the expected corners and never on a wall.
func TestGenerate_EndpointInvariant(t *testing.T) {
	for _, algo := range allAlgorithms {
		g, err := mazegen.Generate(11, algo, mazegen.WithSeed(3))
		require.NoError(t, err)

		starts, ends := 0, 0
		for y := 0; y < 11; y++ {
			for x := 0; x < 11; x++ {
				switch g.At(grid.Point{X: x, Y: y}) {
				case grid.Start:
					starts++
				case grid.End:
					ends++
				}
			}
		}
		assert.Equal(t, 1, starts, "%s: exactly one Start", algo)
		assert.Equal(t, 1, ends, "%s: exactly one End", algo)
		assert.Equal(t, grid.Point{X: 1, Y: 1}, g.Start())
		assert.Equal(t, grid.Point{X: 9, Y: 9}, g.End())
	}
}

// TestGenerate_PerfectMazes: a perfect maze over n carved nodes has exactly
// 2n−1 open cells (n nodes + n−1 passages) and zero extra adjacencies.
func TestGenerate_PerfectMazes(t *testing.T) {
	const size = 9 // 4×4 node lattice
	const nodes = 16
	for _, algo := range perfectAlgorithms {
		g, err := mazegen.Generate(size, algo, mazegen.WithSeed(11))
		require.NoError(t, err)

		cells, edges := openStats(g)
		assert.Equal(t, 2*nodes-1, cells, "%s: perfect maze cell count\n%s", algo, g)
		assert.Equal(t, cells-1, edges, "%s: a tree has cells-1 adjacencies", algo)
	}
}

// TestGenerate_BraidedAddsLoops: braiding must open at least one dead end,
// so the open-cell graph gains a cycle (edges ≥ cells).
func TestGenerate_BraidedAddsLoops(t *testing.T) {
	g, err := mazegen.Generate(15, mazegen.Braided, mazegen.WithSeed(5))
	require.NoError(t, err)

	cells, edges := openStats(g)
	assert.GreaterOrEqual(t, edges, cells, "braided maze must contain at least one loop\n%s", g)
}

// TestGenerate_SeedDeterminism runs every algorithm twice per seed and
// demands byte-identical grids — the engine's reproducibility contract.
func TestGenerate_SeedDeterminism(t *testing.T) {
	for _, algo := range allAlgorithms {
		a, err := mazegen.Generate(13, algo, mazegen.WithSeed(42))
		require.NoError(t, err)
		b, err := mazegen.Generate(13, algo, mazegen.WithSeed(42))
		require.NoError(t, err)

		assert.True(t, a.Equal(b), "%s: same seed must reproduce the grid exactly", algo)
		assert.Equal(t, a.String(), b.String())

		// SpiralBacktracker only draws its starting direction from the rng,
		// so distinct seeds may legitimately coincide; skip it here.
		if algo == mazegen.SpiralBacktracker {
			continue
		}
		c, err := mazegen.Generate(13, algo, mazegen.WithSeed(43))
		require.NoError(t, err)
		assert.False(t, a.Equal(c), "%s: different seeds should differ", algo)
	}
}

// TestGenerate_RepairDeterminism re-generates a cavern maze many times with
// one seed. Cellular leans hardest on the connectivity repair pass, whose
// nearest-pair bridge scan must not let map iteration order pick between
// equally distant candidates.
func TestGenerate_RepairDeterminism(t *testing.T) {
	const size, seed = 31, 4
	first, err := mazegen.Generate(size, mazegen.Cellular, mazegen.WithSeed(seed))
	require.NoError(t, err)

	for run := 0; run < 8; run++ {
		again, err := mazegen.Generate(size, mazegen.Cellular, mazegen.WithSeed(seed))
		require.NoError(t, err)
		require.True(t, first.Equal(again),
			"run %d diverged from the first generation:\n%s\nvs\n%s", run, first, again)
	}
}

// TestGenerate_KruskalSeed42 is the canonical determinism scenario:
// size 7, seed 42, two runs, byte-identical grids.
func TestGenerate_KruskalSeed42(t *testing.T) {
	a, err := mazegen.Generate(7, mazegen.Kruskal, mazegen.WithSeed(42))
	require.NoError(t, err)
	b, err := mazegen.Generate(7, mazegen.Kruskal, mazegen.WithSeed(42))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

func TestGenerate_MinimumSize(t *testing.T) {
	for _, algo := range allAlgorithms {
		g, err := mazegen.Generate(3, algo, mazegen.WithSeed(1))
		require.NoError(t, err, "%s at minimum size", algo)
		assert.True(t, g.Reachable(g.Start())[g.End()], "%s: 3×3 still connected\n%s", algo, g)
	}
}

func TestAlgorithm_String(t *testing.T) {
	assert.Equal(t, "Kruskal", mazegen.Kruskal.String())
	assert.Equal(t, "SpiralBacktracker", mazegen.SpiralBacktracker.String())
	assert.Equal(t, "Algorithm(99)", mazegen.Algorithm(99).String())
}
