package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

// openGrid builds a size×size all-Open grid with Start at s and End at e.
func openGrid(t *testing.T, size int, s, e grid.Point) *grid.Grid {
	t.Helper()
	g, err := grid.New(size)
	require.NoError(t, err)
	g.Fill(grid.Open)
	require.NoError(t, g.SetStart(s))
	require.NoError(t, g.SetEnd(e))

	return g
}

func TestNew_SizeTooSmall(t *testing.T) {
	for _, size := range []int{-1, 0, 1, 2} {
		g, err := grid.New(size)
		assert.Nil(t, g)
		assert.ErrorIs(t, err, grid.ErrSizeTooSmall)
	}
}

func TestNew_AllWalls(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, grid.Wall, g.At(grid.Point{X: x, Y: y}))
		}
	}
}

func TestFromCells_Validation(t *testing.T) {
	s, e := grid.Start, grid.End
	o, w := grid.Open, grid.Wall

	cases := []struct {
		name  string
		cells [][]grid.CellState
		want  error
	}{
		{"too small", [][]grid.CellState{{s, e}, {o, o}}, grid.ErrSizeTooSmall},
		{"not square", [][]grid.CellState{{s, e, o}, {o, o}, {o, o, o}}, grid.ErrNotSquare},
		{"no start", [][]grid.CellState{{o, e, o}, {o, o, o}, {o, o, o}}, grid.ErrNoStart},
		{"no end", [][]grid.CellState{{s, o, o}, {o, o, o}, {o, o, o}}, grid.ErrNoEnd},
		{"two starts", [][]grid.CellState{{s, s, e}, {o, o, o}, {o, o, o}}, grid.ErrDuplicateStart},
		{"two ends", [][]grid.CellState{{s, e, e}, {o, o, o}, {o, o, o}}, grid.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.FromCells(tc.cells)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	valid := [][]grid.CellState{
		{s, o, w},
		{w, o, w},
		{w, o, e},
	}
	g, err := grid.FromCells(valid)
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 0, Y: 0}, g.Start())
	assert.Equal(t, grid.Point{X: 2, Y: 2}, g.End())
}

func TestFromCells_DeepCopies(t *testing.T) {
	cells := [][]grid.CellState{
		{grid.Start, grid.Open, grid.Open},
		{grid.Open, grid.Open, grid.Open},
		{grid.Open, grid.Open, grid.End},
	}
	g, err := grid.FromCells(cells)
	require.NoError(t, err)

	cells[1][1] = grid.Wall
	assert.Equal(t, grid.Open, g.At(grid.Point{X: 1, Y: 1}), "grid must not alias caller's matrix")
}

func TestAt_OutOfBoundsReadsWall(t *testing.T) {
	g, _ := grid.New(3)
	assert.Equal(t, grid.Wall, g.At(grid.Point{X: -1, Y: 0}))
	assert.Equal(t, grid.Wall, g.At(grid.Point{X: 0, Y: 3}))
}

func TestNeighbors_OrderAndWalls(t *testing.T) {
	g := openGrid(t, 5, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	g.Set(grid.Point{X: 2, Y: 1}, grid.Wall) // north of center

	// Fixed N,E,S,W order with the walled north neighbor skipped.
	got := g.Neighbors(grid.Point{X: 2, Y: 2})
	want := []grid.Point{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 1, Y: 2}}
	assert.Equal(t, want, got)

	// Corner cell: only in-bounds candidates.
	gotCorner := g.Neighbors(grid.Point{X: 0, Y: 0})
	assert.Equal(t, []grid.Point{{X: 1, Y: 0}, {X: 0, Y: 1}}, gotCorner)
}

func TestMark_EndpointPrecedence(t *testing.T) {
	g := openGrid(t, 3, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})

	g.MarkVisited(g.Start())
	g.MarkVisited(g.End())
	g.MarkRoute(g.Start())
	assert.Equal(t, grid.Start, g.At(g.Start()), "Start must never be overwritten")
	assert.Equal(t, grid.End, g.At(g.End()), "End must never be overwritten")

	p := grid.Point{X: 1, Y: 1}
	g.MarkVisited(p)
	assert.Equal(t, grid.Visited, g.At(p))
	g.MarkRoute(p)
	assert.Equal(t, grid.Route, g.At(p))

	wall := grid.Point{X: 1, Y: 0}
	g.Set(wall, grid.Wall)
	g.MarkVisited(wall)
	assert.Equal(t, grid.Wall, g.At(wall), "walls are never annotated")
}

func TestResetAnnotations_Idempotent(t *testing.T) {
	g := openGrid(t, 4, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3})
	g.MarkVisited(grid.Point{X: 1, Y: 1})
	g.MarkRoute(grid.Point{X: 2, Y: 2})
	g.Set(grid.Point{X: 3, Y: 0}, grid.Wall)

	want := g.Clone()
	want.Set(grid.Point{X: 1, Y: 1}, grid.Open)
	want.Set(grid.Point{X: 2, Y: 2}, grid.Open)

	g.ResetAnnotations()
	assert.True(t, g.Equal(want))
	g.ResetAnnotations()
	assert.True(t, g.Equal(want), "reset must be idempotent")
}

func TestAnnotate_RoundTrip(t *testing.T) {
	g := openGrid(t, 5, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	visited := []grid.Point{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 0}} // includes Start
	path := []grid.Point{{X: 2, Y: 0}, {X: 2, Y: 1}}                  // overlaps visited
	g.Annotate(visited, path)

	// Persist, re-hydrate, re-annotate: states must match exactly.
	restored, err := grid.FromCells(g.Cells())
	require.NoError(t, err)
	restored.ResetAnnotations()
	restored.Annotate(visited, path)
	assert.True(t, g.Equal(restored))

	assert.Equal(t, grid.Start, g.At(g.Start()), "Start takes precedence over visited")
	assert.Equal(t, grid.Visited, g.At(grid.Point{X: 1, Y: 0}))
	assert.Equal(t, grid.Route, g.At(grid.Point{X: 2, Y: 0}), "path wins over visited")
}

func TestReachable_FloodFill(t *testing.T) {
	g := openGrid(t, 5, grid.Point{X: 0, Y: 0}, grid.Point{X: 4, Y: 4})
	// Full wall column at x=2 splits the grid in two.
	for y := 0; y < 5; y++ {
		g.Set(grid.Point{X: 2, Y: y}, grid.Wall)
	}

	reached := g.Reachable(g.Start())
	assert.Len(t, reached, 10, "left half only: 2 columns × 5 rows")
	assert.False(t, reached[g.End()])

	// Walls are not a valid flood origin.
	assert.Empty(t, g.Reachable(grid.Point{X: 2, Y: 0}))
}

func TestCloneAndEqual(t *testing.T) {
	g := openGrid(t, 4, grid.Point{X: 0, Y: 0}, grid.Point{X: 3, Y: 3})
	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Set(grid.Point{X: 1, Y: 2}, grid.Wall)
	assert.False(t, g.Equal(c))
	assert.False(t, g.Equal(nil))
}

func TestString_Render(t *testing.T) {
	g := openGrid(t, 3, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	g.Set(grid.Point{X: 1, Y: 1}, grid.Wall)
	g.MarkVisited(grid.Point{X: 1, Y: 0})
	g.MarkRoute(grid.Point{X: 0, Y: 1})

	assert.Equal(t, "S*.\n+#.\n..E", g.String())
}

func TestPoint_Distances(t *testing.T) {
	a := grid.Point{X: 1, Y: 2}
	b := grid.Point{X: 4, Y: -2}
	assert.Equal(t, 7, a.Manhattan(b))
	assert.Equal(t, 7, b.Manhattan(a))
	assert.InDelta(t, 5.0, a.Euclidean(b), 1e-12)
	assert.Equal(t, "(1,2)", a.String())
}

func TestSetStart_MovesMarker(t *testing.T) {
	g := openGrid(t, 3, grid.Point{X: 0, Y: 0}, grid.Point{X: 2, Y: 2})
	require.NoError(t, g.SetStart(grid.Point{X: 1, Y: 1}))
	assert.Equal(t, grid.Open, g.At(grid.Point{X: 0, Y: 0}), "old Start reverts to Open")
	assert.Equal(t, grid.Point{X: 1, Y: 1}, g.Start())

	assert.ErrorIs(t, g.SetStart(grid.Point{X: 9, Y: 9}), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.SetEnd(grid.Point{X: -1, Y: 0}), grid.ErrOutOfBounds)
}

func TestCellState_String(t *testing.T) {
	assert.Equal(t, "Wall", grid.Wall.String())
	assert.Equal(t, "Open", grid.Open.String())
	assert.Equal(t, "Route", grid.Route.String())
	assert.Equal(t, "CellState(99)", grid.CellState(99).String())
}
