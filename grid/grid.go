package grid

import "strings"

// neighborOffsets lists the four orthogonal directions in fixed N, E, S, W
// order. Every traversal uses this slice so visitation order is reproducible.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a size×size matrix of CellState owned by the maze or search run
// that created it. A fully initialized Grid holds exactly one Start and one
// End cell, and every non-Wall cell is reachable from Start once the
// generator's connectivity repair has run.
//
// Grid is not safe for concurrent mutation; it is a single-writer resource
// (see search.Runner for the enforcement surface).
type Grid struct {
	size  int
	cells [][]CellState
	start Point
	end   Point
}

// New returns a size×size grid with every cell set to Wall.
// Returns ErrSizeTooSmall if size < MinSize.
// Complexity: O(size²).
func New(size int) (*Grid, error) {
	if size < MinSize {
		return nil, ErrSizeTooSmall
	}
	cells := make([][]CellState, size)
	for y := 0; y < size; y++ {
		cells[y] = make([]CellState, size)
	}

	return &Grid{size: size, cells: cells}, nil
}

// FromCells builds a Grid from an existing cell matrix, deep-copying the
// input. It validates the full invariant set: square shape, minimum size,
// exactly one Start and one End, neither on a Wall (the last is structurally
// impossible here but kept as the defensive endpoint check).
// Complexity: O(size²).
func FromCells(cells [][]CellState) (*Grid, error) {
	size := len(cells)
	if size < MinSize {
		return nil, ErrSizeTooSmall
	}
	for _, row := range cells {
		if len(row) != size {
			return nil, ErrNotSquare
		}
	}

	g := &Grid{size: size, cells: make([][]CellState, size)}
	starts, ends := 0, 0
	for y := 0; y < size; y++ {
		g.cells[y] = make([]CellState, size)
		copy(g.cells[y], cells[y])
		for x := 0; x < size; x++ {
			switch cells[y][x] {
			case Start:
				starts++
				g.start = Point{X: x, Y: y}
			case End:
				ends++
				g.end = Point{X: x, Y: y}
			}
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrDuplicateStart
	case ends == 0:
		return nil, ErrNoEnd
	case ends > 1:
		return nil, ErrDuplicateEnd
	}

	return g, nil
}

// Size returns the side length.
func (g *Grid) Size() int { return g.size }

// Start returns the Start cell coordinate.
func (g *Grid) Start() Point { return g.start }

// End returns the End cell coordinate.
func (g *Grid) End() Point { return g.end }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.size && p.Y >= 0 && p.Y < g.size
}

// At returns the state of cell p. Out-of-bounds points read as Wall, so
// callers may probe neighbors without bounds arithmetic.
// Complexity: O(1).
func (g *Grid) At(p Point) CellState {
	if !g.InBounds(p) {
		return Wall
	}

	return g.cells[p.Y][p.X]
}

// Set assigns state s to cell p. Out-of-bounds writes are ignored.
// Complexity: O(1).
func (g *Grid) Set(p Point, s CellState) {
	if !g.InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = s
}

// Fill overwrites every cell with s and clears no endpoint bookkeeping;
// generators call SetStart/SetEnd afterwards.
// Complexity: O(size²).
func (g *Grid) Fill(s CellState) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			g.cells[y][x] = s
		}
	}
}

// SetStart stamps p as the unique Start cell. A previously stamped Start
// reverts to Open. Returns ErrOutOfBounds for points outside the grid.
func (g *Grid) SetStart(p Point) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.At(g.start) == Start {
		g.Set(g.start, Open)
	}
	g.Set(p, Start)
	g.start = p

	return nil
}

// SetEnd stamps p as the unique End cell, mirroring SetStart.
func (g *Grid) SetEnd(p Point) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	if g.At(g.end) == End {
		g.Set(g.end, Open)
	}
	g.Set(p, End)
	g.end = p

	return nil
}

// Walkable reports whether p can be stepped on: in bounds and not a Wall.
// Complexity: O(1).
func (g *Grid) Walkable(p Point) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] != Wall
}

// Neighbors returns the walkable orthogonal neighbors of p in fixed
// N, E, S, W order. The fixed order keeps every traversal deterministic.
// Complexity: O(1) (at most four candidates).
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range neighborOffsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.Walkable(q) {
			out = append(out, q)
		}
	}

	return out
}

// MarkVisited annotates p as Visited. Start and End take precedence and are
// never overwritten; Wall cells are left untouched.
func (g *Grid) MarkVisited(p Point) {
	if s := g.At(p); s == Open || s == Route {
		g.Set(p, Visited)
	}
}

// MarkRoute annotates p as part of the final path. Start/End precedence as
// in MarkVisited.
func (g *Grid) MarkRoute(p Point) {
	if s := g.At(p); s == Open || s == Visited {
		g.Set(p, Route)
	}
}

// ResetAnnotations reverts every Visited and Route cell to Open, restoring
// the grid to its pre-search state. Idempotent under repeated calls.
// Complexity: O(size²).
func (g *Grid) ResetAnnotations() {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if s := g.cells[y][x]; s == Visited || s == Route {
				g.cells[y][x] = Open
			}
		}
	}
}

// Annotate re-derives Visited and Route annotations from persisted visited
// and path collections, e.g. when re-hydrating a stored session. Existing
// annotations are cleared first; Start and End always take precedence.
// Complexity: O(size² + |visited| + |path|).
func (g *Grid) Annotate(visited, path []Point) {
	g.ResetAnnotations()
	for _, p := range visited {
		g.MarkVisited(p)
	}
	for _, p := range path {
		g.MarkRoute(p)
	}
}

// Reachable flood-fills from the given point across walkable cells and
// returns the set of reached points (including from itself when walkable).
// Complexity: O(size²) time and memory.
func (g *Grid) Reachable(from Point) map[Point]bool {
	reached := make(map[Point]bool, g.size*g.size/2)
	if !g.Walkable(from) {
		return reached
	}
	queue := []Point{from}
	reached[from] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, nbr := range g.Neighbors(queue[qi]) {
			if !reached[nbr] {
				reached[nbr] = true
				queue = append(queue, nbr)
			}
		}
	}

	return reached
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(size²).
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.size)
	for y := 0; y < g.size; y++ {
		cells[y] = make([]CellState, g.size)
		copy(cells[y], g.cells[y])
	}

	return &Grid{size: g.size, cells: cells, start: g.start, end: g.end}
}

// Cells returns a deep copy of the underlying matrix, e.g. for a persistence
// collaborator to store. Mutating the copy never affects the grid.
// Complexity: O(size²).
func (g *Grid) Cells() [][]CellState {
	cells := make([][]CellState, g.size)
	for y := 0; y < g.size; y++ {
		cells[y] = make([]CellState, g.size)
		copy(cells[y], g.cells[y])
	}

	return cells
}

// Equal reports whether both grids hold byte-identical cell matrices.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}

	return true
}

// String renders the grid one character per cell, rows separated by
// newlines: '#' Wall, '.' Open, 'S' Start, 'E' End, '*' Visited, '+' Route.
// Debug/diagnostic aid only.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size + 1))
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			b.WriteByte(g.cells[y][x].rune())
		}
		if y < g.size-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
