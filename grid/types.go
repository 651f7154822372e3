package grid

import (
	"errors"
	"fmt"
	"math"
)

// MinSize is the smallest legal grid side length.
const MinSize = 3

// Sentinel errors for grid construction and validation.
var (
	// ErrSizeTooSmall indicates a requested side length below MinSize.
	ErrSizeTooSmall = errors.New("grid: size must be at least 3")

	// ErrNotSquare indicates a cell matrix whose rows differ from its height.
	ErrNotSquare = errors.New("grid: cell matrix must be square")

	// ErrNoStart indicates a cell matrix without a Start cell.
	ErrNoStart = errors.New("grid: missing Start cell")

	// ErrNoEnd indicates a cell matrix without an End cell.
	ErrNoEnd = errors.New("grid: missing End cell")

	// ErrDuplicateStart indicates more than one Start cell.
	ErrDuplicateStart = errors.New("grid: more than one Start cell")

	// ErrDuplicateEnd indicates more than one End cell.
	ErrDuplicateEnd = errors.New("grid: more than one End cell")

	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")

	// ErrEndpointWall indicates a Start or End placed on a Wall cell.
	// Generators guarantee this never happens; the check is defensive.
	ErrEndpointWall = errors.New("grid: Start/End must not be a Wall")
)

// Point is an integer cell coordinate. It is a pure value type: comparable,
// hashable, and safe to use as a map or set key.
type Point struct {
	X, Y int
}

// Manhattan returns the L1 distance |dx|+|dy| between p and q.
// Complexity: O(1).
func (p Point) Manhattan(q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Euclidean returns the straight-line distance between p and q.
// Complexity: O(1).
func (p Point) Euclidean(q Point) float64 {
	dx, dy := float64(p.X-q.X), float64(p.Y-q.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// CellState is the mutually exclusive state of a single grid cell.
//
// Start and End are fixed markers: they take precedence over the transient
// Visited/Route annotations and are never overwritten by them.
type CellState uint8

const (
	// Wall blocks traversal.
	Wall CellState = iota
	// Open is a traversable cell carrying no annotation.
	Open
	// Start marks the unique search origin.
	Start
	// End marks the unique search goal.
	End
	// Visited annotates a cell an algorithm has committed to exploring.
	Visited
	// Route annotates a cell on the final reconstructed path.
	Route
)

// String returns a short human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "Wall"
	case Open:
		return "Open"
	case Start:
		return "Start"
	case End:
		return "End"
	case Visited:
		return "Visited"
	case Route:
		return "Route"
	}

	return fmt.Sprintf("CellState(%d)", uint8(s))
}

// rune returns the single-character form used by Grid.String.
func (s CellState) rune() byte {
	switch s {
	case Wall:
		return '#'
	case Open:
		return '.'
	case Start:
		return 'S'
	case End:
		return 'E'
	case Visited:
		return '*'
	case Route:
		return '+'
	}

	return '?'
}
