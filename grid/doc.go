// Package grid provides the square cell-state grid shared by every maze
// generator and search algorithm in mazepath, together with the Point value
// type and the annotation rules that keep Start/End markers stable.
//
// What
//
//   - Point: an integer (x,y) coordinate; comparable, map-key safe, with
//     Manhattan and Euclidean distance helpers.
//   - CellState: Wall, Open, Start, End, Visited, Route — one state per cell,
//     mutually exclusive.
//   - Grid: a size×size matrix (size ≥ 3) with exactly one Start and one End
//     once endpoints are stamped, deterministic N/E/S/W neighbor iteration,
//     flood fill, annotation, and reset.
//
// Why
//
//   - A single owned data structure for generation and search keeps every
//     algorithm a pure function over the same model.
//   - The Start/End precedence rule (markers are never overwritten by
//     Visited/Route) lives here once instead of in nine algorithms.
//
// Determinism
//
//	Neighbors always returns walkable cells in fixed N, E, S, W order, so any
//	traversal built on it has a reproducible visit sequence.
//
// Persistence round-trip
//
//	A collaborator may store Cells() plus the visited/path collections of a
//	finished run. Re-hydrating via FromCells and re-applying Annotate yields
//	cell states identical to save time, with Start/End taking precedence.
//
// Complexity (n = side length)
//
//   - At/Set/InBounds/Walkable/Neighbors: O(1)
//   - Fill/ResetAnnotations/Clone/Cells/Reachable/FromCells: O(n²)
//
// Errors
//
//   - ErrSizeTooSmall, ErrNotSquare          — shape validation
//   - ErrNoStart, ErrNoEnd                   — missing endpoint markers
//   - ErrDuplicateStart, ErrDuplicateEnd     — more than one marker
//   - ErrOutOfBounds                         — endpoint stamp outside grid
//   - ErrEndpointWall                        — defensive never-a-wall check
package grid
