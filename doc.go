// Package mazepath is an in-memory playground for generating mazes and
// watching search algorithms solve them — step by step, pausable, seedable.
//
// 🚀 What is mazepath?
//
//	A pure-Go engine that brings together:
//		• Grid primitives: square cell-state grids with Start/End markers
//		• Disjoint-Set: union-find with path compression & union by rank
//		• Maze generation: Kruskal, Prim, Wilson, Recursive Division,
//		  Braided, Cellular Automata, Hunt-and-Kill, Spiral Backtracker
//		• Pathfinding: Dijkstra, A*, BFS, DFS, Bidirectional, Greedy
//		  Best-First, IDA*, Fringe Search, Theta*
//		• Run control: pause/resume, stop, per-step visit hooks and
//		  animation delays for driving UIs
//
// ✨ Why choose mazepath?
//
//   - Deterministic – every generator consumes one seedable rand.Rand
//   - Rock-solid guarantees – every maze is connected, Start/End are never walls
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – hook OnVisit for custom animation or tracing logic
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/    — Point, CellState and the square Grid with flood fill & annotations
//	dsu/     — disjoint-set (union-find) over grid points
//	mazegen/ — the eight maze generation algorithms + connectivity repair
//	search/  — the nine search algorithms behind one pausable Runner
//
// Quick ASCII example:
//
//	    # # # # #
//	    # S . . #
//	    # # # . #
//	    # E . . #
//	    # # # # #
//
//	a 5×5 maze: '#' walls, '.' open cells, one Start and one End.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
