// Package search is the pathfinding engine of mazepath: nine search
// algorithms over a grid.Grid behind one pausable, stoppable Runner.
//
// What
//
//   - Algorithm enum: Dijkstra, AStar, BFS, DFS, Bidirectional,
//     GreedyBestFirst, IDAStar, FringeSearch, ThetaStar.
//   - Runner: the per-grid control surface. State machine
//     Idle → Running → {Paused ⇄ Running} → {Completed | Stopped}.
//   - Pause(bool): cooperative suspension on a condition variable — no CPU
//     burned while paused, and resumption continues from the exact frontier
//     state.
//   - Stop(): cancellation at the next step boundary (honored even inside
//     the animation sleep); a stopped run delivers no result and resets the
//     grid's Visited/Route annotations to the pre-search state.
//   - WithOnVisit hook + WithDelay animation pacing for driving UIs.
//   - Find: one-shot convenience wrapper over NewRunner + Run.
//
// Why
//
//   - The algorithms are pure step functions (grid in, path out, visitation
//     callback as the only side channel), so correctness is decoupled from
//     timing and animation; the Runner owns all timing and grid annotation.
//   - One active run per grid enforces the single-writer discipline the
//     shared mutable grid requires.
//
// Determinism
//
//	Neighbor iteration is fixed N/E/S/W (grid.Neighbors) and every priority
//	frontier breaks ties FIFO, so visit sequences are fully reproducible.
//
// Guarantees (4-connected, uniform cost)
//
//   - BFS, Dijkstra, A*, Bidirectional, IDA*, Fringe: shortest path by edge
//     count.
//   - DFS, Greedy Best-First: valid path, possibly longer.
//   - Theta*: contiguous any-angle path with Euclidean length ≤ the lattice
//     shortest path's.
//   - Empty frontier before reaching End: empty path, nil error — "no path"
//     is a valid negative result, not a failure.
//
// Usage
//
//	r, err := search.NewRunner(g,
//	    search.WithDelay(50*time.Millisecond),
//	    search.WithOnVisit(func(p grid.Point) { /* animate */ }),
//	)
//	if err != nil { /* ErrNilGrid or ErrBadDelay */ }
//	res, err := r.Run(search.AStar)
//	switch {
//	case errors.Is(err, search.ErrStopped):
//	    // cancelled; grid annotations already reset
//	case err != nil:
//	    // configuration error
//	case len(res.Path) == 0:
//	    // no path exists
//	}
//
// Errors
//
//   - ErrNilGrid           nil grid passed to NewRunner/Find.
//   - ErrUnknownAlgorithm  Algorithm value outside the enum.
//   - ErrBusy              Run/Reset while a run is in flight.
//   - ErrStopped           deliberate cancellation (not a failure).
//   - ErrBadDelay          negative animation delay.
//   - grid.ErrEndpointWall defensive endpoint invariant check.
package search
